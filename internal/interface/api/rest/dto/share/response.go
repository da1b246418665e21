package share

import (
	"time"

	"github.com/google/uuid"
)

type (
	Share struct {
		ID           uuid.UUID  `json:"id"`
		ResourceID   uuid.UUID  `json:"resource_id"`
		ResourceType string     `json:"resource_type"`
		SharedByID   uuid.UUID  `json:"shared_by_id"`
		SharedWithID uuid.UUID  `json:"shared_with_id"`
		Permission   int16      `json:"permission"`
		CreatedAt    time.Time  `json:"created_at"`
		ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	}
	Shares       []Share
	ResponseData struct {
		Data Shares `json:"data"`
	}
)
