package share

import (
	"time"

	"github.com/google/uuid"
)

type (
	Share struct {
		ID           uuid.UUID
		ResourceID   uuid.UUID
		ResourceType int16
		SharedByID   uuid.UUID
		SharedWithID uuid.UUID
		Permission   int16
		CreatedAt    time.Time
		ExpiresAt    *time.Time
	}
	Shares []*Share
)
