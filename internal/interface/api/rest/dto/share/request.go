package share

type CreateRequest struct {
	ResourceID   string  `json:"resource_id"`
	ResourceType int16   `json:"resource_type"`
	SharedWithID string  `json:"shared_with_id"`
	Permission   int16   `json:"permission"`
	ExpiresAt    *string `json:"expires_at,omitempty"`
}
