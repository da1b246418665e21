package share

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateShare(ctx context.Context, req Share) (*Share, error)

	// FetchSharesByResource returns every share recorded for the resource,
	// expired ones included. Callers filter at check time.
	FetchSharesByResource(ctx context.Context, resourceID uuid.UUID) (Shares, error)
}
