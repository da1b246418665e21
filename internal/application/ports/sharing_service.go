package ports

import (
	"context"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/share"
	"file-storage-api/internal/domain/user"
)

// AccessChecker is the single authorization gate for resources. The
// sharing service is its sole provider; the file and folder services
// consult it before touching anything a caller does not own.
type AccessChecker interface {
	HasResourceAccess(ctx context.Context, resourceID uuid.UUID, ownerID, callerID user.ID) (bool, error)
}

type SharingService interface {
	AccessChecker

	CreateShare(ctx context.Context, req share.Share, callerID user.ID) (*share.Share, error)
	GetSharesForResource(ctx context.Context, resourceID uuid.UUID) (share.Shares, error)
}
