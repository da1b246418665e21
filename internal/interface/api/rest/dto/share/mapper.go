package share

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/share"
)

func ToResponseShare(sDomain share.Share) Share {
	return Share{
		ID:           sDomain.ID,
		ResourceID:   sDomain.ResourceID,
		ResourceType: sDomain.ResourceType.String(),
		SharedByID:   sDomain.SharedByID,
		SharedWithID: sDomain.SharedWithID,
		Permission:   int16(sDomain.Permission),
		CreatedAt:    sDomain.CreatedAt,
		ExpiresAt:    sDomain.ExpiresAt,
	}
}

func ToResponseShares(ssDomain share.Shares) Shares {
	ss := make(Shares, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseShare(*s)
	}

	return ss
}

func ToDomainShare(sRequest CreateRequest) (share.Share, error) {
	resourceID, err := uuid.Parse(sRequest.ResourceID)
	if err != nil {
		return share.Share{}, errors.New("resource_id must be a valid UUID")
	}
	sharedWithID, err := uuid.Parse(sRequest.SharedWithID)
	if err != nil {
		return share.Share{}, errors.New("shared_with_id must be a valid UUID")
	}

	var expiresAt *time.Time
	if sRequest.ExpiresAt != nil {
		t, err := time.Parse(time.RFC3339, *sRequest.ExpiresAt)
		if err != nil {
			return share.Share{}, errors.New("expires_at must be RFC 3339")
		}
		expiresAt = &t
	}

	return share.Share{
		ResourceID:   resourceID,
		ResourceType: share.ResourceType(sRequest.ResourceType),
		SharedWithID: sharedWithID,
		Permission:   share.Permission(sRequest.Permission),
		ExpiresAt:    expiresAt,
	}, nil
}
