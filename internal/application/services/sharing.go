package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/share"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

type SharingService struct {
	shareRepository  share.Repository
	fileRepository   file.Repository
	folderRepository folder.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewSharingService(
	shareRepository share.Repository,
	fileRepository file.Repository,
	folderRepository folder.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.SharingService {
	return &SharingService{
		shareRepository:  shareRepository,
		fileRepository:   fileRepository,
		folderRepository: folderRepository,
		mq:               rabbit,
		mCounter:         mCounter,
	}
}

// HasResourceAccess implements the access rule for every facade: the
// owner always passes; anyone else needs a share for exactly this
// resource with at least View permission that has not expired. A share
// recorded without an expiry fails closed.
//
// Folder shares do not cascade to the files inside the folder; each
// resource is checked against its own id only.
func (ss *SharingService) HasResourceAccess(ctx context.Context, resourceID uuid.UUID, ownerID, callerID user.ID) (bool, error) {
	if callerID == ownerID {
		return true, nil
	}

	shares, err := ss.shareRepository.FetchSharesByResource(ctx, resourceID)
	if err != nil {
		return false, NewStorageError("fetch shares for resource", err)
	}

	now := time.Now().UTC()
	for _, s := range shares {
		if s.SharedWithID != callerID {
			continue
		}
		if s.Permission < share.PermissionView {
			continue
		}
		if s.ExpiresAt == nil || s.ExpiresAt.Before(now) {
			continue
		}
		return true, nil
	}

	return false, nil
}

func (ss *SharingService) CreateShare(ctx context.Context, req share.Share, callerID user.ID) (*share.Share, error) {
	if !req.ResourceType.IsValid() {
		return nil, NewValidationError("invalid resource type: %d", req.ResourceType)
	}
	if !req.Permission.IsValid() {
		return nil, NewValidationError("invalid share permission: %d", req.Permission)
	}

	// Owner lookup dispatches on the resource type; a missing resource
	// leaves the owner zero so the access gate below rejects the caller.
	var resourceOwnerID user.ID
	switch req.ResourceType {
	case share.ResourceTypeFile:
		f, err := ss.fileRepository.FetchFileByID(ctx, req.ResourceID)
		if err != nil {
			return nil, NewStorageError("fetch file for share", err)
		}
		if f != nil {
			resourceOwnerID = f.OwnerID
		}
	case share.ResourceTypeFolder:
		fld, err := ss.folderRepository.FetchFolderByID(ctx, req.ResourceID)
		if err != nil {
			return nil, NewStorageError("fetch folder for share", err)
		}
		if fld != nil {
			resourceOwnerID = fld.OwnerID
		}
	}

	ok, err := ss.HasResourceAccess(ctx, req.ResourceID, resourceOwnerID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewAuthorizationError("you do not have permission to access this resource")
	}

	req.SharedByID = callerID
	created, err := ss.shareRepository.CreateShare(ctx, req)
	if err != nil {
		return nil, NewStorageError("create share", err)
	}

	ss.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionShareCreated,
		ActorID: callerID.String(),
		Payload: created,
	}

	ss.mCounter.WithLabelValues("shares_created_total").Inc()

	return created, nil
}

func (ss *SharingService) GetSharesForResource(ctx context.Context, resourceID uuid.UUID) (share.Shares, error) {
	shares, err := ss.shareRepository.FetchSharesByResource(ctx, resourceID)
	if err != nil {
		return nil, NewStorageError("fetch shares for resource", err)
	}

	return shares, nil
}
