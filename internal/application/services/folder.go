package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

type FolderService struct {
	blob             ports.BlobStore
	folderRepository folder.Repository
	fileRepository   file.Repository
	pathResolver     *PathResolver
	logger           *zap.Logger
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewFolderService(
	blob ports.BlobStore,
	folderRepository folder.Repository,
	fileRepository file.Repository,
	pathResolver *PathResolver,
	logger *zap.Logger,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FolderService {
	return &FolderService{
		blob:             blob,
		folderRepository: folderRepository,
		fileRepository:   fileRepository,
		pathResolver:     pathResolver,
		logger:           logger,
		mq:               rabbit,
		mCounter:         mCounter,
	}
}

// CreateFolderFromPath materializes the path and returns its deepest
// folder. A blank path yields an empty record, not an error: uploads
// without a folder land at the root.
func (fos *FolderService) CreateFolderFromPath(ctx context.Context, path string, callerID user.ID) (*folder.Folder, error) {
	fld, err := fos.pathResolver.Resolve(ctx, path, callerID)
	if err != nil {
		return nil, err
	}
	if fld == nil {
		return &folder.Folder{}, nil
	}

	fos.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionFolderCreated,
		ActorID: callerID.String(),
		Payload: fld,
	}

	fos.mCounter.WithLabelValues("folders_created_total").Inc()

	return fld, nil
}

func (fos *FolderService) GetUserFolders(ctx context.Context, callerID user.ID) (folder.Folders, error) {
	folders, err := fos.folderRepository.FetchUserFolders(ctx, callerID)
	if err != nil {
		return nil, NewStorageError("fetch user folders", err)
	}

	return folders, nil
}

func (fos *FolderService) GetFolderDetails(ctx context.Context, folderID uuid.UUID) (*folder.Details, error) {
	fld, err := fos.folderRepository.FetchFolderByID(ctx, folderID)
	if err != nil {
		return nil, NewStorageError("fetch folder", err)
	}
	if fld == nil {
		return nil, NewNotFoundError("folder", folderID.String())
	}

	subfolders, err := fos.folderRepository.FetchSubfolders(ctx, folderID)
	if err != nil {
		return nil, NewStorageError("fetch subfolders", err)
	}
	files, err := fos.fileRepository.FetchFilesByFolder(ctx, folderID)
	if err != nil {
		return nil, NewStorageError("fetch folder files", err)
	}

	return &folder.Details{
		Folder:     *fld,
		Files:      files,
		Subfolders: subfolders,
	}, nil
}

// DeleteFolder is owner-only: shares never grant folder deletion. Rows
// for the folder, its descendants and their files go in one transaction;
// the blobs are removed after commit.
func (fos *FolderService) DeleteFolder(ctx context.Context, folderID uuid.UUID, callerID user.ID) (bool, error) {
	fld, err := fos.folderRepository.FetchFolderByID(ctx, folderID)
	if err != nil {
		return false, NewStorageError("fetch folder", err)
	}
	if fld == nil {
		return false, nil
	}

	if fld.OwnerID != callerID {
		return false, NewAuthorizationError("only the owner may delete a folder")
	}

	deleted, blobKeys, err := fos.folderRepository.DeleteFolderCascade(ctx, folderID)
	if err != nil {
		return false, NewStorageError("delete folder cascade", err)
	}
	if !deleted {
		return false, nil
	}

	for _, key := range blobKeys {
		if err := fos.blob.DeleteObject(ctx, key); err != nil {
			fos.logger.Warn("orphaned blob after folder delete",
				zap.String("blob_key", key),
				zap.Error(err),
			)
		}
	}

	fos.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionFolderDeleted,
		ActorID: callerID.String(),
		Payload: fld,
	}

	fos.mCounter.WithLabelValues("folders_deleted_total").Inc()

	return true, nil
}
