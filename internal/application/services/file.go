package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

// 50MB
const maxFileSize = int64(50 << 20)

var allowedFileExtensions = map[string]struct{}{
	".txt": {}, ".pdf": {}, ".docx": {}, ".xlsx": {}, ".pptx": {},
	".jpg": {}, ".png": {}, ".gif": {}, ".mp4": {}, ".mp3": {},
}

type FileService struct {
	blob           ports.BlobStore
	fileRepository file.Repository
	pathResolver   *PathResolver
	access         ports.AccessChecker
	logger         *zap.Logger
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	blob ports.BlobStore,
	fileRepository file.Repository,
	pathResolver *PathResolver,
	access ports.AccessChecker,
	logger *zap.Logger,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		blob:           blob,
		fileRepository: fileRepository,
		pathResolver:   pathResolver,
		access:         access,
		logger:         logger,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func validateUpload(fileSize int64, fileName, folderPath string) error {
	if strings.TrimSpace(folderPath) != "" {
		for _, segment := range strings.Split(folderPath, "/") {
			if strings.Contains(segment, ".") {
				return NewValidationError("invalid folder name: %s", segment)
			}
		}
	}

	if fileSize > maxFileSize {
		return NewValidationError("file size exceeds maximum limit of %d MB", maxFileSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if strings.TrimSpace(ext) == "" {
		return NewValidationError("missing file extension")
	}
	if _, ok := allowedFileExtensions[ext]; !ok {
		return NewValidationError("file type %s not allowed", ext)
	}

	return nil
}

func (fs *FileService) UploadFile(
	ctx context.Context,
	r io.Reader,
	fileName string,
	fileSize int64,
	folderPath string,
	callerID user.ID,
) (*file.File, error) {
	if err := validateUpload(fileSize, fileName, folderPath); err != nil {
		return nil, err
	}

	fld, err := fs.pathResolver.Resolve(ctx, folderPath, callerID)
	if err != nil {
		return nil, err
	}

	blobKey := fileName
	var folderID *uuid.UUID
	if fld != nil {
		blobKey = fld.StoragePath + "/" + fileName
		id := fld.ID
		folderID = &id
	}

	if _, err = fs.blob.PutObject(ctx, blobKey, r, fileSize); err != nil {
		return nil, NewStorageError("upload blob", err)
	}

	f := &file.File{
		FileName:      fileName,
		FileExtension: strings.ToLower(filepath.Ext(fileName)),
		FileSize:      fileSize,
		OwnerID:       callerID,
		FolderID:      folderID,
		StoragePath:   blobKey,
		Versions: file.Versions{
			{StoragePath: blobKey, CreatedByID: callerID},
		},
	}

	created, err := fs.fileRepository.CreateFile(ctx, f)
	if err != nil {
		// The blob is already written; a failed metadata insert leaves it
		// orphaned. Accepted inconsistency window, logged for cleanup.
		fs.logger.Warn("file metadata insert failed after blob write",
			zap.String("blob_key", blobKey),
			zap.Error(err),
		)
		return nil, NewStorageError("persist file metadata", err)
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionFileUploaded,
		ActorID: callerID.String(),
		Payload: created,
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return created, nil
}

func (fs *FileService) DownloadFile(ctx context.Context, fileID uuid.UUID, callerID user.ID) (io.ReadCloser, *file.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, nil, NewStorageError("fetch file", err)
	}
	if f == nil {
		return nil, nil, NewNotFoundError("file", fileID.String())
	}

	ok, err := fs.access.HasResourceAccess(ctx, f.ID, f.OwnerID, callerID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, NewAuthorizationError("you do not have permission to access this file")
	}

	rc, err := fs.blob.GetObject(ctx, f.StoragePath)
	if err != nil {
		return nil, nil, NewStorageError("download blob", err)
	}

	return rc, f, nil
}

func (fs *FileService) DeleteFile(ctx context.Context, fileID uuid.UUID, callerID user.ID) (bool, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return false, NewStorageError("fetch file", err)
	}
	if f == nil {
		return false, nil
	}

	ok, err := fs.access.HasResourceAccess(ctx, f.ID, f.OwnerID, callerID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, NewAuthorizationError("you do not have permission to delete this file")
	}

	if err = fs.blob.DeleteObject(ctx, f.StoragePath); err != nil {
		return false, NewStorageError("delete blob", err)
	}

	deleted, err := fs.fileRepository.DeleteFile(ctx, fileID)
	if err != nil {
		return false, NewStorageError("delete file metadata", err)
	}

	if deleted {
		fs.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionFileDeleted,
			ActorID: callerID.String(),
			Payload: f,
		}
		fs.mCounter.WithLabelValues("files_deleted_total").Inc()
	}

	return deleted, nil
}

func (fs *FileService) GetFileMetadata(ctx context.Context, fileID uuid.UUID) (*file.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, NewStorageError("fetch file", err)
	}
	if f == nil {
		return nil, NewNotFoundError("file", fileID.String())
	}

	return f, nil
}

func (fs *FileService) GetFileVersions(ctx context.Context, fileID uuid.UUID) (file.Versions, error) {
	versions, err := fs.fileRepository.FetchFileVersions(ctx, fileID)
	if err != nil {
		return nil, NewStorageError("fetch file versions", err)
	}
	if len(versions) == 0 {
		return nil, NewNotFoundError("file", fileID.String())
	}

	return versions, nil
}
