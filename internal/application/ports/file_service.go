package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/user"
)

type FileService interface {
	UploadFile(ctx context.Context, r io.Reader, fileName string, fileSize int64, folderPath string, callerID user.ID) (*file.File, error)
	DownloadFile(ctx context.Context, fileID uuid.UUID, callerID user.ID) (io.ReadCloser, *file.File, error)
	DeleteFile(ctx context.Context, fileID uuid.UUID, callerID user.ID) (bool, error)
	GetFileMetadata(ctx context.Context, fileID uuid.UUID) (*file.File, error)
	GetFileVersions(ctx context.Context, fileID uuid.UUID) (file.Versions, error)
}
