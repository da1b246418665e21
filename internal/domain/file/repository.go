package file

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// CreateFile persists the file together with its initial version in
	// one transaction.
	CreateFile(ctx context.Context, req *File) (*File, error)

	// FetchFileByID eager-loads the file's versions. Returns nil, nil
	// when the file does not exist.
	FetchFileByID(ctx context.Context, id uuid.UUID) (*File, error)

	FetchFilesByFolder(ctx context.Context, folderID uuid.UUID) (Files, error)
	FetchFileVersions(ctx context.Context, fileID uuid.UUID) (Versions, error)

	// DeleteFile removes the file with its versions and shares in one
	// transaction. False when the file does not exist.
	DeleteFile(ctx context.Context, id uuid.UUID) (bool, error)
}
