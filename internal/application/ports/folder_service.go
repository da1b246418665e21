package ports

import (
	"context"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/user"
)

type FolderService interface {
	CreateFolderFromPath(ctx context.Context, path string, callerID user.ID) (*folder.Folder, error)
	GetUserFolders(ctx context.Context, callerID user.ID) (folder.Folders, error)
	GetFolderDetails(ctx context.Context, folderID uuid.UUID) (*folder.Details, error)
	DeleteFolder(ctx context.Context, folderID uuid.UUID, callerID user.ID) (bool, error)
}
