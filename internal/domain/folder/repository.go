package folder

import (
	"context"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/user"
)

type Repository interface {
	CreateFolder(ctx context.Context, req Folder) (*Folder, error)
	FetchFolderByID(ctx context.Context, id uuid.UUID) (*Folder, error)

	// FetchFolderByName looks a folder up by bare segment name, not scoped
	// to parent or owner. Equal names anywhere in the tree collide.
	FetchFolderByName(ctx context.Context, name string) (*Folder, error)

	FetchFolderByStoragePath(ctx context.Context, storagePath string) (*Folder, error)
	FetchSubfolders(ctx context.Context, parentID uuid.UUID) (Folders, error)
	FetchUserFolders(ctx context.Context, ownerID user.ID) (Folders, error)

	// DeleteFolderCascade removes the folder, every descendant folder and
	// all files, versions and shares under them in one transaction.
	// Returns the blob keys of the removed files and false when the folder
	// does not exist.
	DeleteFolderCascade(ctx context.Context, id uuid.UUID) (bool, []string, error)
}
