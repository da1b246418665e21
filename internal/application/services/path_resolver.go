package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/folder"
	"file-storage-api/internal/domain/user"
)

// PathResolver materializes a slash-delimited folder path into a chain of
// folder rows, creating the missing suffix and reusing what exists.
type PathResolver struct {
	folderRepository folder.Repository
}

func NewPathResolver(folderRepository folder.Repository) *PathResolver {
	return &PathResolver{folderRepository: folderRepository}
}

// Resolve returns the deepest folder of the path, or nil for a blank path.
// A fully-existing path performs no writes; a partially-existing one
// creates only the missing segments, each linked to its predecessor.
//
// Segment lookup is by bare name, not scoped to parent or owner, so equal
// names in different trees collide and the first match wins. Kept as the
// system behaves today; scoping by (parent, name) would change which
// folder uploads land in.
func (pr *PathResolver) Resolve(ctx context.Context, path string, ownerID user.ID) (*folder.Folder, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	existing, err := pr.folderRepository.FetchFolderByStoragePath(ctx, path)
	if err != nil {
		return nil, NewStorageError("fetch folder by storage path", err)
	}
	if existing != nil {
		return existing, nil
	}

	var current *folder.Folder
	fullDirectory := ""

	for _, name := range strings.Split(path, "/") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		if fullDirectory == "" {
			fullDirectory = name
		} else {
			fullDirectory = fullDirectory + "/" + name
		}

		found, err := pr.folderRepository.FetchFolderByName(ctx, name)
		if err != nil {
			return nil, NewStorageError("fetch folder by name", err)
		}
		if found != nil {
			current = found
			continue
		}

		var parentID *uuid.UUID
		if current != nil {
			id := current.ID
			parentID = &id
		}

		created, err := pr.folderRepository.CreateFolder(ctx, folder.Folder{
			Name:           name,
			OwnerID:        ownerID,
			ParentFolderID: parentID,
			StoragePath:    fullDirectory,
		})
		if err != nil {
			// Storage-path uniqueness violations surface as-is so two
			// concurrent uploads racing on a new path read as a conflict,
			// not a generic failure.
			return nil, err
		}
		current = created
	}

	return current, nil
}
