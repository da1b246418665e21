package folder

import (
	"time"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/user"
)

type (
	Folder struct {
		ID             uuid.UUID
		Name           string
		OwnerID        user.ID
		ParentFolderID *uuid.UUID

		// Slash-joined chain of ancestor names, unique system-wide.
		// Doubles as the blob key prefix for files placed under the folder.
		StoragePath string

		CreatedAt time.Time
	}
	Folders []*Folder
)
