package folder

import (
	"time"

	"github.com/google/uuid"
)

type (
	Folder struct {
		ID             uuid.UUID
		Name           string
		OwnerID        uuid.UUID
		ParentFolderID *uuid.UUID
		StoragePath    string

		CreatedAt time.Time
	}
	Folders []*Folder
)
