package folder

import (
	"time"

	"github.com/google/uuid"

	"file-storage-api/internal/interface/api/rest/dto/file"
)

type (
	Folder struct {
		ID             uuid.UUID  `json:"id"`
		Name           string     `json:"name"`
		OwnerID        uuid.UUID  `json:"owner_id"`
		ParentFolderID *uuid.UUID `json:"parent_folder_id,omitempty"`
		StoragePath    string     `json:"storage_path"`
		CreatedAt      time.Time  `json:"created_at"`
	}
	Folders []Folder

	Details struct {
		Folder     Folder     `json:"folder"`
		Files      file.Files `json:"files"`
		Subfolders Folders    `json:"subfolders"`
	}

	ResponseData struct {
		Data Folders `json:"data"`
	}
)
