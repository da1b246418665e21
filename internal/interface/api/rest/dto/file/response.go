package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID             uuid.UUID  `json:"id"`
		FileName       string     `json:"file_name"`
		FileExtension  string     `json:"file_extension"`
		FileSize       int64      `json:"file_size"`
		OwnerID        uuid.UUID  `json:"owner_id"`
		FolderID       *uuid.UUID `json:"folder_id,omitempty"`
		StoragePath    string     `json:"storage_path"`
		CreatedAt      time.Time  `json:"created_at"`
		LastModifiedAt time.Time  `json:"last_modified_at"`
	}
	Files []File

	Version struct {
		ID          uuid.UUID `json:"id"`
		FileID      uuid.UUID `json:"file_id"`
		StoragePath string    `json:"storage_path"`
		CreatedAt   time.Time `json:"created_at"`
		CreatedByID uuid.UUID `json:"created_by_id"`
	}
	Versions []Version

	ResponseData struct {
		Data Files `json:"data"`
	}
	VersionsResponseData struct {
		Data Versions `json:"data"`
	}
)
