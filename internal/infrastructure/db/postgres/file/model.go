package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID            uuid.UUID
		FileName      string
		FileExtension string
		FileSize      int64
		OwnerID       uuid.UUID
		FolderID      *uuid.UUID
		StoragePath   string

		CreatedAt      time.Time
		LastModifiedAt time.Time
	}
	Files []*File

	Version struct {
		ID          uuid.UUID
		FileID      uuid.UUID
		StoragePath string
		CreatedAt   time.Time
		CreatedByID uuid.UUID
	}
	Versions []*Version
)
