package file

import (
	"time"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/user"
)

type (
	File struct {
		ID            uuid.UUID
		FileName      string
		FileExtension string
		FileSize      int64
		OwnerID       user.ID

		// Nil means the file lives at the root of the owner's tree.
		FolderID *uuid.UUID

		// Blob key in the object store.
		StoragePath string

		CreatedAt      time.Time
		LastModifiedAt time.Time

		Versions Versions
	}
	Files []*File

	// Version records one upload of the file's content. Every upload
	// appends exactly one entry pointing at the blob key it wrote.
	Version struct {
		ID          uuid.UUID
		FileID      uuid.UUID
		StoragePath string
		CreatedAt   time.Time
		CreatedByID user.ID
	}
	Versions []*Version
)
