package share

import (
	"time"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/user"
)

type ResourceType int16

const (
	ResourceTypeFile ResourceType = iota
	ResourceTypeFolder
)

func (rt ResourceType) IsValid() bool {
	return rt == ResourceTypeFile || rt == ResourceTypeFolder
}

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeFile:
		return "file"
	case ResourceTypeFolder:
		return "folder"
	default:
		return "unknown"
	}
}

type Permission int16

const (
	PermissionNone Permission = iota
	PermissionView
	PermissionEdit
	PermissionOwner
)

func (p Permission) IsValid() bool {
	return p >= PermissionNone && p <= PermissionOwner
}

type (
	// Share grants a permission level over one resource to one user.
	// ResourceID is a polymorphic reference disambiguated by ResourceType;
	// it is resolved against the file or folder table at read time, not by
	// a relational foreign key.
	Share struct {
		ID           uuid.UUID
		ResourceID   uuid.UUID
		ResourceType ResourceType
		SharedByID   user.ID
		SharedWithID user.ID
		Permission   Permission
		CreatedAt    time.Time
		ExpiresAt    *time.Time
	}
	Shares []*Share
)
