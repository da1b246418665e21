package services

import (
	"fmt"
)

// ValidationError covers user-correctable input problems: bad extension,
// oversize upload, malformed folder path, undefined enum values.
type ValidationError struct {
	Reason string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError marks a missing file, folder or share.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// AuthorizationError marks a caller that lacks permission on a resource.
type AuthorizationError struct {
	Reason string
}

func NewAuthorizationError(reason string) *AuthorizationError {
	return &AuthorizationError{Reason: reason}
}

func (e *AuthorizationError) Error() string { return e.Reason }

// StorageError wraps a blob or relational failure without swallowing the
// originating cause.
type StorageError struct {
	Op    string
	Cause error
}

func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }
