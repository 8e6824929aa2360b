package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("access denied")
	ErrDuplicateApplication = errors.New("you have already applied to this project")
	ErrInvalidTransition    = errors.New("application is not pending")
	ErrSeedProject          = errors.New("sample projects cannot be modified or applied to")
	ErrStorageUnavailable   = errors.New("file storage is not configured")
)

// ValidationError reports structurally invalid caller input.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func NewNotFoundError(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CascadeDeleteError is returned when a project's applications were purged but
// the project row itself could not be deleted. The project stays visible with
// no applications; retrying the delete is safe.
type CascadeDeleteError struct {
	ProjectID           uuid.UUID
	ApplicationsDeleted int64
	Err                 error
}

func (e *CascadeDeleteError) Error() string {
	return fmt.Sprintf("deleted %d applications but failed to delete project %s: %v", e.ApplicationsDeleted, e.ProjectID, e.Err)
}

func (e *CascadeDeleteError) Unwrap() error {
	return e.Err
}
