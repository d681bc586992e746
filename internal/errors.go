package internal

import (
	"errors"
	"fmt"
)

// Store errors. Repositories return these (possibly wrapped) so services can
// branch with errors.Is instead of inspecting driver messages.
var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrInvalidReference = errors.New("invalid reference")
)

// StoreError carries the failing operation and entity alongside one of the
// sentinel errors above.
type StoreError struct {
	Op     string
	Entity string
	Kind   error
	Cause  error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Entity, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Kind)
}

func (e *StoreError) Is(target error) bool {
	return e.Kind == target
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func NewStoreError(op, entity string, kind, cause error) *StoreError {
	return &StoreError{
		Op:     op,
		Entity: entity,
		Kind:   kind,
		Cause:  cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateRecord)
}

// IsInvalidReference reports a foreign key that points at no row.
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}

// ValidationErrors maps a request field name to the first message reported for it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(v))
}

func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; exists {
		return
	}
	v[field] = message
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}
