// Package dberror translates driver and ORM failures into the store error
// taxonomy declared in package internal.
package dberror

import (
	"errors"
	"strings"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify wraps err as a *internal.StoreError whose kind is ErrRecordNotFound,
// ErrDuplicateRecord or ErrInvalidReference when the failure is one of those,
// and returns err unchanged otherwise.
func Classify(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if kind := kindOf(err); kind != nil {
		return internal.NewStoreError(op, entity, kind, err)
	}
	return err
}

func kindOf(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return internal.ErrRecordNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrDuplicateRecord
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return internal.ErrInvalidReference
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return internal.ErrDuplicateRecord
		case pgForeignKeyViolation:
			return internal.ErrInvalidReference
		}
	}

	// sqlite reports constraint failures only through the message text
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return internal.ErrDuplicateRecord
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return internal.ErrInvalidReference
	}
	return nil
}
