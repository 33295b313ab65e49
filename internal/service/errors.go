// Package service implements the ownership-scoped resource services for
// categories, tags, cycles and transactions. Every method returns *Error
// with exactly one of three kinds; handlers map the kind onto a status code.
package service

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindNotFound
	KindInternal
)

// Error is the single failure type every service method returns.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string
	cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// BadRequest builds a caller-correctable failure. With no violations the
// message stays the generic "Invalid data provided".
func BadRequest(violations ...string) *Error {
	return &Error{Kind: KindBadRequest, Message: "Invalid data provided", Violations: violations}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

// Internal wraps an unexpected failure. The cause is kept for logging and
// never surfaces to the caller.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong", cause: cause}
}

// translate maps a storage failure onto the three user-facing kinds:
// constraint violations become bad-request, a missing record becomes
// not-found, everything else is internal.
func translate(what string, err error) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(what)
	case isConstraint(err):
		return &Error{Kind: KindBadRequest, Message: "Invalid data provided", cause: err}
	default:
		return Internal(err)
	}
}

func isConstraint(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrInvalidData) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
