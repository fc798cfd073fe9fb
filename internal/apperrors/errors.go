// Package apperrors defines the catalog's domain error taxonomy and the
// translation of storage-engine failures into it. Callers above the
// repository layer never see raw gorm or driver error shapes.
package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError reports that no product matched a lookup term. Term keeps
// the caller-supplied value for diagnostics.
type NotFoundError struct {
	Term string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with %q not found", e.Term)
}

// UniqueViolationError is a client-correctable constraint failure, in
// practice a duplicate slug. Detail carries the storage engine's message.
type UniqueViolationError struct {
	Detail string
}

func (e *UniqueViolationError) Error() string {
	return e.Detail
}

// InternalError wraps any other storage failure behind an opaque message.
// The cause stays attached for server-side logging, never for callers.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("unexpected error during %s, check server logs", e.Op)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Translate maps a storage failure to the domain taxonomy. Every error
// leaving the repository layer passes through here exactly once; op names
// the failed operation for the InternalError fallback.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &UniqueViolationError{Detail: err.Error()}
	}
	return &InternalError{Op: op, Err: err}
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUniqueViolation reports whether err is a UniqueViolationError.
func IsUniqueViolation(err error) bool {
	var target *UniqueViolationError
	return errors.As(err, &target)
}
