// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the engine's error taxonomy. Handlers map kinds to HTTP
// status codes; bulk operations use kinds to tell per-item validation
// failures apart from structural failures.
type ErrorKind string

const (
	KindInvalidInput              ErrorKind = "INVALID_INPUT"
	KindUnsupportedServiceLevel   ErrorKind = "UNSUPPORTED_SERVICE_LEVEL"
	KindPolicyConstraintViolation ErrorKind = "POLICY_CONSTRAINT_VIOLATION"
	KindNotFound                  ErrorKind = "NOT_FOUND"
)

// Error carries the taxonomy kind and the offending field, if any.
type Error struct {
	Kind  ErrorKind
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// ErrInvalidInput reports a malformed or out-of-range input value.
func ErrInvalidInput(field, msg string) error {
	return &Error{Kind: KindInvalidInput, Field: field, Msg: msg}
}

// ErrUnsupportedServiceLevel reports a service level outside the z-score table.
func ErrUnsupportedServiceLevel(level float64) error {
	return &Error{
		Kind:  KindUnsupportedServiceLevel,
		Field: "service_level",
		Msg:   fmt.Sprintf("no z-score registered for service level %.4g", level),
	}
}

// ErrPolicyConstraint reports a broken policy ordering invariant.
func ErrPolicyConstraint(msg string) error {
	return &Error{Kind: KindPolicyConstraintViolation, Msg: msg}
}

// ErrNotFound reports an unknown id on read or update.
func ErrNotFound(entity, id string) error {
	return &Error{Kind: KindNotFound, Field: "id", Msg: fmt.Sprintf("%s %s not found", entity, id)}
}

// KindOf extracts the taxonomy kind from err, unwrapping as needed.
// Returns "" for errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsNotFound reports whether err is a NotFound taxonomy error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a per-item validation failure that a
// bulk operation should skip rather than abort on.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindInvalidInput, KindUnsupportedServiceLevel, KindPolicyConstraintViolation:
		return true
	}
	return false
}
