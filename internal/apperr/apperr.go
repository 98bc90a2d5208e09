// Package apperr defines the error kinds shared by the products and inventory
// services. Kinds classify failures independently of any transport; mapping a
// kind to an HTTP status belongs to the handler layer.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	NotFound
	InvalidInput
	Unauthorized
	ProductUnavailable
	ProductVerificationFailed
	PersistenceError
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case InvalidInput:
		return "invalid_input"
	case Unauthorized:
		return "unauthorized"
	case ProductUnavailable:
		return "product_unavailable"
	case ProductVerificationFailed:
		return "product_verification_failed"
	case PersistenceError:
		return "persistence_error"
	default:
		return "unknown"
	}
}

// Error carries a kind, the operation that failed, and the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with a static message.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds an Error around an underlying cause.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the kind from err, walking the wrap chain. Errors that are
// not *Error report Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
