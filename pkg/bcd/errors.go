// Package bcd implements the in-memory Boot Configuration Data model — a
// bounded store of GUID-identified objects, each carrying a bounded,
// ordered set of typed elements — and the load/save mapping between that
// model and a regf hive buffer.
package bcd

import (
	"errors"
	"fmt"
)

// ErrKind classifies a bcd.Error.
type ErrKind int

const (
	// KindInvalidArg marks null or out-of-range input, or a buffer too small.
	KindInvalidArg ErrKind = iota
	// KindNotFound marks an id or element type missing from a store or object.
	KindNotFound
	// KindCapacity marks a bounded array at capacity.
	KindCapacity
	// KindParse marks a malformed GUID, hive header, or cell.
	KindParse
	// KindIo marks a writer allocation failure or adapter filesystem failure.
	KindIo
)

func (k ErrKind) String() string {
	switch k {
	case KindInvalidArg:
		return "InvalidArg"
	case KindNotFound:
		return "NotFound"
	case KindCapacity:
		return "Capacity"
	case KindParse:
		return "Parse"
	case KindIo:
		return "Io"
	default:
		return "Unknown"
	}
}

// Error is the single error type every exported bcd operation returns.
type Error struct {
	Kind ErrKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bcd: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("bcd: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind ErrKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Sentinel values for errors.Is checks against a Kind regardless of Op/Err.
var (
	ErrInvalidArg = &Error{Kind: KindInvalidArg}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrCapacity   = &Error{Kind: KindCapacity}
	ErrParse      = &Error{Kind: KindParse}
	ErrIo         = &Error{Kind: KindIo}
)

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, bcd.ErrNotFound) works regardless of Op/Err payload.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}
