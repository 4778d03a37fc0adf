package regf

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("regf: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("regf: truncated buffer")
	// ErrCellUnresolvable indicates an offset did not resolve to a well-formed cell.
	ErrCellUnresolvable = errors.New("regf: cell not resolvable")
	// ErrNotFound indicates a requested subkey or value was missing.
	ErrNotFound = errors.New("regf: not found")
)
