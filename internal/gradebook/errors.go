package gradebook

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrNotFound      = errors.New("not found")
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidRange  = errors.New("invalid range")
)

// Error describes a failed roster operation.
type Error struct {
	Op   string // e.g. "add student"
	Kind error  // one of the Err* kinds above
	Key  string // offending identifier or value, if any
	Err  error  // underlying cause (optional)
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func newError(op string, kind error, key string) *Error {
	return &Error{Op: op, Kind: kind, Key: key}
}

// IsNotFound checks if err is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if err is a "duplicate key" error.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsValidation checks if err was caused by bad input rather than storage.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrInvalidRange)
}
