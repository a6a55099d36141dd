package linkq

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned by operations that need an element when the
	// queue has none.
	ErrEmpty = errors.New("linkq: queue is empty")

	// ErrInvalidCopyTarget is the parent of every error returned by
	// CopyTo and CopyToAny.
	ErrInvalidCopyTarget = errors.New("linkq: invalid copy target")

	// ErrCopyRange is returned when a copy destination is missing, the
	// start index is outside of it, or it has too little room left.
	ErrCopyRange = &copyError{kind: "out of range"}

	// ErrCopyShape is returned by CopyToAny when the destination is not
	// a writable, one-dimensional, zero-based array of a compatible
	// element type.
	ErrCopyShape = &copyError{kind: "bad shape"}
)

type copyError struct {
	kind string
}

func (err *copyError) Error() string {
	return "linkq: copy target " + err.kind
}

func (err *copyError) Unwrap() error {
	return ErrInvalidCopyTarget
}

// setError reports an Array that refused a value. It matches both
// ErrCopyShape and the error from Set.
type setError struct {
	index int
	err   error
}

func (err *setError) Error() string {
	return ErrCopyShape.Error() + ": set index " + strconv.Itoa(err.index) + ": " + err.err.Error()
}

func (err *setError) Unwrap() []error {
	return []error{ErrCopyShape, err.err}
}

func rangeErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrCopyRange, format, args...)
}

func shapeErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrCopyShape, format, args...)
}
