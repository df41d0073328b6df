package shared

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrClosed          = errors.New("builder already closed")
	ErrUnsupported     = errors.New("unsupported operation")
	ErrExhausted       = errors.New("no more bits")
)

// IndexError reports a position argument outside the range an operation
// accepts. It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Op    string
	Index int
	Min   int
	Max   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("%v: index %d out of range [%d, %d]", err.Op, err.Index, err.Min, err.Max)
}

func (err IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// InvalidArgumentf returns an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
