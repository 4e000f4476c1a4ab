package typetree

import (
	"errors"
	"fmt"
)

// ErrNodeEOF is returned when the node cursor advances past the end of the
// node list during a record or container walk. It indicates a malformed
// type tree, or a decoder/tree mismatch, never a truncated byte buffer.
var ErrNodeEOF = errors.New("typetree: node list exhausted")

// CustomError reports that the target value could not accept a decoded
// value (the receiver-rejection error kind). It carries a human-readable
// message, e.g. a type mismatch between the node's payload and the target
// Go type.
type CustomError struct {
	Msg string
}

// Error implements the error interface.
func (e *CustomError) Error() string { return e.Msg }

func customErrorf(format string, args ...any) error {
	return &CustomError{Msg: fmt.Sprintf(format, args...)}
}
