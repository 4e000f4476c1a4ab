package typetree

import (
	"encoding/binary"

	"github.com/scigolib/unitytype/reader"
)

// ReadAs decodes data against nodes in a single call, for callers that
// already hold an object's raw payload and have no other use for a
// standalone *reader.Reader.
func ReadAs[T any](nodes []Node, data []byte, order binary.ByteOrder) (T, error) {
	r := reader.New(data, order)
	return Decode[T](nodes, r)
}
