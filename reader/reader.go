// Package reader provides a sequential cursor over a borrowed byte slice,
// used by the type-tree decoder to read primitive values in a configurable
// byte order. Primitive reads do not allocate; byte-list and string reads
// return freshly allocated copies.
package reader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/scigolib/unitytype/internal/errs"
	"github.com/scigolib/unitytype/internal/utils"
)

// ErrEOF is returned whenever a read or alignment would cross the end of
// the underlying buffer. It corresponds to the "BufEof" error kind.
var ErrEOF = errors.New("reader: buffer exhausted")

// ErrInvalidUTF8 is returned by ReadAlignedString when the declared byte
// span does not contain valid UTF-8.
var ErrInvalidUTF8 = errors.New("reader: invalid utf-8 in aligned string")

// Reader is a sequential cursor over a borrowed byte slice. It never copies
// or mutates the slice it was constructed with; reads that must outlive the
// borrow (ReadBytes, ReadAlignedString) allocate a fresh copy on return.
type Reader struct {
	data  []byte
	order binary.ByteOrder
	pos   int
}

// New constructs a Reader over data using the given byte order. The slice
// is borrowed for the lifetime of the Reader; callers must not mutate it
// concurrently with decoding.
func New(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{data: data, order: order}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int { return r.pos }

// Len returns the total length of the borrowed buffer.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// ByteOrder returns the reader's configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder { return r.order }

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadI8 reads a signed 8-bit integer.
func (r *Reader) ReadI8() (int8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI16 reads a signed 16-bit integer in the reader's byte order.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU16 reads an unsigned 16-bit integer in the reader's byte order.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadI32 reads a signed 32-bit integer in the reader's byte order.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU32 reads an unsigned 32-bit integer in the reader's byte order.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadI64 reads a signed 64-bit integer in the reader's byte order.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadU64 reads an unsigned 64-bit integer in the reader's byte order.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// ReadF32 reads an IEEE-754 single-precision float in the reader's byte order.
func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadF64 reads an IEEE-754 double-precision float in the reader's byte order.
func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadBool reads one byte; any non-zero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadBytes reads n bytes into a freshly allocated, owned slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrEOF, n)
	}
	if err := utils.ValidateBufferSize(uint64(n), utils.MaxByteBufSize, "byte list"); err != nil {
		return nil, errs.Wrap("read byte list", err)
	}
	b, err := r.take(n)
	if err != nil {
		return nil, errs.Wrap("read byte list", err)
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadAlignedString reads a 4-byte length L, then L bytes of UTF-8, then
// aligns the cursor to a 4-byte boundary.
func (r *Reader) ReadAlignedString() (string, error) {
	l, err := r.ReadU32()
	if err != nil {
		return "", errs.Wrap("read aligned string length", err)
	}
	if err := utils.ValidateBufferSize(uint64(l), utils.MaxStringSize, "aligned string"); err != nil {
		return "", errs.Wrap("read aligned string", err)
	}
	b, err := r.take(int(l))
	if err != nil {
		return "", errs.Wrap("read aligned string bytes", err)
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	s := string(b)
	if err := r.Align(4); err != nil {
		return "", err
	}
	return s, nil
}

// Align advances the cursor to the next multiple of k, failing with ErrEOF
// if the aligned position would exceed the buffer length.
func (r *Reader) Align(k int) error {
	rem := r.pos % k
	if rem == 0 {
		return nil
	}
	pad := k - rem
	if r.pos+pad > len(r.data) {
		return ErrEOF
	}
	r.pos += pad
	return nil
}
