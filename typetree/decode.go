package typetree

import (
	"reflect"

	"github.com/scigolib/unitytype/internal/errs"
	"github.com/scigolib/unitytype/internal/utils"
	"github.com/scigolib/unitytype/reader"
)

// decoder drives the walk over a flattened, pre-order type tree. It owns
// no heap state beyond the node-index cursor; the node slice and reader
// are both borrowed for the decode's duration.
type decoder struct {
	nodes []Node
	i     int
	r     *reader.Reader
}

// Decode walks nodes, reading from r, and returns a freshly populated T.
// T may be a struct, a map, a slice/array, a pointer to any of those, or
// any of Go's primitive kinds plus string, []byte and any (interface{}).
func Decode[T any](nodes []Node, r *reader.Reader) (T, error) {
	var out T
	d := &decoder{nodes: nodes, r: r}
	v := reflect.ValueOf(&out).Elem()
	if err := d.decodeAt(v); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (d *decoder) currentNode() (Node, error) {
	if d.i < 0 || d.i >= len(d.nodes) {
		return Node{}, ErrNodeEOF
	}
	return d.nodes[d.i], nil
}

// decodeAt decodes exactly one node's value (and, for containers, its
// entire subtree) into v, dereferencing pointers as needed. On return,
// d.i points at the LAST node consumed by this call — callers iterating
// siblings (records, array elements) must advance d.i by 1 themselves.
func (d *decoder) decodeAt(v reflect.Value) error {
	for v.IsValid() && v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	startI := d.i
	n, err := d.currentNode()
	if err != nil {
		return err
	}
	align := n.Aligned()

	var derr error
	switch {
	case classifyScalar(n.Type) != notScalar:
		derr = d.decodeScalar(n.Type, v)

	case n.Type == "string":
		derr = d.decodeString(v)
		d.i = startI + 2

	case n.Type == "TypelessData":
		derr = d.decodeTypelessData(v)
		d.i = startI + 1

	case n.Type == "map":
		derr = d.decodeMap(startI, &align, v)

	case startI+1 < len(d.nodes) && d.nodes[startI+1].Type == "Array":
		derr = d.decodeArray(startI, &align, v)

	default:
		derr = d.decodeRecord(startI, v)
	}
	if derr != nil {
		return derr
	}

	if align {
		if err := d.r.Align(4); err != nil {
			return errs.Wrap("post-node alignment", err)
		}
	}
	return nil
}

func (d *decoder) decodeScalar(typeTag string, v reflect.Value) error {
	var val any
	var err error

	switch classifyScalar(typeTag) {
	case kindI8:
		val, err = d.r.ReadI8()
	case kindU8:
		val, err = d.r.ReadU8()
	case kindI16:
		val, err = d.r.ReadI16()
	case kindU16:
		val, err = d.r.ReadU16()
	case kindI32:
		val, err = d.r.ReadI32()
	case kindU32:
		val, err = d.r.ReadU32()
	case kindI64:
		val, err = d.r.ReadI64()
	case kindU64:
		val, err = d.r.ReadU64()
	case kindF32:
		val, err = d.r.ReadF32()
	case kindF64:
		val, err = d.r.ReadF64()
	case kindBool:
		val, err = d.r.ReadBool()
	default:
		return customErrorf("unrecognized scalar type %q", typeTag)
	}
	if err != nil {
		return errs.Wrap("read scalar "+typeTag, err)
	}
	return assignValue(v, val)
}

func (d *decoder) decodeString(v reflect.Value) error {
	s, err := d.r.ReadAlignedString()
	if err != nil {
		return errs.Wrap("read string", err)
	}
	return assignValue(v, s)
}

func (d *decoder) decodeTypelessData(v reflect.Value) error {
	l, err := d.r.ReadI32()
	if err != nil {
		return errs.Wrap("read TypelessData length", err)
	}
	if l < 0 {
		return customErrorf("TypelessData declared negative length %d", l)
	}
	if err := utils.ValidateBufferSize(uint64(l), utils.MaxByteBufSize, "TypelessData"); err != nil {
		return errs.Wrap("read TypelessData", err)
	}
	b, err := d.r.ReadBytes(int(l))
	if err != nil {
		return errs.Wrap("read TypelessData bytes", err)
	}
	return assignValue(v, b)
}
