package typetree

import (
	"reflect"

	"github.com/scigolib/unitytype/internal/errs"
	"github.com/scigolib/unitytype/internal/utils"
)

// decodeArray handles a record whose first child is an "Array" node:
// element-count header followed by the element template subtree, repeated
// once per element.
func (d *decoder) decodeArray(startI int, align *bool, v reflect.Value) error {
	arrayNode := d.nodes[startI+1]
	if arrayNode.Aligned() {
		*align = true
	}

	span := SubtreeLen(d.nodes, startI)
	templateStart := startI + 3
	endOffset := startI + span - 1

	n, err := d.r.ReadI32()
	if err != nil {
		return errs.Wrap("read array element count", err)
	}
	if n < 0 {
		return customErrorf("array declared negative element count %d", n)
	}
	count := int(n)
	if err := utils.ValidateBufferSize(uint64(count), utils.MaxContainerElements, "array element count"); err != nil {
		return errs.Wrap("read array", err)
	}

	target := newSeqTarget(v, count)
	for idx := 0; idx < count; idx++ {
		d.i = templateStart
		elemV := target.element(idx)
		if err := d.decodeAt(elemV); err != nil {
			return err
		}
	}
	d.i = endOffset
	target.finish(v)
	return nil
}

// decodeMap handles a "map" node. Layout: map, Array, size, pair(record),
// first(key)...key-subtree..., second(value)...value-subtree... — an
// element-count header followed by one key/value template pair, repeated
// once per entry.
func (d *decoder) decodeMap(startI int, align *bool, v reflect.Value) error {
	if startI+1 < len(d.nodes) && d.nodes[startI+1].Aligned() {
		*align = true
	}

	span := SubtreeLen(d.nodes, startI)
	endOffset := startI + span - 1
	keyStart := startI + 4
	valueStart := keyStart + SubtreeLen(d.nodes, keyStart)

	// The node cursor jumps straight to the end of this node's subtree
	// before the element count is read; once every key/value pair below has
	// been decoded it is set back there.
	d.i = endOffset

	n, err := d.r.ReadI32()
	if err != nil {
		return errs.Wrap("read map entry count", err)
	}
	if n < 0 {
		return customErrorf("map declared negative entry count %d", n)
	}
	count := int(n)
	if err := utils.ValidateBufferSize(uint64(count), utils.MaxContainerElements, "map entry count"); err != nil {
		return errs.Wrap("read map", err)
	}

	target := newMapTarget(v, count)
	for idx := 0; idx < count; idx++ {
		d.i = keyStart
		keyV := target.newKey()
		if err := d.decodeAt(keyV); err != nil {
			return err
		}

		d.i = valueStart
		valV := target.newValue()
		if err := d.decodeAt(valV); err != nil {
			return err
		}

		target.set(keyV, valV)
	}
	d.i = endOffset
	target.finish(v)
	return nil
}

// decodeRecord handles a user-defined record with no Array child: each
// child node's Name becomes a key, decoded by recursive dispatch. An
// empty subtree (no children) decodes to a zero-field record rather than
// an error.
func (d *decoder) decodeRecord(startI int, v reflect.Value) error {
	span := SubtreeLen(d.nodes, startI)
	end := startI + span - 1 // inclusive index of this subtree's last node

	target := newRecordTarget(v)
	d.i = startI + 1
	for {
		if d.i >= len(d.nodes) || d.i > end {
			break
		}
		name := d.nodes[d.i].Name
		fieldV := target.field(name)
		if err := d.decodeAt(fieldV); err != nil {
			return err
		}
		if d.i >= len(d.nodes) || d.i >= end {
			break
		}
		d.i++
	}
	d.i = end
	target.finish(v)
	return nil
}
