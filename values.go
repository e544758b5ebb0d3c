package prettyfmt

import (
	"errors"
	"fmt"
	"math/big"
)

type undefined struct{}

// Undefined prints as undefined. It is a value distinct from nil (null) and
// from a Hole.
var Undefined any = undefined{}

// Property is a keyed value attached to an object or container.
type Property struct {
	Key   string
	Value any
}

// Props is an insertion-ordered list of properties.
type Props []Property

// Get returns the value stored under key.
func (p Props) Get(key string) (any, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key in place or appends a new property.
func (p *Props) Set(key string, v any) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = v
			return
		}
	}
	*p = append(*p, Property{Key: key, Value: v})
}

// Keys returns the keys in insertion order.
func (p Props) Keys() []string {
	keys := make([]string, len(p))
	for i, prop := range p {
		keys[i] = prop.Key
	}
	return keys
}

// Array is a possibly sparse list with optional extra properties.
type Array struct {
	Elements []Slot
	Extra    Props
}

// NewArray returns a dense array holding vals.
func NewArray(vals ...any) *Array {
	return &Array{Elements: Elems(vals...)}
}

// Sparse reports whether any slot is a hole.
func (a Array) Sparse() bool {
	for _, s := range a.Elements {
		if s.hole {
			return true
		}
	}
	return false
}

func (a Array) PrintableContainer() Container {
	kind := KindArray
	if a.Sparse() {
		kind = KindSparseArray
	}
	return Container{Kind: kind, Elements: a.Elements, Extra: a.Extra}
}

// TypedArray wraps a numeric Go slice. The label follows the element type:
// []uint8 is Uint8Array (Uint8ClampedArray when Clamped), []int64 is
// BigInt64Array and so on.
type TypedArray struct {
	Data    any
	Clamped bool
	Extra   Props
}

// ErrNotTypedArray is returned for Data that is not a supported numeric slice.
var ErrNotTypedArray = errors.New("prettyfmt: unsupported typed array element type")

// Name returns the typed-array kind name, e.g. "Float32Array".
func (t TypedArray) Name() (string, error) {
	switch t.Data.(type) {
	case []int8:
		return "Int8Array", nil
	case []uint8:
		if t.Clamped {
			return "Uint8ClampedArray", nil
		}
		return "Uint8Array", nil
	case []int16:
		return "Int16Array", nil
	case []uint16:
		return "Uint16Array", nil
	case []int32:
		return "Int32Array", nil
	case []uint32:
		return "Uint32Array", nil
	case []float32:
		return "Float32Array", nil
	case []float64:
		return "Float64Array", nil
	case []int64:
		return "BigInt64Array", nil
	case []uint64:
		return "BigUint64Array", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNotTypedArray, t.Data)
	}
}

// Len returns the number of elements.
func (t TypedArray) Len() int {
	switch d := t.Data.(type) {
	case []int8:
		return len(d)
	case []uint8:
		return len(d)
	case []int16:
		return len(d)
	case []uint16:
		return len(d)
	case []int32:
		return len(d)
	case []uint32:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	case []int64:
		return len(d)
	case []uint64:
		return len(d)
	default:
		return 0
	}
}

// PrintableContainer snapshots the elements. 64-bit integer kinds become
// *big.Int so they print with the BigInt suffix. Unsupported data prints as
// an empty container labelled TypedArray.
func (t TypedArray) PrintableContainer() Container {
	name, err := t.Name()
	if err != nil {
		return Container{Kind: KindTypedArray, Extra: t.Extra}
	}
	return Container{Kind: KindTypedArray, Label: name, Elements: typedSlots(t.Data), Extra: t.Extra}
}

func typedSlots(data any) []Slot {
	switch d := data.(type) {
	case []int8:
		return slotsOf(d)
	case []uint8:
		return slotsOf(d)
	case []int16:
		return slotsOf(d)
	case []uint16:
		return slotsOf(d)
	case []int32:
		return slotsOf(d)
	case []uint32:
		return slotsOf(d)
	case []float32:
		// Printed through float64 like the element read of a Float32Array.
		slots := make([]Slot, len(d))
		for i, f := range d {
			slots[i] = Elem(float64(f))
		}
		return slots
	case []float64:
		return slotsOf(d)
	case []int64:
		slots := make([]Slot, len(d))
		for i, n := range d {
			slots[i] = Elem(new(big.Int).SetInt64(n))
		}
		return slots
	case []uint64:
		slots := make([]Slot, len(d))
		for i, n := range d {
			slots[i] = Elem(new(big.Int).SetUint64(n))
		}
		return slots
	default:
		return nil
	}
}

func slotsOf[T any](d []T) []Slot {
	slots := make([]Slot, len(d))
	for i, v := range d {
		slots[i] = Elem(v)
	}
	return slots
}

// ArrayBuffer is a raw binary buffer. Its bytes are never printed.
type ArrayBuffer struct {
	Bytes []byte
	Extra Props
}

func (b *ArrayBuffer) ByteLength() int {
	if b == nil {
		return 0
	}
	return len(b.Bytes)
}

func (b ArrayBuffer) PrintableContainer() Container {
	return Container{Kind: KindArrayBuffer, Extra: b.Extra}
}

// ErrViewOutOfRange is returned when a DataView window exceeds its buffer.
var ErrViewOutOfRange = errors.New("prettyfmt: data view window out of range")

// DataView is a byte window over an ArrayBuffer. Its bytes are never printed.
type DataView struct {
	Buffer     *ArrayBuffer
	ByteOffset int
	ByteLength int
	Extra      Props
}

// NewDataView returns a view of length bytes at offset. A negative length
// extends the view to the end of the buffer.
func NewDataView(buf *ArrayBuffer, offset, length int) (*DataView, error) {
	size := buf.ByteLength()
	if offset < 0 || offset > size {
		return nil, fmt.Errorf("%w: offset %d, buffer length %d", ErrViewOutOfRange, offset, size)
	}
	if length < 0 {
		length = size - offset
	}
	if offset+length > size {
		return nil, fmt.Errorf("%w: offset %d + length %d > buffer length %d", ErrViewOutOfRange, offset, length, size)
	}
	return &DataView{Buffer: buf, ByteOffset: offset, ByteLength: length}, nil
}

// Bytes returns the viewed window.
func (d *DataView) Bytes() []byte {
	if d.Buffer == nil {
		return nil
	}
	return d.Buffer.Bytes[d.ByteOffset : d.ByteOffset+d.ByteLength]
}

func (d DataView) PrintableContainer() Container {
	return Container{Kind: KindDataView, Extra: d.Extra}
}

// Object is a named, insertion-ordered record.
type Object struct {
	// Name is the constructor name shown before the braces. Empty is "Object".
	Name  string
	Props Props
}

// NewObject returns an Object named "Object" holding props.
func NewObject(props ...Property) *Object {
	return &Object{Props: props}
}

func (o *Object) name() string {
	if o.Name == "" {
		return "Object"
	}
	return o.Name
}
