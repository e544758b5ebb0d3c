package prettyfmt

import "fmt"

// Kind identifies the variant of a Container.
type Kind uint8

const (
	KindArray Kind = iota
	KindSparseArray
	KindTypedArray
	KindArrayBuffer
	KindDataView
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "Array"
	case KindSparseArray:
		return "SparseArray"
	case KindTypedArray:
		return "TypedArray"
	case KindArrayBuffer:
		return "ArrayBuffer"
	case KindDataView:
		return "DataView"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// containerPolicy decides what a container variant shows.
type containerPolicy struct {
	// elements reports whether indexed contents are printed. Binary buffers
	// and views never print their bytes.
	elements bool
	// label is used when Container.Label is empty. TypedArray has none: its
	// label is the concrete element kind and must be supplied.
	label string
}

var containerPolicies = [kindCount]containerPolicy{
	KindArray:       {elements: true, label: "Array"},
	KindSparseArray: {elements: true, label: "Array"},
	KindTypedArray:  {elements: true, label: "TypedArray"},
	KindArrayBuffer: {elements: false, label: "ArrayBuffer"},
	KindDataView:    {elements: false, label: "DataView"},
}

func (k Kind) policy() containerPolicy {
	if k >= kindCount {
		panic(fmt.Sprintf("prettyfmt: no container policy for %v", k))
	}
	return containerPolicies[k]
}

// Slot is one indexed position of a container: a present value or a hole.
type Slot struct {
	value any
	hole  bool
}

// Hole is a missing index of a sparse array. It is distinct from nil and
// Undefined.
var Hole = Slot{hole: true}

// Elem returns a present slot holding v.
func Elem(v any) Slot {
	return Slot{value: v}
}

// Elems wraps every value in a present slot.
func Elems(vals ...any) []Slot {
	slots := make([]Slot, len(vals))
	for i, v := range vals {
		slots[i] = Slot{value: v}
	}
	return slots
}

func (s Slot) IsHole() bool { return s.hole }

// Value returns the stored value, or nil for a hole.
func (s Slot) Value() any { return s.value }

// Container is a read-only snapshot of an array-like or binary value taken
// for a single print call.
type Container struct {
	Kind Kind
	// Label is the displayed type name. Empty selects the kind's default.
	Label    string
	Elements []Slot
	Extra    Props
}

func (c Container) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Kind.policy().label
}

// elements applies the kind's policy; binary kinds never expose contents
// whatever the snapshot carries.
func (c Container) elements() []Slot {
	if !c.Kind.policy().elements {
		return nil
	}
	return c.Elements
}

// PrintableContainer lets a snapshot be nested inside other values.
func (c Container) PrintableContainer() Container { return c }

// Empty reports whether the container renders with no body.
func (c Container) Empty() bool {
	return len(c.elements()) == 0 && len(c.Extra) == 0
}

// Containerizer is implemented by values that print as a Container.
type Containerizer interface {
	PrintableContainer() Container
}

// PrintContainer renders c with default options. printInner renders element
// and property values; multi-line results are shifted one level deeper.
//
//	Array [
//	  1,
//	  ,
//	  "extra": "note",
//	]
func PrintContainer(c Container, printInner func(any) string) string {
	return newPlainPrinter(DefaultOptions).printContainer(c, printInner)
}

func (p *printer) printContainer(c Container, printInner func(any) string) string {
	elems := c.elements()
	lines := make([]string, 0, len(elems)+len(c.Extra))
	for i, slot := range elems {
		if p.opts.MaxWidth > 0 && i == p.opts.MaxWidth {
			lines = append(lines, p.style(p.pal.Punctuation, "…"))
			break
		}
		if slot.hole {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, printInner(slot.value))
	}
	for _, prop := range c.Extra {
		lines = append(lines, p.printKey(prop.Key)+p.style(p.pal.Punctuation, ":")+" "+printInner(prop.Value))
	}
	return p.layout.Block(p.head(c.label(), "Array"), p.style(p.pal.Brackets, "["), p.style(p.pal.Brackets, "]"), lines)
}
