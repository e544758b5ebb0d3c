package prettyfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"time"

	"pkt.systems/prettyfmt/internal/layout"
)

// MaxNestedJSONDepth controls how deep FormatJSON recursively decodes JSON
// that appears inside string values when Options.Unwrap is set. Values <= 0
// unwrap one level.
var MaxNestedJSONDepth = 10

// Options controls formatting.
type Options struct {
	// Indent is written once per nesting level. Default two spaces.
	Indent string
	// Min prints every value on one line, drops type labels and trailing
	// commas.
	Min bool
	// MaxDepth collapses collections nested deeper than this to [Label].
	// Zero or less means unlimited.
	MaxDepth int
	// MaxWidth limits the elements printed per container; the rest is
	// replaced by a single … line. Zero or less means unlimited.
	MaxWidth int
	// SortKeys sorts Object properties. Go maps are always sorted and
	// container extra properties always keep insertion order.
	SortKeys bool
	// NoEscapeString leaves double quotes and backslashes in strings as-is.
	NoEscapeString bool
	// HideBasicPrototype omits the Array and Object labels.
	HideBasicPrototype bool
	// Unwrap decodes JSON-looking strings in FormatJSON input.
	Unwrap bool
	// Palette selects a colour palette by name. "none" disables colour.
	Palette string
	// ForceColor colours output even when the writer is not a terminal.
	ForceColor bool
	// Plugins are consulted in order before any built-in printer.
	Plugins []Plugin
}

// DefaultOptions holds the fallback configuration.
var DefaultOptions = &Options{Indent: "  "}

// Plugin prints values it recognises. printInner renders nested values with
// the current options and depth.
type Plugin interface {
	Test(v any) bool
	Print(v any, printInner func(any) string) string
}

// Format renders v. Output is never coloured unless opts.ForceColor is set.
// The only error is an unknown palette name.
func Format(v any, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	p, err := newPrinter(opts, opts.ForceColor)
	if err != nil {
		return "", err
	}
	return p.print(v, 0), nil
}

// FormatTo writes v followed by a newline. Colours are used when w is a
// terminal or opts.ForceColor is set.
func FormatTo(w io.Writer, v any, opts *Options) error {
	p, err := newPrinter(opts, shouldColor(w, opts))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, p.print(v, 0)); err != nil {
		return err
	}
	return writeNewline(w)
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}

type refKey struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

type printer struct {
	opts   Options
	pal    ColorPalette
	layout layout.Config
	// refs holds the collections currently being printed.
	refs []refKey
}

func newPrinter(opts *Options, enableColor bool) (*printer, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := resolvePalette(opts, enableColor)
	if err != nil {
		return nil, err
	}
	p := newPlainPrinter(opts)
	p.pal = pal
	p.layout.Comma = p.style(pal.Punctuation, ",")
	return p, nil
}

func newPlainPrinter(opts *Options) *printer {
	if opts == nil {
		opts = DefaultOptions
	}
	return &printer{
		opts:   *opts,
		layout: layout.Config{Indent: opts.Indent, Min: opts.Min},
	}
}

func (p *printer) style(seq, s string) string {
	return style(seq, s)
}

func (p *printer) quote(s string) string {
	if !p.opts.NoEscapeString {
		s = stringEscaper.Replace(s)
	}
	return `"` + s + `"`
}

func (p *printer) printKey(key string) string {
	return p.style(p.pal.Key, p.quote(key))
}

// head returns the label prefix of a block, or nothing in min mode and for
// hidden basic labels.
func (p *printer) head(label, basic string) string {
	if p.opts.Min || (p.opts.HideBasicPrototype && label == basic) {
		return ""
	}
	return p.style(p.pal.Label, label) + " "
}

func (p *printer) collapsed(label string) string {
	return "[" + p.style(p.pal.Label, label) + "]"
}

func (p *printer) inner(depth int) func(any) string {
	return func(v any) string {
		return p.print(v, depth)
	}
}

// print renders v found inside depth enclosing collections.
func (p *printer) print(v any, depth int) string {
	if v == nil {
		return p.style(p.pal.Null, "null")
	}
	for _, plugin := range p.opts.Plugins {
		if plugin.Test(v) {
			return plugin.Print(v, p.inner(depth))
		}
	}
	switch x := v.(type) {
	case undefined:
		return p.style(p.pal.Null, "undefined")
	case string:
		return p.style(p.pal.String, p.quote(x))
	case bool:
		return p.style(p.pal.Bool, strconv.FormatBool(x))
	case float64:
		return p.style(p.pal.Number, formatNumber(x))
	case int:
		return p.style(p.pal.Number, strconv.Itoa(x))
	case json.Number:
		return p.style(p.pal.Number, formatJSONNumber(x))
	case *big.Int:
		if x == nil {
			return p.style(p.pal.Null, "null")
		}
		return p.style(p.pal.Number, x.String()+"n")
	case time.Time:
		return p.style(p.pal.String, formatTime(x))
	}
	return p.printReflect(v, reflect.ValueOf(v), depth)
}

func (p *printer) printReflect(v any, rv reflect.Value, depth int) string {
	switch rv.Kind() {
	case reflect.Bool:
		return p.style(p.pal.Bool, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.style(p.pal.Number, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return p.style(p.pal.Number, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		return p.style(p.pal.Number, formatNumber(float64(float32(rv.Float()))))
	case reflect.Float64:
		return p.style(p.pal.Number, formatNumber(rv.Float()))
	case reflect.String:
		return p.style(p.pal.String, p.quote(rv.String()))
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return p.style(p.pal.Null, "null")
		}
	}
	if rv.Kind() == reflect.Func {
		return "[Function " + funcName(rv) + "]"
	}

	if key, ok := refOf(rv); ok {
		for _, seen := range p.refs {
			if seen == key {
				return "[Circular]"
			}
		}
		p.refs = append(p.refs, key)
		defer func() { p.refs = p.refs[:len(p.refs)-1] }()
	}
	return p.printComplex(v, rv, depth)
}

func refOf(rv reflect.Value) (refKey, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return refKey{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return refKey{}, false
		}
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}, true
	default:
		return refKey{}, false
	}
}

func (p *printer) printComplex(v any, rv reflect.Value, depth int) string {
	depth++
	hitMax := p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth

	switch x := v.(type) {
	case Containerizer:
		c := x.PrintableContainer()
		if hitMax {
			return p.collapsed(c.label())
		}
		return p.printContainer(c, p.inner(depth))
	case *Object:
		if hitMax {
			return p.collapsed(x.name())
		}
		props := x.Props
		if p.opts.SortKeys {
			props = sortedProps(props)
		}
		return p.printObject(x.name(), props, depth)
	case error:
		return "[Error: " + x.Error() + "]"
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return p.print(rv.Elem().Interface(), depth-1)
	case reflect.Slice, reflect.Array:
		if hitMax {
			return p.collapsed("Array")
		}
		slots := make([]Slot, rv.Len())
		for i := range slots {
			slots[i] = Elem(rv.Index(i).Interface())
		}
		return p.printContainer(Container{Kind: KindArray, Elements: slots}, p.inner(depth))
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			if hitMax {
				return p.collapsed("Object")
			}
			return p.printObject("Object", stringMapProps(rv), depth)
		}
		if hitMax {
			return p.collapsed("Map")
		}
		return p.printMap(rv, depth)
	case reflect.Struct:
		name := rv.Type().Name()
		if name == "" {
			name = "Object"
		}
		if hitMax {
			return p.collapsed(name)
		}
		return p.printObject(name, structProps(rv), depth)
	case reflect.Chan:
		return "[" + rv.Type().String() + "]"
	default:
		return fmt.Sprint(v)
	}
}

func (p *printer) printObject(name string, props Props, depth int) string {
	printInner := p.inner(depth)
	lines := make([]string, len(props))
	for i, prop := range props {
		lines[i] = p.printKey(prop.Key) + p.style(p.pal.Punctuation, ":") + " " + printInner(prop.Value)
	}
	return p.layout.Block(p.head(name, "Object"), p.style(p.pal.Brackets, "{"), p.style(p.pal.Brackets, "}"), lines)
}

func (p *printer) printMap(rv reflect.Value, depth int) string {
	printInner := p.inner(depth)
	type entry struct {
		key, line string
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := printInner(iter.Key().Interface())
		entries = append(entries, entry{
			key:  key,
			line: key + " " + p.style(p.pal.Punctuation, "=>") + " " + printInner(iter.Value().Interface()),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.line
	}
	return p.layout.Block(p.head("Map", ""), p.style(p.pal.Brackets, "{"), p.style(p.pal.Brackets, "}"), lines)
}

func sortedProps(props Props) Props {
	sorted := make(Props, len(props))
	copy(sorted, props)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return sorted
}

func stringMapProps(rv reflect.Value) Props {
	props := make(Props, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		props = append(props, Property{Key: iter.Key().String(), Value: iter.Value().Interface()})
	}
	sort.Slice(props, func(i, j int) bool { return props[i].Key < props[j].Key })
	return props
}

// structProps lists exported fields in declaration order.
func structProps(rv reflect.Value) Props {
	t := rv.Type()
	props := make(Props, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		props = append(props, Property{Key: field.Name, Value: rv.Field(i).Interface()})
	}
	return props
}
