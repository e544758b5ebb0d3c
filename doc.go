// Package prettyfmt renders Go values as deterministic, human-readable text
// in the pretty-format grammar used by snapshot tests and failure diffs.
//
// Arrays, sparse arrays, typed arrays, binary buffers and data views all go
// through one container printer. Each prints as a label, a bracketed body
// with one indented line per element and a trailing comma on every line,
// followed by any extra properties attached to the value:
//
//	arr := prettyfmt.NewArray(1, 2, 3)
//	arr.Extra.Set("extra", "i-have-elements")
//	out, _ := prettyfmt.Format(arr, nil)
//	// Array [
//	//   1,
//	//   2,
//	//   3,
//	//   "extra": "i-have-elements",
//	// ]
//
// Holes in sparse arrays print as empty lines. Buffer and view bytes are
// never printed; only their extra properties are:
//
//	buf := &prettyfmt.ArrayBuffer{Bytes: []byte{1, 2, 3}}
//	buf.Extra.Set("extra", "i-am-a-buffer")
//	// ArrayBuffer [
//	//   "extra": "i-am-a-buffer",
//	// ]
//
// Plain Go values are dispatched by kind: slices print as Array, string
// keyed maps and structs as objects, other maps as Map. FormatJSON reads a
// stream of JSON documents and prints each one in the same grammar:
//
//	opts := &prettyfmt.Options{Indent: "  ", Palette: "none"}
//	if err := prettyfmt.FormatJSON(os.Stdout, os.Stdin, opts); err != nil {
//		log.Fatal(err)
//	}
package prettyfmt
