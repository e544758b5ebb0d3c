package prettyfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustDataView(t *testing.T, buf *ArrayBuffer, offset, length int) *DataView {
	t.Helper()
	view, err := NewDataView(buf, offset, length)
	if err != nil {
		t.Fatalf("NewDataView failed: %v", err)
	}
	return view
}

// int32Buffer mirrors Int32Array.of(-2, -1, 0, 1, 2).buffer.
func int32Buffer() *ArrayBuffer {
	return &ArrayBuffer{Bytes: []byte{
		0xfe, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}}
}

func TestListsWithExtraProps(t *testing.T) {
	buf := int32Buffer()
	buf.Extra = extraProps("extra", "i-am-a-buffer")

	view := mustDataView(t, int32Buffer(), 1, 3)
	view.Extra = extraProps("extra", "i-am-a-view")

	cases := []struct {
		name string
		val  any
		want string
	}{
		{
			name: "empty array",
			val:  &Array{Extra: extraProps("extra", "i-am-empty")},
			want: "Array [\n  \"extra\": \"i-am-empty\",\n]",
		},
		{
			name: "array with items",
			val:  &Array{Elements: Elems(1, 2, 3), Extra: extraProps("extra", "i-have-elements")},
			want: "Array [\n  1,\n  2,\n  3,\n  \"extra\": \"i-have-elements\",\n]",
		},
		{
			name: "sparse array",
			val:  &Array{Elements: []Slot{Elem(1), Hole, Hole, Elem(4)}, Extra: extraProps("extra", "i-am-sparse")},
			want: "Array [\n  1,\n  ,\n  ,\n  4,\n  \"extra\": \"i-am-sparse\",\n]",
		},
		{
			name: "typed array",
			val:  TypedArray{Data: []uint8{1, 2, 3}, Extra: extraProps("extra", "i-am-typed")},
			want: "Uint8Array [\n  1,\n  2,\n  3,\n  \"extra\": \"i-am-typed\",\n]",
		},
		{
			name: "array buffer",
			val:  buf,
			want: "ArrayBuffer [\n  \"extra\": \"i-am-a-buffer\",\n]",
		},
		{
			name: "data view",
			val:  view,
			want: "DataView [\n  \"extra\": \"i-am-a-view\",\n]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(tc.val, nil)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", tc.want, got)
			}

			c := tc.val.(Containerizer).PrintableContainer()
			direct := PrintContainer(c, func(v any) string {
				s, _ := Format(v, nil)
				return s
			})
			if direct != tc.want {
				t.Fatalf("PrintContainer disagrees with Format\nexpected:\n%q\nactual:\n%q", tc.want, direct)
			}
		})
	}
}

func TestPrintContainerEmptyCollapses(t *testing.T) {
	cases := []Container{
		{Kind: KindArray},
		{Kind: KindSparseArray},
		{Kind: KindTypedArray, Label: "Float64Array"},
		{Kind: KindArrayBuffer},
		{Kind: KindDataView},
	}
	wants := []string{"Array []", "Array []", "Float64Array []", "ArrayBuffer []", "DataView []"}
	for i, c := range cases {
		got := PrintContainer(c, func(any) string {
			t.Fatalf("printInner must not be called for an empty container")
			return ""
		})
		if got != wants[i] {
			t.Fatalf("expected %q, got %q", wants[i], got)
		}
		if !c.Empty() {
			t.Fatalf("expected %v container to report empty", c.Kind)
		}
	}
}

func TestPrintContainerBinaryKindsDropElements(t *testing.T) {
	for _, kind := range []Kind{KindArrayBuffer, KindDataView} {
		c := Container{Kind: kind, Elements: Elems(1, 2, 3)}
		calls := 0
		got := PrintContainer(c, func(any) string {
			calls++
			return "x"
		})
		want := kind.String() + " []"
		if got != want || calls != 0 {
			t.Fatalf("expected %q with no inner calls, got %q after %d calls", want, got, calls)
		}
		if !c.Empty() {
			t.Fatalf("expected %v with only elements to be empty", kind)
		}
	}
}

func TestPrintContainerOpaqueInner(t *testing.T) {
	c := Container{
		Kind:     KindArray,
		Elements: []Slot{Elem("a"), Hole, Elem("b")},
		Extra:    Props{{Key: "z", Value: 1}, {Key: "a", Value: 2}},
	}
	got := PrintContainer(c, func(v any) string {
		switch x := v.(type) {
		case string:
			return "<" + x + ">"
		case int:
			return strings.Repeat("#", x)
		}
		return "?"
	})
	want := "Array [\n  <a>,\n  ,\n  <b>,\n  \"z\": #,\n  \"a\": ##,\n]"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestPrintContainerReindentsNested(t *testing.T) {
	inner := Container{Kind: KindTypedArray, Label: "Int8Array", Elements: Elems(int8(-1))}
	outer := &Array{
		Elements: []Slot{Elem(inner), Hole},
		Extra:    extraProps("nested", &Array{Extra: extraProps("deep", true)}),
	}
	got, err := Format(outer, nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := strings.Join([]string{
		"Array [",
		"  Int8Array [",
		"    -1,",
		"  ],",
		"  ,",
		"  \"nested\": Array [",
		"    \"deep\": true,",
		"  ],",
		"]",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestExtraPropertyKeysAreQuoted(t *testing.T) {
	arr := &Array{Extra: Props{
		{Key: "not an identifier", Value: 1},
		{Key: `quo"te`, Value: 2},
		{Key: "", Value: 3},
	}}
	got, err := Format(arr, nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "Array [\n  \"not an identifier\": 1,\n  \"quo\\\"te\": 2,\n  \"\": 3,\n]"
	if got != want {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", want, got)
	}
}

func TestHoleIsNotNullOrUndefined(t *testing.T) {
	arr := &Array{Elements: []Slot{Hole, Elem(nil), Elem(Undefined)}}
	got, err := Format(arr, nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "Array [\n  ,\n  null,\n  undefined,\n]"
	if got != want {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", want, got)
	}
}

func TestContainerPolicyTableIsExhaustive(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		pol := k.policy()
		if pol.label == "" {
			t.Fatalf("kind %v has no default label", k)
		}
		wantElements := k != KindArrayBuffer && k != KindDataView
		if pol.elements != wantElements {
			t.Fatalf("kind %v: expected elements=%v", k, wantElements)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a kind without policy")
		}
	}()
	kindCount.policy()
}

func TestArrayKindFollowsHoles(t *testing.T) {
	dense := NewArray(1, 2)
	if got := dense.PrintableContainer().Kind; got != KindArray {
		t.Fatalf("expected KindArray, got %v", got)
	}
	sparse := &Array{Elements: []Slot{Elem(1), Hole}}
	if got := sparse.PrintableContainer().Kind; got != KindSparseArray {
		t.Fatalf("expected KindSparseArray, got %v", got)
	}
}
