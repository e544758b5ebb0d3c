package prettyfmt

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestPropsSetKeepsInsertionOrder(t *testing.T) {
	var p Props
	p.Set("b", 1)
	p.Set("a", 2)
	p.Set("b", 3)
	if got := p.Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("unexpected keys %v", got)
	}
	if v, ok := p.Get("b"); !ok || v != 3 {
		t.Fatalf("expected b=3, got %v (%v)", v, ok)
	}
	if _, ok := p.Get("missing"); ok {
		t.Fatalf("expected missing key")
	}
}

func TestNewDataViewWindow(t *testing.T) {
	buf := &ArrayBuffer{Bytes: []byte{1, 2, 3, 4}}

	view, err := NewDataView(buf, 1, -1)
	if err != nil {
		t.Fatalf("NewDataView failed: %v", err)
	}
	if view.ByteOffset != 1 || view.ByteLength != 3 {
		t.Fatalf("unexpected window %d+%d", view.ByteOffset, view.ByteLength)
	}
	if !bytes.Equal(view.Bytes(), []byte{2, 3, 4}) {
		t.Fatalf("unexpected bytes %v", view.Bytes())
	}

	view, err = NewDataView(buf, 4, 0)
	if err != nil {
		t.Fatalf("NewDataView at end failed: %v", err)
	}
	if len(view.Bytes()) != 0 {
		t.Fatalf("expected empty window, got %v", view.Bytes())
	}

	for _, bad := range [][2]int{{5, 0}, {-1, 1}, {2, 3}} {
		if _, err := NewDataView(buf, bad[0], bad[1]); !errors.Is(err, ErrViewOutOfRange) {
			t.Fatalf("expected ErrViewOutOfRange for %v, got %v", bad, err)
		}
	}

	if (&DataView{}).Bytes() != nil {
		t.Fatalf("expected nil bytes for a view without buffer")
	}
	if (*ArrayBuffer)(nil).ByteLength() != 0 {
		t.Fatalf("expected zero length for nil buffer")
	}
}

func TestBinaryContentsNeverPrinted(t *testing.T) {
	buf := &ArrayBuffer{Bytes: bytes.Repeat([]byte{0xab}, 64)}
	view := mustDataView(t, buf, 8, 16)
	for _, v := range []any{buf, view, *buf, *view} {
		c := v.(Containerizer).PrintableContainer()
		if len(c.elements()) != 0 {
			t.Fatalf("%T exposed %d elements", v, len(c.elements()))
		}
		out := mustFormat(t, v, nil)
		if out != c.label()+" []" {
			t.Fatalf("unexpected output for %T: %q", v, out)
		}
	}
}

func TestSlotAccessors(t *testing.T) {
	if !Hole.IsHole() || Hole.Value() != nil {
		t.Fatalf("unexpected hole slot %+v", Hole)
	}
	s := Elem(nil)
	if s.IsHole() {
		t.Fatalf("a present nil must not be a hole")
	}
	if slots := Elems(1, "a"); len(slots) != 2 || slots[1].Value() != "a" {
		t.Fatalf("unexpected slots %+v", slots)
	}
}
