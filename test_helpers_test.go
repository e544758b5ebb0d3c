package prettyfmt

import (
	"bytes"
	"errors"
)

type noStringWriter struct {
	buf bytes.Buffer
}

func (w *noStringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *noStringWriter) String() string {
	return w.buf.String()
}

type fdWriterStub struct {
	buf bytes.Buffer
}

func (w *fdWriterStub) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Fd points at a descriptor that is never a terminal under go test.
func (*fdWriterStub) Fd() uintptr {
	return ^uintptr(0)
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read err")
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type newlineFailWriter struct {
	buf bytes.Buffer
}

func (w *newlineFailWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *newlineFailWriter) WriteByte(_ byte) error {
	return errors.New("newline err")
}

// extraProps builds a single-property list, the shape used by most
// container tests.
func extraProps(key string, v any) Props {
	return Props{{Key: key, Value: v}}
}
