package prettyfmt

import (
	"errors"
	"io"
)

// valueReader exposes exactly one top-level JSON value of a stream as an
// io.Reader. Call Start to position on the next value and Reset once it has
// been consumed.
type valueReader struct {
	scanner scanner

	started bool
	done    bool
	mode    valueMode
	depth   int
	inStr   bool
	escape  bool
	pending byte
	hasPend bool
}

type valueMode int

const (
	modeScalar valueMode = iota
	modeString
	modeStruct
)

func (v *valueReader) Reset() {
	*v = valueReader{scanner: v.scanner}
}

// Start skips whitespace and records the first byte of the next value. It
// returns io.EOF when the stream holds no further value.
func (v *valueReader) Start() error {
	if v.started {
		return nil
	}
	b, err := v.scanner.readNonSpace()
	if err != nil {
		return err
	}
	v.started = true
	v.pending = b
	v.hasPend = true
	switch b {
	case '{', '[':
		v.mode = modeStruct
		v.depth = 1
	case '"':
		v.mode = modeString
		v.inStr = true
	default:
		v.mode = modeScalar
	}
	return nil
}

func (v *valueReader) Read(p []byte) (int, error) {
	if v.done {
		return 0, io.EOF
	}
	if err := v.Start(); err != nil {
		return 0, err
	}
	n := 0
	for n < len(p) {
		b, err := v.nextByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// stringByte tracks escapes inside a string and reports whether b closed it.
func (v *valueReader) stringByte(b byte) bool {
	switch {
	case v.escape:
		v.escape = false
	case b == '\\':
		v.escape = true
	case b == '"':
		return true
	}
	return false
}

func (v *valueReader) nextByte() (byte, error) {
	if v.done {
		return 0, io.EOF
	}
	if v.hasPend {
		v.hasPend = false
		return v.pending, nil
	}

	switch v.mode {
	case modeString:
		b, err := v.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if v.stringByte(b) {
			v.done = true
		}
		return b, nil
	case modeStruct:
		b, err := v.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if v.inStr {
			if v.stringByte(b) {
				v.inStr = false
			}
			return b, nil
		}
		switch b {
		case '"':
			v.inStr = true
		case '{', '[':
			v.depth++
		case '}', ']':
			v.depth--
			if v.depth == 0 {
				v.done = true
			}
		}
		return b, nil
	default:
		b, err := v.scanner.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				v.done = true
			}
			return 0, err
		}
		if isTerminator(b) {
			v.done = true
			return 0, io.EOF
		}
		b, _ = v.scanner.readByte()
		return b, nil
	}
}

type scanner struct {
	r   io.Reader
	buf [4096]byte
	pos int
	n   int
}

func (s *scanner) Reset(r io.Reader) {
	s.r = r
	s.pos = 0
	s.n = 0
}

func (s *scanner) fill() error {
	if s.r == nil {
		return io.EOF
	}
	n, err := s.r.Read(s.buf[:])
	if n == 0 {
		if err == nil {
			return io.EOF
		}
		return err
	}
	s.pos = 0
	s.n = n
	return nil
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *scanner) peekByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.pos], nil
}

func (s *scanner) skipSpace() error {
	for {
		b, err := s.peekByte()
		if err != nil {
			return err
		}
		if b > ' ' {
			return nil
		}
		s.pos++
	}
}

func (s *scanner) readNonSpace() (byte, error) {
	if err := s.skipSpace(); err != nil {
		return 0, err
	}
	return s.readByte()
}

func isTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']'
}
