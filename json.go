package prettyfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"pkt.systems/jpact"
)

// FormatJSON reads a stream of JSON documents from r and writes each one,
// formatted, on its own line. Objects keep their key order (unless
// opts.SortKeys) and print as Object, arrays print as Array. With
// opts.Unwrap, strings holding JSON objects or arrays are decoded
// recursively up to MaxNestedJSONDepth levels.
func FormatJSON(w io.Writer, r io.Reader, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	p, err := newPrinter(opts, shouldColor(w, opts))
	if err != nil {
		return err
	}
	unwrapDepth := 0
	if opts.Unwrap {
		unwrapDepth = MaxNestedJSONDepth
		if unwrapDepth <= 0 {
			unwrapDepth = 1
		}
	}

	vr := acquireValueReader(r)
	defer releaseValueReader(vr)
	d := acquireDecoder()
	defer releaseDecoder(d)

	for doc := 0; ; doc++ {
		if err := vr.Start(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		d.compacted.Reset()
		if err := jpact.CompactWriter(&d.compacted, vr, 0); err != nil {
			return fmt.Errorf("document %d: %w", doc, err)
		}
		d.reset(d.compacted.Bytes(), unwrapDepth)
		v, err := d.decode()
		if err != nil {
			return fmt.Errorf("document %d: %w", doc, err)
		}
		if _, err := io.WriteString(w, p.print(v, 0)); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		vr.Reset()
	}
}

// FormatJSONBytes is FormatJSON over an in-memory document stream.
func FormatJSONBytes(in []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, bytes.NewReader(in), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeJSON decodes a single JSON document into the values Format prints:
// *Object for objects, []any for arrays, json.Number, string, bool and nil.
func DecodeJSON(data []byte) (any, error) {
	d := acquireDecoder()
	defer releaseDecoder(d)
	d.reset(data, 0)
	return d.decode()
}

var errInvalidJSON = errors.New("json: invalid")

type decoder struct {
	scanner     scanner
	sliceReader bytes.Reader
	unwrapDepth int
	silentErr   bool
	decodedBuf  []byte
	numBuf      []byte
	compacted   bytes.Buffer
}

func (d *decoder) reset(src []byte, unwrapDepth int) {
	d.sliceReader.Reset(src)
	d.scanner.Reset(&d.sliceReader)
	d.unwrapDepth = unwrapDepth
	d.silentErr = false
}

func (d *decoder) errorf(format string, args ...any) error {
	if d.silentErr {
		return errInvalidJSON
	}
	return fmt.Errorf("%w: %s", errInvalidJSON, fmt.Sprintf(format, args...))
}

// decode reads one value and requires the input to end after it.
func (d *decoder) decode() (any, error) {
	v, err := d.parseValue()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, d.errorf("unexpected end of input")
		}
		return nil, err
	}
	if err := d.scanner.skipSpace(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, d.errorf("trailing data after value")
	}
	return v, nil
}

func (d *decoder) parseValue() (any, error) {
	b, err := d.scanner.readNonSpace()
	if err != nil {
		return nil, err
	}
	switch b {
	case '{':
		return d.parseObject()
	case '[':
		return d.parseArray()
	case '"':
		return d.parseString()
	case 't', 'f', 'n':
		return d.parseLiteral(b)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return d.parseNumber(b)
	default:
		return nil, d.errorf("unexpected character %q", b)
	}
}

func (d *decoder) parseObject() (any, error) {
	obj := &Object{}
	b, err := d.scanner.readNonSpace()
	if err != nil {
		return nil, err
	}
	if b == '}' {
		return obj, nil
	}
	for {
		if b != '"' {
			return nil, d.errorf("expected object key")
		}
		raw, err := d.readStringValue()
		if err != nil {
			return nil, err
		}
		key := string(raw)
		if b, err = d.scanner.readNonSpace(); err != nil {
			return nil, err
		}
		if b != ':' {
			return nil, d.errorf("expected ':' after object key")
		}
		v, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Props.Set(key, v)
		if b, err = d.scanner.readNonSpace(); err != nil {
			return nil, err
		}
		switch b {
		case ',':
			if b, err = d.scanner.readNonSpace(); err != nil {
				return nil, err
			}
		case '}':
			return obj, nil
		default:
			return nil, d.errorf("expected ',' or '}'")
		}
	}
}

func (d *decoder) parseArray() (any, error) {
	arr := []any{}
	if err := d.scanner.skipSpace(); err != nil {
		return nil, err
	}
	if b, _ := d.scanner.peekByte(); b == ']' {
		_, _ = d.scanner.readByte()
		return arr, nil
	}
	for {
		v, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		b, err := d.scanner.readNonSpace()
		if err != nil {
			return nil, err
		}
		switch b {
		case ',':
		case ']':
			return arr, nil
		default:
			return nil, d.errorf("expected ',' or ']'")
		}
	}
}

func (d *decoder) parseString() (any, error) {
	raw, err := d.readStringValue()
	if err != nil {
		return nil, err
	}
	s := string(raw)
	if d.unwrapDepth > 0 {
		if trimmed := bytes.TrimSpace(raw); looksLikeJSONBytes(trimmed) {
			if v, ok := d.tryUnwrap([]byte(string(trimmed))); ok {
				return v, nil
			}
		}
	}
	return s, nil
}

// tryUnwrap decodes src one unwrap level deeper. Invalid JSON leaves the
// string untouched.
func (d *decoder) tryUnwrap(src []byte) (any, bool) {
	nested := acquireDecoder()
	defer releaseDecoder(nested)
	nested.reset(src, d.unwrapDepth-1)
	nested.silentErr = true
	v, err := nested.decode()
	if err != nil {
		return nil, false
	}
	return v, true
}

func looksLikeJSONBytes(trimmed []byte) bool {
	if len(trimmed) < 2 {
		return false
	}
	first := trimmed[0]
	last := trimmed[len(trimmed)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}

func (d *decoder) readStringValue() ([]byte, error) {
	d.decodedBuf = d.decodedBuf[:0]
	for {
		b, err := d.scanner.readByte()
		if err != nil {
			return nil, err
		}
		if b == '"' {
			return d.decodedBuf, nil
		}
		if b < 0x20 {
			return nil, d.errorf("invalid control character in string")
		}
		if b != '\\' {
			d.decodedBuf = append(d.decodedBuf, b)
			continue
		}
		esc, err := d.scanner.readByte()
		if err != nil {
			return nil, err
		}
		switch esc {
		case '"', '\\', '/':
			d.decodedBuf = append(d.decodedBuf, esc)
		case 'b':
			d.decodedBuf = append(d.decodedBuf, '\b')
		case 'f':
			d.decodedBuf = append(d.decodedBuf, '\f')
		case 'n':
			d.decodedBuf = append(d.decodedBuf, '\n')
		case 'r':
			d.decodedBuf = append(d.decodedBuf, '\r')
		case 't':
			d.decodedBuf = append(d.decodedBuf, '\t')
		case 'u':
			r, err := d.readUnicodeEscape()
			if err != nil {
				return nil, err
			}
			d.decodedBuf = utf8.AppendRune(d.decodedBuf, r)
		default:
			return nil, d.errorf("invalid escape sequence")
		}
	}
}

func (d *decoder) readUnicodeEscape() (rune, error) {
	n1, err := d.readHex4()
	if err != nil {
		return 0, err
	}
	if n1 < 0xD800 || n1 > 0xDBFF {
		return n1, nil
	}
	for _, want := range []byte{'\\', 'u'} {
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if b != want {
			return utf8.RuneError, d.errorf("invalid surrogate pair")
		}
	}
	n2, err := d.readHex4()
	if err != nil {
		return 0, err
	}
	if n2 < 0xDC00 || n2 > 0xDFFF {
		return utf8.RuneError, d.errorf("invalid surrogate pair")
	}
	return utf16.DecodeRune(n1, n2), nil
}

func (d *decoder) readHex4() (rune, error) {
	var val rune
	for i := 0; i < 4; i++ {
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		h, ok := fromHex(b)
		if !ok {
			return 0, d.errorf("invalid unicode escape")
		}
		val = val<<4 | rune(h)
	}
	return val, nil
}

func fromHex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

func (d *decoder) parseLiteral(first byte) (any, error) {
	var lit string
	var v any
	switch first {
	case 't':
		lit, v = "true", true
	case 'f':
		lit, v = "false", false
	default:
		lit, v = "null", nil
	}
	for i := 1; i < len(lit); i++ {
		b, err := d.scanner.readByte()
		if err != nil {
			return nil, err
		}
		if b != lit[i] {
			return nil, d.errorf("invalid literal")
		}
	}
	return v, nil
}

func (d *decoder) parseNumber(first byte) (any, error) {
	state, ok := numStartState(first)
	if !ok {
		return nil, d.errorf("invalid number")
	}
	d.numBuf = append(d.numBuf[:0], first)
	for {
		b, err := d.scanner.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if isTerminator(b) {
			break
		}
		if state, ok = numNextState(state, b); !ok {
			return nil, d.errorf("invalid number")
		}
		_, _ = d.scanner.readByte()
		d.numBuf = append(d.numBuf, b)
	}
	if !numIsTerminal(state) {
		return nil, d.errorf("invalid number")
	}
	return json.Number(d.numBuf), nil
}

type numState int

const (
	numInvalid numState = iota
	numSign
	numZero
	numInt
	numDot
	numFrac
	numExp
	numExpSign
	numExpDigits
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func numStartState(first byte) (numState, bool) {
	switch {
	case first == '-':
		return numSign, true
	case first == '0':
		return numZero, true
	case first >= '1' && first <= '9':
		return numInt, true
	default:
		return numInvalid, false
	}
}

func numNextState(state numState, b byte) (numState, bool) {
	switch state {
	case numSign:
		if b == '0' {
			return numZero, true
		}
		if b >= '1' && b <= '9' {
			return numInt, true
		}
	case numZero, numInt, numFrac:
		switch {
		case b == '.' && state != numFrac:
			return numDot, true
		case b == 'e' || b == 'E':
			return numExp, true
		case isDigit(b) && state == numInt:
			return numInt, true
		case isDigit(b) && state == numFrac:
			return numFrac, true
		}
	case numDot:
		if isDigit(b) {
			return numFrac, true
		}
	case numExp:
		if b == '+' || b == '-' {
			return numExpSign, true
		}
		if isDigit(b) {
			return numExpDigits, true
		}
	case numExpSign, numExpDigits:
		if isDigit(b) {
			return numExpDigits, true
		}
	}
	return numInvalid, false
}

func numIsTerminal(state numState) bool {
	switch state {
	case numZero, numInt, numFrac, numExpDigits:
		return true
	default:
		return false
	}
}
