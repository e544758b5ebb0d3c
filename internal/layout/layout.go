// Package layout joins body lines into bracketed blocks and shifts nested
// multi-line output one indentation level deeper.
package layout

import "strings"

// Config describes the whitespace of a block.
type Config struct {
	// Indent is prepended once per nesting level. Empty means no indentation.
	Indent string
	// Min renders blocks on a single line with ", " separators and no
	// trailing separator.
	Min bool
	// Comma is the separator written after each body line. Empty means ",".
	Comma string
}

func (c Config) comma() string {
	if c.Comma == "" {
		return ","
	}
	return c.Comma
}

// Block renders head+open, the body lines and close. In multi-line mode every
// line is indented and terminated by the separator, including the last one.
// With no lines the result is head+open+close.
func (c Config) Block(head, open, close string, lines []string) string {
	var sb strings.Builder
	sb.WriteString(head)
	sb.WriteString(open)
	if len(lines) == 0 {
		sb.WriteString(close)
		return sb.String()
	}
	comma := c.comma()
	if c.Min {
		for i, line := range lines {
			if i > 0 {
				sb.WriteString(comma)
				sb.WriteByte(' ')
			}
			sb.WriteString(line)
		}
		sb.WriteString(close)
		return sb.String()
	}
	sb.WriteByte('\n')
	for _, line := range lines {
		sb.WriteString(Indent(line, c.Indent))
		sb.WriteString(comma)
		sb.WriteByte('\n')
	}
	sb.WriteString(close)
	return sb.String()
}

// Indent prefixes every line of s with indent. Empty lines are prefixed too so
// a blank token keeps its column.
func Indent(s, indent string) string {
	if indent == "" {
		return s
	}
	n := strings.Count(s, "\n")
	var sb strings.Builder
	sb.Grow(len(s) + (n+1)*len(indent))
	for {
		sb.WriteString(indent)
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:i+1])
		s = s[i+1:]
	}
}
