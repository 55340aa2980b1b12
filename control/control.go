package control

import (
	"fmt"
	"strings"
)

// Field is a raw (name, value) pair scanned from a paragraph. Value is the
// remainder of the field line after the colon and any horizontal
// whitespace, including its line terminator, followed by all directly
// following continuation lines verbatim. Folded values stay raw here;
// Clean unfolds them only when a consumer needs logical-line access.
type Field struct {
	Name  string
	Value string
	Pos   Position
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isNameChar(c byte) bool { return isNameStart(c) || c == '-' }

// FieldName matches a field name followed by ':' at the start of s and
// returns the name and the input just after the colon.
func FieldName(s string) (name, rest string, err error) {
	if s == "" || !isNameStart(s[0]) {
		return "", s, fmt.Errorf("%w: expected [A-Za-z0-9]", ErrMalformedFieldName)
	}
	i := 1
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return "", s, fmt.Errorf("%w: %q is not followed by ':'", ErrMalformedFieldName, s[:i])
	}
	return s[:i], s[i+1:], nil
}

// EndOfLineOrString matches a line terminator ("\n" or "\r\n") or end of
// input, so the grammar tolerates a missing trailing newline at end of
// file.
func EndOfLineOrString(s string) (eol, rest string, ok bool) {
	switch {
	case s == "":
		return "", "", true
	case s[0] == '\n':
		return "\n", s[1:], true
	case strings.HasPrefix(s, "\r\n"):
		return "\r\n", s[2:], true
	}
	return "", s, false
}

// RestOfLine returns the remainder of the current line, possibly empty,
// including its terminator (or nothing at end of input), and the input
// after it. It always matches.
func RestOfLine(s string) (line, rest string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i+1], s[i+1:]
		}
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			return s[:i+2], s[i+2:]
		}
	}
	return s, ""
}

// ContinuationLine matches a line with leading horizontal whitespace,
// returning it whole, indentation and terminator included. Lines without
// leading whitespace do not match: they start the next field or stanza.
func ContinuationLine(s string) (line, rest string, ok bool) {
	if s == "" || (s[0] != ' ' && s[0] != '\t') {
		return "", s, false
	}
	line, rest = RestOfLine(s)
	return line, rest, true
}

// Paragraph returns the maximal run of non-blank lines at the start of s
// and the input after it. A line counts as blank only when it is fully
// empty; whitespace-only lines belong to the preceding field as
// continuations and so stay inside the block.
func Paragraph(s string) (block, rest string) {
	n := 0
	for n < len(s) {
		line, _ := RestOfLine(s[n:])
		if strings.TrimRight(line, "\r\n") == "" {
			break
		}
		n += len(line)
	}
	return s[:n], s[n:]
}

// Fields scans one raw paragraph block into its ordered fields. pos is the
// position of the block within the whole input and is carried into the
// fields for error reporting. Physical order is preserved even though the
// stanza grammar treats fields as an unordered set keyed by name.
func Fields(block string, pos Position) ([]Field, error) {
	var fields []Field
	s := block
	for s != "" {
		if s[0] == ' ' || s[0] == '\t' {
			return nil, &ParseError{Pos: pos, Err: ErrMalformedFieldName,
				Msg: "continuation line without a preceding field"}
		}
		name, afterName, err := FieldName(s)
		if err != nil {
			return nil, &ParseError{Pos: pos, Err: err}
		}
		v := strings.TrimLeft(afterName, " \t")
		value, rest := RestOfLine(v)
		for {
			line, next, ok := ContinuationLine(rest)
			if !ok {
				break
			}
			value += line
			rest = next
		}
		fields = append(fields, Field{Name: name, Value: value, Pos: pos})
		pos = pos.Advance(s[:len(s)-len(rest)])
		s = rest
	}
	return fields, nil
}
