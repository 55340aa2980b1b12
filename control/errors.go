package control

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported by the grammar layer. Higher layers define their
// own kinds on top of these; every failure surfaces wrapped in a
// *ParseError so callers can test the kind with errors.Is and still
// report the position.
var (
	// ErrMalformedFieldName reports a line that should start a field but
	// whose name does not match [A-Za-z0-9][A-Za-z0-9-]* followed by ':'.
	ErrMalformedFieldName = errors.New("malformed field name")

	// ErrIndentation reports a continuation line without the leading
	// whitespace the multiline cleaner requires.
	ErrIndentation = errors.New("bad continuation indentation")
)

// Position locates a point in the input buffer.
type Position struct {
	// Offset is the byte offset from the start of the input.
	Offset int
	// Line is the 1-based line number.
	Line int
}

// Advance returns the position moved past the consumed text.
func (p Position) Advance(consumed string) Position {
	return Position{
		Offset: p.Offset + len(consumed),
		Line:   p.Line + strings.Count(consumed, "\n"),
	}
}

// ParseError is the error type returned by the parsing layers. It carries
// the position of the first irrecoverable mismatch and wraps one of the
// kind sentinels; parsing is fail-fast, so there is at most one.
type ParseError struct {
	Pos Position
	Err error
	Msg string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("line %d (offset %d): %v", e.Pos.Line, e.Pos.Offset, e.Err)
	}
	return fmt.Sprintf("line %d (offset %d): %v: %s", e.Pos.Line, e.Pos.Offset, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
