package control

import (
	"fmt"
	"strings"
)

// Clean unfolds the raw value of a multi-line field into its logical
// lines, stripped of the indentation the control-file folding convention
// imposes. The first continuation line's leading whitespace sets the
// block-wide indent; anchoring on the block rather than on each line keeps
// inconsistently indented prose from drifting. Lines indented less than
// the block indent (but at least one space) are accepted; lines indented
// more keep the excess. A continuation line holding a lone "." cleans to a
// blank line. Each cleaned line keeps its original terminator.
//
// A value without continuation lines cleans to just its first line.
func Clean(value string) ([]string, error) {
	first, rest := RestOfLine(value)
	lines := []string{first}
	if rest == "" {
		return lines, nil
	}

	indent := leadingWhitespace(rest)
	if indent == "" {
		return nil, fmt.Errorf("%w: continuation line is not indented", ErrIndentation)
	}
	maxIndent := len(indent)

	for rest != "" {
		var line string
		line, rest = RestOfLine(rest)

		// Blank-line escape: whitespace, a lone ".", then the terminator.
		if ws := leadingWhitespace(line); ws != "" && strings.HasPrefix(line[len(ws):], ".") {
			if eol, after, ok := EndOfLineOrString(line[len(ws)+1:]); ok && after == "" {
				lines = append(lines, eol)
				continue
			}
		}

		if strings.HasPrefix(line, indent) {
			lines = append(lines, line[maxIndent:])
			continue
		}
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: continuation line is not indented", ErrIndentation)
		}
		if n > maxIndent {
			n = maxIndent
		}
		lines = append(lines, line[n:])
	}
	return lines, nil
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}
