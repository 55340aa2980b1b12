// Package control implements the lexical layer of Debian control files:
// the stanza-based grammar shared by debian/control, Release, Packages and
// the machine-readable debian/copyright format.
//
// # Grammar
//
// A control file is a sequence of paragraphs (stanzas) separated by blank
// lines. Each paragraph is a run of fields; a field is a name matching
// [A-Za-z0-9][A-Za-z0-9-]* followed by ':' and a value that may fold over
// continuation lines, which are lines starting with horizontal whitespace.
// Inside a folded value, a continuation line holding a lone "." stands for
// an intentionally blank line.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#syntax-of-control-files
//
// # Design
//
// Every function here is a pure function from an input slice to a match
// and the remaining input, or a no-match signal; the input buffer is never
// mutated and no state lives outside the call stack, so independent
// parses may run concurrently without coordination. Parsing is fail-fast:
// the first mismatch aborts with a *ParseError carrying the line and byte
// offset. The package does no I/O and no logging.
package control
