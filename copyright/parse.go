package copyright

import (
	"fmt"
	"strings"

	"github.com/debworks/dep5/control"
)

// Parse parses a complete machine-readable copyright file: optional
// leading blank lines, one header stanza, then zero or more body stanzas
// each preceded by blank separator lines, then optional trailing
// whitespace. Parsing is fail-fast; the returned error is a
// *control.ParseError wrapping one of the kind sentinels.
//
// The input must be fully materialized; it is never mutated, so multiple
// documents may be parsed concurrently by independent callers.
func Parse(input string) (*CopyrightFile, error) {
	s, pos := skipBlankLines(input, control.Position{Line: 1})

	block, rest := control.Paragraph(s)
	if block == "" {
		return nil, &control.ParseError{
			Pos: pos,
			Err: fmt.Errorf("%w: %w: %s", ErrUnexpectedEndOfInput, ErrMissingMandatoryField, FieldFormat),
		}
	}
	fields, err := control.Fields(block, pos)
	if err != nil {
		return nil, err
	}
	header, err := assembleHeader(fields, pos, rest == "")
	if err != nil {
		return nil, err
	}
	doc := &CopyrightFile{Header: *header}

	pos = pos.Advance(block)
	s = rest
	for {
		s, pos = skipBlankLines(s, pos)
		if s == "" {
			return doc, nil
		}
		block, rest = control.Paragraph(s)
		fields, err := control.Fields(block, pos)
		if err != nil {
			return nil, err
		}
		body, err := assembleBody(fields, pos, rest == "")
		if err != nil {
			return nil, err
		}
		doc.Body = append(doc.Body, *body)
		pos = pos.Advance(block)
		s = rest
	}
}

// skipBlankLines consumes paragraph separators: fully blank lines,
// whitespace-only lines between stanzas, and any whitespace-only tail at
// end of input.
func skipBlankLines(s string, pos control.Position) (string, control.Position) {
	for s != "" {
		line, rest := control.RestOfLine(s)
		if strings.TrimRight(line, " \t\r\n") != "" {
			break
		}
		pos = pos.Advance(line)
		s = rest
	}
	return s, pos
}

// fieldValue is the typed form of one extracted field: text for
// single-line and multi-line kinds, list for line-list kinds.
type fieldValue struct {
	text string
	list []string
}

type stanzaValues map[FieldName]fieldValue

func (v stanzaValues) text(name FieldName) string   { return v[name].text }
func (v stanzaValues) list(name FieldName) []string { return v[name].list }

// assemble extracts a closed field set from a stanza. The recognized
// parsers are applied order-independently: each field of the stanza is
// matched against the not-yet-seen members of the set, so permuting the
// physical field order yields the same values. Unrecognized and duplicate
// fields are rejected, and every mandatory field must have been seen.
func assemble(paragraph string, fields []control.Field, specs []fieldSpec, pos control.Position, atEOF bool) (stanzaValues, error) {
	byName := make(map[FieldName]fieldSpec, len(specs))
	for _, sp := range specs {
		byName[sp.name] = sp
	}

	values := make(stanzaValues, len(fields))
	for _, f := range fields {
		sp, ok := byName[FieldName(f.Name)]
		if !ok {
			return nil, &control.ParseError{Pos: f.Pos, Err: ErrUnrecognizedField,
				Msg: fmt.Sprintf("field %q is not allowed in a %s paragraph", f.Name, paragraph)}
		}
		if _, dup := values[sp.name]; dup {
			return nil, &control.ParseError{Pos: f.Pos, Err: ErrUnrecognizedField,
				Msg: fmt.Sprintf("duplicate field %q", f.Name)}
		}
		v, err := convert(f, sp)
		if err != nil {
			return nil, err
		}
		values[sp.name] = v
	}

	for _, sp := range specs {
		if !sp.mandatory {
			continue
		}
		if _, ok := values[sp.name]; !ok {
			err := fmt.Errorf("%w: %s", ErrMissingMandatoryField, sp.name)
			if atEOF {
				err = fmt.Errorf("%w: %w", ErrUnexpectedEndOfInput, err)
			}
			return nil, &control.ParseError{Pos: pos, Err: err}
		}
	}
	return values, nil
}

// convert turns a raw field value into its typed form per the field kind.
// Cleaning happens here, not at tokenization time, and only for the kinds
// whose semantics need logical-line access.
func convert(f control.Field, sp fieldSpec) (fieldValue, error) {
	switch sp.kind {
	case singleLine:
		first, rest := control.RestOfLine(f.Value)
		if rest != "" {
			return fieldValue{}, &control.ParseError{Pos: f.Pos, Err: ErrTrailingContent,
				Msg: fmt.Sprintf("field %q does not allow continuation lines", f.Name)}
		}
		return fieldValue{text: strings.TrimRight(first, " \t\r\n")}, nil

	case multiLine:
		lines, err := control.Clean(f.Value)
		if err != nil {
			return fieldValue{}, &control.ParseError{Pos: f.Pos, Err: err}
		}
		for i, l := range lines {
			lines[i] = strings.TrimRight(l, " \t\r\n")
		}
		return fieldValue{text: strings.Join(lines, "\n")}, nil

	case lineList:
		lines, err := control.Clean(f.Value)
		if err != nil {
			return fieldValue{}, &control.ParseError{Pos: f.Pos, Err: err}
		}
		var list []string
		for _, l := range lines {
			if entry := strings.TrimSpace(l); entry != "" {
				list = append(list, entry)
			}
		}
		return fieldValue{list: list}, nil
	}
	return fieldValue{}, nil
}

func assembleHeader(fields []control.Field, pos control.Position, atEOF bool) (*HeaderParagraph, error) {
	v, err := assemble("header", fields, headerFields, pos, atEOF)
	if err != nil {
		return nil, err
	}
	return &HeaderParagraph{
		Format:          v.text(FieldFormat),
		UpstreamName:    v.text(FieldUpstreamName),
		UpstreamContact: v.text(FieldUpstreamContact),
		Source:          v.text(FieldSource),
		Disclaimer:      v.text(FieldDisclaimer),
		Comment:         v.text(FieldComment),
		License:         v.text(FieldLicense),
		Copyright:       v.text(FieldCopyright),
	}, nil
}

func assembleFiles(fields []control.Field, pos control.Position, atEOF bool) (*FilesParagraph, error) {
	v, err := assemble("files", fields, filesFields, pos, atEOF)
	if err != nil {
		return nil, err
	}
	return &FilesParagraph{
		Files:     v.list(FieldFiles),
		Copyright: v.list(FieldCopyright),
		License:   v.text(FieldLicense),
		Comment:   v.text(FieldComment),
	}, nil
}

func assembleLicenseDetail(fields []control.Field, pos control.Position, atEOF bool) (*LicenseDetailParagraph, error) {
	v, err := assemble("license", fields, licenseDetailFields, pos, atEOF)
	if err != nil {
		return nil, err
	}
	name, text, _ := strings.Cut(v.text(FieldLicense), "\n")
	return &LicenseDetailParagraph{Name: name, Text: text}, nil
}

// assembleBody resolves a body stanza, trying the Files shape first and
// the stand-alone License shape second. When both fail, the error of the
// shape whose distinguishing fields are present wins, so a Files stanza
// missing a mandatory field reports that field rather than a generic
// mismatch.
func assembleBody(fields []control.Field, pos control.Position, atEOF bool) (*BodyParagraph, error) {
	fp, filesErr := assembleFiles(fields, pos, atEOF)
	if filesErr == nil {
		return &BodyParagraph{Files: fp}, nil
	}
	lp, licenseErr := assembleLicenseDetail(fields, pos, atEOF)
	if licenseErr == nil {
		return &BodyParagraph{LicenseDetail: lp}, nil
	}
	if hasField(fields, FieldFiles) || hasField(fields, FieldCopyright) {
		return nil, filesErr
	}
	if hasField(fields, FieldLicense) {
		return nil, licenseErr
	}
	return nil, &control.ParseError{Pos: pos, Err: ErrNoMatchingParagraphType}
}

func hasField(fields []control.Field, name FieldName) bool {
	for _, f := range fields {
		if FieldName(f.Name) == name {
			return true
		}
	}
	return false
}
