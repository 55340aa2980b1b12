// Package copyright parses Debian's machine-readable debian/copyright
// format (copyright-format 1.0, historically DEP-5) into typed paragraphs
// for build and packaging tools.
//
// The package builds on the generic control-file grammar in package
// control and adds the DEP-5 schema: one header paragraph followed by any
// number of Files and stand-alone License paragraphs. All values are
// immutable once constructed; a parse either yields a complete
// CopyrightFile or fails at the first mismatch with a positional error.
//
// Reference: https://www.debian.org/doc/packaging-manuals/copyright-format/1.0/
package copyright

import "errors"

// Error kinds for stanza and document assembly, on top of the kinds in
// package control. They surface wrapped in a *control.ParseError carrying
// the failure position.
var (
	// ErrMissingMandatoryField reports a stanza lacking a field its
	// paragraph type requires. Absent optional fields are not errors.
	ErrMissingMandatoryField = errors.New("missing mandatory field")

	// ErrUnrecognizedField reports a field outside the recognized set of
	// the paragraph type being assembled, duplicates included.
	ErrUnrecognizedField = errors.New("unrecognized field")

	// ErrTrailingContent reports input left over after a paragraph's
	// recognized fields were extracted, such as continuation lines on a
	// single-line field.
	ErrTrailingContent = errors.New("trailing content")

	// ErrUnexpectedEndOfInput reports a document that ends mid-stanza
	// while a mandatory field is still missing.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrNoMatchingParagraphType reports a body stanza that is neither a
	// Files paragraph nor a stand-alone License paragraph.
	ErrNoMatchingParagraphType = errors.New("no matching paragraph type")
)

// HeaderParagraph is the first stanza of a copyright file. Format is
// mandatory; every other field is optional and empty when absent.
type HeaderParagraph struct {
	Format          string `json:"format" yaml:"format"`
	UpstreamName    string `json:"upstream_name,omitempty" yaml:"upstream_name,omitempty"`
	UpstreamContact string `json:"upstream_contact,omitempty" yaml:"upstream_contact,omitempty"`
	Source          string `json:"source,omitempty" yaml:"source,omitempty"`
	Disclaimer      string `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty"`
	Comment         string `json:"comment,omitempty" yaml:"comment,omitempty"`
	License         string `json:"license,omitempty" yaml:"license,omitempty"`
	Copyright       string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// FilesParagraph attributes a set of file glob patterns to copyright
// holders and a license. Pattern order is preserved: when several stanzas
// match a file, consumers give the later stanza precedence.
type FilesParagraph struct {
	Files     []string `json:"files" yaml:"files"`
	Copyright []string `json:"copyright" yaml:"copyright"`
	License   string   `json:"license" yaml:"license"`
	Comment   string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// LicenseDetailParagraph carries the full text of a license referenced by
// short name elsewhere in the file. Name is the first folded line of the
// License field; Text is the remaining lines rejoined, each right-trimmed.
type LicenseDetailParagraph struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// BodyParagraph is one body stanza. Exactly one of Files or LicenseDetail
// is set.
type BodyParagraph struct {
	Files         *FilesParagraph         `json:"files_paragraph,omitempty" yaml:"files_paragraph,omitempty"`
	LicenseDetail *LicenseDetailParagraph `json:"license_paragraph,omitempty" yaml:"license_paragraph,omitempty"`
}

// CopyrightFile is a parsed debian/copyright document: one header
// paragraph and the body paragraphs in declaration order.
type CopyrightFile struct {
	Header HeaderParagraph `json:"header" yaml:"header"`
	Body   []BodyParagraph `json:"body,omitempty" yaml:"body,omitempty"`
}
