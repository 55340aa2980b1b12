package copyright

// FieldName enumerates the fields recognized by the copyright-format 1.0
// grammar.
//
// Reference: https://www.debian.org/doc/packaging-manuals/copyright-format/1.0/
type FieldName string

const (
	FieldFormat          FieldName = "Format"
	FieldUpstreamName    FieldName = "Upstream-Name"
	FieldUpstreamContact FieldName = "Upstream-Contact"
	FieldSource          FieldName = "Source"
	FieldDisclaimer      FieldName = "Disclaimer"
	FieldComment         FieldName = "Comment"
	FieldLicense         FieldName = "License"
	FieldCopyright       FieldName = "Copyright"
	FieldFiles           FieldName = "Files"
)

// fieldKind selects how a field's raw value is turned into its typed
// value.
type fieldKind int

const (
	// singleLine fields must fit on the field-name line; continuation
	// lines are structurally illegal for them.
	singleLine fieldKind = iota
	// multiLine fields may fold over continuation lines; the value is the
	// cleaned logical lines rejoined with newlines.
	multiLine
	// lineList fields hold one entry per folded line; entries are trimmed
	// and blank entries dropped, order and duplicates preserved.
	lineList
)

// fieldSpec describes one recognized field of a paragraph type. Each
// paragraph type is a closed set of these, matched order-independently:
// the stanza grammar treats fields as an unordered set keyed by name.
type fieldSpec struct {
	name      FieldName
	kind      fieldKind
	mandatory bool
}

var headerFields = []fieldSpec{
	{FieldFormat, singleLine, true},
	{FieldUpstreamName, singleLine, false},
	{FieldUpstreamContact, singleLine, false},
	{FieldSource, singleLine, false},
	{FieldDisclaimer, multiLine, false},
	{FieldComment, multiLine, false},
	{FieldLicense, multiLine, false},
	{FieldCopyright, multiLine, false},
}

var filesFields = []fieldSpec{
	{FieldFiles, lineList, true},
	{FieldCopyright, lineList, true},
	{FieldLicense, multiLine, true},
	{FieldComment, multiLine, false},
}

var licenseDetailFields = []fieldSpec{
	{FieldLicense, multiLine, true},
}
