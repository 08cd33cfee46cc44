package stx

import (
	"fmt"
	"regexp"
	"strings"
)

// <type><variant?>_<allele>_<accession>, e.g. Stx2a_001_NC_002695.2 or Stx2a_001_NC-002695.2|...
var geneIDPattern = regexp.MustCompile(`^([A-Za-z]+\d+)([A-Za-z]?)_(\d+)_([\w.-]+)`)

// GeneAnnotation holds the fields encoded in a gene identifier.
// The zero value is the null annotation and never matches anything.
type GeneAnnotation struct {
	Type      string
	Variant   string
	Allele    string
	Accession string

	Valid bool
}

func (a GeneAnnotation) String() string {
	if !a.Valid {
		return "<null>"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s", a.Type, a.Variant, a.Allele, a.Accession)
}

// Field returns the value of one annotation field.
func (a GeneAnnotation) Field(f Field) string {
	switch f {
	case FieldType:
		return a.Type
	case FieldVariant:
		return a.Variant
	case FieldAllele:
		return a.Allele
	case FieldAccession:
		return a.Accession
	}
	return ""
}

// ParseGeneID extracts the annotation from a gene identifier.
// Empty or malformed identifiers give the null annotation.
func ParseGeneID(raw string) GeneAnnotation {
	m := geneIDPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return GeneAnnotation{}
	}
	return GeneAnnotation{
		Type:      m[1],
		Variant:   m[2],
		Allele:    m[3],
		Accession: NormalizeAccession(m[4]),
		Valid:     true,
	}
}

// NormalizeAccession maps NC_002695.2 and NC-002695.2 to the same form.
func NormalizeAccession(acc string) string {
	return strings.ReplaceAll(acc, "_", "-")
}

// NormalizeGeneID applies the accession normalization to the identifier part
// before the first pipe, used for exact identifier comparison.
// Stx2a_001_NC_000001.1|stx2A and Stx2a_001_NC-000001.1 normalize alike.
func NormalizeGeneID(raw string) string {
	raw, _, _ = strings.Cut(raw, "|")
	return strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
}

// TypeToken is the identifier text before the first underscore, e.g. Stx2a.
func TypeToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '_'); i >= 0 {
		return raw[:i]
	}
	return raw
}

// Field names one of the four compared annotation fields.
type Field int

const (
	FieldType Field = iota
	FieldVariant
	FieldAllele
	FieldAccession
)

var Fields = []Field{FieldType, FieldVariant, FieldAllele, FieldAccession}

var fieldNames = [...]string{"stx", "variant", "allele", "accession"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}
