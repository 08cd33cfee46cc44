package stx

import (
	"github.com/samber/lo"
)

// Accuracy holds percentages in [0,100]. All are 0 when there are no rows.
type Accuracy struct {
	Overall   float64
	Stx       float64
	Variant   float64
	Allele    float64
	Accession float64
}

// Field returns the per-field accuracy.
func (a Accuracy) Field(f Field) float64 {
	switch f {
	case FieldType:
		return a.Stx
	case FieldVariant:
		return a.Variant
	case FieldAllele:
		return a.Allele
	case FieldAccession:
		return a.Accession
	}
	return 0
}

type Report struct {
	Rows []*VerdictRow

	NegativeControls []string
	MissingFromInput []string
	NotFound         []string
	TypeMismatches   []string

	Accuracy Accuracy
}

// Report aggregates the accumulated result.
func (result *Result) Report() *Report {
	return Aggregate(result.Rows, result.NegativeControls, result.MissingFromInput, result.NotFound, result.TypeMismatches)
}

// Aggregate de-duplicates rows on their full tuple and computes accuracies.
func Aggregate(rows []*VerdictRow, negativeControls, missingFromInput, notFound, typeMismatches []string) *Report {
	rows = lo.UniqBy(rows, func(r *VerdictRow) string { return r.key() })
	return &Report{
		Rows:             rows,
		NegativeControls: negativeControls,
		MissingFromInput: missingFromInput,
		NotFound:         notFound,
		TypeMismatches:   typeMismatches,
		Accuracy:         CalAccuracy(rows),
	}
}

// CalAccuracy computes overall and per-field accuracy over rows.
func CalAccuracy(rows []*VerdictRow) (acc Accuracy) {
	if len(rows) == 0 {
		return
	}
	var (
		total  = float64(len(rows))
		counts [4]int
	)
	for _, r := range rows {
		for f, ok := range r.Flags() {
			if ok {
				counts[f]++
			}
		}
	}
	percent := func(n int) float64 { return float64(n) / total * 100 }

	acc.Overall = percent(lo.CountBy(rows, func(r *VerdictRow) bool { return r.AllMatch() }))
	acc.Stx = percent(counts[FieldType])
	acc.Variant = percent(counts[FieldVariant])
	acc.Allele = percent(counts[FieldAllele])
	acc.Accession = percent(counts[FieldAccession])
	return
}

// Section is a labelled diagnostic sample list.
type Section struct {
	Heading string
	IDs     []string
}

// Sections lists the diagnostic sections in report order, including empty ones.
func (r *Report) Sections() []Section {
	return []Section{
		{NegativeControlHeading, r.NegativeControls},
		{MissingFromInputHeading, r.MissingFromInput},
		{NotFoundHeading, r.NotFound},
		{TypeMismatchHeading, r.TypeMismatches},
	}
}
