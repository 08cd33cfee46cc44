package stx

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

type Category int

const (
	Matched Category = iota
	PartialClosest
	NoGroundTruth
	NegativeControl
	MissingFromInput
	TypeMismatch
)

var categoryNames = [...]string{
	"MATCHED",
	"PARTIAL_CLOSEST",
	"NO_GROUND_TRUTH",
	"NEGATIVE_CONTROL",
	"MISSING_FROM_INPUT",
	"TYPE_MISMATCH",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// HasRow reports whether the category yields a row in the result table.
func (c Category) HasRow() bool {
	return c == Matched || c == PartialClosest
}

// VerdictRow is one line of the result table.
type VerdictRow struct {
	Strain            string
	SampleID          string
	GroundTruthGeneID string
	InputGeneID       string

	TypeMatch      bool
	VariantMatch   bool
	AlleleMatch    bool
	AccessionMatch bool

	Category Category
}

func tf(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

func (r *VerdictRow) String() string {
	gtID := r.GroundTruthGeneID
	if gtID == "" {
		gtID = EmptyCell
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		r.Strain, r.SampleID, gtID, r.InputGeneID,
		tf(r.TypeMatch), tf(r.VariantMatch), tf(r.AlleleMatch), tf(r.AccessionMatch))
}

// Flags returns the four match flags in Fields order.
func (r *VerdictRow) Flags() [4]bool {
	return [4]bool{r.TypeMatch, r.VariantMatch, r.AlleleMatch, r.AccessionMatch}
}

// AllMatch is true when every field matched.
func (r *VerdictRow) AllMatch() bool {
	return r.TypeMatch && r.VariantMatch && r.AlleleMatch && r.AccessionMatch
}

func (r *VerdictRow) key() string {
	return strings.Join([]string{
		r.SampleID, r.InputGeneID, r.GroundTruthGeneID,
		tf(r.TypeMatch), tf(r.VariantMatch), tf(r.AlleleMatch), tf(r.AccessionMatch),
	}, "\x00")
}

// Verdict is the outcome of reconciling one input record.
// Row is set only for Matched and PartialClosest.
type Verdict struct {
	SampleID string
	Category Category
	Row      *VerdictRow
}

// Reconcile resolves one input record against the ground truth index.
func Reconcile(in InputRecord, idx *Index) Verdict {
	verdict := Verdict{SampleID: in.SampleID}

	if !idx.Has(in.SampleID) {
		verdict.Category = NoGroundTruth
		return verdict
	}
	group, _ := idx.Lookup(in.SampleID)
	if idx.IsNegativeControl(in.SampleID) {
		verdict.Category = NegativeControl
		return verdict
	}

	// exact identifier
	inputID := NormalizeGeneID(in.GeneID)
	for i := range group {
		if NormalizeGeneID(group[i].GeneID) == inputID {
			match := idx.Matches(in.SampleID, in.Annotation)
			verdict.Category = Matched
			verdict.Row = newVerdictRow(idx, in, group[i].GeneID, match, Matched)
			return verdict
		}
	}

	// closest by type token, first in load order
	token := TypeToken(in.GeneID)
	for i := range group {
		if TypeToken(group[i].GeneID) == token {
			match := idx.Matches(in.SampleID, in.Annotation)
			match[FieldAccession] = false
			verdict.Category = PartialClosest
			verdict.Row = newVerdictRow(idx, in, group[i].GeneID, match, PartialClosest)
			return verdict
		}
	}

	verdict.Category = TypeMismatch
	return verdict
}

func newVerdictRow(idx *Index, in InputRecord, gtID string, match [4]bool, c Category) *VerdictRow {
	return &VerdictRow{
		Strain:            idx.Strain(in.SampleID),
		SampleID:          in.SampleID,
		GroundTruthGeneID: gtID,
		InputGeneID:       in.GeneID,
		TypeMatch:         match[FieldType],
		VariantMatch:      match[FieldVariant],
		AlleleMatch:       match[FieldAllele],
		AccessionMatch:    match[FieldAccession],
		Category:          c,
	}
}

// Result accumulates verdict rows and diagnostic sample lists over one validation run.
// Diagnostic lists keep first-seen order without duplicates.
type Result struct {
	Rows []*VerdictRow

	NegativeControls []string
	MissingFromInput []string
	NotFound         []string
	TypeMismatches   []string

	// input records per category, skipped singleton repeats excluded;
	// MissingFromInput counts samples
	Counts map[Category]int
}

// Validate reconciles every input record against the index in a single pass.
func Validate(idx *Index, inputs []InputRecord) *Result {
	var (
		result = &Result{Counts: make(map[Category]int)}

		seenInput = make(map[string]bool)
		rowSample = make(map[string]bool)
	)
	for _, in := range inputs {
		seenInput[in.SampleID] = true

		verdict := Reconcile(in, idx)
		if verdict.Category.HasRow() {
			group, _ := idx.Lookup(in.SampleID)
			if len(group) == 1 && rowSample[in.SampleID] {
				slog.Debug("skip repeated singleton sample", "SeqID", in.SampleID)
				continue
			}
			rowSample[in.SampleID] = true
			result.Rows = append(result.Rows, verdict.Row)
		}
		result.Counts[verdict.Category]++

		switch verdict.Category {
		case NoGroundTruth:
			result.NotFound = append(result.NotFound, in.SampleID)
		case TypeMismatch:
			slog.Debug("type mismatch", "SeqID", in.SampleID, "gene_id", in.GeneID)
			result.TypeMismatches = append(result.TypeMismatches, in.SampleID)
		}
	}

	result.NegativeControls = idx.NegativeControls()
	for _, id := range idx.SampleIDs() {
		if !seenInput[id] && !idx.IsNegativeControl(id) {
			result.MissingFromInput = append(result.MissingFromInput, id)
		}
	}
	result.Counts[MissingFromInput] = len(result.MissingFromInput)

	result.NotFound = lo.Uniq(result.NotFound)
	result.TypeMismatches = lo.Uniq(result.TypeMismatches)
	return result
}
