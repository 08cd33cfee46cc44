package stx

// Index groups ground truth records by sample, keeping load order.
// It is read-only once built.
type Index struct {
	groups    map[string]*sampleGroup
	sampleIDs []string
}

type sampleGroup struct {
	strain          string
	records         []GroundTruthRecord
	negativeControl bool

	// values seen per field among valid annotations
	values [4]map[string]bool
}

// NewIndex builds the one-to-many sample index. Duplicate rows are kept.
func NewIndex(records []GroundTruthRecord) *Index {
	idx := &Index{groups: make(map[string]*sampleGroup)}
	for _, rec := range records {
		g, ok := idx.groups[rec.SampleID]
		if !ok {
			g = &sampleGroup{strain: rec.Strain}
			for i := range g.values {
				g.values[i] = make(map[string]bool)
			}
			idx.groups[rec.SampleID] = g
			idx.sampleIDs = append(idx.sampleIDs, rec.SampleID)
		}
		g.records = append(g.records, rec)
		if rec.IsNegativeControl() {
			g.negativeControl = true
		}
		if rec.Annotation.Valid {
			for _, f := range Fields {
				g.values[f][rec.Annotation.Field(f)] = true
			}
		}
	}
	return idx
}

// Lookup returns the records of a sample in load order.
func (idx *Index) Lookup(sampleID string) ([]GroundTruthRecord, bool) {
	g, ok := idx.groups[sampleID]
	if !ok {
		return nil, false
	}
	return g.records, true
}

func (idx *Index) Has(sampleID string) bool {
	_, ok := idx.groups[sampleID]
	return ok
}

// SampleIDs lists every sample in first-seen order.
func (idx *Index) SampleIDs() []string {
	return append([]string(nil), idx.sampleIDs...)
}

func (idx *Index) Len() int {
	return len(idx.sampleIDs)
}

// Strain is the first strain label seen for the sample.
func (idx *Index) Strain(sampleID string) string {
	if g, ok := idx.groups[sampleID]; ok {
		return g.strain
	}
	return ""
}

func (idx *Index) IsNegativeControl(sampleID string) bool {
	g, ok := idx.groups[sampleID]
	return ok && g.negativeControl
}

// NegativeControls lists negative control samples in first-seen order.
func (idx *Index) NegativeControls() (ids []string) {
	for _, id := range idx.sampleIDs {
		if idx.groups[id].negativeControl {
			ids = append(ids, id)
		}
	}
	return
}

// Contains reports whether the annotation field value occurs anywhere in the sample's group.
func (idx *Index) Contains(sampleID string, f Field, value string) bool {
	g, ok := idx.groups[sampleID]
	if !ok {
		return false
	}
	return g.values[f][value]
}

// Matches compares each field of the annotation against the sample's value sets.
// A null annotation matches nothing.
func (idx *Index) Matches(sampleID string, a GeneAnnotation) (match [4]bool) {
	if !a.Valid {
		return
	}
	for _, f := range Fields {
		match[f] = idx.Contains(sampleID, f, a.Field(f))
	}
	return
}
