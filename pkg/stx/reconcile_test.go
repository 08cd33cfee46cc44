package stx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() *Index {
	return NewIndex([]GroundTruthRecord{
		NewGroundTruthRecord("S1", "X", "Stx2a_001_NC_000001.1"),
		NewGroundTruthRecord("S2", "Y", "Stx2b_002_NC_000002.1"),
		NewGroundTruthRecord("S3", "Z", "Stx1a_003_AB083044.1"),
		NewGroundTruthRecord("S3", "Z", "Stx2a_001_NC_000001.1"),
		NewGroundTruthRecord("S3", "Z", "Stx2a_009_NC_000009.1"),
		NewGroundTruthRecord("N1", "K12", NegativeControlMarker),
		NewGroundTruthRecord("N1", "K12", "Stx2a_001_NC_000001.1"),
		NewGroundTruthRecord("M1", "W", "Stx2e_004_AJ313016.1"),
	})
}

func TestReconcileExactMatch(t *testing.T) {
	idx := newTestIndex()
	v := Reconcile(NewInputRecord("S1", "Stx2a_001_NC-000001.1"), idx)

	assert.Equal(t, Matched, v.Category)
	require.NotNil(t, v.Row)
	assert.Equal(t, "Stx2a_001_NC_000001.1", v.Row.GroundTruthGeneID)
	assert.Equal(t, "Stx2a_001_NC-000001.1", v.Row.InputGeneID)
	assert.Equal(t, "X", v.Row.Strain)
	assert.True(t, v.Row.AllMatch())
	assert.Equal(t, "X\tS1\tStx2a_001_NC_000001.1\tStx2a_001_NC-000001.1\tT\tT\tT\tT", v.Row.String())
}

func TestReconcileExactMatchPipeFormat(t *testing.T) {
	idx := NewIndex([]GroundTruthRecord{
		NewGroundTruthRecord("S1", "X", "Stx2a_001_NC_000001.1|stx2A"),
	})
	v := Reconcile(NewInputRecord("S1", "Stx2a_001_NC-000001.1"), idx)

	assert.Equal(t, Matched, v.Category)
	require.NotNil(t, v.Row)
	assert.Equal(t, "Stx2a_001_NC_000001.1|stx2A", v.Row.GroundTruthGeneID)
	assert.Equal(t, [4]bool{true, true, true, true}, v.Row.Flags())
}

func TestReconcileTypeMismatch(t *testing.T) {
	idx := newTestIndex()
	v := Reconcile(NewInputRecord("S1", "Stx1_099_NC-999999.9"), idx)
	assert.Equal(t, TypeMismatch, v.Category)
	assert.Nil(t, v.Row)

	// Stx2b vs Stx2a differ in the type token
	v = Reconcile(NewInputRecord("S1", "Stx2b_001_BADACC"), idx)
	assert.Equal(t, TypeMismatch, v.Category)
}

func TestReconcileClosestMatchForcesAccession(t *testing.T) {
	idx := newTestIndex()
	v := Reconcile(NewInputRecord("S2", "Stx2b_002_NC-000002.9"), idx)

	assert.Equal(t, PartialClosest, v.Category)
	require.NotNil(t, v.Row)
	assert.Equal(t, "Stx2b_002_NC_000002.1", v.Row.GroundTruthGeneID)
	assert.True(t, v.Row.TypeMatch)
	assert.True(t, v.Row.VariantMatch)
	assert.True(t, v.Row.AlleleMatch)
	assert.False(t, v.Row.AccessionMatch)

	// accession would be a group member, still forced false
	v = Reconcile(NewInputRecord("S2", "Stx2b_001_NC_000002.1|x"), idx)
	assert.Equal(t, PartialClosest, v.Category)
	assert.False(t, v.Row.AccessionMatch)
	assert.False(t, v.Row.AlleleMatch)
}

func TestReconcileClosestFirstInLoadOrder(t *testing.T) {
	idx := newTestIndex()
	v := Reconcile(NewInputRecord("S3", "Stx2a_009_XX000.1"), idx)
	require.Equal(t, PartialClosest, v.Category)
	assert.Equal(t, "Stx2a_001_NC_000001.1", v.Row.GroundTruthGeneID)
	// allele 009 is in the group even though the closest record has 001
	assert.True(t, v.Row.AlleleMatch)
}

func TestReconcileMultiRecordGroup(t *testing.T) {
	idx := newTestIndex()
	v := Reconcile(NewInputRecord("S3", "Stx1a_003_AB083044.1"), idx)
	require.Equal(t, Matched, v.Category)
	assert.Equal(t, "Stx1a_003_AB083044.1", v.Row.GroundTruthGeneID)
	assert.True(t, v.Row.AllMatch())
}

func TestReconcileNegativeControl(t *testing.T) {
	idx := newTestIndex()
	// exact identifier exists in the group but the marker wins
	v := Reconcile(NewInputRecord("N1", "Stx2a_001_NC_000001.1"), idx)
	assert.Equal(t, NegativeControl, v.Category)
	assert.Nil(t, v.Row)
}

func TestReconcileNoGroundTruth(t *testing.T) {
	v := Reconcile(NewInputRecord("ghost", "Stx2a_001_NC_000001.1"), newTestIndex())
	assert.Equal(t, NoGroundTruth, v.Category)
	assert.Nil(t, v.Row)
}

func TestReconcileMalformedInput(t *testing.T) {
	v := Reconcile(NewInputRecord("S1", "Stx2a_garbage"), newTestIndex())
	require.Equal(t, PartialClosest, v.Category)
	assert.Equal(t, [4]bool{}, v.Row.Flags())
}

func TestValidate(t *testing.T) {
	idx := newTestIndex()
	result := Validate(idx, []InputRecord{
		NewInputRecord("S1", "Stx2a_001_NC-000001.1"),
		NewInputRecord("S1", "Stx2a_001_NC_000001.1"),
		NewInputRecord("S3", "Stx1_099_NC-999999.9"),
		NewInputRecord("S3", "Stx1_099_NC-999999.9"),
		NewInputRecord("N1", "Stx2a_001_NC-000001.1"),
		NewInputRecord("ghost", "Stx2a_001_NC-000001.1"),
		NewInputRecord("ghost", "Stx2a_001_NC-000001.1"),
	})

	require.Len(t, result.Rows, 1, "singleton sample S1 keeps one row")
	assert.Equal(t, "S1", result.Rows[0].SampleID)
	assert.Equal(t, "Stx2a_001_NC-000001.1", result.Rows[0].InputGeneID)

	assert.Equal(t, []string{"N1"}, result.NegativeControls)
	assert.Equal(t, []string{"S2", "M1"}, result.MissingFromInput)
	assert.Equal(t, []string{"ghost"}, result.NotFound)
	assert.Equal(t, []string{"S3"}, result.TypeMismatches)

	assert.Equal(t, 1, result.Counts[Matched], "repeated singleton is not counted")
	assert.Equal(t, 2, result.Counts[TypeMismatch])
	assert.Equal(t, 1, result.Counts[NegativeControl])
	assert.Equal(t, 2, result.Counts[NoGroundTruth])
	assert.Equal(t, 2, result.Counts[MissingFromInput])
}

func TestValidateMultiRecordSampleKeepsRows(t *testing.T) {
	idx := newTestIndex()
	result := Validate(idx, []InputRecord{
		NewInputRecord("S3", "Stx1a_003_AB083044.1"),
		NewInputRecord("S3", "Stx2a_001_NC-000001.1"),
	})
	assert.Len(t, result.Rows, 2)
}

func TestNegativeControlNeverMissing(t *testing.T) {
	idx := NewIndex([]GroundTruthRecord{
		NewGroundTruthRecord("N1", "K12", NegativeControlMarker),
		NewGroundTruthRecord("S1", "X", "Stx2a_001_NC_000001.1"),
	})
	result := Validate(idx, nil)

	assert.Equal(t, []string{"N1"}, result.NegativeControls)
	assert.Equal(t, []string{"S1"}, result.MissingFromInput)
	for _, id := range result.MissingFromInput {
		assert.NotContains(t, result.NegativeControls, id)
	}
	assert.Empty(t, result.Rows)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "MATCHED", Matched.String())
	assert.Equal(t, "NEGATIVE_CONTROL", NegativeControl.String())
	assert.Equal(t, "Category(42)", Category(42).String())
	assert.True(t, PartialClosest.HasRow())
	assert.False(t, TypeMismatch.HasRow())
}
