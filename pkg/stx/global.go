package stx

var (
	// NegativeControlMarker in a ground truth gene_id marks a sample expected to carry no stx gene.
	NegativeControlMarker = "Neg_control_no_vtx"

	ColSeqID  = "SeqID"
	ColStrain = "Strain"
	ColGeneID = "gene_id"

	GroundTruthColumns = []string{ColSeqID, ColStrain, ColGeneID}
	InputColumns       = []string{ColSeqID, ColGeneID}

	// placeholder for an absent ground truth gene id in the result table
	EmptyCell = "-"
)

var VerdictTitle = []string{
	"Strain",
	"SeqID",
	"ground_truth_geneid",
	"input_gene_id",
	"stx",
	"variant",
	"allele",
	"accession",
}

var AccuracyTitle = []string{
	"Field",
	"Accuracy(%)",
}

// headings of the diagnostic sections, in report order
var (
	NegativeControlHeading  = "Negative controls (excluded from accuracy):"
	MissingFromInputHeading = "Samples in ground truth but missing from input:"
	NotFoundHeading         = "Samples in input but not found in ground truth:"
	TypeMismatchHeading     = "Samples with unresolved stx type mismatch:"
)

var (
	SheetVerdicts    = "Verdicts"
	SheetAccuracy    = "Accuracy"
	SheetDiagnostics = "Diagnostics"
)
