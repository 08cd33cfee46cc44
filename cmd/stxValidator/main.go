package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"stxValidator/pkg/stx"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"
)

// flag
var (
	groundTruth = flag.String(
		"gt",
		"ground_truth.csv",
		"ground truth csv with SeqID,Strain,gene_id",
	)
	input = flag.String(
		"i",
		"input.csv",
		"input csv with SeqID,gene_id",
	)
	output = flag.String(
		"o",
		"output.tsv",
		"output tsv: verdict table followed by accuracy summary",
	)
	outputXlsx = flag.String(
		"xlsx",
		"",
		"optional output xlsx",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	for _, path := range []string{*groundTruth, *input} {
		if !osUtil.FileExists(path) {
			flag.PrintDefaults()
			log.Fatalf("file not found: %s", path)
		}
	}

	report := simpleUtil.HandleError(run(*groundTruth, *input))

	stx.WriteReport(*output, report)
	if *outputXlsx != "" {
		simpleUtil.CheckErr(stx.WriteXlsx(*outputXlsx, report))
	}

	stx.WriteSummary(os.Stdout, report)
}

func run(groundTruthPath, inputPath string) (*stx.Report, error) {
	truth, err := stx.LoadGroundTruth(groundTruthPath)
	if err != nil {
		return nil, err
	}
	inputs, err := stx.LoadInput(inputPath)
	if err != nil {
		return nil, err
	}

	idx := stx.NewIndex(truth)
	slog.Info("index", "samples", idx.Len(), "negativeControls", len(idx.NegativeControls()))

	result := stx.Validate(idx, inputs)
	slog.Info(
		"validate",
		"matched", result.Counts[stx.Matched],
		"closest", result.Counts[stx.PartialClosest],
		"notFound", result.Counts[stx.NoGroundTruth],
		"negativeControl", result.Counts[stx.NegativeControl],
		"typeMismatch", result.Counts[stx.TypeMismatch],
		"missing", result.Counts[stx.MissingFromInput],
	)
	return result.Report(), nil
}
