package stx

import (
	"fmt"
	"io"
	"log"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// WriteTable writes the tab separated verdict table with its title line.
func WriteTable(w io.Writer, report *Report) {
	fmtUtil.FprintStringArray(w, VerdictTitle, "\t")
	for _, row := range report.Rows {
		fmtUtil.Fprintln(w, row)
	}
}

// WriteSummary writes the accuracy lines followed by the non-empty diagnostic sections.
func WriteSummary(w io.Writer, report *Report) {
	fmtUtil.Fprintf(w, "\nAccuracy: %.2f%%\n", report.Accuracy.Overall)
	for _, f := range Fields {
		fmtUtil.Fprintf(w, "%s Accuracy: %.2f%%\n", f, report.Accuracy.Field(f))
	}
	for _, section := range report.Sections() {
		if len(section.IDs) == 0 {
			continue
		}
		fmtUtil.Fprintf(w, "\n%s\n", section.Heading)
		for _, id := range section.IDs {
			fmtUtil.Fprintln(w, id)
		}
	}
}

// WriteReport writes the table and the summary block into one file.
func WriteReport(path string, report *Report) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	WriteTable(out, report)
	WriteSummary(out, report)
	log.Printf("Save(%s)", path)
}

// WriteXlsx saves the report as a workbook with verdict, accuracy and diagnostic sheets.
func WriteXlsx(path string, report *Report) (err error) {
	var xlsx = excelize.NewFile()
	defer func() {
		if e := xlsx.Close(); e != nil && err == nil {
			err = e
		}
	}()

	// Verdicts
	if err = xlsx.SetSheetName("Sheet1", SheetVerdicts); err != nil {
		return
	}
	if err = xlsx.SetSheetRow(SheetVerdicts, "A1", &VerdictTitle); err != nil {
		return
	}
	for i, row := range report.Rows {
		gtID := row.GroundTruthGeneID
		if gtID == "" {
			gtID = EmptyCell
		}
		line := []any{
			row.Strain, row.SampleID, gtID, row.InputGeneID,
			tf(row.TypeMatch), tf(row.VariantMatch), tf(row.AlleleMatch), tf(row.AccessionMatch),
		}
		if err = xlsx.SetSheetRow(SheetVerdicts, fmt.Sprintf("A%d", i+2), &line); err != nil {
			return
		}
	}

	// Accuracy
	if _, err = xlsx.NewSheet(SheetAccuracy); err != nil {
		return
	}
	if err = xlsx.SetSheetRow(SheetAccuracy, "A1", &AccuracyTitle); err != nil {
		return
	}
	var accLines = [][]any{{"overall", report.Accuracy.Overall}}
	for _, f := range Fields {
		accLines = append(accLines, []any{f.String(), report.Accuracy.Field(f)})
	}
	for i, line := range accLines {
		if err = xlsx.SetSheetRow(SheetAccuracy, fmt.Sprintf("A%d", i+2), &line); err != nil {
			return
		}
	}

	// Diagnostics, one column per section
	if _, err = xlsx.NewSheet(SheetDiagnostics); err != nil {
		return
	}
	for j, section := range report.Sections() {
		var col = append([]string{section.Heading}, section.IDs...)
		cellName, e := excelize.CoordinatesToCellName(j+1, 1)
		if e != nil {
			return e
		}
		if err = xlsx.SetSheetCol(SheetDiagnostics, cellName, &col); err != nil {
			return
		}
	}

	log.Printf("SaveAs(%s)", path)
	return xlsx.SaveAs(path)
}
