package stx

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/samber/lo"
)

// GroundTruthRecord is one row of the curated ground truth table.
type GroundTruthRecord struct {
	SampleID   string
	Strain     string
	GeneID     string
	Annotation GeneAnnotation
}

// IsNegativeControl reports whether the record carries the negative control marker.
func (r *GroundTruthRecord) IsNegativeControl() bool {
	return strings.Contains(r.GeneID, NegativeControlMarker)
}

// InputRecord is one row of the caller output table.
type InputRecord struct {
	SampleID   string
	GeneID     string
	Annotation GeneAnnotation
}

func NewGroundTruthRecord(sampleID, strain, geneID string) GroundTruthRecord {
	return GroundTruthRecord{
		SampleID:   sampleID,
		Strain:     strain,
		GeneID:     geneID,
		Annotation: ParseGeneID(geneID),
	}
}

func NewInputRecord(sampleID, geneID string) InputRecord {
	return InputRecord{
		SampleID:   sampleID,
		GeneID:     geneID,
		Annotation: ParseGeneID(geneID),
	}
}

// LoadGroundTruth reads a comma separated ground truth table with SeqID, Strain and gene_id columns.
func LoadGroundTruth(path string) (records []GroundTruthRecord, err error) {
	rows, err := readTable(path, GroundTruthColumns)
	if err != nil {
		return
	}
	for _, row := range rows {
		records = append(records, NewGroundTruthRecord(row[ColSeqID], row[ColStrain], row[ColGeneID]))
	}
	slog.Info("LoadGroundTruth", "path", path, "records", len(records))
	return
}

// LoadInput reads a comma separated caller output table with SeqID and gene_id columns.
func LoadInput(path string) (records []InputRecord, err error) {
	rows, err := readTable(path, InputColumns)
	if err != nil {
		return
	}
	for _, row := range rows {
		records = append(records, NewInputRecord(row[ColSeqID], row[ColGeneID]))
	}
	slog.Info("LoadInput", "path", path, "records", len(records))
	return
}

func readTable(path string, required []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer simpleUtil.DeferClose(f)

	rows, err := ReadTable(f, required)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// ReadTable parses a headed comma separated table into one map per row, keyed by column name.
// All values are kept as text, unchanged; cells missing from short rows read as empty strings.
func ReadTable(r io.Reader, required []string) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	title, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}
	for i := range title {
		title[i] = strings.TrimSpace(strings.TrimPrefix(title[i], "\ufeff"))
	}
	for _, col := range required {
		if !lo.Contains(title, col) {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var rows []map[string]string
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(line) {
			continue
		}
		row := make(map[string]string, len(title))
		for i, key := range title {
			if i < len(line) {
				row[key] = line[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(line []string) bool {
	return lo.EveryBy(line, func(cell string) bool { return strings.TrimSpace(cell) == "" })
}
