// Package dataset loads and normalizes the customer dataset from its sources.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
)

// CSVSource loads records from a CSV file with the fixed header schema.
type CSVSource struct {
	Path string
}

var _ contract.RecordSource = &CSVSource{} // Compile-time check

// NewCSVSource creates a CSV-backed record source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Name describes the source for log output.
func (s *CSVSource) Name() string {
	return "csv:" + s.Path
}

// Load reads the file, validates the header, and normalizes every row.
// Unknown extra columns are ignored; a missing required column is fatal.
// The csv reader enforces per-row field cardinality against the header.
func (s *CSVSource) Load(ctx context.Context) (schema.RecordSet, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", s.Path, err)
	}
	defer func() { _ = file.Close() }()

	return parseCSV(ctx, file)
}

// parseCSV consumes CSV content from any reader. Split out so tests can feed
// inline fixtures without touching the filesystem.
func parseCSV(ctx context.Context, r io.Reader) (schema.RecordSet, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records schema.RecordSet
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Includes csv.ErrFieldCount: a row with extra or missing
			// fields is a fatal load-time error, not a skipped row.
			return nil, fmt.Errorf("malformed CSV row: %w", err)
		}
		records = append(records, normalizeRow(func(col string) string {
			return row[index[col]]
		}))
	}

	return records, nil
}

// mapColumns resolves each required column to its header position.
// A missing column is a fatal configuration error; extra columns are ignored.
func mapColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	index := make(map[string]int, len(schema.RequiredColumns))
	for _, col := range schema.RequiredColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", col)
		}
		index[col] = pos
	}
	return index, nil
}
