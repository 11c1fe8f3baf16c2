package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
)

// CSVStore reads and writes the criteria table as CSV with a
// Category,Criterion header row.
type CSVStore struct {
	path string
}

var _ contract.CriteriaStore = &CSVStore{} // Compile-time check

// NewCSVStore creates a store for the CSV file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load implements the CriteriaSource interface.
func (s *CSVStore) Load(_ context.Context) (schema.CriteriaTable, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer func() { _ = file.Close() }()

	table, err := readCSV(file)
	if err != nil {
		return nil, err
	}
	return validateTable(table)
}

// Save implements the CriteriaStore interface.
func (s *CSVStore) Save(_ context.Context, table schema.CriteriaTable) error {
	if err := ensureParentDir(s.path); err != nil {
		return err
	}
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := writeCSV(file, table); err != nil {
		return err
	}
	return file.Close()
}

// Location implements the CriteriaSource interface.
func (s *CSVStore) Location() string {
	return s.path
}

// readCSV parses a criteria table. Columns are located by header name, so
// their order does not matter and extra columns are ignored.
func readCSV(r io.Reader) (schema.CriteriaTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedTable)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	categoryIdx, criterionIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case schema.CategoryColumn:
			categoryIdx = i
		case schema.CriterionColumn:
			criterionIdx = i
		}
	}
	if categoryIdx < 0 || criterionIdx < 0 {
		return nil, fmt.Errorf("%w: header must contain %s and %s", ErrMalformedTable, schema.CategoryColumn, schema.CriterionColumn)
	}

	var table schema.CriteriaTable
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if categoryIdx >= len(record) || criterionIdx >= len(record) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedTable, line, len(record))
		}
		table = append(table, schema.CriteriaRow{
			Category:  record[categoryIdx],
			Criterion: record[criterionIdx],
		})
	}
	return table, nil
}

// writeCSV writes table with its header row.
func writeCSV(w io.Writer, table schema.CriteriaTable) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{schema.CategoryColumn, schema.CriterionColumn}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range table {
		if err := csvWriter.Write([]string{row.Category, row.Criterion}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
