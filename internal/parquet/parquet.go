// Package parquet provides data structures and functions for reading and
// writing the criteria table as Parquet using github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/rategame/schema"
	"github.com/parquet-go/parquet-go"
)

// readBatchSize is the number of rows decoded per Read call.
const readBatchSize = 128

// ErrMissingColumn is returned when a Parquet file lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// CriteriaRecord is one row of the criteria table.
// Column names match the Category/Criterion headers of the bundled resource.
type CriteriaRecord struct {
	// Category is the group the criterion belongs to
	Category string `parquet:"Category,optional,snappy"`

	// Criterion is the rated aspect
	Criterion string `parquet:"Criterion,optional,snappy"`
}

// ReadCriteriaParquet reads every CriteriaRecord from the Parquet file at path.
// The file is closed before returning.
func ReadCriteriaParquet(path string) ([]CriteriaRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	// Check the columns up front so a foreign file is reported instead of
	// silently decoding into empty strings
	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	for _, column := range []string{schema.CategoryColumn, schema.CriterionColumn} {
		if _, ok := pf.Schema().Lookup(column); !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	reader := parquet.NewGenericReader[CriteriaRecord](file)
	defer func() { _ = reader.Close() }()

	records := make([]CriteriaRecord, 0, reader.NumRows())
	buf := make([]CriteriaRecord, readBatchSize)
	for {
		n, err := reader.Read(buf)
		records = append(records, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return records, nil
}

// WriteCriteriaParquet writes a slice of CriteriaRecord structs to a Parquet file.
func WriteCriteriaParquet(data []CriteriaRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the CriteriaRecord struct tags
	writer := parquet.NewGenericWriter[CriteriaRecord](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return file.Close()
}

// ConvertCriteriaTable converts a schema.CriteriaTable to records for Parquet export.
func ConvertCriteriaTable(table schema.CriteriaTable) []CriteriaRecord {
	result := make([]CriteriaRecord, len(table))
	for i, row := range table {
		result[i] = CriteriaRecord{
			Category:  row.Category,
			Criterion: row.Criterion,
		}
	}
	return result
}

// ConvertCriteriaRecords converts Parquet records back to a schema.CriteriaTable.
func ConvertCriteriaRecords(records []CriteriaRecord) schema.CriteriaTable {
	result := make(schema.CriteriaTable, len(records))
	for i, record := range records {
		result[i] = schema.CriteriaRow{
			Category:  record.Category,
			Criterion: record.Criterion,
		}
	}
	return result
}
