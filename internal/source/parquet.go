package source

import (
	"context"
	"fmt"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/internal/parquet"
	"github.com/huangsam/rategame/schema"
)

// ParquetStore reads and writes the criteria table as a Parquet file.
type ParquetStore struct {
	path string
}

var _ contract.CriteriaStore = &ParquetStore{} // Compile-time check

// NewParquetStore creates a store for the Parquet file at path.
func NewParquetStore(path string) *ParquetStore {
	return &ParquetStore{path: path}
}

// Load implements the CriteriaSource interface.
func (s *ParquetStore) Load(_ context.Context) (schema.CriteriaTable, error) {
	records, err := parquet.ReadCriteriaParquet(s.path)
	if err != nil {
		return nil, err
	}
	return validateTable(parquet.ConvertCriteriaRecords(records))
}

// Save implements the CriteriaStore interface.
func (s *ParquetStore) Save(_ context.Context, table schema.CriteriaTable) error {
	if err := ensureParentDir(s.path); err != nil {
		return err
	}
	if err := parquet.WriteCriteriaParquet(parquet.ConvertCriteriaTable(table), s.path); err != nil {
		return fmt.Errorf("failed to save criteria: %w", err)
	}
	return nil
}

// Location implements the CriteriaSource interface.
func (s *ParquetStore) Location() string {
	return s.path
}
