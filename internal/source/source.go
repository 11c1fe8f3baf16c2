// Package source resolves and implements the criteria table sources.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
)

var (
	// ErrUnsupportedFormat is returned for a source format without an implementation.
	ErrUnsupportedFormat = errors.New("unsupported criteria format")

	// ErrMalformedTable is returned when the table content does not fit the
	// Category/Criterion layout.
	ErrMalformedTable = errors.New("malformed criteria table")
)

// NewStore returns the criteria store for the configured file and format.
func NewStore(cfg *contract.Config) (contract.CriteriaStore, error) {
	switch cfg.CriteriaFormat {
	case schema.ParquetSource:
		return NewParquetStore(cfg.CriteriaFile), nil
	case schema.CSVSource:
		return NewCSVStore(cfg.CriteriaFile), nil
	case schema.YAMLSource:
		return NewYAMLStore(cfg.CriteriaFile), nil
	case schema.SQLiteSource:
		return NewSQLiteStore(cfg.CriteriaFile, cfg.CriteriaTable)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.CriteriaFormat)
	}
}

// validateTable trims every cell and rejects rows with a blank category or criterion.
func validateTable(table schema.CriteriaTable) (schema.CriteriaTable, error) {
	for i := range table {
		table[i].Category = strings.TrimSpace(table[i].Category)
		table[i].Criterion = strings.TrimSpace(table[i].Criterion)
		if table[i].Category == "" || table[i].Criterion == "" {
			return nil, fmt.Errorf("%w: row %d has an empty %s or %s", ErrMalformedTable, i+1, schema.CategoryColumn, schema.CriterionColumn)
		}
	}
	return table, nil
}

// ensureParentDir creates the directory that will hold path.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	return nil
}
