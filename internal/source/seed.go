package source

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/huangsam/rategame/schema"
)

//go:generate go run ../../cmd/rategame criteria init --force --criteria-file ../../Resources/rating_criteria.parquet

//go:embed seed_criteria.csv
var seedCriteria []byte

// SeedTable returns the built-in criteria table used to create the criteria resource.
func SeedTable() (schema.CriteriaTable, error) {
	table, err := readCSV(bytes.NewReader(seedCriteria))
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in criteria: %w", err)
	}
	return validateTable(table)
}
