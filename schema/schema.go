// Package schema has models and enums shared by every part of rategame.
package schema

// CriteriaRow is a single (Category, Criterion) pair from the criteria table.
type CriteriaRow struct {
	Category  string `json:"category" yaml:"category"`
	Criterion string `json:"criterion" yaml:"criterion"`
}

// CriteriaTable is the ordered criteria table as read from the source.
// It is never modified after it has been loaded.
type CriteriaTable []CriteriaRow

// Len returns the number of rows in the table.
func (t CriteriaTable) Len() int {
	return len(t)
}
