package schema

import (
	"encoding/json"
	"iter"
	"slices"
)

// CriteriaIndex maps each category to its ordered list of criterion names.
// Categories keep the order in which they were first seen, and criteria keep
// the order in which they were appended. Duplicate criterion names are allowed.
type CriteriaIndex struct {
	order  []string
	groups map[string][]string
}

// CategoryCriteria is the serialized form of one CriteriaIndex entry.
type CategoryCriteria struct {
	Category string   `json:"category"`
	Criteria []string `json:"criteria"`
}

// NewCriteriaIndex returns an empty index.
func NewCriteriaIndex() *CriteriaIndex {
	return &CriteriaIndex{groups: make(map[string][]string)}
}

// Append adds criterion to the end of category, creating the category if needed.
func (ix *CriteriaIndex) Append(category, criterion string) {
	if _, ok := ix.groups[category]; !ok {
		ix.order = append(ix.order, category)
	}
	ix.groups[category] = append(ix.groups[category], criterion)
}

// Has reports whether the category exists.
func (ix *CriteriaIndex) Has(category string) bool {
	_, ok := ix.groups[category]
	return ok
}

// Categories returns the category names in index order.
func (ix *CriteriaIndex) Categories() []string {
	return slices.Clone(ix.order)
}

// Criteria returns a copy of the criteria for category, or nil when absent.
func (ix *CriteriaIndex) Criteria(category string) []string {
	return slices.Clone(ix.groups[category])
}

// Contains reports whether any category lists the criterion.
func (ix *CriteriaIndex) Contains(criterion string) bool {
	for _, criteria := range ix.groups {
		if slices.Contains(criteria, criterion) {
			return true
		}
	}
	return false
}

// Len returns the number of categories.
func (ix *CriteriaIndex) Len() int {
	return len(ix.order)
}

// CriteriaCount returns the number of criterion entries across all categories.
func (ix *CriteriaIndex) CriteriaCount() int {
	n := 0
	for _, criteria := range ix.groups {
		n += len(criteria)
	}
	return n
}

// All iterates categories in index order with their criteria.
func (ix *CriteriaIndex) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, category := range ix.order {
			if !yield(category, ix.groups[category]) {
				return
			}
		}
	}
}

// Entries returns the index as an ordered slice.
func (ix *CriteriaIndex) Entries() []CategoryCriteria {
	entries := make([]CategoryCriteria, 0, len(ix.order))
	for category, criteria := range ix.All() {
		entries = append(entries, CategoryCriteria{Category: category, Criteria: slices.Clone(criteria)})
	}
	return entries
}

// MarshalJSON encodes the index as an ordered list so category order survives.
func (ix *CriteriaIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(ix.Entries())
}
