package schema

import "iter"

// WeightMap holds the rating entered for each criterion, in insertion order.
// Setting an existing criterion replaces its value but keeps its position.
type WeightMap struct {
	keys   []string
	values map[string]int
}

// NewWeightMap returns an empty weight map.
func NewWeightMap() *WeightMap {
	return &WeightMap{values: make(map[string]int)}
}

// Set stores weight under criterion.
func (w *WeightMap) Set(criterion string, weight int) {
	if _, ok := w.values[criterion]; !ok {
		w.keys = append(w.keys, criterion)
	}
	w.values[criterion] = weight
}

// Get returns the weight for criterion.
func (w *WeightMap) Get(criterion string) (int, bool) {
	v, ok := w.values[criterion]
	return v, ok
}

// Len returns the number of distinct criteria.
func (w *WeightMap) Len() int {
	return len(w.keys)
}

// Total returns the sum of all weights.
func (w *WeightMap) Total() int {
	total := 0
	for _, v := range w.values {
		total += v
	}
	return total
}

// All iterates criteria and weights in insertion order.
func (w *WeightMap) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, k := range w.keys {
			if !yield(k, w.values[k]) {
				return
			}
		}
	}
}

// IsValidWeight reports whether n is an acceptable rating.
func IsValidWeight(n int) bool {
	return n >= MinWeight && n <= MaxWeight
}
