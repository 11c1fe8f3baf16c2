package core

import (
	"fmt"
	"strconv"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
)

// ConfigureWeights prompts for a rating for every criterion, category by
// category, and returns them in prompt order. Invalid input re-prompts the
// same criterion.
func ConfigureWeights(p contract.Prompter, index *schema.CriteriaIndex) (*schema.WeightMap, error) {
	weights := schema.NewWeightMap()
	p.Say("\nConfiguring ratings for each criterion...")
	for category, criteria := range index.All() {
		p.Sayf("\nCategory: %s\n", category)
		for _, criterion := range criteria {
			weight, err := promptWeight(p, criterion)
			if err != nil {
				return nil, err
			}
			weights.Set(criterion, weight)
			p.Sayf("Rating for '%s' set to %d.\n", criterion, weight)
		}
	}
	p.Say("\nRatings configured successfully.")
	return weights, nil
}

// promptWeight asks until the answer is an integer in the accepted range.
func promptWeight(p contract.Prompter, criterion string) (int, error) {
	prompt := fmt.Sprintf("Enter rating for '%s' (%d-%d): ", criterion, schema.MinWeight, schema.MaxWeight)
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		weight, err := strconv.Atoi(answer)
		if err != nil {
			p.Say("Invalid input. Please enter a numeric value.")
			continue
		}
		if !schema.IsValidWeight(weight) {
			p.Sayf("Rating must be between %d and %d. Please try again.\n", schema.MinWeight, schema.MaxWeight)
			continue
		}
		return weight, nil
	}
}

// CalculateRating computes sum(w_i * (i+1)) / sum(w_i) where i is the
// zero-based insertion position of each criterion. The multiplier comes from
// entry order, not from any declared importance. When the total weight is
// zero the result is returned with Computed unset.
func CalculateRating(weights *schema.WeightMap) schema.RatingResult {
	result := schema.RatingResult{
		MaxRating: schema.MaxRating,
		Breakdown: make([]schema.RatingEntry, 0, weights.Len()),
	}

	position := 0
	for criterion, weight := range weights.All() {
		position++
		contribution := weight * position
		result.TotalWeight += weight
		result.WeightedSum += contribution
		result.Breakdown = append(result.Breakdown, schema.RatingEntry{
			Position:     position,
			Criterion:    criterion,
			Rating:       weight,
			Contribution: contribution,
		})
	}

	if result.TotalWeight == 0 {
		return result
	}
	result.Computed = true
	result.Overall = float64(result.WeightedSum) / float64(result.TotalWeight)
	return result
}
