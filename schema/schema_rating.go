package schema

// RatingEntry is the contribution of a single criterion to the overall rating.
type RatingEntry struct {
	Position     int    `json:"position"`     // 1-based insertion position, also the multiplier
	Criterion    string `json:"criterion"`    // Criterion name
	Rating       int    `json:"rating"`       // User rating in [0,10]
	Contribution int    `json:"contribution"` // Rating * Position
}

// RatingResult is the outcome of a rating calculation.
type RatingResult struct {
	Overall     float64       `json:"overall"`      // Weighted rating, only meaningful when Computed
	MaxRating   float64       `json:"max_rating"`   // Nominal scale maximum
	TotalWeight int           `json:"total_weight"` // Sum of ratings
	WeightedSum int           `json:"weighted_sum"` // Sum of contributions
	Computed    bool          `json:"computed"`     // False when TotalWeight is zero
	Breakdown   []RatingEntry `json:"breakdown"`
}
