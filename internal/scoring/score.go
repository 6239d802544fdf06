// Package scoring computes item desirability scores. All functions are
// pure: same item attributes in, same score out.
package scoring

import (
	"math"

	"eco-wardrobe/internal/model"
)

const (
	maxScore       = 100
	pointsPerWear  = 10
	materialWeight = 0.4
	utilityWeight  = 0.6
)

// Utility scores how well an item is actually used: 10 points per wear,
// capped at 100. An item worn ten or more times counts as fully
// utilized no matter how much further it is worn.
func Utility(item model.Item) int {
	score := item.TimesWorn * pointsPerWear
	if score > maxScore {
		return maxScore
	}
	return score
}

// Total blends material sustainability (40%) with utility (60%) so a
// never-worn eco item cannot dominate the ranking and a heavily worn
// item with a poor material keeps a cap on that term. Rounding is
// half-away-from-zero via math.Round.
func Total(item model.Item) int {
	blended := materialWeight*float64(item.MaterialScore) + utilityWeight*float64(Utility(item))
	return int(math.Round(blended))
}
