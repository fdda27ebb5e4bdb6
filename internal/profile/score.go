package profile

import (
	"math"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Score computes the 0-100 confidence score: the sum of tier weights of
// present fields, scaled against the maximum attainable sum over the whole
// catalog. Adding facts can only raise the score, never lower it.
func Score(p *domain.Profile) int {
	sum := 0
	for i := range catalog {
		if catalog[i].Present(p) {
			sum += catalog[i].Weight
		}
	}
	score := int(math.Round(float64(sum) * 100 / float64(maxScore)))
	if score > 100 {
		score = 100
	}
	return score
}
