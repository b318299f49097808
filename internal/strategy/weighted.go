package strategy

import "math/rand"

// weightedChoice draws one option with probability proportional to its
// weight. All policies share this primitive so normalization and tie
// handling are decided exactly once: weights need not sum to 1, a
// non-positive total degenerates to the first option, and the draw walks
// cumulative weights in option order.
func weightedChoice(rng *rand.Rand, options []string, weights []float64) string {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 || len(options) == 0 {
		if len(options) > 0 {
			return options[0]
		}
		return Pass
	}

	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if r < cum {
			return options[i]
		}
	}
	return options[len(options)-1]
}
