package strategy

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/storyvest/storyvest/internal/scenario"
)

// Random picks uniformly among every stock plus Pass.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Choose(rng *rand.Rand, turn scenario.Turn, _ *scenario.Turn) string {
	options := append(turn.StockNames(), Pass)
	return options[rng.Intn(len(options))]
}

// Conservative biases toward the lowest-risk stock. With the usual
// three-stock layout the weights are the fixed 0.5/0.3/0.1 split
// (safest first) with 0.1 for Pass; other stock counts split 0.9 across the
// stocks proportionally to their inverse-risk rank.
type Conservative struct{}

func (Conservative) Name() string { return "conservative" }

func (Conservative) Choose(rng *rand.Rand, turn scenario.Turn, _ *scenario.Turn) string {
	options, weights := rankedWeights(turn.Stocks, false)
	return weightedChoice(rng, options, weights)
}

// Aggressive is the mirror of Conservative: it biases toward the
// highest-risk stock (0.6/0.2/0.1 for three stocks, riskiest first).
type Aggressive struct{}

func (Aggressive) Name() string { return "aggressive" }

func (Aggressive) Choose(rng *rand.Rand, turn scenario.Turn, _ *scenario.Turn) string {
	options, weights := rankedWeights(turn.Stocks, true)
	return weightedChoice(rng, options, weights)
}

// Trend follows momentum: each stock is weighted by its growth rate since
// the previous turn (>10% growth 0.7, positive 0.5, mild dip 0.2, worse
// 0.05; Pass always 0.1). On turn 1 there is no lookback, so it behaves as
// Random. The choice stays a weighted draw rather than a greedy argmax so
// repeated runs keep their variance.
type Trend struct{}

func (Trend) Name() string { return "trend" }

func (Trend) Choose(rng *rand.Rand, turn scenario.Turn, prev *scenario.Turn) string {
	if prev == nil {
		return Random{}.Choose(rng, turn, nil)
	}

	options := make([]string, 0, len(turn.Stocks)+1)
	weights := make([]float64, 0, len(turn.Stocks)+1)
	for _, s := range turn.Stocks {
		prevValue, ok := prev.Price(s.Name)
		if !ok {
			prevValue = s.CurrentValue
		}
		var growth float64
		if prevValue > 0 {
			growth = (s.CurrentValue - prevValue) / prevValue
		}

		var w float64
		switch {
		case growth > 0.1:
			w = 0.7
		case growth > 0:
			w = 0.5
		case growth > -0.1:
			w = 0.2
		default:
			w = 0.05
		}
		options = append(options, s.Name)
		weights = append(weights, w)
	}
	options = append(options, Pass)
	weights = append(weights, 0.1)
	return weightedChoice(rng, options, weights)
}

// rankedWeights builds the option/weight lists for the risk-biased
// policies. Stocks are ranked by the riskScore heuristic; aggressive wants
// riskiest first, conservative safest first.
func rankedWeights(stocks []scenario.Stock, aggressive bool) ([]string, []float64) {
	n := len(stocks)
	options := make([]string, 0, n+1)
	weights := make([]float64, n+1)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := riskScore(stocks[idx[a]].RiskLevel), riskScore(stocks[idx[b]].RiskLevel)
		if aggressive {
			return ra > rb
		}
		return ra < rb
	})

	if n == 3 {
		ref := []float64{0.5, 0.3, 0.1}
		if aggressive {
			ref = []float64{0.6, 0.2, 0.1}
		}
		for pos, i := range idx {
			weights[i] = ref[pos]
		}
	} else {
		denom := float64(n*(n+1)) / 2
		for pos, i := range idx {
			weights[i] = 0.9 * float64(n-pos) / denom
		}
	}

	for _, s := range stocks {
		options = append(options, s.Name)
	}
	options = append(options, Pass)
	weights[n] = 0.1
	return options, weights
}

// riskScore maps a free-form risk_level label onto a coarse ordering:
// 2 risky, 1 balanced, 0 defensive. Labels come from the model in either
// English or Korean; unknown text lands in the middle.
func riskScore(level string) int {
	l := strings.ToLower(level)
	switch {
	case strings.Contains(l, "high") || strings.Contains(l, "aggressive") ||
		strings.Contains(l, "고위험"):
		return 2
	case strings.Contains(l, "long") || strings.Contains(l, "stable") ||
		strings.Contains(l, "durable") || strings.Contains(l, "low") ||
		strings.Contains(l, "safe") || strings.Contains(l, "장기"):
		return 0
	default:
		return 1
	}
}
