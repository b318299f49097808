package strategy

import (
	"math/rand"
	"testing"

	"github.com/storyvest/storyvest/internal/scenario"
)

func threeStockTurn() scenario.Turn {
	return scenario.Turn{
		TurnNumber: 1,
		Stocks: []scenario.Stock{
			{Name: "Straw House", CurrentValue: 110, RiskLevel: "high risk, high return"},
			{Name: "Wood House", CurrentValue: 100, RiskLevel: "balanced"},
			{Name: "Brick House", CurrentValue: 100, RiskLevel: "long-term hold"},
		},
	}
}

func TestForName(t *testing.T) {
	cases := map[string]string{
		"random":       "random",
		"conservative": "conservative",
		"AGGRESSIVE":   "aggressive",
		"  trend  ":    "trend",
		"martingale":   "random",
		"":             "random",
	}
	for in, want := range cases {
		if got := ForName(in).Name(); got != want {
			t.Fatalf("ForName(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestChoose_DeterministicForSeed(t *testing.T) {
	turn := threeStockTurn()
	for _, p := range []Policy{Random{}, Conservative{}, Aggressive{}, Trend{}} {
		a := rand.New(rand.NewSource(7))
		b := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			if ca, cb := p.Choose(a, turn, nil), p.Choose(b, turn, nil); ca != cb {
				t.Fatalf("%s: draw %d diverged: %q vs %q", p.Name(), i, ca, cb)
			}
		}
	}
}

func TestRandom_OnlyLegalChoices(t *testing.T) {
	turn := threeStockTurn()
	legal := map[string]bool{Pass: true}
	for _, n := range turn.StockNames() {
		legal[n] = true
	}

	rng := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		c := Random{}.Choose(rng, turn, nil)
		if !legal[c] {
			t.Fatalf("illegal choice %q", c)
		}
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Fatalf("500 draws covered %d of 4 options", len(seen))
	}
}

func TestConservative_FavorsSafestStock(t *testing.T) {
	turn := threeStockTurn()
	counts := drawCounts(t, Conservative{}, turn, nil, 2000)

	if counts["Brick House"] <= counts["Straw House"] {
		t.Fatalf("safest picked %d times, riskiest %d", counts["Brick House"], counts["Straw House"])
	}
	// Weights are 0.5/0.3/0.1/0.1, so the safest stock should
	// land near half the draws.
	if counts["Brick House"] < 800 || counts["Brick House"] > 1200 {
		t.Fatalf("safest picked %d of 2000 draws, want ~1000", counts["Brick House"])
	}
}

func TestAggressive_FavorsRiskiestStock(t *testing.T) {
	turn := threeStockTurn()
	counts := drawCounts(t, Aggressive{}, turn, nil, 2000)

	if counts["Straw House"] <= counts["Brick House"] {
		t.Fatalf("riskiest picked %d times, safest %d", counts["Straw House"], counts["Brick House"])
	}
	if counts["Straw House"] < 1000 || counts["Straw House"] > 1400 {
		t.Fatalf("riskiest picked %d of 2000 draws, want ~1200", counts["Straw House"])
	}
}

func TestTrend_FollowsMomentum(t *testing.T) {
	prev := threeStockTurn()
	turn := threeStockTurn()
	// Straw up 20%, Wood down 30%, Brick flat.
	turn.Stocks[0].CurrentValue = 132
	turn.Stocks[1].CurrentValue = 70

	counts := drawCounts(t, Trend{}, turn, &prev, 2000)

	// Weights 0.7 / 0.05 / 0.2 / 0.1: the grower should dominate.
	if counts["Straw House"] < 1200 {
		t.Fatalf("grower picked %d of 2000 draws, want >1200", counts["Straw House"])
	}
	if counts["Wood House"] > counts["Brick House"] {
		t.Fatalf("crashed stock picked %d times, flat stock %d", counts["Wood House"], counts["Brick House"])
	}
}

func TestTrend_FirstTurnFallsBackToRandom(t *testing.T) {
	turn := threeStockTurn()
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if ct, cr := (Trend{}).Choose(a, turn, nil), (Random{}).Choose(b, turn, nil); ct != cr {
			t.Fatalf("draw %d: trend=%q random=%q", i, ct, cr)
		}
	}
}

func TestRankedWeights_ThreeStockSplit(t *testing.T) {
	stocks := threeStockTurn().Stocks

	options, weights := rankedWeights(stocks, false)
	if len(options) != 4 || options[3] != Pass {
		t.Fatalf("options=%v", options)
	}
	// Options stay in turn order; weights follow risk rank.
	wantConservative := []float64{0.1, 0.3, 0.5, 0.1}
	for i, w := range wantConservative {
		if weights[i] != w {
			t.Fatalf("conservative weights=%v, want %v", weights, wantConservative)
		}
	}

	_, weights = rankedWeights(stocks, true)
	wantAggressive := []float64{0.6, 0.2, 0.1, 0.1}
	for i, w := range wantAggressive {
		if weights[i] != w {
			t.Fatalf("aggressive weights=%v, want %v", weights, wantAggressive)
		}
	}
}

func TestRankedWeights_TwoStockSplit(t *testing.T) {
	stocks := []scenario.Stock{
		{Name: "A", RiskLevel: "high risk"},
		{Name: "B", RiskLevel: "stable"},
	}
	options, weights := rankedWeights(stocks, false)
	if len(options) != 3 {
		t.Fatalf("options=%v", options)
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("weights=%v sum to %v, want 1", weights, total)
	}
	if weights[1] <= weights[0] {
		t.Fatalf("conservative should weight the stable stock higher: %v", weights)
	}
}

func TestWeightedChoice_Degenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := weightedChoice(rng, []string{"a", "b"}, []float64{0, 0}); got != "a" {
		t.Fatalf("zero weights picked %q, want first option", got)
	}
	if got := weightedChoice(rng, nil, nil); got != Pass {
		t.Fatalf("no options picked %q, want pass", got)
	}
	if got := weightedChoice(rng, []string{"a", "b"}, []float64{0, 1}); got != "b" {
		t.Fatalf("got %q, want the only positive-weight option", got)
	}
}

func TestRiskScore(t *testing.T) {
	cases := map[string]int{
		"high risk, high return": 2,
		"고위험 고수익":                2,
		"balanced":               1,
		"something else":         1,
		"long-term hold":         0,
		"장기 보유":                  0,
		"stable income":          0,
	}
	for level, want := range cases {
		if got := riskScore(level); got != want {
			t.Fatalf("riskScore(%q)=%d, want %d", level, got, want)
		}
	}
}

func drawCounts(t *testing.T, p Policy, turn scenario.Turn, prev *scenario.Turn, n int) map[string]int {
	t.Helper()
	rng := rand.New(rand.NewSource(99))
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[p.Choose(rng, turn, prev)]++
	}
	return counts
}
