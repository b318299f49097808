package mentor

import (
	"strings"
	"testing"

	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/sim"
)

func analysisTurn() scenario.Turn {
	return scenario.Turn{
		TurnNumber: 1,
		Stocks: []scenario.Stock{
			{Name: "Straw House", CurrentValue: 100},
			{Name: "Wood House", CurrentValue: 50},
			{Name: "Brick House", CurrentValue: 200},
		},
	}
}

func TestAnalyze_Uninvested(t *testing.T) {
	a := Analyze(analysisTurn(), nil, 1000)
	if a.RiskLevel != "uninvested" || a.RiskScore != 0 {
		t.Fatalf("analysis=%+v", a)
	}
	if a.TotalAssets != 1000 || a.InvestedRatio != 0 {
		t.Fatalf("assets=%v ratio=%v", a.TotalAssets, a.InvestedRatio)
	}
}

func TestAnalyze_ConcentratedPosition(t *testing.T) {
	a := Analyze(analysisTurn(), map[string]int{"Straw House": 5}, 500)
	if a.MaxConcentration != 100 {
		t.Fatalf("concentration=%v, want 100", a.MaxConcentration)
	}
	if a.RiskScore != 40 || a.RiskLevel != "low" {
		t.Fatalf("score=%d level=%q", a.RiskScore, a.RiskLevel)
	}
	if a.InvestedValue != 500 || a.TotalAssets != 1000 || a.InvestedRatio != 50 {
		t.Fatalf("invested=%v total=%v ratio=%v", a.InvestedValue, a.TotalAssets, a.InvestedRatio)
	}
}

func TestAnalyze_HeavyConcentratedPosition(t *testing.T) {
	a := Analyze(analysisTurn(), map[string]int{"Straw House": 12}, 100)
	// Full concentration plus a large share count.
	if a.RiskScore != 70 || a.RiskLevel != "medium" {
		t.Fatalf("score=%d level=%q", a.RiskScore, a.RiskLevel)
	}
}

func TestAnalyze_DiversifiedPortfolioScoresSafe(t *testing.T) {
	holdings := map[string]int{"Straw House": 2, "Wood House": 2, "Brick House": 2}
	a := Analyze(analysisTurn(), holdings, 300)
	if a.RiskScore != 0 || a.RiskLevel != "safe" {
		t.Fatalf("score=%d level=%q", a.RiskScore, a.RiskLevel)
	}
	if a.UniqueStocks != 3 {
		t.Fatalf("unique=%d, want 3", a.UniqueStocks)
	}
}

func TestAdvice_MatchesSituation(t *testing.T) {
	turn := analysisTurn()

	empty := Analyze(turn, nil, 1000)
	if got := Advice(empty, nil); !strings.Contains(got, "haven't invested") {
		t.Fatalf("uninvested advice=%q", got)
	}

	concentrated := Analyze(turn, map[string]int{"Straw House": 5}, 10)
	if got := Advice(concentrated, nil); !strings.Contains(got, "one stock") {
		t.Fatalf("concentrated advice=%q", got)
	}
}

func TestProfile_RecordGameAggregates(t *testing.T) {
	p := NewProfile("kid1")

	p.RecordGame(&sim.Summary{ProfitRate: 10}, 10)
	if p.GamesPlayed != 1 || p.AverageReturn != 10 || p.BestReturn != 10 {
		t.Fatalf("after game 1: %+v", p)
	}

	p.RecordGame(&sim.Summary{ProfitRate: -5}, 8)
	if p.GamesPlayed != 2 || p.TurnsPlayed != 18 {
		t.Fatalf("after game 2: %+v", p)
	}
	if p.AverageReturn != 2.5 {
		t.Fatalf("average=%v, want 2.5", p.AverageReturn)
	}
	if p.BestReturn != 10 {
		t.Fatalf("best=%v, want 10", p.BestReturn)
	}
}

func TestObservedTolerance(t *testing.T) {
	record := func(trades, holds int) *Profile {
		p := NewProfile("kid1")
		for i := 0; i < trades; i++ {
			p.RecordAction(sim.Action{Turn: i + 1, Type: sim.ActionBuy, Stock: "Straw House", Shares: 1})
		}
		for i := 0; i < holds; i++ {
			p.RecordAction(sim.Action{Turn: trades + i + 1, Type: sim.ActionHold, Stock: "none"})
		}
		p.RecordGame(&sim.Summary{}, trades+holds)
		return p
	}

	if got := record(2, 1).RiskTolerance; got != RiskExploring {
		t.Fatalf("few actions: %q, want exploring", got)
	}
	if got := record(6, 0).RiskTolerance; got != RiskAggressive {
		t.Fatalf("all trades: %q, want aggressive", got)
	}
	if got := record(1, 5).RiskTolerance; got != RiskConservative {
		t.Fatalf("mostly holds: %q, want conservative", got)
	}
	if got := record(3, 3).RiskTolerance; got != RiskModerate {
		t.Fatalf("even mix: %q, want moderate", got)
	}
}
