// Package sim drives the turn-based investment simulation: an automated
// Runner that benchmarks allocation policies against a scenario, and an
// interactive Session that walks a player through it.
package sim

import (
	"math/rand"
	"time"

	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/strategy"
)

// Runner executes automated strategy runs over a scenario. Runs are
// sequential and share the Runner's random source, so a fixed Seed
// reproduces every choice and every synthetic last-turn price.
type Runner struct {
	cfg Config
	rng *rand.Rand
}

// NewRunner creates a Runner. A zero Seed falls back to the clock.
func NewRunner(cfg Config) *Runner {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Run plays the whole scenario under one policy.
//
// The automated mode uses the forward-profit model: the chosen stock's
// price this turn against its price next turn decides the turn's profit,
// applied to the full capital. On the scenario's last turn the unknown
// future is modeled as a uniform ±10% perturbation of the current price.
// A policy choice that names no stock in the turn is reduced to a pass
// instead of failing the run.
func (r *Runner) Run(scn *scenario.Scenario, policy strategy.Policy) (*Summary, error) {
	if scn == nil || scn.Len() == 0 {
		return nil, scenario.ErrEmptyScenario
	}

	capital := r.cfg.InitialCapital
	history := make([]TurnRecord, 0, scn.Len())

	for i, turn := range scn.Turns {
		var prev *scenario.Turn
		if i > 0 {
			prev = &scn.Turns[i-1]
		}

		choice := policy.Choose(r.rng, turn, prev)
		current, ok := turn.Price(choice)
		if choice != strategy.Pass && !ok {
			choice = strategy.Pass
		}

		rec := TurnRecord{
			Turn:          turn.TurnNumber,
			Investment:    choice,
			News:          turn.News,
			Event:         turn.EventDescription,
			CapitalBefore: capital,
		}

		if choice != strategy.Pass {
			var next float64
			if i < scn.Len()-1 {
				next, ok = scn.Turns[i+1].Price(choice)
				if !ok {
					next = current
				}
			} else {
				next = current * (1 + (r.rng.Float64()*0.2 - 0.1))
			}

			var profitRate float64
			if current > 0 {
				profitRate = (next - current) / current
			}
			profit := capital * profitRate
			capital += profit

			rec.Profit = profit
			rec.ProfitRate = profitRate
		}
		rec.CapitalAfter = capital
		history = append(history, rec)
	}

	profitRate := (capital - r.cfg.InitialCapital) / r.cfg.InitialCapital * 100
	return &Summary{
		Strategy:       policy.Name(),
		InitialCapital: r.cfg.InitialCapital,
		FinalCapital:   capital,
		ProfitRate:     profitRate,
		ResultMessage:  ResultMessage(profitRate),
		History:        history,
	}, nil
}
