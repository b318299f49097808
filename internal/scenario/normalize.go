package scenario

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyScenario means there are no turns to simulate. This is the
	// one malformation that cannot be repaired.
	ErrEmptyScenario = errors.New("scenario has no turns")
)

// Normalize repairs a scenario in place so the simulation only ever sees
// well-formed turns. The upstream model is unreliable, so repair is
// deliberately lenient: turns are sorted, turn numbers are re-derived from
// position whenever they are missing, duplicated or non-sequential, and a
// turn without a usable stock list gets the default three-stock set.
// An empty scenario is the only fatal case.
func Normalize(s *Scenario) error {
	if s == nil || len(s.Turns) == 0 {
		return ErrEmptyScenario
	}

	sort.SliceStable(s.Turns, func(i, j int) bool {
		return s.Turns[i].TurnNumber < s.Turns[j].TurnNumber
	})

	for i := range s.Turns {
		t := &s.Turns[i]
		if t.TurnNumber != i+1 {
			t.TurnNumber = i + 1
		}
		if len(t.Stocks) == 0 {
			t.Stocks = defaultStocks(i)
		}
		for j := range t.Stocks {
			if t.Stocks[j].CurrentValue < 0 {
				return fmt.Errorf("turn %d: stock %q has negative price %v",
					t.TurnNumber, t.Stocks[j].Name, t.Stocks[j].CurrentValue)
			}
		}
	}
	return nil
}

// defaultStocks synthesizes the default three-house stock list for a turn
// that arrived without one. Prices drift slightly with the turn index so the
// repaired scenario is still playable.
func defaultStocks(turnIdx int) []Stock {
	i := float64(turnIdx)
	return []Stock{
		{
			Name:         "Straw House",
			Description:  "Built from straw: finished fast, holds up poorly",
			InitialValue: 100,
			CurrentValue: 100 + i*2,
			RiskLevel:    "high risk, high return",
		},
		{
			Name:         "Wood House",
			Description:  "Built from wood: decent speed, decent sturdiness",
			InitialValue: 100,
			CurrentValue: 100 + i,
			RiskLevel:    "balanced",
		},
		{
			Name:         "Brick House",
			Description:  "Built from brick: slow to finish, very durable",
			InitialValue: 100,
			CurrentValue: 100 + i*3,
			RiskLevel:    "long-term hold",
		},
	}
}
