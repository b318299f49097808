package portfolio

import (
	"fmt"

	"github.com/storyvest/storyvest/internal/scenario"
)

// Check is the pre-flight legality test for a batch of share deltas against
// the current ledger state and a turn's prices. It has no side effects, so
// strategy output and user input can be checked before anything commits.
//
// Rules: a sell may not exceed the current holding, and the aggregate buy
// cost across the whole batch may not exceed cash before any of the batch is
// applied. Zero deltas are always legal. Check reports the first violation;
// it never clamps.
func Check(deltas map[string]int, l *Ledger, turn scenario.Turn) error {
	var buyCost float64
	for _, s := range turn.Stocks {
		delta := deltas[s.Name]
		switch {
		case delta < 0:
			if -delta > l.Shares(s.Name) {
				return fmt.Errorf("%w: %s (have %d, sell %d)",
					ErrInvalidSell, s.Name, l.Shares(s.Name), -delta)
			}
		case delta > 0:
			buyCost += float64(delta) * s.CurrentValue
		}
	}
	if buyCost > l.Cash() {
		return fmt.Errorf("%w: need %.1f, have %.1f", ErrInsufficientFunds, buyCost, l.Cash())
	}
	return nil
}

// IsHold reports whether a delta batch changes nothing. An all-zero batch is
// still recorded as an explicit hold action so behavioral analytics see it.
func IsHold(deltas map[string]int) bool {
	for _, d := range deltas {
		if d != 0 {
			return false
		}
	}
	return true
}
