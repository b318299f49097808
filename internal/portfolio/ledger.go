package portfolio

import (
	"errors"

	"github.com/storyvest/storyvest/internal/scenario"
)

var (
	// ErrInsufficientFunds means the aggregate buy cost of a turn's deltas
	// exceeds the current cash balance. Recoverable: nothing is applied.
	ErrInsufficientFunds = errors.New("insufficient funds for requested buys")
	// ErrInvalidSell means a sell delta exceeds the current holding.
	// Recoverable: nothing is applied.
	ErrInvalidSell = errors.New("sell exceeds current holdings")
)

// HistoryEntry is one audit record of portfolio state after a turn's
// decision batch was committed. Holdings is a snapshot, safe to retain.
type HistoryEntry struct {
	Turn            int            `json:"turn"`
	CashAfter       float64        `json:"balance"`
	TotalAssetValue float64        `json:"total_asset_value"`
	Holdings        map[string]int `json:"investments"`
}

// Ledger is the sole mutator of cash and share holdings, and the single
// source of truth for asset valuation. Share counts are whole shares; there
// is no short selling, so committed state always has non-negative cash and
// holdings.
type Ledger struct {
	cash     float64
	holdings map[string]int
}

// NewLedger creates a ledger holding only cash.
func NewLedger(cash float64) *Ledger {
	return &Ledger{cash: cash, holdings: make(map[string]int)}
}

// Cash returns the current cash balance.
func (l *Ledger) Cash() float64 { return l.cash }

// Shares returns the current share count for a stock (zero when not held).
func (l *Ledger) Shares(name string) int { return l.holdings[name] }

// Holdings returns a copy of the current holdings with zero-count entries
// dropped.
func (l *Ledger) Holdings() map[string]int {
	out := make(map[string]int, len(l.holdings))
	for name, n := range l.holdings {
		if n != 0 {
			out[name] = n
		}
	}
	return out
}

// TotalValue is cash plus the value of every holding at the turn's prices.
// A held stock missing from the turn contributes nothing; the turn-number
// invariant makes that case unreachable in practice.
func (l *Ledger) TotalValue(turn scenario.Turn) float64 {
	total := l.cash
	for name, shares := range l.holdings {
		if shares <= 0 {
			continue
		}
		if price, ok := turn.Price(name); ok {
			total += float64(shares) * price
		}
	}
	return total
}

// Apply commits a batch of share deltas (positive=buy, negative=sell) at the
// turn's prices, atomically: either every delta is applied or none is. It
// returns the history entry reflecting the post-commit state. Deltas for
// stocks absent from the turn are deliberately ignored rather than rejected.
func (l *Ledger) Apply(turn scenario.Turn, deltas map[string]int) (HistoryEntry, error) {
	if err := Check(deltas, l, turn); err != nil {
		return HistoryEntry{}, err
	}

	for _, s := range turn.Stocks {
		delta := deltas[s.Name]
		if delta == 0 {
			continue
		}
		l.cash -= float64(delta) * s.CurrentValue
		l.holdings[s.Name] += delta
	}

	return HistoryEntry{
		Turn:            turn.TurnNumber,
		CashAfter:       l.cash,
		TotalAssetValue: l.TotalValue(turn),
		Holdings:        l.Holdings(),
	}, nil
}
