package portfolio

import (
	"errors"
	"testing"

	"github.com/storyvest/storyvest/internal/scenario"
)

func testTurn() scenario.Turn {
	return scenario.Turn{
		TurnNumber: 1,
		Stocks: []scenario.Stock{
			{Name: "Straw House", CurrentValue: 100},
			{Name: "Wood House", CurrentValue: 50},
			{Name: "Brick House", CurrentValue: 200},
		},
	}
}

func TestApply_BuyThenSellConservesValue(t *testing.T) {
	l := NewLedger(1000)
	turn := testTurn()

	entry, err := l.Apply(turn, map[string]int{"Straw House": 3})
	if err != nil {
		t.Fatalf("buy err=%v", err)
	}
	if l.Cash() != 700 {
		t.Fatalf("cash=%v, want 700", l.Cash())
	}
	if l.Shares("Straw House") != 3 {
		t.Fatalf("shares=%d, want 3", l.Shares("Straw House"))
	}
	if entry.TotalAssetValue != 1000 {
		t.Fatalf("total after buy=%v, want 1000", entry.TotalAssetValue)
	}

	entry, err = l.Apply(turn, map[string]int{"Straw House": -3})
	if err != nil {
		t.Fatalf("sell err=%v", err)
	}
	if l.Cash() != 1000 || l.Shares("Straw House") != 0 {
		t.Fatalf("after round trip cash=%v shares=%d", l.Cash(), l.Shares("Straw House"))
	}
	if entry.TotalAssetValue != 1000 {
		t.Fatalf("total after sell=%v, want 1000", entry.TotalAssetValue)
	}
}

func TestApply_RejectsBatchAtomically(t *testing.T) {
	l := NewLedger(1000)
	turn := testTurn()

	// Legal buy and illegal sell in the same batch: nothing may apply.
	_, err := l.Apply(turn, map[string]int{
		"Straw House": 5,
		"Wood House":  -2,
	})
	if !errors.Is(err, ErrInvalidSell) {
		t.Fatalf("err=%v, want ErrInvalidSell", err)
	}
	if l.Cash() != 1000 {
		t.Fatalf("cash=%v after rejected batch, want 1000", l.Cash())
	}
	if len(l.Holdings()) != 0 {
		t.Fatalf("holdings=%v after rejected batch, want none", l.Holdings())
	}
}

func TestApply_AggregateBuyCostAgainstCash(t *testing.T) {
	l := NewLedger(1000)
	turn := testTurn()

	// 6*100 + 9*50 = 1050: each leg alone is affordable, the batch is not.
	_, err := l.Apply(turn, map[string]int{
		"Straw House": 6,
		"Wood House":  9,
	})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}
	if l.Cash() != 1000 {
		t.Fatalf("cash=%v after rejected batch, want 1000", l.Cash())
	}

	// Exactly affordable: 6*100 + 8*50 = 1000.
	if _, err := l.Apply(turn, map[string]int{"Straw House": 6, "Wood House": 8}); err != nil {
		t.Fatalf("exact-cost batch err=%v", err)
	}
	if l.Cash() != 0 {
		t.Fatalf("cash=%v, want 0", l.Cash())
	}
}

func TestApply_MixedBatchUsesSameTurnPrices(t *testing.T) {
	l := NewLedger(1000)
	turn := testTurn()

	if _, err := l.Apply(turn, map[string]int{"Wood House": 4}); err != nil {
		t.Fatalf("setup buy err=%v", err)
	}

	// Sell proceeds do not fund buys within the same batch: the buy side
	// alone must fit in cash.
	entry, err := l.Apply(turn, map[string]int{
		"Wood House":  -4,
		"Brick House": 4,
	})
	if err != nil {
		t.Fatalf("mixed batch err=%v", err)
	}
	if l.Cash() != 200 {
		t.Fatalf("cash=%v, want 200", l.Cash())
	}
	if l.Shares("Wood House") != 0 || l.Shares("Brick House") != 4 {
		t.Fatalf("holdings=%v", l.Holdings())
	}
	if entry.TotalAssetValue != 1000 {
		t.Fatalf("total=%v, want 1000", entry.TotalAssetValue)
	}
}

func TestCheck_BuySideCannotBorrowFromSells(t *testing.T) {
	l := NewLedger(100)
	turn := testTurn()
	if _, err := l.Apply(turn, map[string]int{"Wood House": 2}); err != nil {
		t.Fatalf("setup err=%v", err)
	}

	// Cash is 0; selling 2*50 would raise 100, but the 1-share buy must be
	// covered by cash on hand before the batch.
	err := Check(map[string]int{"Wood House": -2, "Straw House": 1}, l, turn)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}
}

func TestTotalValue_MarksHoldingsToTurnPrices(t *testing.T) {
	l := NewLedger(1000)
	turn := testTurn()
	if _, err := l.Apply(turn, map[string]int{"Straw House": 2}); err != nil {
		t.Fatalf("buy err=%v", err)
	}

	later := testTurn()
	later.TurnNumber = 2
	later.Stocks[0].CurrentValue = 150

	if got := l.TotalValue(later); got != 1100 {
		t.Fatalf("TotalValue=%v, want 1100", got)
	}
}

func TestHoldings_CopyDropsZeroEntries(t *testing.T) {
	l := NewLedger(1000)
	turn := testTurn()
	if _, err := l.Apply(turn, map[string]int{"Straw House": 1}); err != nil {
		t.Fatalf("buy err=%v", err)
	}
	if _, err := l.Apply(turn, map[string]int{"Straw House": -1}); err != nil {
		t.Fatalf("sell err=%v", err)
	}

	h := l.Holdings()
	if len(h) != 0 {
		t.Fatalf("holdings=%v, want empty", h)
	}
	h["Straw House"] = 99
	if l.Shares("Straw House") != 0 {
		t.Fatalf("mutating the copy leaked into the ledger")
	}
}

func TestIsHold(t *testing.T) {
	if !IsHold(nil) || !IsHold(map[string]int{"Straw House": 0}) {
		t.Fatalf("zero batches should be holds")
	}
	if IsHold(map[string]int{"Straw House": 1}) {
		t.Fatalf("non-zero batch reported as hold")
	}
}
