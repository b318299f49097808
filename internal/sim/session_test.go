package sim

import (
	"errors"
	"testing"

	"github.com/storyvest/storyvest/internal/portfolio"
	"github.com/storyvest/storyvest/internal/scenario"
)

func TestSession_PlayThrough(t *testing.T) {
	scn := singleStockScenario(100, 110, 120)
	s, err := NewSession(scn, Config{InitialCapital: 1000})
	if err != nil {
		t.Fatalf("NewSession err=%v", err)
	}

	// Turn 1: buy 5 at 100.
	entry, err := s.Submit(map[string]int{"Brick House": 5})
	if err != nil {
		t.Fatalf("turn 1 err=%v", err)
	}
	if entry.Turn != 1 || entry.CashAfter != 500 {
		t.Fatalf("turn 1 entry=%+v", entry)
	}

	// Turn 2: hold. Assets mark to the new price.
	if got := s.TotalAssets(); got != 1050 {
		t.Fatalf("assets on turn 2=%v, want 1050", got)
	}
	if _, err := s.Submit(nil); err != nil {
		t.Fatalf("turn 2 err=%v", err)
	}

	// Turn 3: sell everything at 120.
	entry, err = s.Submit(map[string]int{"Brick House": -5})
	if err != nil {
		t.Fatalf("turn 3 err=%v", err)
	}
	if entry.CashAfter != 1100 {
		t.Fatalf("cash after sell=%v, want 1100", entry.CashAfter)
	}

	if !s.Finished() {
		t.Fatalf("session not finished after last turn")
	}
	summary := s.Summary()
	if summary.FinalCapital != 1100 || summary.ProfitRate != 10 {
		t.Fatalf("summary final=%v rate=%v", summary.FinalCapital, summary.ProfitRate)
	}
	if summary.Strategy != "interactive" {
		t.Fatalf("strategy=%q", summary.Strategy)
	}
	if len(summary.LedgerHistory) != 3 {
		t.Fatalf("ledger history len=%d, want 3", len(summary.LedgerHistory))
	}
	for i, e := range summary.LedgerHistory {
		if e.Turn != i+1 {
			t.Fatalf("history entry %d has turn %d", i, e.Turn)
		}
	}
}

func TestSession_RejectedBatchStaysOnTurn(t *testing.T) {
	scn := singleStockScenario(100, 110)
	s, err := NewSession(scn, Config{InitialCapital: 1000})
	if err != nil {
		t.Fatalf("NewSession err=%v", err)
	}

	if _, err := s.Submit(map[string]int{"Brick House": -1}); !errors.Is(err, portfolio.ErrInvalidSell) {
		t.Fatalf("err=%v, want ErrInvalidSell", err)
	}
	if _, err := s.Submit(map[string]int{"Brick House": 11}); !errors.Is(err, portfolio.ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}

	turn, ok := s.CurrentTurn()
	if !ok || turn.TurnNumber != 1 {
		t.Fatalf("after rejections on turn %d ok=%v, want turn 1", turn.TurnNumber, ok)
	}
	if s.Balance() != 1000 || len(s.History()) != 0 || len(s.Actions()) != 0 {
		t.Fatalf("rejected batches left traces: balance=%v history=%d actions=%d",
			s.Balance(), len(s.History()), len(s.Actions()))
	}

	// A corrected submission advances.
	if _, err := s.Submit(map[string]int{"Brick House": 1}); err != nil {
		t.Fatalf("corrected submit err=%v", err)
	}
	if turn, _ := s.CurrentTurn(); turn.TurnNumber != 2 {
		t.Fatalf("turn after commit=%d, want 2", turn.TurnNumber)
	}
}

func TestSession_ActionLog(t *testing.T) {
	scn := singleStockScenario(100, 110, 120)
	s, err := NewSession(scn, DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession err=%v", err)
	}

	if _, err := s.Submit(map[string]int{"Brick House": 2}); err != nil {
		t.Fatalf("buy err=%v", err)
	}
	if _, err := s.Submit(map[string]int{}); err != nil {
		t.Fatalf("hold err=%v", err)
	}
	if _, err := s.Submit(map[string]int{"Brick House": -2}); err != nil {
		t.Fatalf("sell err=%v", err)
	}

	actions := s.Actions()
	if len(actions) != 3 {
		t.Fatalf("logged %d actions, want 3", len(actions))
	}
	if actions[0].Type != ActionBuy || actions[0].Shares != 2 || actions[0].Price != 100 {
		t.Fatalf("buy action=%+v", actions[0])
	}
	if actions[1].Type != ActionHold || actions[1].Stock != "none" {
		t.Fatalf("hold action=%+v", actions[1])
	}
	if actions[2].Type != ActionSell || actions[2].Shares != 2 || actions[2].Price != 120 {
		t.Fatalf("sell action=%+v", actions[2])
	}
}

func TestSession_SubmitAfterFinish(t *testing.T) {
	scn := singleStockScenario(100)
	s, err := NewSession(scn, DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession err=%v", err)
	}
	if _, err := s.Submit(nil); err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if !s.Finished() {
		t.Fatalf("session should be finished")
	}
	if _, err := s.Submit(nil); err == nil {
		t.Fatalf("submit after finish should fail")
	}
	if _, ok := s.CurrentTurn(); ok {
		t.Fatalf("CurrentTurn after finish reported ok")
	}
}

func TestNewSession_EmptyScenario(t *testing.T) {
	if _, err := NewSession(&scenario.Scenario{}, DefaultConfig()); !errors.Is(err, scenario.ErrEmptyScenario) {
		t.Fatalf("err=%v, want ErrEmptyScenario", err)
	}
}
