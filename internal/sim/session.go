package sim

import (
	"github.com/storyvest/storyvest/internal/portfolio"
	"github.com/storyvest/storyvest/internal/scenario"
)

// ActionType classifies one player decision for behavioral analytics.
type ActionType string

const (
	ActionBuy  ActionType = "buy"
	ActionSell ActionType = "sell"
	ActionHold ActionType = "hold"
)

// Action is one entry of the session's decision log, consumed by the
// mentor collaborator.
type Action struct {
	Turn   int        `json:"turn"`
	Type   ActionType `json:"action_type"`
	Stock  string     `json:"stock_name"`
	Shares int        `json:"shares"`
	Price  float64    `json:"price"`
}

// Session is one interactive play-through of a scenario. Unlike the
// automated Runner it trades real shares through the Ledger: the player may
// adjust several stocks in one submission, holdings are marked to the
// current turn's prices, and a rejected batch leaves the session on the
// same turn awaiting a corrected decision. The session is owned by exactly
// one caller; there is no concurrent writer.
type Session struct {
	scn     *scenario.Scenario
	cfg     Config
	ledger  *portfolio.Ledger
	turnIdx int
	history []portfolio.HistoryEntry
	actions []Action
}

// NewSession starts a session on the first turn.
func NewSession(scn *scenario.Scenario, cfg Config) (*Session, error) {
	if scn == nil || scn.Len() == 0 {
		return nil, scenario.ErrEmptyScenario
	}
	cfg = cfg.withDefaults()
	return &Session{
		scn:    scn,
		cfg:    cfg,
		ledger: portfolio.NewLedger(cfg.InitialCapital),
	}, nil
}

// Finished reports whether every turn has been decided.
func (s *Session) Finished() bool { return s.turnIdx >= s.scn.Len() }

// CurrentTurn returns the turn awaiting a decision. ok is false once the
// session is finished.
func (s *Session) CurrentTurn() (scenario.Turn, bool) {
	if s.Finished() {
		return scenario.Turn{}, false
	}
	return s.scn.Turns[s.turnIdx], true
}

// Scenario returns the session's read-only scenario.
func (s *Session) Scenario() *scenario.Scenario { return s.scn }

// Balance returns the current cash balance.
func (s *Session) Balance() float64 { return s.ledger.Cash() }

// Holdings returns a snapshot of the current share counts.
func (s *Session) Holdings() map[string]int { return s.ledger.Holdings() }

// Shares returns the held share count for one stock.
func (s *Session) Shares(name string) int { return s.ledger.Shares(name) }

// TotalAssets values cash plus holdings at the current turn's prices (the
// final turn's prices once the session is finished).
func (s *Session) TotalAssets() float64 {
	idx := s.turnIdx
	if idx >= s.scn.Len() {
		idx = s.scn.Len() - 1
	}
	return s.ledger.TotalValue(s.scn.Turns[idx])
}

// History returns the committed per-turn ledger snapshots.
func (s *Session) History() []portfolio.HistoryEntry { return s.history }

// Actions returns the decision log for the mentor collaborator.
func (s *Session) Actions() []Action { return s.actions }

// Submit commits the player's share deltas for the current turn and
// advances to the next one. The batch is atomic: any violation rejects the
// whole submission, state stays untouched and the turn does not advance.
// An all-zero batch is recorded as an explicit hold.
func (s *Session) Submit(deltas map[string]int) (portfolio.HistoryEntry, error) {
	turn, ok := s.CurrentTurn()
	if !ok {
		return portfolio.HistoryEntry{}, scenario.ErrEmptyScenario
	}

	entry, err := s.ledger.Apply(turn, deltas)
	if err != nil {
		return portfolio.HistoryEntry{}, err
	}

	logged := false
	for _, stock := range turn.Stocks {
		delta := deltas[stock.Name]
		if delta == 0 {
			continue
		}
		typ := ActionBuy
		if delta < 0 {
			typ = ActionSell
			delta = -delta
		}
		s.actions = append(s.actions, Action{
			Turn:   turn.TurnNumber,
			Type:   typ,
			Stock:  stock.Name,
			Shares: delta,
			Price:  stock.CurrentValue,
		})
		logged = true
	}
	if !logged {
		s.actions = append(s.actions, Action{Turn: turn.TurnNumber, Type: ActionHold, Stock: "none"})
	}

	s.history = append(s.history, entry)
	s.turnIdx++
	return entry, nil
}

// Summary builds the final result. Final capital is the total asset value
// marked at the last turn's prices.
func (s *Session) Summary() *Summary {
	final := s.ledger.TotalValue(s.scn.Turns[s.scn.Len()-1])
	profitRate := (final - s.cfg.InitialCapital) / s.cfg.InitialCapital * 100
	return &Summary{
		Strategy:       "interactive",
		InitialCapital: s.cfg.InitialCapital,
		FinalCapital:   final,
		ProfitRate:     profitRate,
		ResultMessage:  ResultMessage(profitRate),
		LedgerHistory:  s.history,
	}
}
