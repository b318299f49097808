package sim

import "github.com/storyvest/storyvest/internal/portfolio"

// TurnRecord is one line of an automated run's history: the decision taken
// on a turn and its modeled profit.
type TurnRecord struct {
	Turn          int     `json:"turn"`
	Investment    string  `json:"investment"`
	News          string  `json:"news,omitempty"`
	Event         string  `json:"event,omitempty"`
	CapitalBefore float64 `json:"capital_before"`
	Profit        float64 `json:"profit"`
	ProfitRate    float64 `json:"profit_rate"`
	CapitalAfter  float64 `json:"capital_after"`
}

// Summary is the final, immutable result of one simulation run.
// Automated runs fill History; interactive sessions fill LedgerHistory.
type Summary struct {
	Strategy       string                   `json:"strategy"`
	InitialCapital float64                  `json:"initial_capital"`
	FinalCapital   float64                  `json:"final_capital"`
	ProfitRate     float64                  `json:"profit_rate"`
	ResultMessage  string                   `json:"result_message"`
	History        []TurnRecord             `json:"investment_history,omitempty"`
	LedgerHistory  []portfolio.HistoryEntry `json:"ledger_history,omitempty"`
}

// ResultMessage maps a final profit rate (in percent) onto the game's
// qualitative result tiers. First match wins.
func ResultMessage(profitRate float64) string {
	switch {
	case profitRate > 50:
		return "Amazing! You're a natural investor!"
	case profitRate > 0:
		return "That was a successful investment run!"
	case profitRate > -20:
		return "A small loss this time. Better luck on the next run!"
	default:
		return "That was a big loss. Invest more carefully next time."
	}
}
