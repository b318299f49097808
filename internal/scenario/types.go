package scenario

// NoEventSentinels are the event_description values that mean "nothing
// special happened this turn". Generated data uses "none"; imported Korean
// scenario files use "없음".
var NoEventSentinels = map[string]bool{
	"":     true,
	"none": true,
	"없음":   true,
}

// Stock is one tradeable instrument within a turn. InitialValue is fixed at
// scenario creation and identical for the same name across every turn;
// CurrentValue is the live tradeable price for this turn (may be zero for a
// distressed stock, never negative).
type Stock struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	InitialValue float64 `json:"initial_value"`
	CurrentValue float64 `json:"current_value"`
	RiskLevel    string  `json:"risk_level"`
}

// Turn is one immutable step of the scenario: narrative text plus a price
// snapshot for every stock.
type Turn struct {
	TurnNumber       int     `json:"turn_number"`
	News             string  `json:"news"`
	EventDescription string  `json:"event_description"`
	Stocks           []Stock `json:"stocks"`
}

// Scenario is an ordered sequence of turns, conventionally 7-10 of them.
type Scenario struct {
	Theme string `json:"theme,omitempty"`
	Turns []Turn `json:"turns"`
}

// HasEvent reports whether the turn carries a special event beyond the
// no-event sentinel.
func (t Turn) HasEvent() bool {
	return !NoEventSentinels[t.EventDescription]
}

// Price returns the current price of the named stock in this turn.
// ok is false when the stock is absent from the turn's list.
func (t Turn) Price(name string) (float64, bool) {
	for _, s := range t.Stocks {
		if s.Name == name {
			return s.CurrentValue, true
		}
	}
	return 0, false
}

// StockNames returns the instrument names in turn order.
func (t Turn) StockNames() []string {
	names := make([]string, len(t.Stocks))
	for i, s := range t.Stocks {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of turns.
func (s *Scenario) Len() int { return len(s.Turns) }
