package mentor

import (
	"fmt"

	"github.com/storyvest/storyvest/internal/scenario"
)

// Analysis is a rule-based reading of the player's current position.
type Analysis struct {
	TotalAssets      float64  `json:"total_assets"`
	InvestedValue    float64  `json:"investment_value"`
	CashBalance      float64  `json:"cash_balance"`
	InvestedRatio    float64  `json:"investment_ratio"`
	RiskLevel        string   `json:"risk_level"`
	RiskScore        int      `json:"risk_score"`
	MaxConcentration float64  `json:"max_concentration"`
	UniqueStocks     int      `json:"unique_stocks"`
	Notes            []string `json:"notes"`
}

// Analyze scores the player's holdings against the current turn: how much
// is invested, how concentrated it is, and how diversified. The scoring is
// a deliberately simple rule engine, not a model.
func Analyze(turn scenario.Turn, holdings map[string]int, balance float64) Analysis {
	a := Analysis{CashBalance: balance}

	var totalShares, maxShares int
	for name, shares := range holdings {
		if shares <= 0 {
			continue
		}
		if price, ok := turn.Price(name); ok {
			a.InvestedValue += float64(shares) * price
		}
		totalShares += shares
		if shares > maxShares {
			maxShares = shares
		}
		a.UniqueStocks++
	}
	a.TotalAssets = a.InvestedValue + balance
	if a.TotalAssets > 0 {
		a.InvestedRatio = a.InvestedValue / a.TotalAssets * 100
	}

	if totalShares == 0 {
		a.RiskLevel = "uninvested"
		a.Notes = append(a.Notes, "No shares held yet")
		return a
	}

	a.MaxConcentration = float64(maxShares) / float64(totalShares) * 100

	score := 0
	switch {
	case a.MaxConcentration > 80:
		score += 40
		a.Notes = append(a.Notes, "Almost everything is riding on one stock")
	case a.MaxConcentration > 60:
		score += 20
		a.Notes = append(a.Notes, "One stock carries a lot of weight")
	}
	switch {
	case totalShares > 10:
		score += 30
		a.Notes = append(a.Notes, "That is a lot of shares for one run")
	case totalShares > 7:
		score += 15
	}
	if a.UniqueStocks >= 3 {
		score -= 10
		a.Notes = append(a.Notes, "Nicely spread across stocks")
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	a.RiskScore = score

	switch {
	case score > 70:
		a.RiskLevel = "high"
	case score > 40:
		a.RiskLevel = "medium"
	case score > 20:
		a.RiskLevel = "low"
	default:
		a.RiskLevel = "safe"
	}
	return a
}

// Advice renders an analysis as a short, encouraging tip for the player.
func Advice(a Analysis, p *Profile) string {
	switch {
	case a.UniqueStocks == 0:
		return "You haven't invested yet. Try buying a share of a stock whose story you like!"
	case a.MaxConcentration > 80:
		return "Most of your coins are in one stock. Spreading them out keeps one bad day from hurting too much."
	case a.InvestedRatio > 90:
		return "Nearly all your coins are invested. Keeping a little cash lets you grab a bargain later."
	case p != nil && p.RiskTolerance == RiskConservative && a.InvestedRatio < 30:
		return "You like playing it safe, and that's okay! A small extra investment could still teach you a lot."
	default:
		return fmt.Sprintf("You're holding %d different stocks with %.0f%% of your assets invested. Keep watching the news for clues!",
			a.UniqueStocks, a.InvestedRatio)
	}
}
