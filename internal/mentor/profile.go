// Package mentor is the personalization collaborator: it reads the
// session's decision log and ledger snapshots (never mutating them) and
// turns them into a player profile and kid-friendly advice.
package mentor

import (
	"time"

	"github.com/storyvest/storyvest/internal/sim"
)

// RiskTolerance is the player's observed appetite for risk.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
	RiskExploring    RiskTolerance = "exploring"
)

// Profile accumulates a player's behavior across games.
type Profile struct {
	PlayerID      string        `json:"player_id"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	GamesPlayed   int           `json:"games_played"`
	TurnsPlayed   int           `json:"total_turns_played"`
	BestReturn    float64       `json:"best_return"`
	AverageReturn float64       `json:"average_return"`
	Actions       []TimedAction `json:"actions_history"`
}

// TimedAction is a sim.Action with the wall-clock time it was recorded.
type TimedAction struct {
	sim.Action
	Timestamp time.Time `json:"timestamp"`
}

// NewProfile creates an empty profile for a player.
func NewProfile(playerID string) *Profile {
	return &Profile{PlayerID: playerID, RiskTolerance: RiskExploring}
}

// RecordAction appends one decision to the history.
func (p *Profile) RecordAction(a sim.Action) {
	p.Actions = append(p.Actions, TimedAction{Action: a, Timestamp: time.Now()})
}

// RecordGame folds a finished run into the aggregate stats and refreshes
// the observed risk tolerance.
func (p *Profile) RecordGame(summary *sim.Summary, turns int) {
	total := p.AverageReturn * float64(p.GamesPlayed)
	p.GamesPlayed++
	p.TurnsPlayed += turns
	p.AverageReturn = (total + summary.ProfitRate) / float64(p.GamesPlayed)
	if summary.ProfitRate > p.BestReturn || p.GamesPlayed == 1 {
		p.BestReturn = summary.ProfitRate
	}
	p.RiskTolerance = p.observedTolerance()
}

// observedTolerance classifies the player by how often they trade versus
// hold. Fewer than five recorded actions stays "exploring".
func (p *Profile) observedTolerance() RiskTolerance {
	if len(p.Actions) < 5 {
		return RiskExploring
	}
	var trades, holds int
	for _, a := range p.Actions {
		if a.Type == sim.ActionHold {
			holds++
		} else {
			trades++
		}
	}
	ratio := float64(trades) / float64(trades+holds)
	switch {
	case ratio > 0.8:
		return RiskAggressive
	case ratio < 0.4:
		return RiskConservative
	default:
		return RiskModerate
	}
}
