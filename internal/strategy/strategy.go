// Package strategy holds the automated allocation policies used to
// benchmark play against a generated scenario. Each policy is a pure
// function of the current turn (and, for trend following, the previous
// turn) plus a caller-owned random source, so a fixed seed reproduces the
// full choice sequence.
package strategy

import (
	"math/rand"
	"strings"

	"github.com/storyvest/storyvest/internal/scenario"
)

// Pass is the decision to trade nothing this turn.
const Pass = "pass"

// Policy picks one stock name (or Pass) for a turn. prev is nil on turn 1.
type Policy interface {
	Name() string
	Choose(rng *rand.Rand, turn scenario.Turn, prev *scenario.Turn) string
}

// Names lists the built-in policies in benchmark order.
func Names() []string {
	return []string{"random", "conservative", "aggressive", "trend"}
}

// ForName returns the named policy. Unknown names fall back to random
// without error; the lenient behavior is deliberate so a typo in a benchmark
// request degrades instead of failing the run.
func ForName(name string) Policy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "conservative":
		return Conservative{}
	case "aggressive":
		return Aggressive{}
	case "trend":
		return Trend{}
	default:
		return Random{}
	}
}
