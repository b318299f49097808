package sim

import (
	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/strategy"
)

// BatchResult collects one automated run per requested strategy. Results
// keeps a nil entry for a strategy whose run failed; failed strategies are
// excluded from the best-of comparison and never abort the batch.
type BatchResult struct {
	Strategies     []string            `json:"strategies"`
	Results        map[string]*Summary `json:"results"`
	BestStrategy   string              `json:"best_strategy,omitempty"`
	BestProfitRate float64             `json:"best_profit_rate"`
}

// RunBatch runs every named strategy sequentially over the same read-only
// scenario and picks the best by profit rate. Ties resolve to the strategy
// seen first in the request order.
func (r *Runner) RunBatch(scn *scenario.Scenario, names []string) BatchResult {
	res := BatchResult{
		Strategies: names,
		Results:    make(map[string]*Summary, len(names)),
	}

	for _, name := range names {
		summary, err := r.Run(scn, strategy.ForName(name))
		if err != nil {
			res.Results[name] = nil
			continue
		}
		summary.Strategy = name
		res.Results[name] = summary
	}

	for _, name := range names {
		s := res.Results[name]
		if s == nil {
			continue
		}
		if res.BestStrategy == "" || s.ProfitRate > res.BestProfitRate {
			res.BestStrategy = name
			res.BestProfitRate = s.ProfitRate
		}
	}
	return res
}
