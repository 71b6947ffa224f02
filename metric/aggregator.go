package metric

import (
	"context"

	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/pattern"
)

// Weights maps a metric identifier to the weight [Aggregator] applies to
// it when computing the "remediation_cost" metric. Metrics absent from Weights do
// not contribute to remediation cost.
type Weights map[string]float64

// Aggregator computes the full metric suite for a diagram, given the
// cycle and pattern findings already run over it.
type Aggregator struct {
	diag     *diagram.Diagram
	cfinder  *cycle.Finder
	pfinder  *pattern.Finder
	weights  Weights
	devCost  float64
}

// NewAggregator constructs an Aggregator. weights and developmentCost
// configure the "remediation_cost" and "development_cost" metrics respectively; pass a
// nil Weights to contribute no metrics to remediation cost.
func NewAggregator(d *diagram.Diagram, cfinder *cycle.Finder, pfinder *pattern.Finder, weights Weights, developmentCost float64) *Aggregator {
	return &Aggregator{diag: d, cfinder: cfinder, pfinder: pfinder, weights: weights, devCost: developmentCost}
}

// Compute runs the cycle and pattern finders (if not already memoized),
// then returns the full metric suite: the thirteen base metrics followed
// by development cost, remediation cost, and technical debt ratio.
func (a *Aggregator) Compute(ctx context.Context) ([]Metric, error) {
	cycles, err := a.cfinder.Find(ctx)
	if err != nil {
		return nil, err
	}
	patterns, err := a.pfinder.Find(ctx)
	if err != nil {
		return nil, err
	}

	b := base{diag: a.diag, cycles: cycles, patterns: patterns}
	metrics := baseMetrics(b)

	devCost := NewProvided("development_cost", "Development cost", a.devCost)

	var terms []Weighted
	for _, m := range metrics {
		if weight, ok := a.weights[m.Identifier()]; ok {
			terms = append(terms, Weighted{Metric: m, Weight: weight})
		}
	}
	remediationCost := NewLinearCombination("remediation_cost", "Remediation cost", terms)
	techDebtRatio := NewRatio("technical_debt_ratio", "Technical debt ratio", remediationCost, devCost)

	metrics = append(metrics, devCost, remediationCost, techDebtRatio)
	return metrics, nil
}
