package metric_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/metric"
	"github.com/classlens/classlens/pattern"
)

func TestAggregatorComputeIncludesDerivedMetrics(t *testing.T) {
	d := diagram.New()
	a, err := diagram.NewClass("1", "A", false, nil)
	require.NoError(t, err)
	d.AddClass(a)

	cf := cycle.NewFinder(d)
	pf := pattern.NewFinder(d)
	agg := metric.NewAggregator(d, cf, pf, metric.Weights{"classes": 1.5}, 10)

	metrics, err := agg.Compute(context.Background())
	require.NoError(t, err)

	byID := make(map[string]metric.Metric, len(metrics))
	for _, m := range metrics {
		byID[m.Identifier()] = m
	}

	require.Contains(t, byID, "classes")
	require.Equal(t, 1.0, byID["classes"].Value())

	require.Contains(t, byID, "remediation_cost")
	require.Equal(t, 1.5, byID["remediation_cost"].Value())

	require.Contains(t, byID, "development_cost")
	require.Equal(t, 10.0, byID["development_cost"].Value())

	require.Contains(t, byID, "technical_debt_ratio")
	require.Equal(t, 0.15, byID["technical_debt_ratio"].Value())
}
