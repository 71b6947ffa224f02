// Package render formats pattern matches, dependency cycles, and metrics
// for output, either as sorted plain text or as JSON.
package render

import (
	"sort"
	"strings"

	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/metric"
	"github.com/classlens/classlens/pattern"
)

// patternRepr renders a single match as "<Kind>: <Qualified>, <Qualified>, ...".
func patternRepr(m pattern.Match) string {
	names := make([]string, len(m.Classes))
	for i, c := range m.Classes {
		names[i] = c.QualifiedName()
	}
	return m.Kind.String() + ": " + strings.Join(names, ", ")
}

// cycleRepr renders a single cycle using its own canonical representation.
func cycleRepr(c cycle.Cycle) string {
	return c.String()
}

func sortedPatternReprs(matches []pattern.Match) []string {
	reprs := make([]string, len(matches))
	for i, m := range matches {
		reprs[i] = patternRepr(m)
	}
	sort.Strings(reprs)
	return reprs
}

func sortedCycleReprs(cycles []cycle.Cycle) []string {
	reprs := make([]string, len(cycles))
	for i, c := range cycles {
		reprs[i] = cycleRepr(c)
	}
	sort.Strings(reprs)
	return reprs
}

func sortedMetricIdentifiers(metrics []metric.Metric) []metric.Metric {
	sorted := append([]metric.Metric(nil), metrics...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Identifier() < sorted[j].Identifier()
	})
	return sorted
}
