package render

import (
	"fmt"
	"io"

	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/metric"
	"github.com/classlens/classlens/pattern"
)

// WritePatterns writes one sorted line per match: "<Kind>: <Qualified>, ...".
func WritePatterns(w io.Writer, matches []pattern.Match) error {
	for _, repr := range sortedPatternReprs(matches) {
		if _, err := fmt.Fprintln(w, repr); err != nil {
			return err
		}
	}
	return nil
}

// WriteCycles writes one sorted line per cycle, using each Cycle's own
// String representation.
func WriteCycles(w io.Writer, cycles []cycle.Cycle) error {
	for _, repr := range sortedCycleReprs(cycles) {
		if _, err := fmt.Fprintln(w, repr); err != nil {
			return err
		}
	}
	return nil
}

// WriteMetrics writes one "identifier: value" line per metric, sorted by
// identifier.
func WriteMetrics(w io.Writer, metrics []metric.Metric) error {
	for _, m := range sortedMetricIdentifiers(metrics) {
		if _, err := fmt.Fprintf(w, "%s: %g\n", m.Identifier(), m.Value()); err != nil {
			return err
		}
	}
	return nil
}
