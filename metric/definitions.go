package metric

import (
	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/pattern"
)

// base wires a single ComputedMetric constructor to the shared
// diagram/cycle/pattern views an Aggregator threads through every
// computed metric.
type base struct {
	diag     *diagram.Diagram
	cycles   []cycle.Cycle
	patterns []pattern.Match
}

func newPackages(b base) Computed {
	return NewComputed("packages", "Packages", func() float64 {
		var n float64
		for range b.diag.Packages() {
			n++
		}
		return n
	})
}

func newClasses(b base) Computed {
	return NewComputed("classes", "Classes", func() float64 {
		var n float64
		for range b.diag.Classes(false) {
			n++
		}
		return n
	})
}

func newPatternTypes(b base) Computed {
	return NewComputed("pattern_types", "Pattern types", func() float64 {
		return float64(len(pattern.Types(b.patterns)))
	})
}

func newClassesInPattern(b base) Computed {
	return NewComputed("classes_in_pattern", "Classes in pattern", func() float64 {
		return float64(len(pattern.InvolvedClasses(b.patterns)))
	})
}

func newDependencyCycles(b base) Computed {
	return NewComputed("dependency_cycles", "Dependency cycles", func() float64 {
		return float64(len(b.cycles))
	})
}

func newClassesInCycle(b base) Computed {
	return NewComputed("classes_in_cycle", "Classes in cycle", func() float64 {
		seen := make(map[*diagram.Class]bool)
		for _, c := range b.cycles {
			for _, m := range c.Members() {
				seen[m] = true
			}
		}
		return float64(len(seen))
	})
}

func newMethodInstances(b base) Computed {
	return NewComputed("method_instances", "Method instances", func() float64 {
		var n float64
		for c := range b.diag.Classes(false) {
			for range b.diag.Methods(c) {
				n++
			}
		}
		return n
	})
}

func newRelationshipInstances(b base) Computed {
	return NewComputed("relationship_instances", "Relationship instances", func() float64 {
		var n float64
		for c := range b.diag.Classes(false) {
			for range b.diag.Relationships(c, diagram.AnyRole, nil) {
				n++
			}
		}
		return n
	})
}

func newAvgInheritanceDepth(b base) Computed {
	return NewComputed("avg_inheritance_depth", "Avg inheritance depth", func() float64 {
		var leaves []*diagram.Class
		for c := range b.diag.LeafClasses(true) {
			leaves = append(leaves, c)
		}
		if len(leaves) == 0 {
			return 0.0
		}
		var sum float64
		for _, c := range leaves {
			sum += float64(b.diag.InheritanceDepth(c))
		}
		return sum / float64(len(leaves))
	})
}

// baseMetrics returns the thirteen directly computed and ratio metrics
// the original tool always reports, in its declared order.
func baseMetrics(b base) []Metric {
	classes := newClasses(b)
	classesInPattern := newClassesInPattern(b)
	methodInstances := newMethodInstances(b)
	relationshipInstances := newRelationshipInstances(b)
	classesInCycle := newClassesInCycle(b)

	return []Metric{
		newPackages(b),
		classes,
		newPatternTypes(b),
		classesInPattern,
		methodInstances,
		relationshipInstances,
		newAvgInheritanceDepth(b),
		newDependencyCycles(b),
		classesInCycle,
		NewRatio("classes_in_pattern_ratio", "Classes in pattern ratio", classesInPattern, classes),
		NewRatio("avg_methods_per_class", "Avg methods per class", methodInstances, classes),
		NewRatio("avg_relationships_per_class", "Avg relationships per class", relationshipInstances, classes),
		NewRatio("classes_in_cycle_ratio", "Classes in cycle ratio", classesInCycle, classes),
	}
}
