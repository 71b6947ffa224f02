package pattern

import "github.com/classlens/classlens/diagram"

// compositeMatcher finds the Composite shape: a component with at least
// two leaves (its realizations or subclasses) has one of those leaves
// aggregating the component through a one-to-many association — the
// composite node holding a collection of components.
type compositeMatcher struct{}

func (compositeMatcher) Kind() Kind { return Composite }

func (compositeMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for component := range d.Classes(false) {
		leaves := directDescendants(d, component)
		if len(leaves) < 2 {
			continue
		}
		leafSet := classSet(leaves)

		for a := range d.Associations(component, diagram.RHS, nil) {
			if !a.AggregationType().IsAggregated() {
				continue
			}
			if a.FromMultiplicity() != diagram.One || !a.ToMultiplicity().IsMultiple() {
				continue
			}
			composite := a.From()
			if !leafSet[composite] {
				continue
			}

			remaining := excludeSet(leaves, map[*diagram.Class]bool{composite: true})
			if !allUnique(append([]*diagram.Class{composite, component}, remaining...)...) {
				continue
			}

			classes := append([]*diagram.Class{composite, component}, remaining...)
			matches = append(matches, NewMatch(Composite, classes, map[string]any{
				"composite": composite,
				"component": component,
				"leaves":    remaining,
			}))
		}
	}
	return matches
}
