package pattern

import "github.com/classlens/classlens/diagram"

// bridgeMatcher finds the Bridge shape: an abstraction with at least one
// subclass aggregates exactly one implementor abstraction, decoupling
// the abstraction's own hierarchy from the implementor's.
type bridgeMatcher struct{}

func (bridgeMatcher) Kind() Kind { return Bridge }

func (bridgeMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for abstraction := range d.Classes(false) {
		if abstraction.IsInterface() {
			continue
		}
		refined := classSlice(d.SubClasses(abstraction))
		if len(refined) == 0 {
			continue
		}
		implementor, ok := soleAggregatedAssociate(d, abstraction)
		if !ok {
			continue
		}
		concreteImplementors := unionDescendants(d, implementor)

		classes := append([]*diagram.Class{abstraction, implementor}, refined...)
		classes = append(classes, concreteImplementors...)
		matches = append(matches, NewMatch(Bridge, classes, map[string]any{
			"abstraction":           abstraction,
			"implementor":           implementor,
			"refined_abstractions":  refined,
			"concrete_implementors": concreteImplementors,
		}))
	}
	return matches
}

// soleAggregatedAssociate returns the one class associated to cls (LHS
// role) via a Shared or Composited aggregation, failing unless there is
// exactly one.
func soleAggregatedAssociate(d *diagram.Diagram, cls *diagram.Class) (*diagram.Class, bool) {
	var found *diagram.Class
	count := 0
	for other := range d.AssociatedClasses(cls, diagram.LHS, func(a *diagram.Association) bool {
		return a.AggregationType().IsAggregated()
	}) {
		found = other
		count++
	}
	if count != 1 {
		return nil, false
	}
	return found, true
}
