package pattern

import "github.com/classlens/classlens/diagram"

// decoratorMatcher finds the Decorator shape: a component with at least
// two concrete components has one of them, itself bearing subclasses,
// aggregate a single reference to the component abstraction — wrapping
// one instance rather than a collection, which is what distinguishes it
// from [Composite]. The required association multiplicities are an
// open question (see DESIGN.md): this matcher requires exactly
// one-to-one, not merely at-most-one, on both ends.
type decoratorMatcher struct{}

func (decoratorMatcher) Kind() Kind { return Decorator }

func (decoratorMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for component := range d.Classes(false) {
		concreteComponents := directDescendants(d, component)
		if len(concreteComponents) < 2 {
			continue
		}
		componentSet := classSet(concreteComponents)

		var decorators []*diagram.Class
		for a := range d.Associations(component, diagram.RHS, nil) {
			if !a.AggregationType().IsAggregated() {
				continue
			}
			if a.FromMultiplicity() != diagram.One || a.ToMultiplicity() != diagram.One {
				continue
			}
			candidate := a.From()
			if !componentSet[candidate] || !d.HasSubClasses(candidate) {
				continue
			}
			decorators = append(decorators, candidate)
		}
		if len(decorators) == 0 {
			continue
		}
		remainingComponents := excludeSet(concreteComponents, classSet(decorators))

		for _, decorator := range decorators {
			concreteDecorators := classSlice(d.SubClasses(decorator))

			all := append([]*diagram.Class{decorator, component}, remainingComponents...)
			all = append(all, concreteDecorators...)
			if !allUnique(all...) {
				continue
			}

			matches = append(matches, NewMatch(Decorator, all, map[string]any{
				"decorator":           decorator,
				"component":           component,
				"concrete_components": remainingComponents,
				"concrete_decorators": concreteDecorators,
			}))
		}
	}
	return matches
}
