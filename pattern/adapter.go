package pattern

import "github.com/classlens/classlens/diagram"

// adapterMatcher finds the Adapter shape: an interface realized by a
// class that has exactly one non-creational dependency or superclass —
// the single adaptee it delegates to behind the shared contract.
type adapterMatcher struct{}

func (adapterMatcher) Kind() Kind { return Adapter }

func (adapterMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for target := range d.Classes(false) {
		if !target.IsInterface() {
			continue
		}
		for adapter := range d.Realizations(target) {
			adaptees := dedupe(append(nonCreationalDependencies(d, adapter), classSlice(d.SuperClasses(adapter))...))
			if len(adaptees) != 1 {
				continue
			}
			adaptee := adaptees[0]
			if !allUnique(target, adapter, adaptee) {
				continue
			}
			matches = append(matches, NewMatch(Adapter, []*diagram.Class{target, adapter, adaptee}, map[string]any{
				"target":  target,
				"adapter": adapter,
				"adaptee": adaptee,
			}))
		}
	}
	return matches
}

// nonCreationalDependencies returns the classes cls depends on via a
// plain (non-creational) Dependency edge.
func nonCreationalDependencies(d *diagram.Diagram, cls *diagram.Class) []*diagram.Class {
	var out []*diagram.Class
	for e := range d.Relationships(cls, diagram.LHS, nil, diagram.DependencyKind) {
		if e.IsCreational() {
			continue
		}
		out = append(out, e.To())
	}
	return out
}
