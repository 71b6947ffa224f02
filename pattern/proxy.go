package pattern

import "github.com/classlens/classlens/diagram"

// proxyMatcher finds the Proxy shape: among the realizations (or
// subclasses) of a subject, one candidate with no associated classes
// depends on exactly one other candidate — standing in for it behind
// the shared contract without itself being associated to anything.
type proxyMatcher struct{}

func (proxyMatcher) Kind() Kind { return Proxy }

func (proxyMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for subject := range d.Classes(false) {
		candidates := directDescendants(d, subject)
		if len(candidates) < 2 {
			continue
		}
		candidateSet := classSet(candidates)

		for _, proxy := range candidates {
			if hasAssociatedClasses(d, proxy) {
				continue
			}
			deps := classSlice(d.Dependencies(proxy, nil))
			if len(deps) != 1 {
				continue
			}
			real := deps[0]
			if !candidateSet[real] || !allUnique(proxy, subject, real) {
				continue
			}
			matches = append(matches, NewMatch(Proxy, []*diagram.Class{proxy, subject, real}, map[string]any{
				"proxy":        proxy,
				"subject":      subject,
				"real_subject": real,
			}))
		}
	}
	return matches
}

// hasAssociatedClasses reports whether cls participates in any
// association, in either role.
func hasAssociatedClasses(d *diagram.Diagram, cls *diagram.Class) bool {
	for range d.AssociatedClasses(cls, diagram.AnyRole, nil) {
		return true
	}
	return false
}
