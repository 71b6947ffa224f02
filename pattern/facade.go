package pattern

import "github.com/classlens/classlens/diagram"

// facadeThreshold is the number of dependencies a class must
// exceed before the shape is recognized; depending on one or two
// classes is too common to be meaningful on its own.
const facadeThreshold = 2

// facadeMatcher finds the Facade shape: a class depending on more than
// facadeThreshold other classes. There is no restriction on interfaces,
// hierarchy position, or relatedness among the dependencies — a high
// dependency count alone is the signal.
type facadeMatcher struct{}

func (facadeMatcher) Kind() Kind { return Facade }

func (facadeMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for facade := range d.Classes(false) {
		deps := classSlice(d.Dependencies(facade, nil))
		if len(deps) <= facadeThreshold {
			continue
		}
		classes := append([]*diagram.Class{facade}, deps...)
		matches = append(matches, NewMatch(Facade, classes, map[string]any{
			"facade":       facade,
			"dependencies": deps,
		}))
	}
	return matches
}
