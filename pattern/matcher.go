package pattern

import "github.com/classlens/classlens/diagram"

// Matcher inspects a diagram and reports every occurrence of the pattern
// it recognizes.
type Matcher interface {
	// Kind returns the pattern this matcher looks for.
	Kind() Kind
	// Find returns every match of this matcher's pattern in d.
	Find(d *diagram.Diagram) []Match
}

// Matchers returns one Matcher per recognized [Kind], in the order
// [Finder.Find] reports results for a class that participates in more
// than one pattern.
func Matchers() []Matcher {
	return []Matcher{
		newAbstractFactoryMatcher(factoryMethodMatcher{}),
		adapterMatcher{},
		bridgeMatcher{},
		compositeMatcher{},
		decoratorMatcher{},
		facadeMatcher{},
		factoryMethodMatcher{},
		prototypeMatcher{},
		proxyMatcher{},
		singletonMatcher{},
	}
}
