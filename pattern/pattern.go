// Package pattern recognizes the ten classical Gang-of-Four design
// patterns in a [diagram.Diagram]'s class/relationship structure.
package pattern

import "github.com/classlens/classlens/diagram"

// Kind is a closed family of the ten recognized pattern shapes.
type Kind int

const (
	AbstractFactory Kind = iota
	Adapter
	Bridge
	Composite
	Decorator
	Facade
	FactoryMethod
	Prototype
	Proxy
	Singleton
)

// String renders the pattern's canonical name.
func (k Kind) String() string {
	switch k {
	case AbstractFactory:
		return "Abstract Factory"
	case Adapter:
		return "Adapter"
	case Bridge:
		return "Bridge"
	case Composite:
		return "Composite"
	case Decorator:
		return "Decorator"
	case Facade:
		return "Facade"
	case FactoryMethod:
		return "Factory Method"
	case Prototype:
		return "Prototype"
	case Proxy:
		return "Proxy"
	case Singleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}

// Match is one occurrence of a pattern: the kind found, the full set of
// classes it involves, and the pattern's own named fields for rendering
// (e.g. Singleton's attribute/method, AbstractFactory's
// products/concrete_factories/concrete_products).
//
// Classes is the deduplicated union of every class the match touches,
// used for equality and involved-classes queries; it does not preserve
// a meaningful role order beyond "roughly anchor-first" — callers that
// need a specific role look it up by name in Fields instead. A Fields
// value is one of *diagram.Class, []*diagram.Class, or string (a member
// name, for Singleton's attribute/method and Factory Method's method).
type Match struct {
	Kind    Kind
	Classes []*diagram.Class
	Fields  map[string]any
}

// NewMatch constructs a Match. classes need not be pre-deduplicated;
// fields carries the pattern's own named roles.
func NewMatch(kind Kind, classes []*diagram.Class, fields map[string]any) Match {
	return Match{
		Kind:    kind,
		Classes: dedupe(append([]*diagram.Class(nil), classes...)),
		Fields:  fields,
	}
}

// Equal reports whether m and other name the same kind over the same set
// of classes, irrespective of role order — two matchers producing the
// same participants in a different role order still dedupe to one Match.
func (m Match) Equal(other Match) bool {
	if m.Kind != other.Kind || len(m.Classes) != len(other.Classes) {
		return false
	}
	seen := make(map[*diagram.Class]bool, len(m.Classes))
	for _, c := range m.Classes {
		seen[c] = true
	}
	for _, c := range other.Classes {
		if !seen[c] {
			return false
		}
	}
	return true
}
