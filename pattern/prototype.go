package pattern

import (
	"strings"

	"github.com/classlens/classlens/diagram"
)

// prototypeMatcher finds the Prototype shape: an interface declares a
// "clone"/"copy" method returning its own type, and at least one class
// realizes it — the self-referential copy signature that lets a caller
// duplicate an instance without depending on its concrete class.
type prototypeMatcher struct{}

func (prototypeMatcher) Kind() Kind { return Prototype }

func (prototypeMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for iface := range d.Classes(false) {
		if !iface.IsInterface() || !hasCloneMethod(iface) {
			continue
		}
		prototypes := classSlice(d.Realizations(iface))
		if len(prototypes) == 0 {
			continue
		}
		classes := append([]*diagram.Class{iface}, prototypes...)
		matches = append(matches, NewMatch(Prototype, classes, map[string]any{
			"interface":           iface,
			"concrete_prototypes": prototypes,
		}))
	}
	return matches
}

// hasCloneMethod reports whether cls declares a method named "clone" or
// "copy" (case-insensitive) returning cls itself.
func hasCloneMethod(cls *diagram.Class) bool {
	for _, m := range cls.Methods() {
		ret, ok := diagram.ClassOf(m.ReturnType())
		if !ok || ret != cls {
			continue
		}
		switch strings.ToLower(m.Name()) {
		case "clone", "copy":
			return true
		}
	}
	return false
}
