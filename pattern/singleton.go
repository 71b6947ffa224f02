package pattern

import "github.com/classlens/classlens/diagram"

// singletonMatcher finds the Singleton shape: a class exposes both a
// class-scoped self-referential attribute and a class-scoped,
// parameterless, self-referential accessor method — the field that
// holds the sole instance and the method that exposes it. Either one
// alone is not enough; both must be present.
type singletonMatcher struct{}

func (singletonMatcher) Kind() Kind { return Singleton }

func (singletonMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for cls := range d.Classes(false) {
		attr, ok := selfReferentialAttribute(cls)
		if !ok {
			continue
		}
		method, ok := selfReferentialAccessor(cls)
		if !ok {
			continue
		}
		matches = append(matches, NewMatch(Singleton, []*diagram.Class{cls}, map[string]any{
			"class":     cls,
			"attribute": attr.Name(),
			"method":    method.Name(),
		}))
	}
	return matches
}

func selfReferentialAttribute(cls *diagram.Class) (diagram.Attribute, bool) {
	for _, a := range cls.Attributes() {
		if a.Scope() != diagram.ClassScope {
			continue
		}
		if ref, ok := diagram.ClassOf(a.Datatype()); ok && ref == cls {
			return a, true
		}
	}
	return diagram.Attribute{}, false
}

func selfReferentialAccessor(cls *diagram.Class) (diagram.Method, bool) {
	for _, m := range cls.Methods() {
		if m.Scope() != diagram.ClassScope || len(m.Parameters()) != 0 {
			continue
		}
		if ref, ok := diagram.ClassOf(m.ReturnType()); ok && ref == cls {
			return m, true
		}
	}
	return diagram.Method{}, false
}
