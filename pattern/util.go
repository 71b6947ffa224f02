package pattern

import (
	"iter"

	"github.com/classlens/classlens/diagram"
)

// classSlice materializes a class iterator into a slice, preserving order.
func classSlice(seq iter.Seq[*diagram.Class]) []*diagram.Class {
	var out []*diagram.Class
	for c := range seq {
		out = append(out, c)
	}
	return out
}

// dedupe returns classes with duplicates removed, preserving first
// occurrence order.
func dedupe(classes []*diagram.Class) []*diagram.Class {
	seen := make(map[*diagram.Class]bool, len(classes))
	var out []*diagram.Class
	for _, c := range classes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// classSet builds a membership set from a class slice.
func classSet(classes []*diagram.Class) map[*diagram.Class]bool {
	set := make(map[*diagram.Class]bool, len(classes))
	for _, c := range classes {
		set[c] = true
	}
	return set
}

// excludeSet returns classes with every member of exclude removed,
// preserving order.
func excludeSet(classes []*diagram.Class, exclude map[*diagram.Class]bool) []*diagram.Class {
	var out []*diagram.Class
	for _, c := range classes {
		if exclude[c] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// directDescendants returns cls's realizations if it is an interface,
// otherwise its direct subclasses — the "leaves"/"concrete components"
// set several matchers anchor on.
func directDescendants(d *diagram.Diagram, cls *diagram.Class) []*diagram.Class {
	if cls.IsInterface() {
		return classSlice(d.Realizations(cls))
	}
	return classSlice(d.SubClasses(cls))
}

// unionDescendants returns the union of cls's direct subclasses and, when
// cls is an interface, its realizations.
func unionDescendants(d *diagram.Diagram, cls *diagram.Class) []*diagram.Class {
	out := classSlice(d.SubClasses(cls))
	if cls.IsInterface() {
		out = append(out, classSlice(d.Realizations(cls))...)
	}
	return dedupe(out)
}

// allUnique reports whether every class in classes is pairwise distinct.
func allUnique(classes ...*diagram.Class) bool {
	seen := make(map[*diagram.Class]bool, len(classes))
	for _, c := range classes {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
