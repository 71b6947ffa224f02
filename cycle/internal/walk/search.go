// Package walk implements the breadth-first search the cycle finder runs
// over a diagram's relationship graph.
package walk

import "github.com/classlens/classlens/diagram"

// Node is one partial path in the search frontier. Node stores its path
// as an ordinary slice rather than a parent pointer, so the search never
// builds an owning reference cycle even though the graph it walks may
// itself be cyclic.
type Node struct {
	Class *diagram.Class
	Path  []*diagram.Class
}

// EdgesFunc yields the classes reachable from cls via whatever relation
// the caller wants the search to follow.
type EdgesFunc func(cls *diagram.Class) []*diagram.Class

// FindCycles runs a breadth-first search rooted at start, following edges
// via next, and returns the member list of every simple cycle that leads
// back to start. A returned path does not repeat start at its tail; the
// cycle is understood to close from the last member back to the first.
func FindCycles(start *diagram.Class, next EdgesFunc) [][]*diagram.Class {
	var cycles [][]*diagram.Class
	queue := []Node{{Class: start, Path: []*diagram.Class{start}}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range next(n.Class) {
			if c == start {
				cycles = append(cycles, clonePath(n.Path))
				continue
			}
			if contains(n.Path, c) {
				continue
			}
			queue = append(queue, Node{Class: c, Path: appendPath(n.Path, c)})
		}
	}
	return cycles
}

func contains(path []*diagram.Class, c *diagram.Class) bool {
	for _, p := range path {
		if p == c {
			return true
		}
	}
	return false
}

func clonePath(path []*diagram.Class) []*diagram.Class {
	out := make([]*diagram.Class, len(path))
	copy(out, path)
	return out
}

func appendPath(path []*diagram.Class, c *diagram.Class) []*diagram.Class {
	out := make([]*diagram.Class, len(path), len(path)+1)
	copy(out, path)
	return append(out, c)
}
