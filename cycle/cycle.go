// Package cycle detects dependency cycles in a [diagram.Diagram]: closed
// chains of classes each depending on the next, with the last depending
// back on the first.
package cycle

import (
	"hash/fnv"
	"strings"

	"github.com/classlens/classlens/diagram"
)

// Cycle is an ordered, rotation-equivalence class of classes: the edge
// from the last member back to the first closes the cycle. Two Cycle
// values naming the same members in the same cyclic order, starting at
// any point, are [Cycle.Equal].
type Cycle struct {
	members []*diagram.Class
}

// New constructs a Cycle from its member classes in traversal order.
func New(members []*diagram.Class) Cycle {
	return Cycle{members: append([]*diagram.Class(nil), members...)}
}

// Members returns the cycle's classes in traversal order.
func (c Cycle) Members() []*diagram.Class { return c.members }

// Len returns the number of classes in the cycle.
func (c Cycle) Len() int { return len(c.members) }

// Equal reports whether c and other name the same cyclic sequence of
// classes, allowing for a difference in starting point but not in
// direction. A rotation equality check, not a set equality check: {a, b,
// c} in the order a->b->c->a is equal to b->c->a->b but not to a->c->b->a.
func (c Cycle) Equal(other Cycle) bool {
	if len(c.members) != len(other.members) {
		return false
	}
	n := len(c.members)
	if n == 0 {
		return true
	}
	doubled := make([]*diagram.Class, 0, 2*n)
	doubled = append(doubled, c.members...)
	doubled = append(doubled, c.members...)
	for start := 0; start < n; start++ {
		if sameSequence(doubled[start:start+n], other.members) {
			return true
		}
	}
	return false
}

func sameSequence(a, b []*diagram.Class) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash returns a rotation-invariant digest: the XOR-fold of each member's
// identifier hash. XOR is commutative, so member order does not affect
// the result — rotations, and incidentally reversals, collide. Hash is a
// cheap pre-filter for deduplication; [Cycle.Equal] is the authoritative
// check and must still confirm any match Hash agrees on.
func (c Cycle) Hash() uint64 {
	var h uint64
	for _, m := range c.members {
		h ^= identifierHash(m.Identifier())
	}
	return h
}

func identifierHash(id string) uint64 {
	f := fnv.New64a()
	f.Write([]byte(id))
	return f.Sum64()
}

// String renders the cycle as its member names joined by " -> ", with the
// closing edge back to the first member made explicit.
func (c Cycle) String() string {
	if len(c.members) == 0 {
		return ""
	}
	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.Name()
	}
	return strings.Join(names, " -> ") + " -> " + c.members[0].Name()
}

// containsRotation reports whether any cycle in cycles is a rotation of
// candidate.
func containsRotation(cycles []Cycle, candidate Cycle) bool {
	for _, existing := range cycles {
		if existing.Hash() == candidate.Hash() && existing.Equal(candidate) {
			return true
		}
	}
	return false
}
