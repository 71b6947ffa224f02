package diagram

import "iter"

// Diagram is the class-diagram arena: it owns every element and indexes
// relationships by the classes they touch. A Diagram is built by a reader
// (see the reader package) and is otherwise read-only; the Add* methods
// are reserved for that construction phase.
//
// Diagram stores each class under one *Class per identifier for its
// lifetime, so pointer identity doubles as identifier identity — matchers
// and the cycle finder may use *Class directly as a set/map key.
type Diagram struct {
	classes      map[string]*Class
	classOrder   []*Class
	datatypes    map[string]*Datatype
	stereotypes  map[string]*Stereotype
	packages     map[string]*Package
	packageOrder []*Package
	edges        map[string]Edge
	edgesByClass map[*Class][]Edge
}

// New creates an empty Diagram.
func New() *Diagram {
	return &Diagram{
		classes:      make(map[string]*Class),
		datatypes:    make(map[string]*Datatype),
		stereotypes:  make(map[string]*Stereotype),
		packages:     make(map[string]*Package),
		edges:        make(map[string]Edge),
		edgesByClass: make(map[*Class][]Edge),
	}
}

// AddClass registers a class under its identifier. Reserved for reader
// construction.
func (d *Diagram) AddClass(c *Class) {
	d.classes[c.Identifier()] = c
	d.classOrder = append(d.classOrder, c)
}

// AddDatatype registers a plain (non-class) datatype. Reserved for
// reader construction.
func (d *Diagram) AddDatatype(dt *Datatype) {
	d.datatypes[dt.Identifier()] = dt
}

// AddStereotype registers a stereotype. Reserved for reader construction.
func (d *Diagram) AddStereotype(s *Stereotype) {
	d.stereotypes[s.Identifier()] = s
}

// AddPackage registers a package. Reserved for reader construction.
func (d *Diagram) AddPackage(p *Package) {
	d.packages[p.Identifier()] = p
	d.packageOrder = append(d.packageOrder, p)
}

// AddRelationship registers a relationship or association and indexes it
// under both endpoints (once each, even for a self-loop). Reserved for
// reader construction.
func (d *Diagram) AddRelationship(e Edge) {
	d.edges[e.Identifier()] = e
	d.edgesByClass[e.From()] = append(d.edgesByClass[e.From()], e)
	if e.To() != e.From() {
		d.edgesByClass[e.To()] = append(d.edgesByClass[e.To()], e)
	}
}

// Class looks up a class by identifier.
func (d *Diagram) Class(identifier string) (*Class, error) {
	c, ok := d.classes[identifier]
	if !ok {
		return nil, classLookupError("class", identifier)
	}
	return c, nil
}

// Datatype looks up a plain datatype by identifier. A class is not
// returned by this lookup even though it is structurally a datatype —
// use [Diagram.Class] or [Diagram.Reference] for that.
func (d *Diagram) Datatype(identifier string) (*Datatype, error) {
	dt, ok := d.datatypes[identifier]
	if !ok {
		return nil, classLookupError("datatype", identifier)
	}
	return dt, nil
}

// Reference resolves an identifier to whichever [TypeRef] was registered
// under it: a class if one exists, else a plain datatype. This is the
// lookup the reader uses to resolve attribute/parameter/return-type
// references, since the source XML does not distinguish "class" from
// "datatype" at the reference site.
func (d *Diagram) Reference(identifier string) (TypeRef, error) {
	if c, ok := d.classes[identifier]; ok {
		return c, nil
	}
	if dt, ok := d.datatypes[identifier]; ok {
		return dt, nil
	}
	return nil, classLookupError("datatype", identifier)
}

// Stereotype looks up a stereotype by identifier.
func (d *Diagram) Stereotype(identifier string) (*Stereotype, error) {
	s, ok := d.stereotypes[identifier]
	if !ok {
		return nil, classLookupError("stereotype", identifier)
	}
	return s, nil
}

// Package looks up a package by identifier.
func (d *Diagram) Package(identifier string) (*Package, error) {
	p, ok := d.packages[identifier]
	if !ok {
		return nil, classLookupError("package", identifier)
	}
	return p, nil
}

// Classes iterates classes in insertion (reader) order.
//
// When excludeInterfaces is true, classes carrying the «Interface»
// stereotype are skipped.
func (d *Diagram) Classes(excludeInterfaces bool) iter.Seq[*Class] {
	return func(yield func(*Class) bool) {
		for _, c := range d.classOrder {
			if excludeInterfaces && c.IsInterface() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Packages iterates packages in insertion order.
func (d *Diagram) Packages() iter.Seq[*Package] {
	return func(yield func(*Package) bool) {
		for _, p := range d.packageOrder {
			if !yield(p) {
				return
			}
		}
	}
}

// Relationships iterates the edges incident to cls, optionally filtered
// by kind, by the role cls must play, and by an additional predicate.
//
// kinds, when non-empty, restricts the kind of edge returned; pass no
// kinds to accept every kind.
func (d *Diagram) Relationships(cls *Class, role Role, match Match, kinds ...RelKind) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range d.edgesByClass[cls] {
			if len(kinds) > 0 && !kindIn(e.Kind(), kinds) {
				continue
			}
			if role == LHS && e.From() != cls {
				continue
			}
			if role == RHS && e.To() != cls {
				continue
			}
			if match != nil && !match(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Associations iterates the Association edges incident to cls. Edges of
// kind Association that are not *Association (should not occur, since
// associations are always constructed via NewAssociation) are skipped.
func (d *Diagram) Associations(cls *Class, role Role, match Match) iter.Seq[*Association] {
	return func(yield func(*Association) bool) {
		for e := range d.Relationships(cls, role, match, AssociationKind) {
			a, ok := e.(*Association)
			if !ok {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// RelatedClasses iterates, for each edge incident to cls in the given
// role, the endpoint of that edge which is not cls. role selects which
// end cls must occupy: LHS means cls is the From end, RHS means cls is
// the To end, AnyRole accepts either.
func (d *Diagram) RelatedClasses(cls *Class, role Role, match Match, kinds ...RelKind) iter.Seq[*Class] {
	return func(yield func(*Class) bool) {
		for e := range d.Relationships(cls, role, match, kinds...) {
			other := e.To()
			if e.From() != cls {
				other = e.From()
			}
			if !yield(other) {
				return
			}
		}
	}
}

// AssociatedClasses iterates, for each Association edge incident to cls
// in the given role, the endpoint that is not cls.
func (d *Diagram) AssociatedClasses(cls *Class, role Role, match func(*Association) bool) iter.Seq[*Class] {
	return func(yield func(*Class) bool) {
		for a := range d.Associations(cls, role, nil) {
			if match != nil && !match(a) {
				continue
			}
			other := a.To()
			if a.From() != cls {
				other = a.From()
			}
			if !yield(other) {
				return
			}
		}
	}
}

// SubClasses iterates the direct subclasses of cls (Generalization, cls
// as the To end).
func (d *Diagram) SubClasses(cls *Class) iter.Seq[*Class] {
	return d.RelatedClasses(cls, RHS, nil, GeneralizationKind)
}

// SuperClasses iterates the direct superclasses of cls (Generalization,
// cls as the From end).
func (d *Diagram) SuperClasses(cls *Class) iter.Seq[*Class] {
	return d.RelatedClasses(cls, LHS, nil, GeneralizationKind)
}

// Realizations iterates the classes realizing the interface cls. Empty
// unless cls.IsInterface().
func (d *Diagram) Realizations(cls *Class) iter.Seq[*Class] {
	return func(yield func(*Class) bool) {
		if !cls.IsInterface() {
			return
		}
		for c := range d.RelatedClasses(cls, RHS, nil, RealizationKind) {
			if !yield(c) {
				return
			}
		}
	}
}

// Interfaces iterates the interfaces cls realizes.
func (d *Diagram) Interfaces(cls *Class) iter.Seq[*Class] {
	return d.RelatedClasses(cls, LHS, nil, RealizationKind)
}

// Dependencies iterates the classes cls depends on, optionally filtered
// by match.
func (d *Diagram) Dependencies(cls *Class, match Match) iter.Seq[*Class] {
	return d.RelatedClasses(cls, LHS, match, DependencyKind)
}

// Dependants iterates the classes that depend on cls.
func (d *Diagram) Dependants(cls *Class) iter.Seq[*Class] {
	return d.RelatedClasses(cls, RHS, nil, DependencyKind)
}

// IsSubClass reports whether sub is a direct subclass of super.
func (d *Diagram) IsSubClass(sub, super *Class) bool {
	for c := range d.SubClasses(super) {
		if c == sub {
			return true
		}
	}
	return false
}

// IsRealization reports whether realization directly realizes interface.
func (d *Diagram) IsRealization(realization, iface *Class) bool {
	if !iface.IsInterface() {
		return false
	}
	for c := range d.Realizations(iface) {
		if c == realization {
			return true
		}
	}
	return false
}

// HasSubClasses reports whether cls has at least one direct subclass.
func (d *Diagram) HasSubClasses(cls *Class) bool {
	for range d.SubClasses(cls) {
		return true
	}
	return false
}

// HasSuperClasses reports whether cls has at least one direct superclass.
func (d *Diagram) HasSuperClasses(cls *Class) bool {
	for range d.SuperClasses(cls) {
		return true
	}
	return false
}

// HasRealizations reports whether cls (an interface) has at least one
// realization.
func (d *Diagram) HasRealizations(cls *Class) bool {
	for range d.Realizations(cls) {
		return true
	}
	return false
}

// LeafClasses iterates non-interface classes with no subclass.
//
// When excludeStandalone is true, a leaf with no superclass either
// (a class that stands entirely alone in the hierarchy) is skipped.
func (d *Diagram) LeafClasses(excludeStandalone bool) iter.Seq[*Class] {
	return func(yield func(*Class) bool) {
		for c := range d.Classes(true) {
			if d.HasSubClasses(c) {
				continue
			}
			if excludeStandalone && !d.HasSuperClasses(c) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors iterates the transitive closure of SuperClasses from cls,
// depth-first, each ancestor visited once per super-class chain it is
// reachable through (duplicates possible under diamond inheritance,
// mirroring the original's recursive definition).
func (d *Diagram) Ancestors(cls *Class) iter.Seq[*Class] {
	return func(yield func(*Class) bool) {
		var walk func(c *Class) bool
		walk = func(c *Class) bool {
			for s := range d.SuperClasses(c) {
				if !yield(s) {
					return false
				}
				if !walk(s) {
					return false
				}
			}
			return true
		}
		walk(cls)
	}
}

// InheritanceDepth returns the length of the longest chain of
// SuperClasses starting at cls. A class with no superclass has depth 0.
func (d *Diagram) InheritanceDepth(cls *Class) int {
	depth := 0
	for s := range d.SuperClasses(cls) {
		if sd := d.InheritanceDepth(s) + 1; sd > depth {
			depth = sd
		}
	}
	return depth
}

// Methods iterates cls's own methods followed by the methods of every
// interface cls realizes and every superclass cls has, transitively.
// Duplicates are retained (a method inherited via two paths is yielded
// twice), matching the original's traversal.
func (d *Diagram) Methods(cls *Class) iter.Seq[Method] {
	return func(yield func(Method) bool) {
		for _, m := range cls.Methods() {
			if !yield(m) {
				return
			}
		}
		for iface := range d.Interfaces(cls) {
			for m := range d.Methods(iface) {
				if !yield(m) {
					return
				}
			}
		}
		for super := range d.SuperClasses(cls) {
			for m := range d.Methods(super) {
				if !yield(m) {
					return
				}
			}
		}
	}
}

func kindIn(k RelKind, kinds []RelKind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func classLookupError(kind, identifier string) error {
	return &lookupError{kind: kind, identifier: identifier}
}

type lookupError struct {
	kind       string
	identifier string
}

func (e *lookupError) Error() string {
	return "diagram: no such " + e.kind + ": " + e.identifier
}

func (e *lookupError) Unwrap() error { return ErrNoSuchElement }
