package diagram

// Relationship is a directed edge between two classes: an Association,
// Dependency, Generalization, or Realization. Semantic orientation
// (spec.md §3):
//
//   - Generalization: From is the subclass, To is the superclass.
//   - Realization: From is the realizing class, To is the interface.
//   - Dependency: From depends on To.
//   - Association: From/To are the two association ends.
type Relationship struct {
	StereotypedElement
	kind    RelKind
	fromCls *Class
	toCls   *Class
}

// NewRelationship constructs a Relationship. The identifier must be
// non-empty; the name defaults to the kind's canonical string ("Dependency",
// "Generalization", ...) and may be overridden later (Association does
// this for Aggregation/Composition).
func NewRelationship(identifier string, kind RelKind, from, to *Class) (*Relationship, error) {
	el, err := NewElement(identifier, kind.String())
	if err != nil {
		return nil, err
	}
	return &Relationship{
		StereotypedElement: StereotypedElement{Element: el},
		kind:               kind,
		fromCls:            from,
		toCls:               to,
	}, nil
}

// Kind returns the relationship's kind.
func (r *Relationship) Kind() RelKind { return r.kind }

// From returns the source class.
func (r *Relationship) From() *Class { return r.fromCls }

// To returns the target class.
func (r *Relationship) To() *Class { return r.toCls }

// AddStereotype attaches a stereotype. Reserved for reader construction.
func (r *Relationship) AddStereotype(s Stereotype) {
	r.stereotypes = append(r.stereotypes, s)
}

// IsCreational reports whether this is a Dependency carrying a
// creational stereotype ("create" or "instantiate").
func (r *Relationship) IsCreational() bool {
	if r.kind != DependencyKind {
		return false
	}
	for _, s := range r.stereotypes {
		if s.IsCreational() {
			return true
		}
	}
	return false
}

// Edge is satisfied by both *Relationship and *Association. It is the
// type the Diagram's relationship indexes store, so that a query can
// return a plain relationship or an association without losing the
// association's aggregation/multiplicity fields; callers that need those
// recover them with a type assertion to *Association.
type Edge interface {
	Identifier() string
	Name() string
	Kind() RelKind
	From() *Class
	To() *Class
	Stereotypes() []Stereotype
	IsCreational() bool
}

// Match is a caller-supplied predicate used to filter relationships or
// associations in diagram queries.
type Match func(Edge) bool

// Association is a Relationship additionally carrying aggregation
// semantics and end multiplicities.
type Association struct {
	*Relationship
	aggType  AggType
	fromMult Multiplicity
	toMult   Multiplicity
}

// NewAssociation constructs an Association. The relationship's display
// name is set to "Aggregation" or "Composition" when aggType requires it,
// matching the original tool's naming.
func NewAssociation(identifier string, aggType AggType, from, to *Class, fromMult, toMult Multiplicity) (*Association, error) {
	rel, err := NewRelationship(identifier, AssociationKind, from, to)
	if err != nil {
		return nil, err
	}
	switch aggType {
	case Shared:
		rel.name = "Aggregation"
	case Composited:
		rel.name = "Composition"
	}
	return &Association{Relationship: rel, aggType: aggType, fromMult: fromMult, toMult: toMult}, nil
}

// AggregationType returns the association's aggregation kind.
func (a *Association) AggregationType() AggType { return a.aggType }

// FromMultiplicity returns the multiplicity at the From end.
func (a *Association) FromMultiplicity() Multiplicity { return a.fromMult }

// ToMultiplicity returns the multiplicity at the To end.
func (a *Association) ToMultiplicity() Multiplicity { return a.toMult }
