package diagram

// TypeRef is satisfied by anything an attribute, parameter, or method
// return value can reference: a plain [*Datatype] or a [*Class]. It is a
// closed, two-member family — callers type-switch or use [ClassOf]
// rather than adding new implementations.
type TypeRef interface {
	Identifier() string
	Name() string
	typeRef()
}

func (d *Datatype) typeRef() {}
func (c *Class) typeRef()    {}

// ClassOf reports whether ref refers to a Class, returning it if so. Use
// this instead of a type assertion so call sites read like the spec's
// "whose datatype is a Class" checks.
func ClassOf(ref TypeRef) (*Class, bool) {
	if ref == nil {
		return nil, false
	}
	c, ok := ref.(*Class)
	return c, ok
}

// Parameter is a single formal parameter of a [Method].
type Parameter struct {
	Element
	datatype TypeRef
}

// NewParameter constructs a Parameter. datatype may be nil (untyped).
func NewParameter(identifier, name string, datatype TypeRef) (Parameter, error) {
	el, err := NewElement(identifier, name)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Element: el, datatype: datatype}, nil
}

// Datatype returns the parameter's declared type, or nil if untyped.
func (p Parameter) Datatype() TypeRef { return p.datatype }

// Equals is structural equality (name + datatype identity), distinct
// from Element.Equal which only compares identifiers. Used by
// Method.Equals to compare parameter lists.
func (p Parameter) Equals(other Parameter) bool {
	return p.name == other.name && typeRefEqual(p.datatype, other.datatype)
}

// Attribute is a class member field.
type Attribute struct {
	Element
	datatype TypeRef
	scope    Scope
}

// NewAttribute constructs an Attribute.
func NewAttribute(identifier, name string, datatype TypeRef, scope Scope) (Attribute, error) {
	el, err := NewElement(identifier, name)
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Element: el, datatype: datatype, scope: scope}, nil
}

// Datatype returns the attribute's declared type, or nil if untyped.
func (a Attribute) Datatype() TypeRef { return a.datatype }

// Scope returns the attribute's scope (Instance or ClassScope).
func (a Attribute) Scope() Scope { return a.scope }

// Equals is structural equality: name, scope, and datatype.
func (a Attribute) Equals(other Attribute) bool {
	return a.name == other.name && a.scope == other.scope && typeRefEqual(a.datatype, other.datatype)
}

// Method is a class member operation.
type Method struct {
	Element
	scope      Scope
	abstract   bool
	parameters []Parameter
	returnType TypeRef
}

// NewMethod constructs a Method with no parameters and no return type;
// use [Method.AddParameter] and [Method.SetReturnType] to populate it
// during reader construction.
func NewMethod(identifier, name string, scope Scope, abstract bool) (Method, error) {
	el, err := NewElement(identifier, name)
	if err != nil {
		return Method{}, err
	}
	return Method{Element: el, scope: scope, abstract: abstract}, nil
}

// Scope returns the method's scope (Instance or ClassScope).
func (m Method) Scope() Scope { return m.scope }

// Abstract reports whether the method is declared abstract.
func (m Method) Abstract() bool { return m.abstract }

// Parameters returns the method's formal parameters, in declaration order.
func (m Method) Parameters() []Parameter { return m.parameters }

// ReturnType returns the method's declared return type, or nil if void.
func (m Method) ReturnType() TypeRef { return m.returnType }

// AddParameter appends a parameter. Reserved for reader construction.
func (m *Method) AddParameter(p Parameter) { m.parameters = append(m.parameters, p) }

// SetReturnType sets the declared return type. Reserved for reader
// construction.
func (m *Method) SetReturnType(t TypeRef) { m.returnType = t }

// Equals is structural equality: name, scope, return type, and
// parameters compared pairwise in declaration order.
func (m Method) Equals(other Method) bool {
	if m.name != other.name || m.scope != other.scope || !typeRefEqual(m.returnType, other.returnType) {
		return false
	}
	if len(m.parameters) != len(other.parameters) {
		return false
	}
	for i := range m.parameters {
		if !m.parameters[i].Equals(other.parameters[i]) {
			return false
		}
	}
	return true
}

func typeRefEqual(a, b TypeRef) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Identifier() == b.Identifier()
}

// Class models a UML class (or, when stereotyped «Interface», an
// interface). Class is the node type of the relationship graph that the
// cycle finder and pattern matchers operate on.
//
// Once added to a [Diagram], a Class is immutable except for the
// attribute/method population methods below, which are reserved for the
// reader's construction phase; after the diagram is built, callers must
// treat Class as read-only.
type Class struct {
	Datatype
	abstract   bool
	pkg        *Package
	attributes []Attribute
	methods    []Method
}

// NewClass constructs a Class with no members.
func NewClass(identifier, name string, abstract bool, pkg *Package) (*Class, error) {
	dt, err := NewDatatype(identifier, name)
	if err != nil {
		return nil, err
	}
	return &Class{Datatype: dt, abstract: abstract, pkg: pkg}, nil
}

// Abstract reports whether the class is declared abstract.
func (c *Class) Abstract() bool { return c.abstract }

// Package returns the owning package, or nil if the class is unpackaged.
func (c *Class) Package() *Package { return c.pkg }

// Attributes returns the class's own (non-inherited) attributes, in
// declaration order.
func (c *Class) Attributes() []Attribute { return c.attributes }

// Methods returns the class's own (non-inherited) methods, in
// declaration order. Use [Diagram.Methods] for the transitive view that
// includes inherited and realized methods.
func (c *Class) Methods() []Method { return c.methods }

// AddAttribute appends an attribute. Reserved for reader construction.
func (c *Class) AddAttribute(a Attribute) { c.attributes = append(c.attributes, a) }

// AddMethod appends a method. Reserved for reader construction.
func (c *Class) AddMethod(m Method) { c.methods = append(c.methods, m) }

// AddStereotype attaches a stereotype. Reserved for reader construction.
func (c *Class) AddStereotype(s Stereotype) {
	c.stereotypes = append(c.stereotypes, s)
}

// IsInterface reports whether the class carries the well-known
// "Interface" stereotype.
func (c *Class) IsInterface() bool {
	return c.HasStereotype(stereotypeInterface)
}

// QualifiedName returns "package.name" when the class is packaged, else
// just its name.
func (c *Class) QualifiedName() string {
	if c.pkg != nil {
		return c.pkg.Name() + "." + c.Name()
	}
	return c.Name()
}

// String renders the class's qualified name.
func (c *Class) String() string { return c.QualifiedName() }
