package diagram

// Datatype is any named type that an attribute, parameter, or method
// return value can reference. Classes are the one kind of Datatype the
// core cares about structurally; plain Datatype values (e.g. built-in or
// externally defined types referenced by the diagram) are opaque.
type Datatype struct {
	StereotypedElement
}

// NewDatatype constructs a Datatype.
func NewDatatype(identifier, name string) (Datatype, error) {
	el, err := NewElement(identifier, name)
	if err != nil {
		return Datatype{}, err
	}
	return Datatype{StereotypedElement: StereotypedElement{Element: el}}, nil
}

// Package groups classes under a named namespace.
type Package struct {
	Element
}

// NewPackage constructs a Package.
func NewPackage(identifier, name string) (Package, error) {
	el, err := NewElement(identifier, name)
	if err != nil {
		return Package{}, err
	}
	return Package{Element: el}, nil
}
