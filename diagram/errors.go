package diagram

import "errors"

// ErrInvalidValue is returned when an element is constructed from an
// empty identifier or name (spec: "invalid element construction").
var ErrInvalidValue = errors.New("diagram: invalid value")

// ErrNoSuchElement is returned when a lookup by identifier misses, or
// finds an element of the wrong kind (spec: "lookup miss").
var ErrNoSuchElement = errors.New("diagram: no such element")
