package models

import "fmt"

// AttributeError signals access to an attribute name outside an entity's
// declared schema. It indicates a programmer error, not a data error; a
// declared-but-absent attribute is reported through the ok result instead.
type AttributeError struct {
	Entity string
	Name   string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s has no attribute %q", e.Entity, e.Name)
}

// TypeError signals that a declared attribute holds a value of an unexpected
// type for the requested conversion.
type TypeError struct {
	Entity string
	Name   string
	Want   string
	Value  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s attribute %q: cannot convert %T to %s",
		e.Entity, e.Name, e.Value, e.Want)
}
