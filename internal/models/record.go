// Package models defines the typed domain model shared by the library: the
// normalized attribute record, the per-entity attribute schemas and the Money
// value type. Entities never see the raw backend map; they read through a
// Record produced by the normalizer.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a normalized attribute mapping bound to the schema of its entity
// kind. Lookups distinguish two failure modes: a name outside the declared
// schema is an *AttributeError, while a declared name with no value present
// reports ok=false without an error.
type Record struct {
	schema Schema
	attrs  map[string]any
}

// NewRecord binds a normalized attribute map to its schema. The map is taken
// over by the record; callers must not retain it.
func NewRecord(schema Schema, attrs map[string]any) Record {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	return Record{schema: schema, attrs: attrs}
}

// Schema returns the schema the record is bound to.
func (r Record) Schema() Schema {
	return r.schema
}

// Get returns the value for a declared attribute. ok is false when the
// attribute is declared but absent from the record.
func (r Record) Get(name string) (any, bool, error) {
	if !r.schema.Declared.Has(name) {
		return nil, false, &AttributeError{Entity: r.schema.Entity, Name: name}
	}
	v, ok := r.attrs[name]
	return v, ok, nil
}

// Set stores a value for a declared attribute. It is used to refresh the
// local copy after a successful backend write.
func (r Record) Set(name string, value any) error {
	if !r.schema.Declared.Has(name) {
		return &AttributeError{Entity: r.schema.Entity, Name: name}
	}
	r.attrs[name] = value
	return nil
}

// String returns a declared attribute as a string.
func (r Record) String(name string) (string, bool, error) {
	v, ok, err := r.Get(name)
	if err != nil || !ok {
		return "", ok, err
	}
	s, isStr := v.(string)
	if !isStr {
		return "", true, &TypeError{Entity: r.schema.Entity, Name: name, Want: "string", Value: v}
	}
	return s, true, nil
}

// Bool returns a declared attribute as a bool.
func (r Record) Bool(name string) (bool, bool, error) {
	v, ok, err := r.Get(name)
	if err != nil || !ok {
		return false, ok, err
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, true, &TypeError{Entity: r.schema.Entity, Name: name, Want: "bool", Value: v}
	}
	return b, true, nil
}

// Date returns a declared attribute as a date. Normalization guarantees that
// every date-typed value present in a record is a real, date-only value.
func (r Record) Date(name string) (time.Time, bool, error) {
	v, ok, err := r.Get(name)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	t, isTime := v.(time.Time)
	if !isTime {
		return time.Time{}, true, &TypeError{Entity: r.schema.Entity, Name: name, Want: "time.Time", Value: v}
	}
	return t, true, nil
}

// Decimal returns a declared numeric attribute as a decimal. The backend
// delivers numbers in several widths depending on the transport, so all of
// them are accepted.
func (r Record) Decimal(name string) (decimal.Decimal, bool, error) {
	v, ok, err := r.Get(name)
	if err != nil || !ok {
		return decimal.Zero, ok, err
	}
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true, nil
	case float64:
		return decimal.NewFromFloat(n), true, nil
	case float32:
		return decimal.NewFromFloat32(n), true, nil
	case int:
		return decimal.NewFromInt(int64(n)), true, nil
	case int64:
		return decimal.NewFromInt(n), true, nil
	case uint64:
		return decimal.NewFromUint64(n), true, nil
	case string:
		d, perr := decimal.NewFromString(n)
		if perr != nil {
			return decimal.Zero, true, &TypeError{Entity: r.schema.Entity, Name: name, Want: "decimal", Value: v}
		}
		return d, true, nil
	default:
		return decimal.Zero, true, &TypeError{Entity: r.schema.Entity, Name: name, Want: "decimal", Value: v}
	}
}

// Each calls fn for every attribute present in the record, including retained
// unknown fields. Iteration order is unspecified.
func (r Record) Each(fn func(name string, value any)) {
	for name, value := range r.attrs {
		fn(name, value)
	}
}

// Len returns the number of attributes present.
func (r Record) Len() int {
	return len(r.attrs)
}
