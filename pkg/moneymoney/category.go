package moneymoney

import (
	"fmt"

	"pfischer/moneymoney/internal/models"
)

// Category is a read-only typed view over one normalized category record.
// Categories form a tree through ParentID; the tree shape is reported as-is,
// not validated.
type Category struct {
	record models.Record
}

// ID returns the category identifier as a string.
func (c Category) ID() string {
	v, ok, _ := c.record.Get(models.AttrID)
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// Name returns the category name.
func (c Category) Name() string {
	s, _, _ := c.record.String(models.AttrName)
	return s
}

// ParentID returns the identifier of the parent category; ok is false for
// root categories.
func (c Category) ParentID() (string, bool) {
	v, ok, _ := c.record.Get(models.AttrParentID)
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}

// IsGroup reports whether the category is a grouping node.
func (c Category) IsGroup() bool {
	b, _, _ := c.record.Bool(models.AttrGroup)
	return b
}

// Attr gives access to any declared category attribute by name.
func (c Category) Attr(name string) (any, bool, error) {
	return c.record.Get(name)
}
