// Package comment implements the inline tag annotation format embedded in
// MoneyMoney transaction comments. A tag is written as <tag:NAME> anywhere in
// the free text; the comment string is the single source of truth and the tag
// set is a derived view over it.
package comment

import (
	"regexp"
	"sort"
	"strings"
)

// tagPattern matches a single tag marker together with the whitespace
// surrounding it. NAME is one or more non-'>' characters.
var tagPattern = regexp.MustCompile(`\s*<tag:([^>]+)>\s*`)

// Comment is the parsed form of an annotated comment: the plain text plus the
// set of embedded tags. It tracks whether the tag set was modified after
// parsing so owners can skip redundant writes.
type Comment struct {
	text    string
	tags    map[string]struct{}
	changed bool
}

// Parse scans raw for tag markers, strips them and returns the remaining
// trimmed text together with the collected tag set. Duplicate markers
// collapse; an empty input yields an empty comment.
func Parse(raw string) *Comment {
	tags := make(map[string]struct{})
	stripped := tagPattern.ReplaceAllStringFunc(raw, func(m string) string {
		name := tagPattern.FindStringSubmatch(m)[1]
		tags[name] = struct{}{}
		return " "
	})
	return &Comment{
		text: strings.Join(strings.Fields(stripped), " "),
		tags: tags,
	}
}

// Text returns the plain text portion of the comment.
func (c *Comment) Text() string {
	return c.text
}

// Tags returns a sorted copy of the tag set. The sort is a convenience for
// callers; the rendered comment makes no ordering promise.
func (c *Comment) Tags() []string {
	tags := make([]string, 0, len(c.tags))
	for tag := range c.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Has reports whether the tag is present.
func (c *Comment) Has(tag string) bool {
	_, ok := c.tags[tag]
	return ok
}

// Add inserts a tag and reports whether the set changed. Adding a tag that is
// already present is a no-op.
func (c *Comment) Add(tag string) bool {
	if _, ok := c.tags[tag]; ok {
		return false
	}
	c.tags[tag] = struct{}{}
	c.changed = true
	return true
}

// Remove deletes a tag and reports whether the set changed.
func (c *Comment) Remove(tag string) bool {
	if _, ok := c.tags[tag]; !ok {
		return false
	}
	delete(c.tags, tag)
	c.changed = true
	return true
}

// Changed reports whether the tag set was modified since parsing. It drives
// the owning transaction's decision to write the comment back.
func (c *Comment) Changed() bool {
	return c.changed
}

// Render serializes the comment back to its annotated form: the plain text
// followed by each tag re-wrapped as <tag:NAME>, space-joined and trimmed.
// Tag emission order is unspecified; callers must rely on set membership only.
func (c *Comment) Render() string {
	parts := make([]string, 0, len(c.tags)+1)
	if c.text != "" {
		parts = append(parts, c.text)
	}
	for tag := range c.tags {
		parts = append(parts, "<tag:"+tag+">")
	}
	return strings.Join(parts, " ")
}
