package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		wantText string
		wantTags []string
	}{
		{"PlainText", "Lunch at the corner", "Lunch at the corner", []string{}},
		{"TrailingTags", "Lunch <tag:food> <tag:tax>", "Lunch", []string{"food", "tax"}},
		{"LeadingTag", "<tag:food> Lunch", "Lunch", []string{"food"}},
		{"TagInTheMiddle", "Lunch <tag:food> downtown", "Lunch downtown", []string{"food"}},
		{"DuplicatesCollapse", "<tag:a> <tag:a> <tag:a>", "", []string{"a"}},
		{"OnlyTags", "<tag:food><tag:tax>", "", []string{"food", "tax"}},
		{"EmptyString", "", "", []string{}},
		{"WhitespaceOnly", "   ", "", []string{}},
		{"TagWithSpacesInName", "x <tag:needs review>", "x", []string{"needs review"}},
		{"UnclosedMarkerIsText", "Lunch <tag:food", "Lunch <tag:food", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Parse(tc.raw)
			assert.Equal(t, tc.wantText, c.Text())
			assert.Equal(t, tc.wantTags, c.Tags())
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		text string
		tags []string
	}{
		{"TextAndTags", "Lunch downtown", []string{"food", "tax"}},
		{"TextOnly", "Lunch", nil},
		{"TagsOnly", "", []string{"pending"}},
		{"Empty", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Parse(tc.text)
			for _, tag := range tc.tags {
				c.Add(tag)
			}

			reparsed := Parse(c.Render())
			assert.Equal(t, c.Text(), reparsed.Text())
			assert.Equal(t, c.Tags(), reparsed.Tags())
		})
	}
}

func TestRenderEmptyComment(t *testing.T) {
	assert.Equal(t, "", Parse("").Render())
}

func TestAddIsIdempotent(t *testing.T) {
	c := Parse("Lunch <tag:food>")
	assert.False(t, c.Changed())

	assert.False(t, c.Add("food"), "adding a present tag must report no change")
	assert.False(t, c.Changed())

	assert.True(t, c.Add("tax"))
	assert.True(t, c.Changed())
	assert.False(t, c.Add("tax"), "second add of the same tag must report no change")
	assert.Equal(t, []string{"food", "tax"}, c.Tags())
}

func TestRemove(t *testing.T) {
	c := Parse("Lunch <tag:food>")

	assert.False(t, c.Remove("missing"))
	assert.False(t, c.Changed())

	assert.True(t, c.Remove("food"))
	assert.True(t, c.Changed())
	assert.False(t, c.Has("food"))
	assert.Equal(t, "Lunch", c.Render())
}

func TestHas(t *testing.T) {
	c := Parse("<tag:food> Lunch")
	assert.True(t, c.Has("food"))
	assert.False(t, c.Has("tax"))
}
