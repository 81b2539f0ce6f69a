package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	require.Equal(t, 6, c.Len())
	assert.Equal(t, 34, c.ItemCount())

	sizes := []int{9, 6, 6, 4, 4, 5}
	for i, dim := range c.Dimensions {
		assert.Len(t, dim.Items, sizes[i], "dimension %s", dim.ID)
	}
	assert.Empty(t, Validate(c))
}

func TestDefaultCatalogReverseItems(t *testing.T) {
	var reverse []string
	for _, it := range Default().Items() {
		if it.Reverse {
			reverse = append(reverse, it.ID)
		}
	}
	assert.Equal(t, []string{"d1_7", "d6_1", "d6_2", "d6_3", "d6_4", "d6_5"}, reverse)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Dimensions[0].Items[0].Label = "mutated"
	a.Dimensions[0].Title = "mutated"

	b := Default()
	assert.NotEqual(t, "mutated", b.Dimensions[0].Items[0].Label)
	assert.NotEqual(t, "mutated", b.Dimensions[0].Title)
}

func TestLookupAndIndex(t *testing.T) {
	c := Default()

	it, ok := c.Lookup("d6_3")
	require.True(t, ok)
	assert.True(t, it.Reverse)

	_, ok = c.Lookup("d9_9")
	assert.False(t, ok)

	assert.Equal(t, 2, c.DimensionIndex(ValuesDimensionID))
	assert.Equal(t, -1, c.DimensionIndex("nope"))

	_, ok = c.Dimension(6)
	assert.False(t, ok)
	_, ok = c.Dimension(-1)
	assert.False(t, ok)
}

func TestValidateReportsDuplicatesAndMissingFields(t *testing.T) {
	c := Catalog{Dimensions: []Dimension{
		{ID: "a", Title: "A", Items: []Item{{ID: "x", Label: "X"}, {ID: "x", Label: ""}}},
		{ID: "a", Title: "", Items: []Item{{ID: "", Label: "Y"}}},
	}}

	errs := Validate(c)
	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
	}

	assert.Contains(t, paths, "$.dimensions[0].items[1].id")
	assert.Contains(t, paths, "$.dimensions[0].items[1].label")
	assert.Contains(t, paths, "$.dimensions[1].id")
	assert.Contains(t, paths, "$.dimensions[1].title")
	assert.Contains(t, paths, "$.dimensions[1].items[0].id")
}

func TestValidateEmptyCatalog(t *testing.T) {
	errs := Validate(Catalog{})
	require.Len(t, errs, 1)
	assert.Equal(t, "$.dimensions", errs[0].Path)
}
