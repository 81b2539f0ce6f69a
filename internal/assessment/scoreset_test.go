package assessment

import (
	"testing"

	"github.com/jbonatakis/intimate/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{Dimensions: []catalog.Dimension{
		{ID: "a", Title: "A", Items: []catalog.Item{{ID: "a1", Label: "A1"}, {ID: "a2", Label: "A2", Reverse: true}}},
		{ID: "b", Title: "B", Items: []catalog.Item{{ID: "b1", Label: "B1"}}},
	}}
}

func TestSetTouchesOnlyOneField(t *testing.T) {
	c := testCatalog()
	s := NewScoreSet()

	require.NoError(t, s.Set(c, "a1", PerspectiveSelf, 4))
	require.NoError(t, s.Set(c, "a1", PerspectivePartner, 2))
	require.NoError(t, s.Set(c, "b1", PerspectiveSelf, 5))
	require.NoError(t, s.Set(c, "a1", PerspectiveSelf, 1))

	assert.Equal(t, Entry{Self: 1, Partner: 2}, s.Entry("a1"))
	assert.Equal(t, Entry{Self: 5}, s.Entry("b1"))
}

func TestSetRejectsInvalidInput(t *testing.T) {
	c := testCatalog()
	s := NewScoreSet()

	assert.ErrorIs(t, s.Set(c, "zz", PerspectiveSelf, 3), ErrUnknownItem)
	assert.ErrorIs(t, s.Set(c, "a1", PerspectiveSelf, 0), ErrRatingOutOfRange)
	assert.ErrorIs(t, s.Set(c, "a1", PerspectivePartner, 6), ErrRatingOutOfRange)
	assert.ErrorIs(t, s.Set(c, "a1", Perspective("friend"), 3), ErrUnknownPerspective)
	assert.Empty(t, s)
}

func TestEntryDefaultsToUnset(t *testing.T) {
	var nilSet ScoreSet
	assert.Equal(t, Entry{}, nilSet.Entry("a1"))
	assert.False(t, NewScoreSet().Entry("a1").Complete())
	assert.Equal(t, "-", Rating(0).String())
	assert.Equal(t, "3", Rating(3).String())
}

func TestClear(t *testing.T) {
	c := testCatalog()
	s := NewScoreSet()
	require.NoError(t, s.Set(c, "a1", PerspectiveSelf, 4))
	require.NoError(t, s.Set(c, "a1", PerspectivePartner, 3))

	s.Clear("a1", PerspectiveSelf)
	assert.Equal(t, Entry{Partner: 3}, s.Entry("a1"))

	s.Clear("a1", PerspectivePartner)
	_, present := s["a1"]
	assert.False(t, present)

	s.Clear("missing", PerspectiveSelf)
	assert.Empty(t, s)
}

func TestDimensionCompleteRequiresBothPerspectives(t *testing.T) {
	c := testCatalog()
	s := NewScoreSet()
	dim := c.Dimensions[0]

	require.NoError(t, s.Set(c, "a1", PerspectiveSelf, 3))
	require.NoError(t, s.Set(c, "a1", PerspectivePartner, 3))
	require.NoError(t, s.Set(c, "a2", PerspectiveSelf, 1))
	assert.False(t, s.DimensionComplete(dim))

	require.NoError(t, s.Set(c, "a2", PerspectivePartner, 1))
	assert.True(t, s.DimensionComplete(dim))
	assert.False(t, s.Complete(c))

	rated, total := s.Progress(c)
	assert.Equal(t, 4, rated)
	assert.Equal(t, 6, total)
}

func TestCloneIsIndependent(t *testing.T) {
	c := testCatalog()
	s := NewScoreSet()
	require.NoError(t, s.Set(c, "a1", PerspectiveSelf, 3))

	cp := s.Clone()
	require.NoError(t, cp.Set(c, "a1", PerspectiveSelf, 5))
	assert.Equal(t, Rating(3), s.Entry("a1").Self)
}

func TestValidate(t *testing.T) {
	c := testCatalog()
	s := ScoreSet{
		"a1":    {Self: 3, Partner: 9},
		"ghost": {Self: 1, Partner: 1},
	}

	errs := Validate(c, s)
	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
	}
	assert.ElementsMatch(t, []string{`$["a1"].partner`, `$["ghost"]`}, paths)
}
