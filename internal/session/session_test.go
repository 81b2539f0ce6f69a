package session

import (
	"testing"
	"time"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStepCatalog() catalog.Catalog {
	return catalog.Catalog{Dimensions: []catalog.Dimension{
		{ID: "a", Title: "A", Items: []catalog.Item{{ID: "a1", Label: "A1"}}},
		{ID: "b", Title: "B", Items: []catalog.Item{{ID: "b1", Label: "B1"}, {ID: "b2", Label: "B2", Reverse: true}}},
		{ID: "c", Title: "C", Items: []catalog.Item{{ID: "c1", Label: "C1"}}},
	}}
}

func rateAll(t *testing.T, s *Session, dim catalog.Dimension, self, partner int) {
	t.Helper()
	for _, it := range dim.Items {
		require.NoError(t, s.Rate(it.ID, assessment.PerspectiveSelf, self))
		require.NoError(t, s.Rate(it.ID, assessment.PerspectivePartner, partner))
	}
}

func TestNewSessionStartsAtIntro(t *testing.T) {
	s := New(threeStepCatalog())
	assert.Equal(t, PhaseIntro, s.Phase())
	assert.Empty(t, s.Scores())
	assert.False(t, s.CanAdvance())
}

func TestPreviousFromFirstStepReturnsToIntro(t *testing.T) {
	s := New(threeStepCatalog())
	require.NoError(t, s.Start())
	require.Equal(t, PhaseAssessment, s.Phase())

	require.NoError(t, s.Previous())
	assert.Equal(t, PhaseIntro, s.Phase())
}

func TestPreviousFromLaterStepGoesBackOne(t *testing.T) {
	s := New(threeStepCatalog())
	require.NoError(t, s.Start())
	_, err := s.Next()
	require.NoError(t, err)
	_, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, 2, s.Step())

	require.NoError(t, s.Previous())
	assert.Equal(t, 1, s.Step())
	assert.Equal(t, PhaseAssessment, s.Phase())
}

func TestCanAdvanceTracksCurrentDimension(t *testing.T) {
	s := New(threeStepCatalog())
	require.NoError(t, s.Start())
	assert.False(t, s.CanAdvance())

	require.NoError(t, s.Rate("a1", assessment.PerspectiveSelf, 3))
	assert.False(t, s.CanAdvance(), "partner side still unset")

	require.NoError(t, s.Rate("a1", assessment.PerspectivePartner, 4))
	assert.True(t, s.CanAdvance())
}

func TestFullFlowToResultsAndReset(t *testing.T) {
	c := threeStepCatalog()
	clock := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := New(c, WithClock(func() time.Time { return clock }), WithRiskThreshold(3))
	require.NoError(t, s.Start())

	for i, dim := range c.Dimensions {
		rateAll(t, s, dim, 2, 4)
		require.True(t, s.CanAdvance())
		analyze, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, i == len(c.Dimensions)-1, analyze)
	}
	require.Equal(t, PhaseAnalyzing, s.Phase())

	// No interaction while analyzing.
	assert.ErrorIs(t, s.Rate("a1", assessment.PerspectiveSelf, 1), ErrInvalidTransition)
	assert.ErrorIs(t, s.Previous(), ErrInvalidTransition)

	require.NoError(t, s.Finish("## Report"))
	require.Equal(t, PhaseResults, s.Phase())

	res := s.Result()
	assert.Equal(t, "## Report", res.Narrative)
	assert.Equal(t, clock, res.GeneratedAt)
	// gaps: a1=2, b1=2, c1=2 over 4 items; risk b2 = 6 -> 100 - 6/4*20 - 9 = 61
	assert.Equal(t, 61, res.Breakdown.Score)
	assert.Len(t, res.Averages, 3)
	require.Len(t, res.RiskFlags, 1)
	assert.Equal(t, "b2", res.RiskFlags[0].Item.ID)

	s.Reset()
	assert.Equal(t, PhaseIntro, s.Phase())
	assert.Equal(t, 0, s.Step())
	assert.Empty(t, s.Scores())
	assert.Empty(t, s.Result().Narrative)
}

func TestInvalidTransitionsLeaveStateUntouched(t *testing.T) {
	s := New(threeStepCatalog())

	_, err := s.Next()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.Finish("x"), ErrInvalidTransition)
	assert.ErrorIs(t, s.Rate("a1", assessment.PerspectiveSelf, 3), ErrInvalidTransition)
	assert.Equal(t, PhaseIntro, s.Phase())

	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrInvalidTransition)
	assert.Equal(t, PhaseAssessment, s.Phase())
}

func TestNextDoesNotCheckCompleteness(t *testing.T) {
	s := New(threeStepCatalog())
	require.NoError(t, s.Start())
	require.False(t, s.CanAdvance())

	analyze, err := s.Next()
	require.NoError(t, err)
	assert.False(t, analyze)
	assert.Equal(t, 1, s.Step())
}

func TestStartRejectsEmptyCatalog(t *testing.T) {
	s := New(catalog.Catalog{})
	assert.ErrorIs(t, s.Start(), ErrInvalidTransition)
	assert.Equal(t, PhaseIntro, s.Phase())
}

func TestUnrate(t *testing.T) {
	s := New(threeStepCatalog())
	require.NoError(t, s.Start())
	require.NoError(t, s.Rate("a1", assessment.PerspectiveSelf, 5))
	require.NoError(t, s.Unrate("a1", assessment.PerspectiveSelf))
	assert.Equal(t, assessment.Entry{}, s.Scores().Entry("a1"))
}
