package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
	"github.com/jbonatakis/intimate/internal/report"
	"github.com/jbonatakis/intimate/internal/scoring"
)

type Phase string

const (
	PhaseIntro      Phase = "intro"
	PhaseAssessment Phase = "assessment"
	PhaseAnalyzing  Phase = "analyzing"
	PhaseResults    Phase = "results"
)

var ErrInvalidTransition = errors.New("invalid transition")

// Session is the single in-flight assessment. It is owned by the top-level
// controller and handed to views by pointer; nothing here is shared across
// goroutines.
type Session struct {
	catalog       catalog.Catalog
	riskThreshold int
	now           func() time.Time

	phase  Phase
	step   int
	scores assessment.ScoreSet
	result report.Result
}

type Option func(*Session)

// WithRiskThreshold sets the rating at which risk items are flagged on the
// results screen.
func WithRiskThreshold(threshold int) Option {
	return func(s *Session) {
		s.riskThreshold = threshold
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func New(c catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:       c,
		riskThreshold: scoring.DefaultRiskWarnThreshold,
		now:           time.Now,
		phase:         PhaseIntro,
		scores:        assessment.NewScoreSet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Phase() Phase                { return s.phase }
func (s *Session) Step() int                   { return s.step }
func (s *Session) Catalog() catalog.Catalog    { return s.catalog }
func (s *Session) Scores() assessment.ScoreSet { return s.scores }
func (s *Session) Result() report.Result       { return s.result }

// Dimension returns the dimension for the current step.
func (s *Session) Dimension() (catalog.Dimension, bool) {
	return s.catalog.Dimension(s.step)
}

func (s *Session) IsFirstStep() bool { return s.step == 0 }
func (s *Session) IsLastStep() bool  { return s.step == s.catalog.Len()-1 }

// CanAdvance reports whether the current dimension is fully rated.
func (s *Session) CanAdvance() bool {
	if s.phase != PhaseAssessment {
		return false
	}
	dim, ok := s.Dimension()
	if !ok {
		return false
	}
	return s.scores.DimensionComplete(dim)
}

// Start moves from intro to the first assessment step.
func (s *Session) Start() error {
	if err := s.require(PhaseIntro, "start"); err != nil {
		return err
	}
	if s.catalog.Len() == 0 {
		return fmt.Errorf("%w: start: catalog has no dimensions", ErrInvalidTransition)
	}
	s.phase = PhaseAssessment
	s.step = 0
	return nil
}

// Next moves to the following dimension, or into analyzing from the last
// one, in which case it returns true and the caller must run the analysis.
// Completeness is the caller's guard (see CanAdvance).
func (s *Session) Next() (bool, error) {
	if err := s.require(PhaseAssessment, "next"); err != nil {
		return false, err
	}
	if s.step < s.catalog.Len()-1 {
		s.step++
		return false, nil
	}
	s.phase = PhaseAnalyzing
	return true, nil
}

// Previous moves back one dimension, or to intro from the first one.
func (s *Session) Previous() error {
	if err := s.require(PhaseAssessment, "previous"); err != nil {
		return err
	}
	if s.step > 0 {
		s.step--
		return nil
	}
	s.phase = PhaseIntro
	return nil
}

// Rate records one rating for the current session.
func (s *Session) Rate(itemID string, p assessment.Perspective, value int) error {
	if err := s.require(PhaseAssessment, "rate"); err != nil {
		return err
	}
	return s.scores.Set(s.catalog, itemID, p, value)
}

// Unrate clears one rating.
func (s *Session) Unrate(itemID string, p assessment.Perspective) error {
	if err := s.require(PhaseAssessment, "unrate"); err != nil {
		return err
	}
	s.scores.Clear(itemID, p)
	return nil
}

// Finish stores the narrative and the computed scores and moves to results.
func (s *Session) Finish(narrative string) error {
	if err := s.require(PhaseAnalyzing, "finish"); err != nil {
		return err
	}
	s.result = report.Result{
		Breakdown:   scoring.Compatibility(s.catalog, s.scores),
		Averages:    scoring.DimensionAverages(s.catalog, s.scores),
		RiskFlags:   scoring.RiskFlags(s.catalog, s.scores, s.riskThreshold),
		Narrative:   narrative,
		GeneratedAt: s.now(),
	}
	s.phase = PhaseResults
	return nil
}

// Reset discards every rating and the report and returns to intro. Callers
// are expected to have confirmed with the user.
func (s *Session) Reset() {
	s.phase = PhaseIntro
	s.step = 0
	s.scores = assessment.NewScoreSet()
	s.result = report.Result{}
}

func (s *Session) require(want Phase, action string) error {
	if s.phase != want {
		return fmt.Errorf("%w: %s requires phase %s (current %s)", ErrInvalidTransition, action, want, s.phase)
	}
	return nil
}
