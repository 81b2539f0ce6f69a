package assessment

import (
	"fmt"

	"github.com/jbonatakis/intimate/internal/catalog"
)

// ScoreSet maps item id to its ratings. It is partial while the user is
// answering and owned by a single session.
type ScoreSet map[string]Entry

func NewScoreSet() ScoreSet {
	return ScoreSet{}
}

// Entry returns the ratings for id. Unknown or unset ids yield the zero
// entry, which downstream arithmetic treats as 0/0.
func (s ScoreSet) Entry(id string) Entry {
	if s == nil {
		return Entry{}
	}
	return s[id]
}

// Set records one perspective of one item, leaving every other field intact.
func (s ScoreSet) Set(c catalog.Catalog, id string, p Perspective, value int) error {
	if _, ok := c.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if value < MinRating || value > MaxRating {
		return fmt.Errorf("%w: %d (expected %d-%d)", ErrRatingOutOfRange, value, MinRating, MaxRating)
	}
	if p != PerspectiveSelf && p != PerspectivePartner {
		return fmt.Errorf("%w: %q", ErrUnknownPerspective, p)
	}

	e := s[id]
	if p == PerspectiveSelf {
		e.Self = Rating(value)
	} else {
		e.Partner = Rating(value)
	}
	s[id] = e
	return nil
}

// Clear unsets one perspective of one item.
func (s ScoreSet) Clear(id string, p Perspective) {
	e, ok := s[id]
	if !ok {
		return
	}
	if p == PerspectiveSelf {
		e.Self = 0
	} else {
		e.Partner = 0
	}
	if e == (Entry{}) {
		delete(s, id)
		return
	}
	s[id] = e
}

func (s ScoreSet) Clone() ScoreSet {
	out := make(ScoreSet, len(s))
	for id, e := range s {
		out[id] = e
	}
	return out
}

// DimensionComplete reports whether every item in dim has both perspectives rated.
func (s ScoreSet) DimensionComplete(dim catalog.Dimension) bool {
	for _, it := range dim.Items {
		if !s.Entry(it.ID).Complete() {
			return false
		}
	}
	return true
}

// Complete reports whether every item of the catalog is fully rated.
func (s ScoreSet) Complete(c catalog.Catalog) bool {
	for _, dim := range c.Dimensions {
		if !s.DimensionComplete(dim) {
			return false
		}
	}
	return true
}

// Progress returns the number of rated fields and the total number of fields
// (two per item).
func (s ScoreSet) Progress(c catalog.Catalog) (rated int, total int) {
	for _, it := range c.Items() {
		e := s.Entry(it.ID)
		if e.Self.Rated() {
			rated++
		}
		if e.Partner.Rated() {
			rated++
		}
		total += 2
	}
	return rated, total
}

type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks that every id exists in the catalog and every stored
// rating is 0 (unset) or within 1..5.
func Validate(c catalog.Catalog, s ScoreSet) []ValidationError {
	var errs []ValidationError
	for id, e := range s {
		path := fmt.Sprintf("$[%q]", id)
		if _, ok := c.Lookup(id); !ok {
			errs = append(errs, ValidationError{Path: path, Message: "unknown item id"})
		}
		if e.Self < 0 || e.Self > MaxRating {
			errs = append(errs, ValidationError{Path: path + ".self", Message: fmt.Sprintf("rating %d out of range", e.Self)})
		}
		if e.Partner < 0 || e.Partner > MaxRating {
			errs = append(errs, ValidationError{Path: path + ".partner", Message: fmt.Sprintf("rating %d out of range", e.Partner)})
		}
	}
	return errs
}
