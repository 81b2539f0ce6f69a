package assessment

import (
	"errors"
	"fmt"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrUnknownItem        = errors.New("unknown item")
	ErrRatingOutOfRange   = errors.New("rating out of range")
	ErrUnknownPerspective = errors.New("unknown perspective")
)

type Perspective string

const (
	PerspectiveSelf    Perspective = "self"
	PerspectivePartner Perspective = "partner"
)

// Rating is a 1..5 score. The zero value means "not yet rated".
type Rating int

func (r Rating) Rated() bool {
	return r > 0
}

func (r Rating) String() string {
	if !r.Rated() {
		return "-"
	}
	return fmt.Sprintf("%d", int(r))
}

// Entry holds both perspectives for one item.
type Entry struct {
	Self    Rating `json:"self"`
	Partner Rating `json:"partner"`
}

// Complete reports whether both perspectives are rated.
func (e Entry) Complete() bool {
	return e.Self.Rated() && e.Partner.Rated()
}

func (e Entry) Get(p Perspective) Rating {
	if p == PerspectivePartner {
		return e.Partner
	}
	return e.Self
}
