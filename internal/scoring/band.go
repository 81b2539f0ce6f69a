package scoring

import (
	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
)

type Band string

const (
	BandStrong   Band = "strong"
	BandModerate Band = "moderate"
	BandFragile  Band = "fragile"
)

// DefaultRiskWarnThreshold is the rating at which a risk item is flagged.
const DefaultRiskWarnThreshold = 4

func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandStrong
	case score >= 60:
		return BandModerate
	default:
		return BandFragile
	}
}

type RiskFlag struct {
	Item    catalog.Item
	Self    assessment.Rating
	Partner assessment.Rating
}

// RiskFlags lists reverse-scored items where either side rated at or above
// threshold, in catalog order. Thresholds below 1 fall back to the default.
func RiskFlags(c catalog.Catalog, scores assessment.ScoreSet, threshold int) []RiskFlag {
	if threshold < assessment.MinRating {
		threshold = DefaultRiskWarnThreshold
	}
	var flags []RiskFlag
	for _, it := range c.Items() {
		if !it.Reverse {
			continue
		}
		e := scores.Entry(it.ID)
		if int(e.Self) >= threshold || int(e.Partner) >= threshold {
			flags = append(flags, RiskFlag{Item: it, Self: e.Self, Partner: e.Partner})
		}
	}
	return flags
}
