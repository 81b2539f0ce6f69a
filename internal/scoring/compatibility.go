package scoring

import (
	"math"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
)

const (
	// Each point of average gap on a non-risk item costs this many index points.
	GapWeight = 20.0
	// Each point of risk rating (self + partner) costs this many index points.
	RiskWeight = 1.5

	MaxScore = 100
)

// Breakdown exposes every intermediate of the compatibility index.
type Breakdown struct {
	TotalGap    int
	RiskScore   int
	TotalItems  int
	RiskItems   int
	BaseScore   float64
	RiskPenalty float64
	Score       int
}

// Compatibility computes the 0-100 heuristic index. Unset ratings count as 0,
// so incomplete input scores poorly instead of failing.
//
// TotalItems counts risk items too even though they never add to TotalGap.
// Existing scores depend on that divisor; do not change it.
func Compatibility(c catalog.Catalog, scores assessment.ScoreSet) Breakdown {
	var b Breakdown
	for _, dim := range c.Dimensions {
		for _, it := range dim.Items {
			e := scores.Entry(it.ID)
			self, partner := int(e.Self), int(e.Partner)
			b.TotalItems++
			if it.Reverse {
				b.RiskItems++
				b.RiskScore += self + partner
				continue
			}
			b.TotalGap += absInt(self - partner)
		}
	}

	b.BaseScore = MaxScore
	if b.TotalItems > 0 {
		b.BaseScore = MaxScore - (float64(b.TotalGap)/float64(b.TotalItems))*GapWeight
	}
	b.RiskPenalty = float64(b.RiskScore) * RiskWeight
	b.Score = roundHalfUp(clamp(b.BaseScore-b.RiskPenalty, 0, MaxScore))
	return b
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds .5 towards +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
