package scoring

import (
	"math"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
)

type DimensionAverage struct {
	DimensionID string
	Title       string
	Self        float64
	Partner     float64
	Gap         float64
}

// DimensionAverages returns the per-dimension mean rating for each
// perspective, rounded to one decimal. Empty dimensions report 0.
func DimensionAverages(c catalog.Catalog, scores assessment.ScoreSet) []DimensionAverage {
	out := make([]DimensionAverage, 0, len(c.Dimensions))
	for _, dim := range c.Dimensions {
		avg := DimensionAverage{DimensionID: dim.ID, Title: dim.Title}
		if n := len(dim.Items); n > 0 {
			var self, partner int
			for _, it := range dim.Items {
				e := scores.Entry(it.ID)
				self += int(e.Self)
				partner += int(e.Partner)
			}
			avg.Self = roundTenth(float64(self) / float64(n))
			avg.Partner = roundTenth(float64(partner) / float64(n))
			avg.Gap = roundTenth(math.Abs(avg.Self - avg.Partner))
		}
		out = append(out, avg)
	}
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
