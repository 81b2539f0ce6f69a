package report

import (
	"fmt"
	"strings"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
)

const promptTemplate = `You are a world-class relationship and marriage counsellor. Using the assessment data below, write an in-depth "Relationship Diagnosis Report" for this couple.

%s
Write the report in Markdown. Keep the tone professional and objective but empathetic. The report MUST contain exactly these sections, in this order:

1. **📊 Compatibility overview**: briefly assess the overall fit of the two people. Do not give a numeric total; give a qualitative verdict such as "high-potential partners" or "partners who need to adjust".
2. **🌟 Strengths**: list the dimensions where both scores are close and positive (or complement each other well) and explain why they are a foundation for the relationship.
3. **⚠️ Risks and friction points**: point out items with a large gap between the two scores, and any high scores in the risk indicators (%s).
4. **💣 Structural conflict warning**: if core values or the risk indicators show high-risk items, state plainly whether these differences are irreconcilable.
5. **💡 Professional advice**: give 3-4 concrete, actionable recommendations addressing the issues above.

Rules:
- For "%s", any score near 4 or 5 MUST trigger an explicit, serious warning.
- For personality (%s), focus on whether the traits are complementary or conflicting.
- For values (%s), focus on how well the long-term visions align.
`

// BuildPrompt serializes every dimension and item of c with both ratings and
// its risk flag, wrapped in the report instructions. Unset ratings are shown
// as 0.
func BuildPrompt(c catalog.Catalog, scores assessment.ScoreSet) string {
	var b strings.Builder
	b.WriteString("Below are the couple's scores from the relationship assessment (1-5 scale):\n\n")

	for _, dim := range c.Dimensions {
		fmt.Fprintf(&b, "### %s\n", dim.Title)
		for _, it := range dim.Items {
			e := scores.Entry(it.ID)
			note := "general trait"
			if it.Reverse {
				note = "risk indicator: higher means more risk"
			}
			fmt.Fprintf(&b, "- %s (%s): self %d, partner %d. (note: %s)\n", it.Label, it.SubLabel, int(e.Self), int(e.Partner), note)
		}
		b.WriteString("\n")
	}

	return fmt.Sprintf(promptTemplate,
		b.String(),
		dimensionTitle(c, catalog.RiskDimensionID),
		dimensionTitle(c, catalog.RiskDimensionID),
		dimensionTitle(c, catalog.PersonalityDimensionID),
		dimensionTitle(c, catalog.ValuesDimensionID),
	)
}

func dimensionTitle(c catalog.Catalog, id string) string {
	if i := c.DimensionIndex(id); i >= 0 {
		return c.Dimensions[i].Title
	}
	return id
}
