package catalog

// Risk dimension id. Its items are all reverse scored.
const RiskDimensionID = "d6"

// Personality and values dimensions get dedicated framing in the report prompt.
const (
	PersonalityDimensionID = "d1"
	ValuesDimensionID      = "d3"
)

var reference = Catalog{
	Dimensions: []Dimension{
		{
			ID:          "d1",
			Title:       "Dimension 1: Temperament & Personality Fit",
			Description: "Big Five traits, attachment style and how each of you handles emotions.",
			Items: []Item{
				{ID: "d1_1", Label: "Emotional stability", SubLabel: "Prone to anxiety or anger? (5 = very stable)"},
				{ID: "d1_2", Label: "Extraversion", SubLabel: "Social needs and energy source (5 = very outgoing)"},
				{ID: "d1_3", Label: "Openness", SubLabel: "Open-mindedness and curiosity (5 = very open)"},
				{ID: "d1_4", Label: "Conscientiousness", SubLabel: "Responsibility and reliability (5 = very conscientious)"},
				{ID: "d1_5", Label: "Agreeableness", SubLabel: "Gentle and cooperative vs stubborn (5 = very agreeable)"},
				{ID: "d1_6", Label: "Secure attachment", SubLabel: "Feels safe and at ease in the relationship (5 = very secure)"},
				{ID: "d1_7", Label: "Anxious / avoidant tendency", SubLabel: "Clingy worry or avoiding intimacy (5 = severe)", Reverse: true},
				{ID: "d1_8", Label: "Emotional awareness & ownership", SubLabel: "Notices and owns their emotions (5 = very well)"},
				{ID: "d1_9", Label: "Conflict handling: rational talk", SubLabel: "Can discuss calmly and repair (5 = very rational)"},
			},
		},
		{
			ID:          "d2",
			Title:       "Dimension 2: Intimacy Needs & Emotional Connection",
			Description: "Need for companionship, capacity for emotional support and sexual compatibility.",
			Items: []Item{
				{ID: "d2_1", Label: "Need for companionship", SubLabel: "Desire for shared time (5 = very high)"},
				{ID: "d2_2", Label: "Need for independence", SubLabel: "Desire for personal space (5 = very high)"},
				{ID: "d2_3", Label: "Emotional support capacity", SubLabel: "Can support the other person (5 = very strong)"},
				{ID: "d2_4", Label: "Communication: expressing & listening", SubLabel: "Expresses well and is willing to listen (5 = very well)"},
				{ID: "d2_5", Label: "Sexual desire frequency", SubLabel: "How much sex is wanted (5 = high frequency)"},
				{ID: "d2_6", Label: "Openness about sex", SubLabel: "Open vs conservative attitude (5 = very open)"},
			},
		},
		{
			ID:          "d3",
			Title:       "Dimension 3: Values & Long-term Vision",
			Description: "Attitudes to money and family, and how aligned your plans for the future are.",
			Items: []Item{
				{ID: "d3_1", Label: "Spending style: enjoyment", SubLabel: "Enjoy now vs save (5 = strongly enjoyment-oriented)"},
				{ID: "d3_2", Label: "Career ambition", SubLabel: "Drive and investment in work (5 = very ambitious)"},
				{ID: "d3_3", Label: "Boundaries with family of origin", SubLabel: "Independence from parents (5 = clear boundaries)"},
				{ID: "d3_4", Label: "Wish for children", SubLabel: "How strongly children are wanted (5 = very much)"},
				{ID: "d3_5", Label: "Wish to marry", SubLabel: "Desire to get married (5 = very strong)"},
				{ID: "d3_6", Label: "Future city / direction", SubLabel: "Clarity of where to settle (5 = very clear)"},
			},
		},
		{
			ID:          "d4",
			Title:       "Dimension 4: Lifestyle Fit",
			Description: "Daily rhythm, social habits and tidiness.",
			Items: []Item{
				{ID: "d4_1", Label: "Regular schedule", SubLabel: "Early bird vs night owl (5 = very regular)"},
				{ID: "d4_2", Label: "Pace of life", SubLabel: "Fast-paced vs slow living (5 = very fast)"},
				{ID: "d4_3", Label: "Social activity", SubLabel: "How often you see friends (5 = very active)"},
				{ID: "d4_4", Label: "Tidiness standards", SubLabel: "Expectations about cleanliness (5 = spotless)"},
			},
		},
		{
			ID:          "d5",
			Title:       "Dimension 5: Relationship Skills",
			Description: "Ability to maintain the relationship, repair conflict and compromise.",
			Items: []Item{
				{ID: "d5_1", Label: "Willingness to raise issues", SubLabel: "Starts the conversation when problems appear (5 = very proactive)"},
				{ID: "d5_2", Label: "Compromise & adjustment", SubLabel: "Willing to change for the relationship (5 = very willing)"},
				{ID: "d5_3", Label: "Trust", SubLabel: "Trust in the partner (5 = complete trust)"},
				{ID: "d5_4", Label: "Inner security", SubLabel: "Does not rely solely on the partner for security (5 = very strong)"},
			},
		},
		{
			ID:          "d6",
			Title:       "Dimension 6: Risk Indicators (critical)",
			Description: "Red-line risks in the relationship. Higher scores mean higher risk.",
			Items: []Item{
				{ID: "d6_1", Label: "Emotional outbursts", SubLabel: "Breakdowns or rage (5 = happens often)", Reverse: true},
				{ID: "d6_2", Label: "Silent treatment", SubLabel: "Refuses to talk, avoids problems (5 = frequent cold wars)", Reverse: true},
				{ID: "d6_3", Label: "Irreconcilable structural differences", SubLabel: "Fundamental conflicts with no solution (5 = very serious)", Reverse: true},
				{ID: "d6_4", Label: "Low commitment / uneven growth", SubLabel: "One side falls behind or will not invest (5 = very obvious)", Reverse: true},
				{ID: "d6_5", Label: "Control / boundary violations", SubLabel: "Tries to control or ignores privacy (5 = very serious)", Reverse: true},
			},
		},
	},
}

// Default returns the reference questionnaire: six dimensions, 34 items.
func Default() Catalog {
	return reference.Clone()
}
