package model

// FallbackInsight is emitted when no rule matches.
const FallbackInsight = "Wine characteristics are within typical ranges"

// insightRule emits at most one message for a sample. Rules that describe
// both ends of a range use the first matching branch only.
type insightRule struct {
	name     string
	branches []insightBranch
}

type insightBranch struct {
	when    func(Features) bool
	message string
}

var insightRules = []insightRule{
	{
		name: "alcohol",
		branches: []insightBranch{
			{func(f Features) bool { return f.Alcohol > 11.5 }, "High alcohol content contributes positively to quality"},
			{func(f Features) bool { return f.Alcohol < 9.5 }, "Lower alcohol may reduce overall quality perception"},
		},
	},
	{
		name: "volatile_acidity",
		branches: []insightBranch{
			{func(f Features) bool { return f.VolatileAcidity > 0.6 }, "High volatile acidity may cause vinegar-like taste"},
			{func(f Features) bool { return f.VolatileAcidity < 0.3 }, "Low volatile acidity indicates good fermentation control"},
		},
	},
	{
		name: "sulphates",
		branches: []insightBranch{
			{func(f Features) bool { return f.Sulphates > 0.8 }, "Good sulphate levels enhance wine preservation"},
		},
	},
	{
		name: "citric_acid",
		branches: []insightBranch{
			{func(f Features) bool { return f.CitricAcid > 0.4 }, "Citric acid adds freshness and flavor complexity"},
		},
	},
	{
		name: "ph",
		branches: []insightBranch{
			{func(f Features) bool { return f.PH < 3.2 }, "Low pH provides good acidity balance"},
			{func(f Features) bool { return f.PH > 3.5 }, "Higher pH may indicate less crisp taste"},
		},
	},
}

// MaxInsights is the number of rules, and so the most insights a sample can get.
var MaxInsights = len(insightRules)

func (r insightRule) eval(f Features) (string, bool) {
	for _, b := range r.branches {
		if b.when(f) {
			return b.message, true
		}
	}
	return "", false
}

// Insights evaluates the rules in order against raw feature values.
// The result is never empty.
func Insights(f Features) []string {
	var out []string
	for _, r := range insightRules {
		if msg, ok := r.eval(f); ok {
			out = append(out, msg)
		}
	}
	if len(out) == 0 {
		out = append(out, FallbackInsight)
	}
	return out
}
