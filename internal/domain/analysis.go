package domain

// ScoreBreakdown is the fixed five-dimension compatibility breakdown. Every
// dimension is an integer in [1,100].
type ScoreBreakdown struct {
	Values      int `json:"values"`
	Lifestyle   int `json:"lifestyle"`
	Personality int `json:"personality"`
	Interests   int `json:"interests"`
	Goals       int `json:"goals"`
}

// Map converts the breakdown to the jsonb map shape stored on match rows.
func (b ScoreBreakdown) Map() ScoreMap {
	return ScoreMap{
		"values":      b.Values,
		"lifestyle":   b.Lifestyle,
		"personality": b.Personality,
		"interests":   b.Interests,
		"goals":       b.Goals,
	}
}

// CompatibilityAnalysis is the result of scoring two profiles against each
// other. Degraded is set when the AI service could not be reached and the
// static fallback was substituted, so callers can tell an estimated score from
// a genuine one.
type CompatibilityAnalysis struct {
	OverallScore   int            `json:"overallScore"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
	Insights       string         `json:"insights"`
	Explanation    string         `json:"explanation"`
	Degraded       bool           `json:"degraded"`
}

// PersonalityAnalysis is the result of analyzing a single profile: Big Five
// trait scores in [1,100] plus free-text guidance.
type PersonalityAnalysis struct {
	Traits          ScoreMap `json:"traits"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Degraded        bool     `json:"degraded"`
}
