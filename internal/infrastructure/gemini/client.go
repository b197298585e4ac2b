package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// generator is the narrow surface of the generative model the client needs.
// It exists so tests can substitute a fake without a live API key.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

type modelGenerator struct {
	model *genai.GenerativeModel
}

func (g *modelGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Client wraps the Gemini API for compatibility scoring, personality analysis
// and profile suggestions. The scoring and analysis operations are total: on
// any transport or parse failure they return a static fallback result with
// Degraded set instead of an error.
type Client struct {
	client *genai.Client
	gen    generator
	logger *zap.Logger
}

func NewClient(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client: client,
		gen:    &modelGenerator{model: model},
		logger: logger,
	}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// AnalyzeCompatibility scores two profiles against each other.
func (c *Client) AnalyzeCompatibility(ctx context.Context, profile1, profile2 *domain.Profile) *domain.CompatibilityAnalysis {
	prompt := fmt.Sprintf(`
		Analyze compatibility between two people based on their matrimonial profiles.
		Respond with JSON in this exact format:
		{
			"overallScore": number (1-100),
			"scoreBreakdown": {
				"values": number (1-100),
				"lifestyle": number (1-100),
				"personality": number (1-100),
				"interests": number (1-100),
				"goals": number (1-100)
			},
			"insights": "Brief insight about their compatibility",
			"explanation": "Detailed explanation of why they match"
		}

		Profile 1: %s
		Profile 2: %s
	`, mustJSON(profile1), mustJSON(profile2))

	raw, err := c.gen.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("compatibility analysis unavailable, using fallback", zap.Error(err))
		return fallbackCompatibility()
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		c.logger.Warn("compatibility response is not valid JSON, using fallback", zap.Error(err))
		return fallbackCompatibility()
	}

	breakdown, _ := parsed["scoreBreakdown"].(map[string]interface{})
	return &domain.CompatibilityAnalysis{
		OverallScore: clampScore(parsed["overallScore"]),
		ScoreBreakdown: domain.ScoreBreakdown{
			Values:      clampScore(breakdown["values"]),
			Lifestyle:   clampScore(breakdown["lifestyle"]),
			Personality: clampScore(breakdown["personality"]),
			Interests:   clampScore(breakdown["interests"]),
			Goals:       clampScore(breakdown["goals"]),
		},
		Insights:    stringOr(parsed["insights"], "Compatibility analysis completed"),
		Explanation: stringOr(parsed["explanation"], "Based on profile analysis"),
	}
}

// AnalyzePersonality analyzes a single profile into Big Five trait scores.
func (c *Client) AnalyzePersonality(ctx context.Context, profile *domain.Profile) *domain.PersonalityAnalysis {
	prompt := fmt.Sprintf(`
		Analyze personality based on matrimonial profile data.
		Respond with JSON in this exact format:
		{
			"traits": {
				"openness": number (1-100),
				"conscientiousness": number (1-100),
				"extraversion": number (1-100),
				"agreeableness": number (1-100),
				"neuroticism": number (1-100)
			},
			"summary": "Brief personality summary",
			"recommendations": ["recommendation1", "recommendation2", "recommendation3"]
		}

		Profile Data: %s
	`, mustJSON(profile))

	raw, err := c.gen.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("personality analysis unavailable, using fallback", zap.Error(err))
		return fallbackPersonality()
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		c.logger.Warn("personality response is not valid JSON, using fallback", zap.Error(err))
		return fallbackPersonality()
	}

	traits, _ := parsed["traits"].(map[string]interface{})
	return &domain.PersonalityAnalysis{
		Traits: domain.ScoreMap{
			"openness":          clampScore(traits["openness"]),
			"conscientiousness": clampScore(traits["conscientiousness"]),
			"extraversion":      clampScore(traits["extraversion"]),
			"agreeableness":     clampScore(traits["agreeableness"]),
			"neuroticism":       clampScore(traits["neuroticism"]),
		},
		Summary:         stringOr(parsed["summary"], "Personality analysis completed"),
		Recommendations: stringsOr(parsed["recommendations"], []string{"Complete your profile for better insights"}),
	}
}

// GenerateProfileSuggestions asks for 3-5 concrete profile improvements.
// Total like the analyses: failures yield a single generic suggestion.
func (c *Client) GenerateProfileSuggestions(ctx context.Context, profile *domain.Profile) []string {
	fallback := []string{"Complete all profile sections for better matches"}

	prompt := fmt.Sprintf(`
		Generate 3-5 specific suggestions to improve this matrimonial profile.
		Focus on completeness, attractiveness, and authenticity.
		Respond with JSON: {"suggestions": ["suggestion1", "suggestion2", ...]}

		Profile Data: %s
	`, mustJSON(profile))

	raw, err := c.gen.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("profile suggestions unavailable, using fallback", zap.Error(err))
		return fallback
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil || len(parsed.Suggestions) == 0 {
		return fallback
	}
	return parsed.Suggestions
}

func fallbackCompatibility() *domain.CompatibilityAnalysis {
	return &domain.CompatibilityAnalysis{
		OverallScore: 75,
		ScoreBreakdown: domain.ScoreBreakdown{
			Values:      80,
			Lifestyle:   75,
			Personality: 70,
			Interests:   85,
			Goals:       65,
		},
		Insights:    "Compatibility analysis unavailable - showing estimated scores",
		Explanation: "Unable to perform AI analysis at this time",
		Degraded:    true,
	}
}

func fallbackPersonality() *domain.PersonalityAnalysis {
	return &domain.PersonalityAnalysis{
		Traits: domain.ScoreMap{
			"openness":          50,
			"conscientiousness": 50,
			"extraversion":      50,
			"agreeableness":     50,
			"neuroticism":       50,
		},
		Summary:         "Personality analysis unavailable",
		Recommendations: []string{"Complete your profile for personalized insights"},
		Degraded:        true,
	}
}

// clampScore coerces a decoded JSON value into a score in [1,100]. Absent,
// non-numeric and zero values default to 50 before clamping, so a model
// returning -5 clamps to 1 while a missing field reads 50.
func clampScore(v interface{}) int {
	n, ok := toFloat(v)
	if !ok || n == 0 {
		n = 50
	}
	if n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return int(n)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func stringOr(v interface{}, def string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

func stringsOr(v interface{}, def []string) []string {
	items, ok := v.([]interface{})
	if !ok {
		return def
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// stripCodeFences removes markdown code fences some models wrap around JSON
// even when asked for a bare object.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
