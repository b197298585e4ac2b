package recommend

import (
	"context"
	"sync"
	"testing"

	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepo struct {
	profiles   map[string]*domain.Profile
	candidates []*domain.Profile
}

func (r *fakeProfileRepo) Create(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	if profile, ok := r.profiles[userID]; ok {
		return profile, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) Search(_ context.Context, _ repository.SearchFilters, _ string, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) GetRecommendations(_ context.Context, _ string, limit int) ([]*domain.Profile, error) {
	if len(r.candidates) > limit {
		return r.candidates[:limit], nil
	}
	return r.candidates, nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	upserts []*domain.Match
}

func (r *fakeMatchRepo) Upsert(_ context.Context, match *domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts = append(r.upserts, match)
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, _ string) (*domain.Match, error) {
	return nil, domain.ErrMatchNotFound
}

func (r *fakeMatchRepo) GetUserMatches(_ context.Context, _ string, _ int) ([]*domain.MatchWithProfile, error) {
	return nil, nil
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, _, _ string) error  { return nil }
func (r *fakeMatchRepo) PromoteMutual(_ context.Context, _, _ string) error { return nil }

type fakeScorer struct {
	mu    sync.Mutex
	calls int
}

func (s *fakeScorer) AnalyzeCompatibility(_ context.Context, _, other *domain.Profile) *domain.CompatibilityAnalysis {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return &domain.CompatibilityAnalysis{
		OverallScore: 80,
		ScoreBreakdown: domain.ScoreBreakdown{
			Values: 80, Lifestyle: 80, Personality: 80, Interests: 80, Goals: 80,
		},
		Insights:    "good match for " + other.UserID,
		Explanation: "shared values",
	}
}

func profileFor(userID string) *domain.Profile {
	return &domain.Profile{UserID: userID, Age: 30, Gender: "female", IsActive: true}
}

func newTestUseCase(candidates ...*domain.Profile) (*RecommendUseCase, *fakeMatchRepo, *fakeScorer) {
	profileRepo := &fakeProfileRepo{
		profiles:   map[string]*domain.Profile{"me": profileFor("me")},
		candidates: candidates,
	}
	for _, c := range candidates {
		profileRepo.profiles[c.UserID] = c
	}
	matchRepo := &fakeMatchRepo{}
	scorer := &fakeScorer{}
	return NewRecommendUseCase(profileRepo, matchRepo, scorer, nil, zap.NewNop()), matchRepo, scorer
}

func TestGetRecommendations(t *testing.T) {
	uc, matchRepo, scorer := newTestUseCase(profileFor("a"), profileFor("b"), profileFor("c"))

	recommendations, err := uc.GetRecommendations(context.Background(), "me")

	require.NoError(t, err)
	require.Len(t, recommendations, 3)
	assert.Equal(t, 3, scorer.calls)

	// Result order follows candidate order regardless of scoring order.
	assert.Equal(t, "a", recommendations[0].Profile.UserID)
	assert.Equal(t, "b", recommendations[1].Profile.UserID)
	assert.Equal(t, "c", recommendations[2].Profile.UserID)

	for _, rec := range recommendations {
		assert.Equal(t, 80, rec.Compatibility.OverallScore)
		assert.GreaterOrEqual(t, rec.Compatibility.OverallScore, 1)
		assert.LessOrEqual(t, rec.Compatibility.OverallScore, 100)
	}

	// One match row upserted per candidate, carrying the score and insights.
	require.Len(t, matchRepo.upserts, 3)
	seen := make(map[string]bool)
	for _, match := range matchRepo.upserts {
		assert.Equal(t, "me", match.UserID)
		assert.Equal(t, domain.MatchStatusSuggested, match.Status)
		assert.Equal(t, 80, match.CompatibilityScore)
		require.NotNil(t, match.AIInsights)
		assert.Equal(t, "good match for "+match.MatchedUserID, *match.AIInsights)
		assert.False(t, seen[match.MatchedUserID])
		seen[match.MatchedUserID] = true
	}
}

func TestGetRecommendationsNoProfile(t *testing.T) {
	uc, _, _ := newTestUseCase(profileFor("a"))

	_, err := uc.GetRecommendations(context.Background(), "stranger")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestGetRecommendationsNoCandidates(t *testing.T) {
	uc, matchRepo, _ := newTestUseCase()

	recommendations, err := uc.GetRecommendations(context.Background(), "me")

	require.NoError(t, err)
	assert.Empty(t, recommendations)
	assert.Empty(t, matchRepo.upserts)
}

func TestCompatibility(t *testing.T) {
	uc, matchRepo, scorer := newTestUseCase(profileFor("a"))

	analysis, err := uc.Compatibility(context.Background(), "me", "a")

	require.NoError(t, err)
	assert.Equal(t, 80, analysis.OverallScore)
	assert.Equal(t, 1, scorer.calls)

	// On-demand analysis never persists a match row.
	assert.Empty(t, matchRepo.upserts)
}

func TestCompatibilityUnknownTarget(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Compatibility(context.Background(), "me", "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestPairCacheKeyOrderIndependent(t *testing.T) {
	assert.Equal(t, pairCacheKey("a", "b"), pairCacheKey("b", "a"))
	assert.Equal(t, "compat:a:b", pairCacheKey("b", "a"))
}
