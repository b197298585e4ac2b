package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recommendationLimit = 10
	matchesLimit        = 10
	scoreCacheTTL       = 24 * time.Hour
)

// CompatibilityScorer is the recommendation-facing slice of the Gemini
// client. The operation is total; failures surface as degraded results.
type CompatibilityScorer interface {
	AnalyzeCompatibility(ctx context.Context, profile1, profile2 *domain.Profile) *domain.CompatibilityAnalysis
}

// RecommendUseCase assembles recommendations: candidate profiles scored
// against the requester, with one match row persisted per candidate.
type RecommendUseCase struct {
	profileRepo repository.ProfileRepository
	matchRepo   repository.MatchRepository
	scorer      CompatibilityScorer
	cache       *redis.Client
	logger      *zap.Logger
}

func NewRecommendUseCase(
	profileRepo repository.ProfileRepository,
	matchRepo repository.MatchRepository,
	scorer CompatibilityScorer,
	cache *redis.Client,
	logger *zap.Logger,
) *RecommendUseCase {
	return &RecommendUseCase{
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
		scorer:      scorer,
		cache:       cache,
		logger:      logger,
	}
}

// Recommendation pairs a candidate profile with its compatibility result.
type Recommendation struct {
	Profile       *domain.Profile               `json:"profile"`
	Compatibility *domain.CompatibilityAnalysis `json:"compatibility"`
}

// GetRecommendations scores up to ten active candidate profiles against the
// requester's profile. Each candidate's match row is upserted with the fresh
// score; the (user, candidate) pair is never duplicated.
func (uc *RecommendUseCase) GetRecommendations(ctx context.Context, userID string) ([]*Recommendation, error) {
	me, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.profileRepo.GetRecommendations(ctx, userID, recommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate profiles: %w", err)
	}

	recommendations := make([]*Recommendation, len(candidates))
	g, gctx := errgroup.WithContext(ctx)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			analysis := uc.score(gctx, me, candidate)

			insights := analysis.Insights
			match := &domain.Match{
				UserID:             userID,
				MatchedUserID:      candidate.UserID,
				CompatibilityScore: analysis.OverallScore,
				ScoreBreakdown:     analysis.ScoreBreakdown.Map(),
				AIInsights:         &insights,
				Status:             domain.MatchStatusSuggested,
			}
			if err := uc.matchRepo.Upsert(gctx, match); err != nil {
				return fmt.Errorf("failed to persist match for %s: %w", candidate.UserID, err)
			}

			recommendations[i] = &Recommendation{
				Profile:       candidate,
				Compatibility: analysis,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recommendations, nil
}

// GetMatches returns the user's persisted matches, best score first.
func (uc *RecommendUseCase) GetMatches(ctx context.Context, userID string) ([]*domain.MatchWithProfile, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID, matchesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	return matches, nil
}

// Compatibility scores the requester against one explicit target user without
// persisting a match row.
func (uc *RecommendUseCase) Compatibility(ctx context.Context, userID, targetUserID string) (*domain.CompatibilityAnalysis, error) {
	me, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	target, err := uc.profileRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return uc.score(ctx, me, target), nil
}

// score consults the pair cache before invoking the AI service. Degraded
// fallback results are never cached, so a recovered service replaces them on
// the next request.
func (uc *RecommendUseCase) score(ctx context.Context, me, other *domain.Profile) *domain.CompatibilityAnalysis {
	key := pairCacheKey(me.UserID, other.UserID)

	if uc.cache != nil {
		raw, err := uc.cache.Get(ctx, key).Result()
		if err == nil {
			var cached domain.CompatibilityAnalysis
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached
			}
		} else if err != redis.Nil {
			uc.logger.Warn("compatibility cache read failed", zap.Error(err))
		}
	}

	analysis := uc.scorer.AnalyzeCompatibility(ctx, me, other)

	if uc.cache != nil && !analysis.Degraded {
		if raw, err := json.Marshal(analysis); err == nil {
			if err := uc.cache.Set(ctx, key, raw, scoreCacheTTL).Err(); err != nil {
				uc.logger.Warn("compatibility cache write failed", zap.Error(err))
			}
		}
	}

	return analysis
}

// pairCacheKey is order-independent: scoring A against B and B against A hit
// the same entry.
func pairCacheKey(userID, otherID string) string {
	if otherID < userID {
		userID, otherID = otherID, userID
	}
	return fmt.Sprintf("compat:%s:%s", userID, otherID)
}
