package repository

import (
	"context"

	"github.com/sangamconnect/sangam-backend/internal/domain"
)

// SearchFilters narrows a profile search. Nil fields are not applied.
type SearchFilters struct {
	MinAge   *int
	MaxAge   *int
	Religion *string
	Location *string
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	// Search returns active profiles matching the filters, excluding the
	// requesting user.
	Search(ctx context.Context, filters SearchFilters, excludeUserID string, limit int) ([]*domain.Profile, error)
	// GetRecommendations returns active candidate profiles for the
	// recommendation assembler, excluding the requesting user.
	GetRecommendations(ctx context.Context, excludeUserID string, limit int) ([]*domain.Profile, error)
}
