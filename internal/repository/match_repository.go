package repository

import (
	"context"

	"github.com/sangamconnect/sangam-backend/internal/domain"
)

type MatchRepository interface {
	// Upsert inserts the match or, when a row for the (user, matched user)
	// pair already exists, refreshes its score, breakdown and insights.
	Upsert(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	// GetUserMatches returns the user's matches joined with the matched
	// user's account and profile, best score first.
	GetUserMatches(ctx context.Context, userID string, limit int) ([]*domain.MatchWithProfile, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	// PromoteMutual marks both directed match rows between the two users as
	// mutual, for whichever of the two rows exist.
	PromoteMutual(ctx context.Context, userID, otherUserID string) error
}
