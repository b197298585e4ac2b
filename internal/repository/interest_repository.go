package repository

import (
	"context"

	"github.com/sangamconnect/sangam-backend/internal/domain"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *domain.Interest) error
	GetByID(ctx context.Context, id string) (*domain.Interest, error)
	// GetByUsers returns the latest interest sent from one user to another.
	GetByUsers(ctx context.Context, fromUserID, toUserID string) (*domain.Interest, error)
	GetSent(ctx context.Context, userID string) ([]*domain.Interest, error)
	GetReceived(ctx context.Context, userID string) ([]*domain.Interest, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
