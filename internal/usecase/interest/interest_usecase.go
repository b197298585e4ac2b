package interest

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"go.uber.org/zap"
)

// ErrInvalidListType is returned by List for a type other than sent or received.
var ErrInvalidListType = errors.New("interest list type must be sent or received")

type InterestUseCase struct {
	interestRepo repository.InterestRepository
	userRepo     repository.UserRepository
	matchRepo    repository.MatchRepository
	logger       *zap.Logger
}

func NewInterestUseCase(
	interestRepo repository.InterestRepository,
	userRepo repository.UserRepository,
	matchRepo repository.MatchRepository,
	logger *zap.Logger,
) *InterestUseCase {
	return &InterestUseCase{
		interestRepo: interestRepo,
		userRepo:     userRepo,
		matchRepo:    matchRepo,
		logger:       logger,
	}
}

// ExpressRequest represents an expression of interest
type ExpressRequest struct {
	ToUserID string  `json:"toUserId" binding:"required"`
	Message  *string `json:"message" binding:"omitempty,max=500"`
}

// Express creates a pending interest from one user to another.
func (uc *InterestUseCase) Express(ctx context.Context, fromUserID string, req *ExpressRequest) (*domain.Interest, error) {
	if fromUserID == req.ToUserID {
		return nil, domain.ErrCannotInterestSelf
	}

	if _, err := uc.userRepo.GetByID(ctx, req.ToUserID); err != nil {
		return nil, err
	}

	existing, err := uc.interestRepo.GetByUsers(ctx, fromUserID, req.ToUserID)
	if err == nil && existing.Status == domain.InterestStatusPending {
		return nil, domain.ErrInterestAlreadyExists
	} else if err != nil && !errors.Is(err, domain.ErrInterestNotFound) {
		return nil, fmt.Errorf("failed to check existing interest: %w", err)
	}

	interest := &domain.Interest{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Status:     domain.InterestStatusPending,
		Message:    req.Message,
	}

	if err := uc.interestRepo.Create(ctx, interest); err != nil {
		return nil, fmt.Errorf("failed to create interest: %w", err)
	}

	return interest, nil
}

// List returns interests the user has sent or received.
func (uc *InterestUseCase) List(ctx context.Context, userID, listType string) ([]*domain.Interest, error) {
	switch listType {
	case "sent":
		return uc.interestRepo.GetSent(ctx, userID)
	case "received":
		return uc.interestRepo.GetReceived(ctx, userID)
	default:
		return nil, ErrInvalidListType
	}
}

// Resolve accepts or declines a pending interest. Only the receiving user may
// resolve it, and only pending interests are resolvable; resolved interests
// are final. Accepting promotes the pair's match rows to mutual.
func (uc *InterestUseCase) Resolve(ctx context.Context, userID, interestID, status string) (*domain.Interest, error) {
	if status != domain.InterestStatusAccepted && status != domain.InterestStatusDeclined {
		return nil, domain.ErrInvalidInterestTransition
	}

	interest, err := uc.interestRepo.GetByID(ctx, interestID)
	if err != nil {
		return nil, err
	}

	// The receiver resolves; senders (and anyone else) see not-found rather
	// than learn the interest exists.
	if interest.ToUserID != userID {
		return nil, domain.ErrInterestNotFound
	}

	if !interest.CanTransitionTo(status) {
		return nil, domain.ErrInvalidInterestTransition
	}

	if err := uc.interestRepo.UpdateStatus(ctx, interest.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update interest: %w", err)
	}
	interest.Status = status

	if status == domain.InterestStatusAccepted {
		if err := uc.matchRepo.PromoteMutual(ctx, interest.FromUserID, interest.ToUserID); err != nil {
			uc.logger.Warn("failed to promote matches to mutual",
				zap.String("interest_id", interest.ID), zap.Error(err))
		}
	}

	return interest, nil
}
