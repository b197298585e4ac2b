package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"go.uber.org/zap"
)

// AIAssistant is the profile-facing slice of the Gemini client.
type AIAssistant interface {
	AnalyzePersonality(ctx context.Context, profile *domain.Profile) *domain.PersonalityAnalysis
	GenerateProfileSuggestions(ctx context.Context, profile *domain.Profile) []string
}

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	assistant   AIAssistant
	logger      *zap.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	assistant AIAssistant,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		assistant:   assistant,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation request
type CreateProfileRequest struct {
	Age                int            `json:"age" binding:"required,min=18,max=100"`
	Gender             string         `json:"gender" binding:"required,oneof=male female other"`
	Religion           *string        `json:"religion"`
	Caste              *string        `json:"caste"`
	MotherTongue       *string        `json:"motherTongue"`
	Height             *int           `json:"height" binding:"omitempty,min=50,max=250"`
	Weight             *int           `json:"weight" binding:"omitempty,min=20,max=300"`
	Education          *string        `json:"education"`
	Occupation         *string        `json:"occupation"`
	Income             *float64       `json:"income" binding:"omitempty,min=0"`
	Location           *string        `json:"location"`
	Bio                *string        `json:"bio" binding:"omitempty,max=2000"`
	Photos             []string       `json:"photos"`
	Interests          []string       `json:"interests"`
	Values             []string       `json:"values"`
	Lifestyle          domain.JSONMap `json:"lifestyle"`
	PartnerPreferences domain.JSONMap `json:"partnerPreferences"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Age                *int            `json:"age" binding:"omitempty,min=18,max=100"`
	Gender             *string         `json:"gender" binding:"omitempty,oneof=male female other"`
	Religion           *string         `json:"religion"`
	Caste              *string         `json:"caste"`
	MotherTongue       *string         `json:"motherTongue"`
	Height             *int            `json:"height" binding:"omitempty,min=50,max=250"`
	Weight             *int            `json:"weight" binding:"omitempty,min=20,max=300"`
	Education          *string         `json:"education"`
	Occupation         *string         `json:"occupation"`
	Income             *float64        `json:"income" binding:"omitempty,min=0"`
	Location           *string         `json:"location"`
	Bio                *string         `json:"bio" binding:"omitempty,max=2000"`
	Photos             *[]string       `json:"photos"`
	Interests          *[]string       `json:"interests"`
	Values             *[]string       `json:"values"`
	Lifestyle          *domain.JSONMap `json:"lifestyle"`
	PartnerPreferences *domain.JSONMap `json:"partnerPreferences"`
	IsActive           *bool           `json:"isActive"`
}

// GetWithUser returns the account joined with its profile, when one exists.
func (uc *ProfileUseCase) GetWithUser(ctx context.Context, userID string) (*domain.UserWithProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &domain.UserWithProfile{User: *user}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return result, nil
		}
		return nil, err
	}
	result.Profile = profile
	return result, nil
}

// Create creates the user's profile, derives its completeness and runs the
// personality analysis. Completeness is never taken from the request.
func (uc *ProfileUseCase) Create(ctx context.Context, userID string, req *CreateProfileRequest) (*domain.Profile, error) {
	if _, err := uc.profileRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.ErrProfileAlreadyExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	profile := &domain.Profile{
		UserID:             userID,
		Age:                req.Age,
		Gender:             req.Gender,
		Religion:           req.Religion,
		Caste:              req.Caste,
		MotherTongue:       req.MotherTongue,
		Height:             req.Height,
		Weight:             req.Weight,
		Education:          req.Education,
		Occupation:         req.Occupation,
		Income:             req.Income,
		Location:           req.Location,
		Bio:                req.Bio,
		Photos:             req.Photos,
		Interests:          req.Interests,
		Values:             req.Values,
		Lifestyle:          req.Lifestyle,
		PartnerPreferences: req.PartnerPreferences,
		IsActive:           true,
		VerificationStatus: domain.VerificationPending,
	}
	profile.ProfileCompleteness = profile.Completeness()

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	// Personality analysis is total; a degraded result is stored like any
	// other and refreshed the next time the analysis runs.
	analysis := uc.assistant.AnalyzePersonality(ctx, profile)
	profile.PersonalityTraits = analysis.Traits
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Warn("failed to store personality traits", zap.Error(err))
	}

	return profile, nil
}

// Update applies a partial update and recomputes completeness.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Religion != nil {
		profile.Religion = req.Religion
	}
	if req.Caste != nil {
		profile.Caste = req.Caste
	}
	if req.MotherTongue != nil {
		profile.MotherTongue = req.MotherTongue
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.Occupation != nil {
		profile.Occupation = req.Occupation
	}
	if req.Income != nil {
		profile.Income = req.Income
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Photos != nil {
		profile.Photos = *req.Photos
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.Values != nil {
		profile.Values = *req.Values
	}
	if req.Lifestyle != nil {
		profile.Lifestyle = *req.Lifestyle
	}
	if req.PartnerPreferences != nil {
		profile.PartnerPreferences = *req.PartnerPreferences
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	profile.ProfileCompleteness = profile.Completeness()

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// Search returns active profiles matching the filters, excluding the
// requester.
func (uc *ProfileUseCase) Search(ctx context.Context, userID string, filters repository.SearchFilters, limit int) ([]*domain.Profile, error) {
	profiles, err := uc.profileRepo.Search(ctx, filters, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	return profiles, nil
}

// Suggestions returns AI-generated improvements for the user's profile.
func (uc *ProfileUseCase) Suggestions(ctx context.Context, userID string) ([]string, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.assistant.GenerateProfileSuggestions(ctx, profile), nil
}
