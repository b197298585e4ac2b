package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, age, gender, religion, caste, mother_tongue, height, weight,
			education, occupation, income, location, bio,
			photos, interests, "values", lifestyle, personality_traits, partner_preferences,
			profile_completeness, is_active, verification_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Age, profile.Gender, profile.Religion, profile.Caste,
		profile.MotherTongue, profile.Height, profile.Weight,
		profile.Education, profile.Occupation, profile.Income, profile.Location, profile.Bio,
		profile.Photos, profile.Interests, profile.Values,
		profile.Lifestyle, profile.PersonalityTraits, profile.PartnerPreferences,
		profile.ProfileCompleteness, profile.IsActive, profile.VerificationStatus,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET age = $1, gender = $2, religion = $3, caste = $4, mother_tongue = $5,
		    height = $6, weight = $7, education = $8, occupation = $9, income = $10,
		    location = $11, bio = $12, photos = $13, interests = $14, "values" = $15,
		    lifestyle = $16, personality_traits = $17, partner_preferences = $18,
		    profile_completeness = $19, is_active = $20, verification_status = $21,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $22
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Age, profile.Gender, profile.Religion, profile.Caste, profile.MotherTongue,
		profile.Height, profile.Weight, profile.Education, profile.Occupation, profile.Income,
		profile.Location, profile.Bio, profile.Photos, profile.Interests, profile.Values,
		profile.Lifestyle, profile.PersonalityTraits, profile.PartnerPreferences,
		profile.ProfileCompleteness, profile.IsActive, profile.VerificationStatus,
		profile.UserID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (r *profileRepository) Search(ctx context.Context, filters repository.SearchFilters, excludeUserID string, limit int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile

	query := `SELECT * FROM profiles WHERE user_id != $1 AND is_active = true`
	args := []interface{}{excludeUserID}
	argCount := 2

	if filters.MinAge != nil {
		query += fmt.Sprintf(" AND age >= $%d", argCount)
		args = append(args, *filters.MinAge)
		argCount++
	}
	if filters.MaxAge != nil {
		query += fmt.Sprintf(" AND age <= $%d", argCount)
		args = append(args, *filters.MaxAge)
		argCount++
	}
	if filters.Religion != nil && *filters.Religion != "" {
		query += fmt.Sprintf(" AND religion = $%d", argCount)
		args = append(args, *filters.Religion)
		argCount++
	}
	if filters.Location != nil && *filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argCount)
		args = append(args, "%"+*filters.Location+"%")
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY profile_completeness DESC, created_at DESC LIMIT $%d", argCount)
	args = append(args, limit)

	err := r.db.SelectContext(ctx, &profiles, query, args...)
	return profiles, err
}

func (r *profileRepository) GetRecommendations(ctx context.Context, excludeUserID string, limit int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `
		SELECT * FROM profiles
		WHERE user_id != $1 AND is_active = true
		ORDER BY profile_completeness DESC, created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &profiles, query, excludeUserID, limit)
	return profiles, err
}
