package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Upsert(ctx context.Context, match *domain.Match) error {
	if match.Status == "" {
		match.Status = domain.MatchStatusSuggested
	}

	// One row per directed pair; re-scoring refreshes it instead of
	// appending history.
	query := `
		INSERT INTO matches (user_id, matched_user_id, compatibility_score, score_breakdown, ai_insights, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, matched_user_id) DO UPDATE
		SET compatibility_score = EXCLUDED.compatibility_score,
		    score_breakdown = EXCLUDED.score_breakdown,
		    ai_insights = EXCLUDED.ai_insights
		RETURNING id, status, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		match.UserID, match.MatchedUserID, match.CompatibilityScore,
		match.ScoreBreakdown, match.AIInsights, match.Status,
	).Scan(&match.ID, &match.Status, &match.CreatedAt)
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID string, limit int) ([]*domain.MatchWithProfile, error) {
	query := `
		SELECT m.id, m.user_id, m.matched_user_id, m.compatibility_score,
		       m.score_breakdown, m.ai_insights, m.status, m.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.phone, u.is_verified,
		       u.created_at, u.last_login_at,
		       p.id, p.user_id, p.age, p.gender, p.religion, p.caste, p.mother_tongue,
		       p.height, p.weight, p.education, p.occupation, p.income, p.location, p.bio,
		       p.photos, p.interests, p."values", p.lifestyle, p.personality_traits,
		       p.partner_preferences, p.profile_completeness, p.is_active,
		       p.verification_status, p.created_at, p.updated_at
		FROM matches m
		JOIN users u ON u.id = m.matched_user_id
		JOIN profiles p ON p.user_id = u.id
		WHERE m.user_id = $1
		ORDER BY m.compatibility_score DESC, m.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.MatchWithProfile
	for rows.Next() {
		var (
			m domain.Match
			u domain.User
			p domain.Profile
		)
		err := rows.Scan(
			&m.ID, &m.UserID, &m.MatchedUserID, &m.CompatibilityScore,
			&m.ScoreBreakdown, &m.AIInsights, &m.Status, &m.CreatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.IsVerified,
			&u.CreatedAt, &u.LastLoginAt,
			&p.ID, &p.UserID, &p.Age, &p.Gender, &p.Religion, &p.Caste, &p.MotherTongue,
			&p.Height, &p.Weight, &p.Education, &p.Occupation, &p.Income, &p.Location, &p.Bio,
			&p.Photos, &p.Interests, &p.Values, &p.Lifestyle, &p.PersonalityTraits,
			&p.PartnerPreferences, &p.ProfileCompleteness, &p.IsActive,
			&p.VerificationStatus, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &domain.MatchWithProfile{
			Match:       m,
			MatchedUser: domain.UserWithProfile{User: u, Profile: &p},
		})
	}
	return matches, rows.Err()
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE matches SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) PromoteMutual(ctx context.Context, userID, otherUserID string) error {
	query := `
		UPDATE matches SET status = $1
		WHERE (user_id = $2 AND matched_user_id = $3)
		   OR (user_id = $3 AND matched_user_id = $2)
	`
	_, err := r.db.ExecContext(ctx, query, domain.MatchStatusMutual, userID, otherUserID)
	return err
}
