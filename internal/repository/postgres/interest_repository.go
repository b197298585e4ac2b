package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
)

type interestRepository struct {
	db *sqlx.DB
}

func NewInterestRepository(db *sqlx.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *domain.Interest) error {
	if interest.Status == "" {
		interest.Status = domain.InterestStatusPending
	}

	query := `
		INSERT INTO interests (from_user_id, to_user_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		interest.FromUserID, interest.ToUserID, interest.Status, interest.Message,
	).Scan(&interest.ID, &interest.CreatedAt)
}

func (r *interestRepository) GetByID(ctx context.Context, id string) (*domain.Interest, error) {
	var interest domain.Interest
	query := `SELECT * FROM interests WHERE id = $1`
	err := r.db.GetContext(ctx, &interest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) GetByUsers(ctx context.Context, fromUserID, toUserID string) (*domain.Interest, error) {
	var interest domain.Interest
	query := `
		SELECT * FROM interests
		WHERE from_user_id = $1 AND to_user_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &interest, query, fromUserID, toUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) GetSent(ctx context.Context, userID string) ([]*domain.Interest, error) {
	var interests []*domain.Interest
	query := `SELECT * FROM interests WHERE from_user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &interests, query, userID)
	return interests, err
}

func (r *interestRepository) GetReceived(ctx context.Context, userID string) ([]*domain.Interest, error) {
	var interests []*domain.Interest
	query := `SELECT * FROM interests WHERE to_user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &interests, query, userID)
	return interests, err
}

func (r *interestRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE interests SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInterestNotFound
	}
	return nil
}
