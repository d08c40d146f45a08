package postgres

import (
	"context"
	"errors"
	"fmt"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ApplicantRepo implements ports.ApplicantRepository.
type ApplicantRepo struct {
	pool Pool
}

// NewApplicantRepo creates a new ApplicantRepo.
func NewApplicantRepo(pool Pool) *ApplicantRepo {
	return &ApplicantRepo{pool: pool}
}

// Upsert inserts the applicant or updates it in place. The update arm is
// written so concurrent and redelivered events stay safe: an existing
// user link is never overwritten or cleared, the correlation id only
// changes when the incoming one is non-empty, and a nil review result
// never erases a recorded verdict.
func (r *ApplicantRepo) Upsert(ctx context.Context, tx pgx.Tx, a *domain.Applicant) error {
	query := `INSERT INTO applicants (applicant_id, user_id, correlation_id, status, review_result, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (applicant_id) DO UPDATE SET
			user_id        = COALESCE(applicants.user_id, EXCLUDED.user_id),
			correlation_id = CASE WHEN EXCLUDED.correlation_id <> '' THEN EXCLUDED.correlation_id ELSE applicants.correlation_id END,
			status         = EXCLUDED.status,
			review_result  = COALESCE(EXCLUDED.review_result, applicants.review_result),
			updated_at     = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		a.ApplicantID, a.UserID, a.CorrelationID, a.Status, a.ReviewResult,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert applicant: %w", err)
	}
	return nil
}

// GetByApplicantID fetches an applicant by its provider-assigned id.
func (r *ApplicantRepo) GetByApplicantID(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	query := `SELECT applicant_id, user_id, correlation_id, status, review_result, created_at, updated_at
		FROM applicants WHERE applicant_id = $1`

	a := &domain.Applicant{}
	err := r.pool.QueryRow(ctx, query, applicantID).Scan(
		&a.ApplicantID, &a.UserID, &a.CorrelationID, &a.Status,
		&a.ReviewResult, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get applicant by id: %w", err)
	}
	return a, nil
}

// Link associates an applicant with a user. Only unlinked applicants are
// affected, so an established link can never be rewritten.
func (r *ApplicantRepo) Link(ctx context.Context, applicantID string, userID int64) error {
	query := `UPDATE applicants SET user_id=$1, updated_at=NOW()
		WHERE applicant_id=$2 AND user_id IS NULL`

	_, err := r.pool.Exec(ctx, query, userID, applicantID)
	if err != nil {
		return fmt.Errorf("link applicant: %w", err)
	}
	return nil
}

// ListUnlinked fetches applicants with no user association, oldest first.
func (r *ApplicantRepo) ListUnlinked(ctx context.Context, limit int) ([]domain.Applicant, error) {
	query := `SELECT applicant_id, user_id, correlation_id, status, review_result, created_at, updated_at
		FROM applicants WHERE user_id IS NULL ORDER BY created_at ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unlinked applicants: %w", err)
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(
			&a.ApplicantID, &a.UserID, &a.CorrelationID, &a.Status,
			&a.ReviewResult, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan applicant row: %w", err)
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}
