package postgres

import (
	"context"
	"fmt"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// HistoryRepo implements ports.HistoryRepository over the append-only
// verification_history table.
type HistoryRepo struct {
	pool Pool
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(pool Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

// Append inserts a history row inside the caller's transaction.
func (r *HistoryRepo) Append(ctx context.Context, tx pgx.Tx, h *domain.VerificationHistory) error {
	query := `INSERT INTO verification_history (id, applicant_id, event_type, review_status, review_result, reject_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		h.ID, h.ApplicantID, h.EventType, h.ReviewStatus, h.ReviewResult,
		h.RejectReason, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append verification history: %w", err)
	}
	return nil
}

// ListByApplicant fetches the audit trail for an applicant, oldest first.
func (r *HistoryRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.VerificationHistory, error) {
	query := `SELECT id, applicant_id, event_type, review_status, review_result, reject_reason, created_at
		FROM verification_history WHERE applicant_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list verification history: %w", err)
	}
	defer rows.Close()

	var entries []domain.VerificationHistory
	for rows.Next() {
		var h domain.VerificationHistory
		if err := rows.Scan(
			&h.ID, &h.ApplicantID, &h.EventType, &h.ReviewStatus,
			&h.ReviewResult, &h.RejectReason, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}
