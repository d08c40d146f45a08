package postgres

import (
	"context"
	"fmt"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// EventRepo implements ports.EventRepository. The webhook_events table is
// append-only: rows are inserted once and only status, processed_at and
// error_message are ever updated.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create inserts a new webhook event record.
func (r *EventRepo) Create(ctx context.Context, e *domain.WebhookEvent) error {
	query := `INSERT INTO webhook_events (id, provider, type, applicant_id, correlation_id, raw_payload, signature, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Provider, e.Type, e.ApplicantID, e.CorrelationID,
		e.RawPayload, e.Signature, e.Status, e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook event: %w", err)
	}
	return nil
}

// MarkProcessed flips an event to PROCESSED.
func (r *EventRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE webhook_events SET status=$1, processed_at=NOW() WHERE id=$2`

	_, err := r.pool.Exec(ctx, query, domain.EventStatusProcessed, id)
	if err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}
	return nil
}

// MarkError flips an event to ERROR with a failure message.
func (r *EventRepo) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	query := `UPDATE webhook_events SET status=$1, error_message=$2, processed_at=NOW() WHERE id=$3`

	_, err := r.pool.Exec(ctx, query, domain.EventStatusError, message, id)
	if err != nil {
		return fmt.Errorf("mark event error: %w", err)
	}
	return nil
}

// ListByStatus fetches events in a given processing state, oldest first.
func (r *EventRepo) ListByStatus(ctx context.Context, status domain.EventStatus, limit int) ([]domain.WebhookEvent, error) {
	query := `SELECT id, provider, type, applicant_id, correlation_id, raw_payload, signature, status, error_message, received_at, processed_at
		FROM webhook_events WHERE status = $1 ORDER BY received_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list events by status: %w", err)
	}
	defer rows.Close()

	var events []domain.WebhookEvent
	for rows.Next() {
		var e domain.WebhookEvent
		if err := rows.Scan(
			&e.ID, &e.Provider, &e.Type, &e.ApplicantID, &e.CorrelationID,
			&e.RawPayload, &e.Signature, &e.Status, &e.ErrorMessage,
			&e.ReceivedAt, &e.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
