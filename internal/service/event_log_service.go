package service

import (
	"context"
	"time"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventLogService implements ports.EventLog. Every inbound webhook is
// recorded with its processing status, independent of business outcome.
// The log is best-effort: a failed audit write is logged and
// business processing proceeds. Redeliveries produce new rows; the audit
// trail is append-only and de-duplication happens at the entity level.
type EventLogService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventLogService creates a new event log service.
func NewEventLogService(repo ports.EventRepository, log zerolog.Logger) *EventLogService {
	return &EventLogService{repo: repo, log: log}
}

// Record persists the inbound event with status RECEIVED and assigns its
// event id. Always returns a usable id even if the write failed.
func (s *EventLogService) Record(ctx context.Context, event *ports.InboundEvent) uuid.UUID {
	id := uuid.New()
	event.EventID = id

	row := &domain.WebhookEvent{
		ID:            id,
		Provider:      event.Provider,
		Type:          event.Type,
		ApplicantID:   event.ApplicantID,
		CorrelationID: event.CorrelationID,
		RawPayload:    event.RawPayload,
		Signature:     event.Signature,
		Status:        domain.EventStatusReceived,
		ReceivedAt:    event.ReceivedAt,
	}
	if row.ReceivedAt.IsZero() {
		row.ReceivedAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.log.Warn().Err(err).
			Str("event_id", id.String()).
			Str("type", event.Type).
			Str("applicant_id", event.ApplicantID).
			Msg("event log: failed to record webhook, continuing")
	}
	return id
}

// MarkProcessed flips the event to its terminal PROCESSED status.
func (s *EventLogService) MarkProcessed(ctx context.Context, id uuid.UUID) {
	if err := s.repo.MarkProcessed(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("event_id", id.String()).Msg("event log: failed to mark processed")
	}
}

// MarkError flips the event to its terminal ERROR status with the
// underlying message, making it visible to the maintenance sweep.
func (s *EventLogService) MarkError(ctx context.Context, id uuid.UUID, message string) {
	if err := s.repo.MarkError(ctx, id, message); err != nil {
		s.log.Warn().Err(err).Str("event_id", id.String()).Msg("event log: failed to mark error")
	}
}
