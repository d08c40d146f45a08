package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the processing state of an inbound webhook event.
type EventStatus string

const (
	EventStatusReceived  EventStatus = "RECEIVED"
	EventStatusProcessed EventStatus = "PROCESSED"
	EventStatusError     EventStatus = "ERROR"
)

// Known webhook event types delivered by the verification provider.
const (
	EventApplicantCreated     = "applicantCreated"
	EventApplicantPending     = "applicantPending"
	EventApplicantOnHold      = "applicantOnHold"
	EventApplicantReviewed    = "applicantReviewed"
	EventApplicantInfoChanged = "applicantPersonalInfoChanged"
)

// WebhookEvent is the append-only audit record of one inbound webhook delivery.
// Only Status, ProcessedAt and ErrorMessage are ever mutated after creation.
type WebhookEvent struct {
	ID            uuid.UUID   `json:"id"`
	Provider      string      `json:"provider"`
	Type          string      `json:"type"`
	ApplicantID   string      `json:"applicant_id"`
	CorrelationID string      `json:"correlation_id"`
	RawPayload    []byte      `json:"-"` // exact bytes as received, pre-parse
	Signature     string      `json:"-"`
	Status        EventStatus `json:"status"`
	ErrorMessage  *string     `json:"error_message,omitempty"`
	ReceivedAt    time.Time   `json:"received_at"`
	ProcessedAt   *time.Time  `json:"processed_at,omitempty"`
}
