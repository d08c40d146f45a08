package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicantStatus represents the verification state of an applicant.
type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "PENDING"
	ApplicantStatusOnHold   ApplicantStatus = "ON_HOLD"
	ApplicantStatusReviewed ApplicantStatus = "REVIEWED"
)

// Review results as reported by the verification provider.
const (
	ReviewResultApproved = "GREEN"
	ReviewResultRejected = "RED"
)

// Applicant tracks a verification subject owned by the external KYC provider.
// Created on first sighting of its applicantId, whichever event arrives first;
// never deleted. UserID is nil until the correlation id resolves to an
// internal user.
type Applicant struct {
	ApplicantID   string          `json:"applicant_id"`
	UserID        *int64          `json:"user_id,omitempty"`
	CorrelationID string          `json:"correlation_id"`
	Status        ApplicantStatus `json:"status"`
	ReviewResult  *string         `json:"review_result,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsApproved returns true if the applicant's last review result was approval.
func (a *Applicant) IsApproved() bool {
	return a.ReviewResult != nil && *a.ReviewResult == ReviewResultApproved
}

// VerificationHistory is one append-only audit row per accepted webhook event,
// written regardless of whether the event changed any mutable entity.
type VerificationHistory struct {
	ID           uuid.UUID `json:"id"`
	ApplicantID  string    `json:"applicant_id"`
	EventType    string    `json:"event_type"`
	ReviewStatus string    `json:"review_status"`
	ReviewResult string    `json:"review_result"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
