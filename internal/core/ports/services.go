package ports

import (
	"context"
	"time"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureAlgorithm selects the HMAC digest used by the verification
// provider for a given deployment.
type SignatureAlgorithm string

const (
	AlgHMACSHA1   SignatureAlgorithm = "HMAC_SHA1_HEX"
	AlgHMACSHA256 SignatureAlgorithm = "HMAC_SHA256_HEX"
)

// SignatureVerifier authenticates inbound webhook bodies. Verify computes
// an HMAC over the exact raw request bytes (never a reserialized body) and
// compares in constant time. It returns false, never an error, on missing
// signature, missing secret or length mismatch.
type SignatureVerifier interface {
	Verify(rawBody []byte, signature, secret string, alg SignatureAlgorithm) bool
	Sign(payload []byte, secret string, alg SignatureAlgorithm) string
}

// IdentityResolver maps provider-supplied identifiers to internal users.
// Resolve is a pure function over the correlation string; ResolveByApplicantID
// consults the applicant association table first since it is unambiguous.
// Unresolved is a valid terminal outcome, not an error: callers defer and
// retry on a later event.
type IdentityResolver interface {
	Resolve(correlationID string) domain.Resolution
	ResolveByApplicantID(ctx context.Context, applicantID string) (*int64, error)
}

// Outcome classifies the processing result of one webhook delivery.
// The transport layer maps it to an HTTP status; internal failures after
// signature verification always acknowledge with success to keep the
// provider from retry-storming.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeWarning
	OutcomeRejectedAuth
	OutcomeRejectedMalformed
)

// InboundEvent is the canonical webhook event after transport decoding.
// RawPayload and Signature preserve the delivery exactly as received for
// the audit trail; EventID is assigned when the event log records it.
type InboundEvent struct {
	EventID       uuid.UUID
	Provider      string
	Type          string
	ApplicantID   string
	CorrelationID string
	ReviewStatus  string
	ReviewResult  string
	RejectReason  string
	RawPayload    []byte
	Signature     string
	ReceivedAt    time.Time
}

// EventLog durably records every inbound webhook with processing status,
// independent of business outcome. All methods are best-effort.
type EventLog interface {
	Record(ctx context.Context, event *InboundEvent) uuid.UUID
	MarkProcessed(ctx context.Context, id uuid.UUID)
	MarkError(ctx context.Context, id uuid.UUID, message string)
}

// ReconciliationService consumes a verified, recorded event and applies
// the correct entity transitions. It never returns transport-level errors:
// per-event failures are recorded in the event log.
type ReconciliationService interface {
	Apply(ctx context.Context, event *InboundEvent) Outcome
}

// ProvisioningService owns idempotent DID and wallet bootstrap.
type ProvisioningService interface {
	// EnsureDID returns the issuer's DID, generating wallet and DID first
	// if needed. The second result reports whether this call set the DID.
	EnsureDID(ctx context.Context, issuer *domain.Issuer) (string, bool, error)
}

// SweepReport summarizes one maintenance sweep run.
type SweepReport struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// ApplicantProfile is the operator view of one applicant: the canonical
// record plus everything reconciliation has accumulated for it. Personal
// and Address stay nil until a detail payload has been merged.
type ApplicantProfile struct {
	Applicant *domain.Applicant            `json:"applicant"`
	Personal  *domain.PersonalInfo         `json:"personal_info,omitempty"`
	Address   *domain.AddressInfo          `json:"address,omitempty"`
	History   []domain.VerificationHistory `json:"history"`
}

// MaintenanceService exposes the idempotent batch sweeps that repair
// records left incomplete by out-of-order or failed events, plus the
// read-side views operators use to decide when to run them.
type MaintenanceService interface {
	RelinkApplicants(ctx context.Context) (*SweepReport, error)
	BackfillDIDs(ctx context.Context) (*SweepReport, error)
	FailedEvents(ctx context.Context, limit int) ([]domain.WebhookEvent, error)
	ApplicantProfile(ctx context.Context, applicantID string) (*ApplicantProfile, error)
}

// TokenService handles admin JWT operations for the maintenance API.
type TokenService interface {
	Generate(subject string, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    domain.Role
}
