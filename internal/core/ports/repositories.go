package ports

import (
	"context"
	"time"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EventRepository persists the append-only webhook audit trail. Writes are
// best-effort: callers log failures and continue, the audit log is never a
// transaction participant with the business entities.
type EventRepository interface {
	Create(ctx context.Context, event *domain.WebhookEvent) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkError(ctx context.Context, id uuid.UUID, message string) error
	ListByStatus(ctx context.Context, status domain.EventStatus, limit int) ([]domain.WebhookEvent, error)
}

// ApplicantRepository persists applicant records.
// Upsert accepts pgx.Tx so the applicant mutation and its history row can
// share one short transaction scoped to a single applicant.
type ApplicantRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, applicant *domain.Applicant) error
	GetByApplicantID(ctx context.Context, applicantID string) (*domain.Applicant, error)
	Link(ctx context.Context, applicantID string, userID int64) error
	ListUnlinked(ctx context.Context, limit int) ([]domain.Applicant, error)
}

// PersonalInfoRepository persists canonical personal data. Merge semantics:
// non-nil incoming fields overwrite, nil fields preserve stored values.
type PersonalInfoRepository interface {
	Merge(ctx context.Context, info *domain.PersonalInfo) error
	Get(ctx context.Context, applicantID string) (*domain.PersonalInfo, error)
	MergeAddress(ctx context.Context, addr *domain.AddressInfo) error
	GetPrimaryAddress(ctx context.Context, applicantID string) (*domain.AddressInfo, error)
}

// HistoryRepository appends to the verification audit trail.
type HistoryRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.VerificationHistory) error
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.VerificationHistory, error)
}

// IssuerRepository persists issuers. SetVerified and SetDID are conditional
// writes: they report whether this call actually performed the transition,
// which is how the engine detects "newly verified" and "DID newly set"
// under at-least-once delivery and concurrent processing.
type IssuerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Issuer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Issuer, error)
	GetByApplicantID(ctx context.Context, applicantID string) (*domain.Issuer, error)
	SetVerified(ctx context.Context, id int64, verified bool, at time.Time) (bool, error)
	SetDID(ctx context.Context, id int64, did string, at time.Time) (bool, error)
	ListVerifiedWithoutDID(ctx context.Context, limit int) ([]domain.Issuer, error)
}

// UserRepository reads platform users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// WalletRepository persists wallets created via the external wallet provider.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUserAndChain(ctx context.Context, userID int64, chain string) (*domain.Wallet, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ApplicantLock serializes concurrent webhook deliveries for the same
// applicantId. Acquire returns false if another delivery holds the lock.
type ApplicantLock interface {
	Acquire(ctx context.Context, applicantID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, applicantID string) error
}
