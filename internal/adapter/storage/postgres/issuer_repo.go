package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IssuerRepo implements ports.IssuerRepository. The SetVerified and
// SetDID writes are conditional: the WHERE clause makes the database the
// arbiter of whether a transition happened, which is what keeps
// redelivered and concurrently processed webhooks from repeating side
// effects.
type IssuerRepo struct {
	pool Pool
}

// NewIssuerRepo creates a new IssuerRepo.
func NewIssuerRepo(pool Pool) *IssuerRepo {
	return &IssuerRepo{pool: pool}
}

const issuerColumns = `id, user_id, company_name, verification_status, verified_at, did, did_created_at`

func scanIssuer(row pgx.Row) (*domain.Issuer, error) {
	i := &domain.Issuer{}
	err := row.Scan(
		&i.ID, &i.UserID, &i.CompanyName, &i.VerificationStatus,
		&i.VerifiedAt, &i.DID, &i.DIDCreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// GetByID fetches an issuer by id.
func (r *IssuerRepo) GetByID(ctx context.Context, id int64) (*domain.Issuer, error) {
	query := `SELECT ` + issuerColumns + ` FROM issuers WHERE id = $1`

	issuer, err := scanIssuer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuer by id: %w", err)
	}
	return issuer, nil
}

// GetByUserID fetches the issuer owned by a platform user.
func (r *IssuerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Issuer, error) {
	query := `SELECT ` + issuerColumns + ` FROM issuers WHERE user_id = $1`

	issuer, err := scanIssuer(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuer by user id: %w", err)
	}
	return issuer, nil
}

// GetByApplicantID fetches the issuer owning a linked applicant.
func (r *IssuerRepo) GetByApplicantID(ctx context.Context, applicantID string) (*domain.Issuer, error) {
	query := `SELECT i.id, i.user_id, i.company_name, i.verification_status, i.verified_at, i.did, i.did_created_at
		FROM issuers i
		JOIN applicants a ON a.user_id = i.user_id
		WHERE a.applicant_id = $1`

	issuer, err := scanIssuer(r.pool.QueryRow(ctx, query, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuer by applicant id: %w", err)
	}
	return issuer, nil
}

// SetVerified flips the verification flag and reports whether this call
// changed it. A no-op redelivery affects zero rows.
func (r *IssuerRepo) SetVerified(ctx context.Context, id int64, verified bool, at time.Time) (bool, error) {
	query := `UPDATE issuers SET verification_status=$1, verified_at=$2
		WHERE id=$3 AND verification_status IS DISTINCT FROM $1`

	tag, err := r.pool.Exec(ctx, query, verified, at, id)
	if err != nil {
		return false, fmt.Errorf("set issuer verified: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetDID records the issuer's DID once. The did IS NULL guard makes the
// DID monotonic: the first writer wins and every later call is a no-op.
func (r *IssuerRepo) SetDID(ctx context.Context, id int64, did string, at time.Time) (bool, error) {
	query := `UPDATE issuers SET did=$1, did_created_at=$2
		WHERE id=$3 AND did IS NULL`

	tag, err := r.pool.Exec(ctx, query, did, at, id)
	if err != nil {
		return false, fmt.Errorf("set issuer did: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListVerifiedWithoutDID fetches verified issuers missing a DID, the
// backfill sweep's work queue.
func (r *IssuerRepo) ListVerifiedWithoutDID(ctx context.Context, limit int) ([]domain.Issuer, error) {
	query := `SELECT ` + issuerColumns + ` FROM issuers
		WHERE verification_status = TRUE AND did IS NULL ORDER BY id ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list verified issuers without did: %w", err)
	}
	defer rows.Close()

	var issuers []domain.Issuer
	for rows.Next() {
		var i domain.Issuer
		if err := rows.Scan(
			&i.ID, &i.UserID, &i.CompanyName, &i.VerificationStatus,
			&i.VerifiedAt, &i.DID, &i.DIDCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan issuer row: %w", err)
		}
		issuers = append(issuers, i)
	}
	return issuers, rows.Err()
}
