package postgres

import (
	"context"
	"errors"
	"fmt"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PersonalInfoRepo implements ports.PersonalInfoRepository. Merge
// semantics live in the SQL: COALESCE keeps a stored value whenever the
// incoming field is NULL, so a later event that lacks a field never
// deletes a previously known fact, and the last-write-wins order is
// whatever order the database serializes the upserts in.
type PersonalInfoRepo struct {
	pool Pool
}

// NewPersonalInfoRepo creates a new PersonalInfoRepo.
func NewPersonalInfoRepo(pool Pool) *PersonalInfoRepo {
	return &PersonalInfoRepo{pool: pool}
}

// Merge upserts personal data, preserving stored fields the incoming
// record does not carry.
func (r *PersonalInfoRepo) Merge(ctx context.Context, info *domain.PersonalInfo) error {
	query := `INSERT INTO personal_info (applicant_id, first_name, middle_name, last_name, dob, nationality, gov_id_number, email, phone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (applicant_id) DO UPDATE SET
			first_name    = COALESCE(EXCLUDED.first_name, personal_info.first_name),
			middle_name   = COALESCE(EXCLUDED.middle_name, personal_info.middle_name),
			last_name     = COALESCE(EXCLUDED.last_name, personal_info.last_name),
			dob           = COALESCE(EXCLUDED.dob, personal_info.dob),
			nationality   = COALESCE(EXCLUDED.nationality, personal_info.nationality),
			gov_id_number = COALESCE(EXCLUDED.gov_id_number, personal_info.gov_id_number),
			email         = COALESCE(EXCLUDED.email, personal_info.email),
			phone         = COALESCE(EXCLUDED.phone, personal_info.phone),
			updated_at    = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		info.ApplicantID, info.FirstName, info.MiddleName, info.LastName,
		info.DOB, info.Nationality, info.GovIDNumber, info.Email, info.Phone,
		info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("merge personal info: %w", err)
	}
	return nil
}

// Get fetches the personal data record for an applicant.
func (r *PersonalInfoRepo) Get(ctx context.Context, applicantID string) (*domain.PersonalInfo, error) {
	query := `SELECT applicant_id, first_name, middle_name, last_name, dob, nationality, gov_id_number, email, phone, updated_at
		FROM personal_info WHERE applicant_id = $1`

	info := &domain.PersonalInfo{}
	err := r.pool.QueryRow(ctx, query, applicantID).Scan(
		&info.ApplicantID, &info.FirstName, &info.MiddleName, &info.LastName,
		&info.DOB, &info.Nationality, &info.GovIDNumber, &info.Email, &info.Phone,
		&info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get personal info: %w", err)
	}
	return info, nil
}

// MergeAddress upserts the primary address with the same field-level
// preservation as Merge.
func (r *PersonalInfoRepo) MergeAddress(ctx context.Context, addr *domain.AddressInfo) error {
	query := `INSERT INTO applicant_addresses (id, applicant_id, is_primary, street, city, state, postal_code, country, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (applicant_id, is_primary) DO UPDATE SET
			street      = COALESCE(EXCLUDED.street, applicant_addresses.street),
			city        = COALESCE(EXCLUDED.city, applicant_addresses.city),
			state       = COALESCE(EXCLUDED.state, applicant_addresses.state),
			postal_code = COALESCE(EXCLUDED.postal_code, applicant_addresses.postal_code),
			country     = COALESCE(EXCLUDED.country, applicant_addresses.country),
			updated_at  = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		addr.ID, addr.ApplicantID, addr.IsPrimary, addr.Street, addr.City,
		addr.State, addr.PostalCode, addr.Country, addr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("merge address: %w", err)
	}
	return nil
}

// GetPrimaryAddress fetches the primary address for an applicant.
func (r *PersonalInfoRepo) GetPrimaryAddress(ctx context.Context, applicantID string) (*domain.AddressInfo, error) {
	query := `SELECT id, applicant_id, is_primary, street, city, state, postal_code, country, updated_at
		FROM applicant_addresses WHERE applicant_id = $1 AND is_primary = TRUE`

	addr := &domain.AddressInfo{}
	err := r.pool.QueryRow(ctx, query, applicantID).Scan(
		&addr.ID, &addr.ApplicantID, &addr.IsPrimary, &addr.Street, &addr.City,
		&addr.State, &addr.PostalCode, &addr.Country, &addr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get primary address: %w", err)
	}
	return addr, nil
}
