package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is the canonical personal-data record for an applicant,
// one-to-one per applicantId. All data fields are pointers: nil means
// "never seen", which the merge semantics below rely on.
type PersonalInfo struct {
	ApplicantID string    `json:"applicant_id"`
	FirstName   *string   `json:"first_name,omitempty"`
	MiddleName  *string   `json:"middle_name,omitempty"`
	LastName    *string   `json:"last_name,omitempty"`
	DOB         *string   `json:"dob,omitempty"` // provider format YYYY-MM-DD
	Nationality *string   `json:"nationality,omitempty"`
	GovIDNumber *string   `json:"gov_id_number,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsEmpty returns true if no data field carries a value.
func (p *PersonalInfo) IsEmpty() bool {
	return p.FirstName == nil && p.MiddleName == nil && p.LastName == nil &&
		p.DOB == nil && p.Nationality == nil && p.GovIDNumber == nil &&
		p.Email == nil && p.Phone == nil
}

// Merge applies incoming on top of p: non-nil incoming fields overwrite,
// nil incoming fields preserve prior values. A later event that lacks a
// field never deletes a previously known fact.
func (p *PersonalInfo) Merge(incoming *PersonalInfo) {
	if incoming == nil {
		return
	}
	if incoming.FirstName != nil {
		p.FirstName = incoming.FirstName
	}
	if incoming.MiddleName != nil {
		p.MiddleName = incoming.MiddleName
	}
	if incoming.LastName != nil {
		p.LastName = incoming.LastName
	}
	if incoming.DOB != nil {
		p.DOB = incoming.DOB
	}
	if incoming.Nationality != nil {
		p.Nationality = incoming.Nationality
	}
	if incoming.GovIDNumber != nil {
		p.GovIDNumber = incoming.GovIDNumber
	}
	if incoming.Email != nil {
		p.Email = incoming.Email
	}
	if incoming.Phone != nil {
		p.Phone = incoming.Phone
	}
}

// AddressInfo is a normalized applicant address. At most one primary
// record exists per applicant; upserts key on (applicant_id, is_primary).
type AddressInfo struct {
	ID          uuid.UUID `json:"id"`
	ApplicantID string    `json:"applicant_id"`
	IsPrimary   bool      `json:"is_primary"`
	Street      *string   `json:"street,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	PostalCode  *string   `json:"postal_code,omitempty"`
	Country     *string   `json:"country,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsEmpty returns true if no address field carries a value.
func (a *AddressInfo) IsEmpty() bool {
	return a.Street == nil && a.City == nil && a.State == nil &&
		a.PostalCode == nil && a.Country == nil
}
