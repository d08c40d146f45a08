package domain

import "time"

// Role represents a platform user role.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleIssuer   Role = "ISSUER"
	RoleInvestor Role = "INVESTOR"
)

// User is an internal platform identity. IDs are numeric because the
// verification provider's correlation strings embed legacy numeric ids.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Issuer is a credential-issuing organization owned by a platform user.
// DID is monotonic: nil until first set, never cleared or changed after.
// VerificationStatus flips true only on an approved review tied to the
// issuer's applicant; an explicit rejection may flip it back to false.
type Issuer struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	CompanyName        string     `json:"company_name"`
	VerificationStatus bool       `json:"verification_status"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	DID                *string    `json:"did,omitempty"`
	DIDCreatedAt       *time.Time `json:"did_created_at,omitempty"`
}

// HasDID returns true once a DID has been generated for the issuer.
func (i *Issuer) HasDID() bool {
	return i.DID != nil && *i.DID != ""
}
