package service

import (
	"encoding/json"
	"strings"
	"time"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// Field alias tables. The provider exposes personal data through at least
// two structurally different shapes (a rich detail-fetch shape and a thin
// webhook-embedded shape) and field names drift between them. For every
// logical field the aliases are evaluated left to right, first non-empty
// value wins. An explicit table instead of ad hoc fallback chains keeps
// this testable.
var (
	firstNameAliases  = []string{"firstName", "first_name", "givenName"}
	middleNameAliases = []string{"middleName", "middle_name"}
	lastNameAliases   = []string{"lastName", "last_name", "surname", "familyName"}
	dobAliases        = []string{"dob", "birthDate", "dateOfBirth"}
	natAliases        = []string{"nationality", "nationalityCode", "citizenship"}
	govIDAliases      = []string{"idNumber", "idDocNumber", "documentNumber"}
	emailAliases      = []string{"email", "emailAddress"}
	phoneAliases      = []string{"phone", "phoneNumber", "mobilePhone"}

	streetAliases  = []string{"street", "streetAddress", "addressLine1"}
	cityAliases    = []string{"city", "town", "locality"}
	stateAliases   = []string{"state", "region", "province"}
	postalAliases  = []string{"postCode", "postalCode", "zip"}
	countryAliases = []string{"country", "countryCode"}
)

// PersonalInfoNormalizer converts heterogeneous provider payloads into the
// canonical PersonalInfo record. Stateless.
type PersonalInfoNormalizer struct{}

// NewPersonalInfoNormalizer creates a new normalizer.
func NewPersonalInfoNormalizer() *PersonalInfoNormalizer {
	return &PersonalInfoNormalizer{}
}

// Normalize extracts personal data from a raw provider payload. Tries the
// rich detail-fetch shape first (top-level "info"), then the thin
// webhook-embedded shape ("applicant.info", then "applicant" flat).
// Returns nil, not an empty record, when no field yields a value, so
// callers can distinguish "no data" from "data cleared".
func (n *PersonalInfoNormalizer) Normalize(applicantID string, payload []byte) *domain.PersonalInfo {
	root := decodeObject(payload)
	if root == nil {
		return nil
	}

	source := infoSource(root)
	if source == nil {
		return nil
	}

	info := &domain.PersonalInfo{
		ApplicantID: applicantID,
		FirstName:   firstString(source, firstNameAliases),
		MiddleName:  firstString(source, middleNameAliases),
		LastName:    firstString(source, lastNameAliases),
		DOB:         firstString(source, dobAliases),
		Nationality: firstString(source, natAliases),
		GovIDNumber: firstString(source, govIDAliases),
		Email:       firstString(source, emailAliases),
		Phone:       firstString(source, phoneAliases),
		UpdatedAt:   time.Now().UTC(),
	}

	// Contact fields sometimes live at the payload root rather than in
	// the info block.
	if info.Email == nil {
		info.Email = firstString(root, emailAliases)
	}
	if info.Phone == nil {
		info.Phone = firstString(root, phoneAliases)
	}

	if info.IsEmpty() {
		return nil
	}
	return info
}

// NormalizeAddress extracts the primary address from a raw provider
// payload, a nested normalization of the same alias-table kind. Returns
// nil when no address field yields a value.
func (n *PersonalInfoNormalizer) NormalizeAddress(applicantID string, payload []byte) *domain.AddressInfo {
	root := decodeObject(payload)
	if root == nil {
		return nil
	}

	source := addressSource(root)
	if source == nil {
		return nil
	}

	addr := &domain.AddressInfo{
		ID:          uuid.New(),
		ApplicantID: applicantID,
		IsPrimary:   true,
		Street:      firstString(source, streetAliases),
		City:        firstString(source, cityAliases),
		State:       firstString(source, stateAliases),
		PostalCode:  firstString(source, postalAliases),
		Country:     firstString(source, countryAliases),
		UpdatedAt:   time.Now().UTC(),
	}

	if addr.IsEmpty() {
		return nil
	}
	return addr
}

// infoSource picks the personal-info block: rich shape first, thin last.
func infoSource(root map[string]any) map[string]any {
	if info := childObject(root, "info"); info != nil {
		return info
	}
	if applicant := childObject(root, "applicant"); applicant != nil {
		if info := childObject(applicant, "info"); info != nil {
			return info
		}
		return applicant
	}
	return nil
}

// addressSource picks the address block: first entry of info.addresses in
// the rich shape, else a flat "address" object at either level.
func addressSource(root map[string]any) map[string]any {
	candidates := []map[string]any{root}
	if applicant := childObject(root, "applicant"); applicant != nil {
		candidates = append(candidates, applicant)
	}

	for _, c := range candidates {
		if info := childObject(c, "info"); info != nil {
			if list, ok := info["addresses"].([]any); ok && len(list) > 0 {
				if first, ok := list[0].(map[string]any); ok {
					return first
				}
			}
		}
		if addr := childObject(c, "address"); addr != nil {
			return addr
		}
	}
	return nil
}

func decodeObject(payload []byte) map[string]any {
	var root map[string]any
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil
	}
	return root
}

func childObject(m map[string]any, key string) map[string]any {
	child, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return child
}

// firstString returns the first non-empty string among the aliases, or nil.
func firstString(m map[string]any, aliases []string) *string {
	for _, key := range aliases {
		if raw, ok := m[key]; ok {
			if s, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return &trimmed
				}
			}
		}
	}
	return nil
}
