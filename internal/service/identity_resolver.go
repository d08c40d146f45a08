package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Correlation strings carrying these prefixes are session-scoped or
// placeholder tokens, never real user references.
var nonIdentityPrefixes = []string{
	"temp-", "temp_", "tmp-",
	"test-", "test_",
	"session-", "session_",
	"placeholder-",
	"level-", "level_",
	"anon-",
}

// Role-tagged id templates in fixed priority order. The provider never
// enforced a schema for externalUserId, so every integration point that
// ever wrote one gets its own pattern here.
var identityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^issuer-(\d+)$`),
	regexp.MustCompile(`^investor-(\d+)$`),
	regexp.MustCompile(`^user-(\d+)$`),
	regexp.MustCompile(`^userId_(\d+)$`),
	regexp.MustCompile(`^uid:(\d+)$`),
}

var digitRun = regexp.MustCompile(`\d+`)

// Embedded digit runs are only plausible user ids inside this range.
// Trivially small numbers are usually indices, huge ones are timestamps.
const (
	minPlausibleUserID = 1
	maxPlausibleUserID = 100_000_000
)

// IdentityResolverService implements ports.IdentityResolver with a
// prioritized chain of extraction strategies, short-circuiting on first
// match. Unresolved is a valid outcome, never an error.
type IdentityResolverService struct {
	applicantRepo ports.ApplicantRepository
	log           zerolog.Logger
}

// NewIdentityResolver creates a new identity resolver.
func NewIdentityResolver(applicantRepo ports.ApplicantRepository, log zerolog.Logger) *IdentityResolverService {
	return &IdentityResolverService{applicantRepo: applicantRepo, log: log}
}

// ResolveByApplicantID looks up an existing applicant link. Tried before
// correlation-string parsing because it is unambiguous.
func (s *IdentityResolverService) ResolveByApplicantID(ctx context.Context, applicantID string) (*int64, error) {
	applicant, err := s.applicantRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil || applicant.UserID == nil {
		return nil, nil
	}
	return applicant.UserID, nil
}

// Resolve parses a provider-controlled correlation string. Pure function:
// the same input always yields the same Resolution.
func (s *IdentityResolverService) Resolve(correlationID string) domain.Resolution {
	trimmed := strings.TrimSpace(correlationID)
	if trimmed == "" {
		return domain.Resolution{}
	}

	// 1. Known non-identity markers.
	lower := strings.ToLower(trimmed)
	for _, prefix := range nonIdentityPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return domain.Resolution{}
		}
	}

	// 2. Role-tagged templates in priority order.
	for _, pattern := range identityPatterns {
		if m := pattern.FindStringSubmatch(trimmed); m != nil {
			if id, err := strconv.ParseInt(m[1], 10, 64); err == nil && id > 0 {
				return domain.Resolution{UserID: id, Confidence: domain.ConfidenceExact}
			}
		}
	}

	// 3. Whole string numeric.
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil && id > 0 {
		return domain.Resolution{UserID: id, Confidence: domain.ConfidenceNumeric}
	}

	// 4. Last resort: embedded digit run within a plausible id range.
	// Low confidence, flagged as heuristic so callers log instead of link.
	for _, run := range digitRun.FindAllString(trimmed, -1) {
		id, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			continue
		}
		if id >= minPlausibleUserID && id <= maxPlausibleUserID {
			s.log.Debug().
				Str("correlation_id", correlationID).
				Int64("candidate", id).
				Msg("heuristic id extraction, not trusted for linking")
			return domain.Resolution{UserID: id, Confidence: domain.ConfidenceHeuristic}
		}
	}

	return domain.Resolution{}
}
