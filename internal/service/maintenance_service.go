package service

import (
	"context"
	"time"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

const sweepBatchLimit = 500

// MaintenanceServiceImpl implements ports.MaintenanceService: idempotent
// batch sweeps that repair records left incomplete by out-of-order or
// failed webhook deliveries. Safe to run repeatedly; each sweep converges
// toward the state the live webhook path would have produced.
type MaintenanceServiceImpl struct {
	applicantRepo ports.ApplicantRepository
	issuerRepo    ports.IssuerRepository
	userRepo      ports.UserRepository
	eventRepo     ports.EventRepository
	personalRepo  ports.PersonalInfoRepository
	historyRepo   ports.HistoryRepository
	resolver      ports.IdentityResolver
	provisioning  ports.ProvisioningService
	log           zerolog.Logger
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(
	applicantRepo ports.ApplicantRepository,
	issuerRepo ports.IssuerRepository,
	userRepo ports.UserRepository,
	eventRepo ports.EventRepository,
	personalRepo ports.PersonalInfoRepository,
	historyRepo ports.HistoryRepository,
	resolver ports.IdentityResolver,
	provisioning ports.ProvisioningService,
	log zerolog.Logger,
) *MaintenanceServiceImpl {
	return &MaintenanceServiceImpl{
		applicantRepo: applicantRepo,
		issuerRepo:    issuerRepo,
		userRepo:      userRepo,
		eventRepo:     eventRepo,
		personalRepo:  personalRepo,
		historyRepo:   historyRepo,
		resolver:      resolver,
		provisioning:  provisioning,
		log:           log,
	}
}

// RelinkApplicants re-runs correlation resolution over unlinked applicants
// and links those that now resolve with trusted confidence. For applicants
// already approved while orphaned, it completes the deferred issuer side
// effects as well.
func (s *MaintenanceServiceImpl) RelinkApplicants(ctx context.Context) (*ports.SweepReport, error) {
	applicants, err := s.applicantRepo.ListUnlinked(ctx, sweepBatchLimit)
	if err != nil {
		return nil, err
	}

	report := &ports.SweepReport{}
	for i := range applicants {
		applicant := &applicants[i]
		res := s.resolver.Resolve(applicant.CorrelationID)
		if !res.Trusted() {
			continue
		}

		// A trusted parse can still point at a user id that was never
		// provisioned on this platform. Never link to a ghost.
		user, err := s.userRepo.GetByID(ctx, res.UserID)
		if err != nil {
			s.log.Warn().Err(err).
				Str("applicant_id", applicant.ApplicantID).
				Int64("user_id", res.UserID).
				Msg("maintenance: user lookup failed")
			report.Processed++
			report.Failed++
			continue
		}
		if user == nil {
			s.log.Warn().
				Str("applicant_id", applicant.ApplicantID).
				Int64("user_id", res.UserID).
				Msg("maintenance: resolved user does not exist, skipping link")
			continue
		}
		report.Processed++

		if err := s.relinkOne(ctx, applicant, res.UserID); err != nil {
			s.log.Warn().Err(err).
				Str("applicant_id", applicant.ApplicantID).
				Int64("user_id", res.UserID).
				Msg("maintenance: relink failed")
			report.Failed++
			continue
		}
		report.Succeeded++
	}

	s.log.Info().
		Int("processed", report.Processed).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("maintenance: relink sweep complete")
	return report, nil
}

func (s *MaintenanceServiceImpl) relinkOne(ctx context.Context, applicant *domain.Applicant, userID int64) error {
	if err := s.applicantRepo.Link(ctx, applicant.ApplicantID, userID); err != nil {
		return err
	}
	s.log.Info().
		Str("applicant_id", applicant.ApplicantID).
		Int64("user_id", userID).
		Msg("maintenance: applicant linked")

	if !applicant.IsApproved() {
		return nil
	}

	// Approval arrived while the applicant was orphaned; complete the
	// deferred verification flip and DID bootstrap now.
	issuer, err := s.issuerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if issuer == nil {
		return nil
	}

	if _, err := s.issuerRepo.SetVerified(ctx, issuer.ID, true, time.Now().UTC()); err != nil {
		return err
	}
	if _, _, err := s.provisioning.EnsureDID(ctx, issuer); err != nil {
		return err
	}
	return nil
}

// BackfillDIDs provisions DIDs for verified issuers that are missing one,
// typically because a wallet provider outage interrupted the live path.
func (s *MaintenanceServiceImpl) BackfillDIDs(ctx context.Context) (*ports.SweepReport, error) {
	issuers, err := s.issuerRepo.ListVerifiedWithoutDID(ctx, sweepBatchLimit)
	if err != nil {
		return nil, err
	}

	report := &ports.SweepReport{}
	for i := range issuers {
		issuer := &issuers[i]
		report.Processed++

		if _, _, err := s.provisioning.EnsureDID(ctx, issuer); err != nil {
			s.log.Warn().Err(err).
				Int64("issuer_id", issuer.ID).
				Msg("maintenance: did backfill failed")
			report.Failed++
			continue
		}
		report.Succeeded++
	}

	s.log.Info().
		Int("processed", report.Processed).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("maintenance: did backfill sweep complete")
	return report, nil
}

// FailedEvents lists webhook deliveries stuck in the error state, oldest
// first. Operators inspect these to decide whether a sweep will repair
// them or the provider needs to redeliver.
func (s *MaintenanceServiceImpl) FailedEvents(ctx context.Context, limit int) ([]domain.WebhookEvent, error) {
	if limit <= 0 || limit > sweepBatchLimit {
		limit = sweepBatchLimit
	}
	return s.eventRepo.ListByStatus(ctx, domain.EventStatusError, limit)
}

// ApplicantProfile assembles the operator view of one applicant. Returns
// nil when the applicant is unknown.
func (s *MaintenanceServiceImpl) ApplicantProfile(ctx context.Context, applicantID string) (*ports.ApplicantProfile, error) {
	applicant, err := s.applicantRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, nil
	}

	personal, err := s.personalRepo.Get(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	address, err := s.personalRepo.GetPrimaryAddress(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	return &ports.ApplicantProfile{
		Applicant: applicant,
		Personal:  personal,
		Address:   address,
		History:   history,
	}, nil
}
