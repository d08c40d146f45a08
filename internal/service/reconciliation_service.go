package service

import (
	"context"
	"fmt"
	"time"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	applicantLockTTL  = 30 * time.Second
	lockRetryAttempts = 3
	lockRetryInterval = 100 * time.Millisecond
)

// ReconciliationEngine implements ports.ReconciliationService: the state
// machine that consumes a verified, recorded webhook event and applies
// the correct entity transitions. Transitions are driven by event type,
// never by delivery order; all cross-event coordination happens through
// the durable store. Failures never escape to the transport layer: each
// per-event failure is recorded in the event log and classified as a
// warning outcome.
type ReconciliationEngine struct {
	applicantRepo ports.ApplicantRepository
	personalRepo  ports.PersonalInfoRepository
	historyRepo   ports.HistoryRepository
	issuerRepo    ports.IssuerRepository
	eventLog      ports.EventLog
	resolver      ports.IdentityResolver
	normalizer    *PersonalInfoNormalizer
	provisioning  ports.ProvisioningService
	verifClient   ports.VerificationProviderClient
	walletClient  ports.WalletProviderClient
	transactor    ports.DBTransactor
	lock          ports.ApplicantLock
	mintOnVerify  bool
	metrics       *metrics.Metrics
	log           zerolog.Logger
}

// NewReconciliationEngine creates a new reconciliation engine.
func NewReconciliationEngine(
	applicantRepo ports.ApplicantRepository,
	personalRepo ports.PersonalInfoRepository,
	historyRepo ports.HistoryRepository,
	issuerRepo ports.IssuerRepository,
	eventLog ports.EventLog,
	resolver ports.IdentityResolver,
	normalizer *PersonalInfoNormalizer,
	provisioning ports.ProvisioningService,
	verifClient ports.VerificationProviderClient,
	walletClient ports.WalletProviderClient,
	transactor ports.DBTransactor,
	lock ports.ApplicantLock,
	mintOnVerify bool,
	m *metrics.Metrics,
	log zerolog.Logger,
) *ReconciliationEngine {
	return &ReconciliationEngine{
		applicantRepo: applicantRepo,
		personalRepo:  personalRepo,
		historyRepo:   historyRepo,
		issuerRepo:    issuerRepo,
		eventLog:      eventLog,
		resolver:      resolver,
		normalizer:    normalizer,
		provisioning:  provisioning,
		verifClient:   verifClient,
		walletClient:  walletClient,
		transactor:    transactor,
		lock:          lock,
		mintOnVerify:  mintOnVerify,
		metrics:       m,
		log:           log,
	}
}

// Apply processes one recorded inbound event and returns its outcome.
func (e *ReconciliationEngine) Apply(ctx context.Context, event *ports.InboundEvent) ports.Outcome {
	start := time.Now()
	defer func() { e.metrics.ObserveProcessLatency(time.Since(start)) }()

	if e.acquireLock(ctx, event.ApplicantID) {
		defer e.releaseLock(ctx, event.ApplicantID)
	}

	var err error
	switch event.Type {
	case domain.EventApplicantCreated:
		err = e.handleCreated(ctx, event)
	case domain.EventApplicantPending:
		err = e.handleStatusOnly(ctx, event, domain.ApplicantStatusPending)
	case domain.EventApplicantOnHold:
		err = e.handleStatusOnly(ctx, event, domain.ApplicantStatusOnHold)
	case domain.EventApplicantReviewed:
		err = e.handleReviewed(ctx, event)
	case domain.EventApplicantInfoChanged:
		err = e.handleInfoChanged(ctx, event)
	default:
		e.eventLog.MarkError(ctx, event.EventID, fmt.Sprintf("unsupported event type %q", event.Type))
		e.metrics.IncrementEvent(event.Type, "warning")
		return ports.OutcomeWarning
	}

	if err != nil {
		e.log.Error().Err(err).
			Str("event_id", event.EventID.String()).
			Str("type", event.Type).
			Str("applicant_id", event.ApplicantID).
			Msg("reconciliation: event processing failed")
		e.eventLog.MarkError(ctx, event.EventID, err.Error())
		e.metrics.IncrementEvent(event.Type, "warning")
		return ports.OutcomeWarning
	}

	e.eventLog.MarkProcessed(ctx, event.EventID)
	e.metrics.IncrementEvent(event.Type, "ok")
	return ports.OutcomeOK
}

// handleCreated upserts the applicant, attempts linking, persists any
// embedded personal data and, when the owning issuer is already known,
// runs initial wallet/DID provisioning independent of the verification
// outcome.
func (e *ReconciliationEngine) handleCreated(ctx context.Context, event *ports.InboundEvent) error {
	userID, err := e.resolveUser(ctx, event)
	if err != nil {
		return err
	}

	if err := e.persistTransition(ctx, event, domain.ApplicantStatusPending, userID, nil); err != nil {
		return err
	}

	e.mergePersonalData(ctx, event.ApplicantID, event.RawPayload)

	if userID == nil {
		// Valid terminal outcome: audit data persisted, no issuer side
		// effects. Linking is retried on a later event or by the sweep.
		return nil
	}

	issuer, err := e.issuerRepo.GetByUserID(ctx, *userID)
	if err != nil {
		return fmt.Errorf("load issuer for user %d: %w", *userID, err)
	}
	if issuer == nil {
		return nil
	}

	if _, _, err := e.provisioning.EnsureDID(ctx, issuer); err != nil {
		return fmt.Errorf("initial provisioning for issuer %d: %w", issuer.ID, err)
	}
	return nil
}

// handleStatusOnly records history and updates the applicant status.
// No other entity is mutated.
func (e *ReconciliationEngine) handleStatusOnly(ctx context.Context, event *ports.InboundEvent, status domain.ApplicantStatus) error {
	userID, err := e.resolveUser(ctx, event)
	if err != nil {
		return err
	}
	return e.persistTransition(ctx, event, status, userID, nil)
}

// handleReviewed is the approval/rejection path: history append, status
// and result upsert, fresh detail fetch, and on approval the issuer flip
// plus DID provisioning and credential issuance eligibility.
func (e *ReconciliationEngine) handleReviewed(ctx context.Context, event *ports.InboundEvent) error {
	userID, err := e.resolveUser(ctx, event)
	if err != nil {
		return err
	}

	result := event.ReviewResult
	if err := e.persistTransition(ctx, event, domain.ApplicantStatusReviewed, userID, &result); err != nil {
		return err
	}

	// Review events often carry richer data on the detail endpoint than
	// in the webhook body; prefer the fresh fetch, fall back to the
	// embedded payload on fetch failure.
	payload := event.RawPayload
	if e.verifClient != nil {
		if detail, err := e.verifClient.FetchApplicantDetail(ctx, event.ApplicantID); err != nil {
			e.log.Warn().Err(err).
				Str("applicant_id", event.ApplicantID).
				Msg("reconciliation: detail fetch failed, using webhook payload")
		} else {
			payload = detail
		}
	}
	e.mergePersonalData(ctx, event.ApplicantID, payload)

	switch result {
	case domain.ReviewResultApproved:
		return e.applyApproval(ctx, event, userID)
	case domain.ReviewResultRejected:
		return e.applyRejection(ctx, event, userID)
	default:
		// Pending-equivalent verdicts carry no issuer side effects.
		return nil
	}
}

// handleInfoChanged ensures the applicant row exists (the very first
// event seen for an applicant may be an info change, out of order),
// records the audit entry and re-merges personal data.
func (e *ReconciliationEngine) handleInfoChanged(ctx context.Context, event *ports.InboundEvent) error {
	userID, err := e.resolveUser(ctx, event)
	if err != nil {
		return err
	}
	if err := e.persistTransition(ctx, event, domain.ApplicantStatusPending, userID, nil); err != nil {
		return err
	}
	e.mergePersonalData(ctx, event.ApplicantID, event.RawPayload)
	return nil
}

// applyApproval flips the issuer verified and provisions the DID. The
// conditional SetVerified write reports whether this delivery performed
// the transition, which keeps redeliveries from duplicating side effects.
func (e *ReconciliationEngine) applyApproval(ctx context.Context, event *ports.InboundEvent, userID *int64) error {
	issuer, err := e.findIssuer(ctx, event.ApplicantID, userID)
	if err != nil {
		return err
	}
	if issuer == nil {
		// No linkable issuer: audit data is persisted, side effects are
		// deferred to a later event or the relink sweep.
		e.log.Info().
			Str("applicant_id", event.ApplicantID).
			Msg("reconciliation: approval with no linked issuer, deferring")
		return nil
	}

	changed, err := e.issuerRepo.SetVerified(ctx, issuer.ID, true, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set issuer %d verified: %w", issuer.ID, err)
	}
	if changed {
		e.log.Info().Int64("issuer_id", issuer.ID).Str("applicant_id", event.ApplicantID).
			Msg("reconciliation: issuer verified")
	}

	did, created, err := e.provisioning.EnsureDID(ctx, issuer)
	if err != nil {
		return fmt.Errorf("provision did for issuer %d: %w", issuer.ID, err)
	}

	if created && e.mintOnVerify && e.walletClient != nil {
		claims := map[string]any{
			"applicantId": event.ApplicantID,
			"issuerId":    issuer.ID,
			"verifiedAt":  time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := e.walletClient.MintCredential(ctx, did, claims); err != nil {
			return fmt.Errorf("mint credential for issuer %d: %w", issuer.ID, err)
		}
		e.metrics.IncrementMint()
	}
	return nil
}

// applyRejection flips verification off. Any existing DID is left alone:
// DIDs are monotonic.
func (e *ReconciliationEngine) applyRejection(ctx context.Context, event *ports.InboundEvent, userID *int64) error {
	issuer, err := e.findIssuer(ctx, event.ApplicantID, userID)
	if err != nil {
		return err
	}
	if issuer == nil {
		return nil
	}

	if _, err := e.issuerRepo.SetVerified(ctx, issuer.ID, false, time.Now().UTC()); err != nil {
		return fmt.Errorf("set issuer %d unverified: %w", issuer.ID, err)
	}
	e.log.Info().Int64("issuer_id", issuer.ID).Str("applicant_id", event.ApplicantID).
		Msg("reconciliation: issuer verification rejected")
	return nil
}

// persistTransition upserts the applicant and appends the history row in
// one short transaction scoped to this applicant.
func (e *ReconciliationEngine) persistTransition(ctx context.Context, event *ports.InboundEvent, status domain.ApplicantStatus, userID *int64, result *string) error {
	tx, err := e.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	applicant := &domain.Applicant{
		ApplicantID:   event.ApplicantID,
		UserID:        userID,
		CorrelationID: event.CorrelationID,
		Status:        status,
		ReviewResult:  result,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.applicantRepo.Upsert(ctx, tx, applicant); err != nil {
		return fmt.Errorf("upsert applicant %s: %w", event.ApplicantID, err)
	}

	entry := &domain.VerificationHistory{
		ID:           uuid.New(),
		ApplicantID:  event.ApplicantID,
		EventType:    event.Type,
		ReviewStatus: event.ReviewStatus,
		ReviewResult: event.ReviewResult,
		CreatedAt:    now,
	}
	if event.RejectReason != "" {
		entry.RejectReason = &event.RejectReason
	}
	if err := e.historyRepo.Append(ctx, tx, entry); err != nil {
		return fmt.Errorf("append history for %s: %w", event.ApplicantID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transition: %w", err)
	}
	return nil
}

// mergePersonalData normalizes and merge-upserts personal and address
// data. Absence of data is not an error; store failures are logged but do
// not fail the event, personal data converges on later deliveries.
func (e *ReconciliationEngine) mergePersonalData(ctx context.Context, applicantID string, payload []byte) {
	if info := e.normalizer.Normalize(applicantID, payload); info != nil {
		if err := e.personalRepo.Merge(ctx, info); err != nil {
			e.log.Warn().Err(err).Str("applicant_id", applicantID).Msg("reconciliation: personal info merge failed")
		}
	}
	if addr := e.normalizer.NormalizeAddress(applicantID, payload); addr != nil {
		if err := e.personalRepo.MergeAddress(ctx, addr); err != nil {
			e.log.Warn().Err(err).Str("applicant_id", applicantID).Msg("reconciliation: address merge failed")
		}
	}
}

// resolveUser resolves the internal user for an event: applicant link
// first (unambiguous), then correlation-string parsing. Only trusted
// resolutions produce a link; heuristic hits are surfaced for review.
// nil with no error means "defer, retry on a later event".
func (e *ReconciliationEngine) resolveUser(ctx context.Context, event *ports.InboundEvent) (*int64, error) {
	userID, err := e.resolver.ResolveByApplicantID(ctx, event.ApplicantID)
	if err != nil {
		return nil, fmt.Errorf("resolve by applicant id: %w", err)
	}
	if userID != nil {
		return userID, nil
	}

	res := e.resolver.Resolve(event.CorrelationID)
	e.metrics.IncrementResolution(res.Confidence.String())
	if res.Trusted() {
		id := res.UserID
		return &id, nil
	}
	if res.Confidence == domain.ConfidenceHeuristic {
		e.log.Warn().
			Str("applicant_id", event.ApplicantID).
			Str("correlation_id", event.CorrelationID).
			Int64("candidate_user_id", res.UserID).
			Msg("reconciliation: heuristic correlation match left unlinked for review")
	}
	return nil, nil
}

// findIssuer locates the issuer owning an applicant: by applicant link
// first, falling back to the resolved user id.
func (e *ReconciliationEngine) findIssuer(ctx context.Context, applicantID string, userID *int64) (*domain.Issuer, error) {
	issuer, err := e.issuerRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("load issuer by applicant %s: %w", applicantID, err)
	}
	if issuer != nil {
		return issuer, nil
	}
	if userID == nil {
		return nil, nil
	}
	issuer, err = e.issuerRepo.GetByUserID(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("load issuer by user %d: %w", *userID, err)
	}
	return issuer, nil
}

// acquireLock reports whether this delivery now holds the applicant lock.
// False means processing proceeds unserialized and nothing may be released.
func (e *ReconciliationEngine) acquireLock(ctx context.Context, applicantID string) bool {
	if e.lock == nil {
		return false
	}
	for attempt := 0; attempt < lockRetryAttempts; attempt++ {
		ok, err := e.lock.Acquire(ctx, applicantID, applicantLockTTL)
		if err != nil {
			// Lock store trouble must not drop events; the conditional
			// DB writes remain the backstop against lost updates.
			e.log.Warn().Err(err).Str("applicant_id", applicantID).Msg("reconciliation: lock store error, proceeding")
			return false
		}
		if ok {
			return true
		}
		time.Sleep(lockRetryInterval)
	}
	e.log.Warn().Str("applicant_id", applicantID).Msg("reconciliation: lock contention, proceeding unserialized")
	return false
}

func (e *ReconciliationEngine) releaseLock(ctx context.Context, applicantID string) {
	if e.lock == nil {
		return
	}
	if err := e.lock.Release(ctx, applicantID); err != nil {
		e.log.Debug().Err(err).Str("applicant_id", applicantID).Msg("reconciliation: lock release failed")
	}
}
