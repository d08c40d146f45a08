package handler

import (
	"strconv"

	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/pkg/apperror"
	"kyc-credential-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultFailedEventsLimit = 50

// MaintenanceHandler exposes the admin batch sweeps that repair records
// left incomplete by out-of-order or failed webhook deliveries.
type MaintenanceHandler struct {
	svc ports.MaintenanceService
	log zerolog.Logger
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(svc ports.MaintenanceService, log zerolog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		svc: svc,
		log: log.With().Str("component", "maintenance_handler").Logger(),
	}
}

// RelinkApplicants handles POST /api/v1/maintenance/relink-applicants.
// Re-runs identity resolution over unlinked applicants and completes any
// deferred approvals for the ones that become linked.
func (h *MaintenanceHandler) RelinkApplicants(c *gin.Context) {
	report, err := h.svc.RelinkApplicants(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("relink sweep failed")
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, report)
}

// BackfillDIDs handles POST /api/v1/maintenance/backfill-dids.
// Provisions DIDs for verified issuers that are still missing one.
func (h *MaintenanceHandler) BackfillDIDs(c *gin.Context) {
	report, err := h.svc.BackfillDIDs(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("backfill sweep failed")
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, report)
}

// FailedEvents handles GET /api/v1/maintenance/failed-events.
// Lists webhook deliveries stuck in the error state, oldest first.
func (h *MaintenanceHandler) FailedEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFailedEventsLimit)))
	if err != nil {
		response.Error(c, apperror.ErrMalformedPayload("limit must be an integer"))
		return
	}

	events, err := h.svc.FailedEvents(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("failed events listing failed")
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, gin.H{"count": len(events), "events": events})
}

// ApplicantProfile handles GET /api/v1/maintenance/applicants/:applicantId.
func (h *MaintenanceHandler) ApplicantProfile(c *gin.Context) {
	profile, err := h.svc.ApplicantProfile(c.Request.Context(), c.Param("applicantId"))
	if err != nil {
		h.log.Error().Err(err).Msg("applicant profile lookup failed")
		response.Error(c, apperror.InternalError(err))
		return
	}
	if profile == nil {
		response.Error(c, apperror.ErrNotFound("Applicant"))
		return
	}
	response.OK(c, profile)
}
