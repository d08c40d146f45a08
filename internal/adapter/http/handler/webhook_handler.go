package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"kyc-credential-gateway/config"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/pkg/apperror"
	"kyc-credential-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Webhook signature headers sent by the verification provider.
const (
	headerPayloadDigest    = "X-Payload-Digest"
	headerPayloadDigestAlg = "X-Payload-Digest-Alg"
)

// webhookPayload is the provider's webhook body. Only the routing fields
// are decoded here; the reconciliation engine works from the raw bytes.
type webhookPayload struct {
	Type           string `json:"type"`
	ApplicantID    string `json:"applicantId"`
	ExternalUserID string `json:"externalUserId"`
	ReviewStatus   string `json:"reviewStatus"`
	ReviewResult   struct {
		ReviewAnswer      string `json:"reviewAnswer"`
		ModerationComment string `json:"moderationComment"`
	} `json:"reviewResult"`
}

// WebhookHandler receives inbound verification-provider webhooks.
type WebhookHandler struct {
	cfg      config.ProviderConfig
	verifier ports.SignatureVerifier
	eventLog ports.EventLog
	engine   ports.ReconciliationService
	log      zerolog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(
	cfg config.ProviderConfig,
	verifier ports.SignatureVerifier,
	eventLog ports.EventLog,
	engine ports.ReconciliationService,
	log zerolog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		cfg:      cfg,
		verifier: verifier,
		eventLog: eventLog,
		engine:   engine,
		log:      log.With().Str("component", "webhook_handler").Logger(),
	}
}

// Receive handles POST /webhooks/:provider.
//
// The raw body is read before any decoding because the provider signs the
// exact bytes it sent. Signature failures reject with 401 unless lenient
// mode is on; every failure after the signature check acknowledges with
// 200 so the provider does not retry-storm.
func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := c.Param("provider")
	if provider != h.cfg.Name {
		response.Error(c, apperror.ErrUnknownProvider(provider))
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.ErrMalformedPayload("unreadable body"))
		return
	}

	signature := c.GetHeader(headerPayloadDigest)
	alg := ports.SignatureAlgorithm(c.GetHeader(headerPayloadDigestAlg))
	if alg == "" {
		alg = ports.SignatureAlgorithm(h.cfg.Algorithm)
	}

	if !h.verifier.Verify(rawBody, signature, h.cfg.WebhookSecret, alg) {
		if !h.cfg.Lenient {
			response.Error(c, apperror.ErrInvalidSignature())
			return
		}
		// Lenient mode acknowledges so the provider stops retrying, but
		// an unauthenticated delivery is never processed or persisted.
		h.log.Warn().
			Str("provider", provider).
			Str("alg", string(alg)).
			Msg("webhook signature verification failed, acknowledging without processing")
		response.Ack(c, http.StatusOK, false, "")
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		response.Error(c, apperror.ErrMalformedPayload(err.Error()))
		return
	}
	if payload.ApplicantID == "" {
		response.Error(c, apperror.ErrMissingApplicantID())
		return
	}

	event := &ports.InboundEvent{
		Provider:      provider,
		Type:          payload.Type,
		ApplicantID:   payload.ApplicantID,
		CorrelationID: payload.ExternalUserID,
		ReviewStatus:  payload.ReviewStatus,
		ReviewResult:  payload.ReviewResult.ReviewAnswer,
		RejectReason:  payload.ReviewResult.ModerationComment,
		RawPayload:    rawBody,
		Signature:     signature,
		ReceivedAt:    time.Now().UTC(),
	}
	h.eventLog.Record(c.Request.Context(), event)

	outcome := h.engine.Apply(c.Request.Context(), event)
	switch outcome {
	case ports.OutcomeOK:
		response.Ack(c, http.StatusOK, true, event.EventID.String())
	default:
		response.Ack(c, http.StatusOK, false, event.EventID.String())
	}
}
