package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kyc-credential-gateway/config"
	httpHandler "kyc-credential-gateway/internal/adapter/http/handler"
	redisStorage "kyc-credential-gateway/internal/adapter/storage/redis"
	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/internal/service"
	"kyc-credential-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWebhookSecret = "integration-webhook-secret"
	testJWTSecret     = "test-jwt-secret-key-32bytes!!"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// handlers and services over in-memory repos and miniredis. Only the two
// external providers are faked.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis

	events         *inMemoryEventRepo
	applicants     *inMemoryApplicantRepo
	personal       *inMemoryPersonalInfoRepo
	history        *inMemoryHistoryRepo
	issuers        *inMemoryIssuerRepo
	users          *inMemoryUserRepo
	walletRepo     *inMemoryWalletRepo
	walletProvider *fakeWalletProvider
	verifProvider  *fakeVerificationProvider
	tokenSvc       ports.TokenService
	sigSvc         ports.SignatureVerifier
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	applicantLock := redisStorage.NewApplicantLock(rdb)

	log := logger.New("debug", false)

	events := newInMemoryEventRepo()
	applicants := newInMemoryApplicantRepo()
	personal := newInMemoryPersonalInfoRepo()
	history := newInMemoryHistoryRepo()
	issuers := newInMemoryIssuerRepo(applicants)
	users := newInMemoryUserRepo()
	walletRepo := newInMemoryWalletRepo()
	transactor := newInMemoryTransactor()

	walletProvider := newFakeWalletProvider()
	verifProvider := newFakeVerificationProvider()

	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(testJWTSecret, 24*time.Hour, "test-issuer")
	eventLog := service.NewEventLogService(events, log)
	resolver := service.NewIdentityResolver(applicants, log)
	normalizer := service.NewPersonalInfoNormalizer()

	provisioningSvc := service.NewProvisioningService(
		issuers, walletRepo, walletProvider, "ethereum", "ethr", nil, log,
	)
	engine := service.NewReconciliationEngine(
		applicants, personal, history, issuers,
		eventLog, resolver, normalizer, provisioningSvc,
		verifProvider, walletProvider, transactor, applicantLock,
		true, nil, log,
	)
	maintenanceSvc := service.NewMaintenanceService(
		applicants, issuers, users,
		events, personal, history,
		resolver, provisioningSvc, log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ProviderCfg: config.ProviderConfig{
			Name:          "sumsub",
			WebhookSecret: testWebhookSecret,
			Algorithm:     "HMAC_SHA256_HEX",
		},
		SigVerifier:    sigSvc,
		EventLog:       eventLog,
		Engine:         engine,
		MaintenanceSvc: maintenanceSvc,
		TokenSvc:       tokenSvc,
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:         server,
		redis:          mr,
		events:         events,
		applicants:     applicants,
		personal:       personal,
		history:        history,
		issuers:        issuers,
		users:          users,
		walletRepo:     walletRepo,
		walletProvider: walletProvider,
		verifProvider:  verifProvider,
		tokenSvc:       tokenSvc,
		sigSvc:         sigSvc,
	}
}

// seedIssuer creates a platform user plus its issuer organization.
func (a *testApp) seedIssuer(userID, issuerID int64) {
	a.users.add(&domain.User{ID: userID, Email: fmt.Sprintf("user%d@example.com", userID), Role: domain.RoleIssuer})
	a.issuers.add(&domain.Issuer{ID: issuerID, UserID: userID, CompanyName: fmt.Sprintf("Org %d", issuerID)})
}

func (a *testApp) postWebhook(t *testing.T, payload []byte) *http.Response {
	t.Helper()
	sig := a.sigSvc.Sign(payload, testWebhookSecret, ports.AlgHMACSHA256)

	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/webhooks/sumsub", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Payload-Digest", sig)
	req.Header.Set("X-Payload-Digest-Alg", "HMAC_SHA256_HEX")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := a.tokenSvc.Generate("ops@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (a *testApp) postMaintenance(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) getMaintenance(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeAck(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var ack map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	return ack
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_ApprovedReviewFlow(t *testing.T) {
	app := newTestApp(t)
	app.seedIssuer(42, 9)
	ctx := context.Background()

	// 1. applicantCreated links the applicant and bootstraps the DID.
	created := []byte(`{
		"type": "applicantCreated",
		"applicantId": "app-int-1",
		"externalUserId": "issuer-42",
		"reviewStatus": "init"
	}`)
	resp := app.postWebhook(t, created)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeAck(t, resp)["success"])

	applicant, err := app.applicants.GetByApplicantID(ctx, "app-int-1")
	require.NoError(t, err)
	require.NotNil(t, applicant)
	require.NotNil(t, applicant.UserID)
	assert.Equal(t, int64(42), *applicant.UserID)
	assert.Equal(t, domain.ApplicantStatusPending, applicant.Status)

	issuer, err := app.issuers.GetByID(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, issuer.DID)
	assert.Equal(t, "did:ethr:0x0000002a", *issuer.DID)
	assert.False(t, issuer.VerificationStatus, "creation alone never verifies")

	// 2. applicantReviewed GREEN flips verification and mints a credential.
	app.verifProvider.setDetail("app-int-1", []byte(`{
		"id": "app-int-1",
		"info": {
			"firstName": "Ada",
			"lastName": "Lovelace",
			"dob": "1990-12-10",
			"addresses": [{"street": "12 Byron Row", "city": "London", "country": "GBR"}]
		}
	}`))
	reviewed := []byte(`{
		"type": "applicantReviewed",
		"applicantId": "app-int-1",
		"externalUserId": "issuer-42",
		"reviewStatus": "completed",
		"reviewResult": {"reviewAnswer": "GREEN"}
	}`)
	resp = app.postWebhook(t, reviewed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeAck(t, resp)["success"])

	issuer, err = app.issuers.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.True(t, issuer.VerificationStatus)
	assert.Equal(t, int64(1), app.walletProvider.mintCalls.Load())

	// Personal data came from the detail fetch, not the thin webhook body.
	info, err := app.personal.Get(ctx, "app-int-1")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Ada", *info.FirstName)
	assert.Equal(t, "Lovelace", *info.LastName)

	addr, err := app.personal.GetPrimaryAddress(ctx, "app-int-1")
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t, "London", *addr.City)

	// Audit trail: one history row per accepted event, all events processed.
	entries, err := app.history.ListByApplicant(ctx, "app-int-1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	processed, err := app.events.ListByStatus(ctx, domain.EventStatusProcessed, 10)
	require.NoError(t, err)
	assert.Len(t, processed, 2)
}

func TestIntegration_RedeliveryIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	app.seedIssuer(42, 9)
	ctx := context.Background()

	reviewed := []byte(`{
		"type": "applicantReviewed",
		"applicantId": "app-int-2",
		"externalUserId": "issuer-42",
		"reviewStatus": "completed",
		"reviewResult": {"reviewAnswer": "GREEN"}
	}`)

	for i := 0; i < 3; i++ {
		resp := app.postWebhook(t, reviewed)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	// External side effects fired exactly once.
	assert.Equal(t, int64(1), app.walletProvider.createCalls.Load())
	assert.Equal(t, int64(1), app.walletProvider.mintCalls.Load())

	issuer, err := app.issuers.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.True(t, issuer.VerificationStatus)
	require.NotNil(t, issuer.DID)

	// The audit trail still records every delivery.
	entries, err := app.history.ListByApplicant(ctx, "app-int-2")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 3, app.events.count())
}

func TestIntegration_ReviewedArrivesBeforeCreated(t *testing.T) {
	app := newTestApp(t)
	app.seedIssuer(7, 3)
	ctx := context.Background()

	reviewed := []byte(`{
		"type": "applicantReviewed",
		"applicantId": "app-int-3",
		"externalUserId": "issuer-7",
		"reviewStatus": "completed",
		"reviewResult": {"reviewAnswer": "GREEN"}
	}`)
	resp := app.postWebhook(t, reviewed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The review created the applicant record and completed provisioning.
	issuer, err := app.issuers.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, issuer.VerificationStatus)
	require.NotNil(t, issuer.DID)

	// A late applicantCreated is a no-op for the issuer.
	created := []byte(`{
		"type": "applicantCreated",
		"applicantId": "app-int-3",
		"externalUserId": "issuer-7",
		"reviewStatus": "init"
	}`)
	resp = app.postWebhook(t, created)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	applicant, err := app.applicants.GetByApplicantID(ctx, "app-int-3")
	require.NoError(t, err)
	require.NotNil(t, applicant.ReviewResult)
	assert.Equal(t, domain.ReviewResultApproved, *applicant.ReviewResult,
		"late created event must not erase the review result")
	assert.Equal(t, int64(1), app.walletProvider.mintCalls.Load())
}

func TestIntegration_RejectionFlipsVerificationOff(t *testing.T) {
	app := newTestApp(t)
	app.seedIssuer(42, 9)
	ctx := context.Background()

	green := []byte(`{
		"type": "applicantReviewed",
		"applicantId": "app-int-4",
		"externalUserId": "issuer-42",
		"reviewStatus": "completed",
		"reviewResult": {"reviewAnswer": "GREEN"}
	}`)
	resp := app.postWebhook(t, green)
	resp.Body.Close()

	red := []byte(`{
		"type": "applicantReviewed",
		"applicantId": "app-int-4",
		"externalUserId": "issuer-42",
		"reviewStatus": "completed",
		"reviewResult": {"reviewAnswer": "RED", "moderationComment": "document expired"}
	}`)
	resp = app.postWebhook(t, red)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	issuer, err := app.issuers.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.False(t, issuer.VerificationStatus)
	require.NotNil(t, issuer.DID, "rejection never revokes an issued DID")

	entries, err := app.history.ListByApplicant(ctx, "app-int-4")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[1].RejectReason)
	assert.Equal(t, "document expired", *entries[1].RejectReason)
}

func TestIntegration_UnresolvableCorrelation_ThenRelinkSweep(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Approval arrives while nothing can be linked: the user row does not
	// exist yet and neither does the issuer.
	reviewed := []byte(`{
		"type": "applicantReviewed",
		"applicantId": "app-orphan",
		"externalUserId": "issuer-7",
		"reviewStatus": "completed",
		"reviewResult": {"reviewAnswer": "GREEN"}
	}`)
	resp := app.postWebhook(t, reviewed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, int64(0), app.walletProvider.mintCalls.Load())

	// The user and issuer get provisioned later; unlink the applicant so
	// the sweep has something to repair (the live path had linked it, but
	// linking presumes the user row exists).
	applicant, err := app.applicants.GetByApplicantID(ctx, "app-orphan")
	require.NoError(t, err)
	require.NotNil(t, applicant)
	app.applicants.mu.Lock()
	app.applicants.applicants["app-orphan"].UserID = nil
	app.applicants.mu.Unlock()

	app.seedIssuer(7, 3)

	resp = app.postMaintenance(t, "/api/v1/maintenance/relink-applicants", app.adminToken(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var report struct {
		Data struct {
			Processed int `json:"processed"`
			Succeeded int `json:"succeeded"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.Data.Processed)
	assert.Equal(t, 1, report.Data.Succeeded)

	// The deferred approval completed: issuer verified with a DID.
	issuer, err := app.issuers.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, issuer.VerificationStatus)
	require.NotNil(t, issuer.DID)
}

func TestIntegration_BackfillDIDs(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// A verified issuer missing its DID, e.g. the wallet provider was down
	// when the approval landed.
	app.users.add(&domain.User{ID: 11, Email: "a@example.com", Role: domain.RoleIssuer})
	now := time.Now().UTC()
	app.issuers.add(&domain.Issuer{ID: 5, UserID: 11, VerificationStatus: true, VerifiedAt: &now})

	resp := app.postMaintenance(t, "/api/v1/maintenance/backfill-dids", app.adminToken(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	issuer, err := app.issuers.GetByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, issuer.DID)
	assert.Equal(t, "did:ethr:0x0000000b", *issuer.DID)
}

func TestIntegration_InvalidSignatureRejected(t *testing.T) {
	app := newTestApp(t)

	payload := []byte(`{"type":"applicantCreated","applicantId":"app-x"}`)
	req, err := http.NewRequest(http.MethodPost, app.server.URL+"/webhooks/sumsub", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("X-Payload-Digest", "0000000000000000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, app.events.count(), "unauthenticated deliveries are never recorded")
}

func TestIntegration_MalformedPayloadRejected(t *testing.T) {
	app := newTestApp(t)

	resp := app.postWebhook(t, []byte(`{"type": "applicantCreated",`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, app.events.count())
}

func TestIntegration_MaintenanceRequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	// No token.
	resp := app.postMaintenance(t, "/api/v1/maintenance/relink-applicants", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Non-admin token.
	issuerToken, _, err := app.tokenSvc.Generate("issuer@example.com", domain.RoleIssuer)
	require.NoError(t, err)
	resp = app.postMaintenance(t, "/api/v1/maintenance/relink-applicants", issuerToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestIntegration_UnknownEventType_AcksWithWarning(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	payload := []byte(`{"type":"applicantWorkflowCompleted","applicantId":"app-z"}`)
	resp := app.postWebhook(t, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeAck(t, resp)["success"])

	failed, err := app.events.ListByStatus(ctx, domain.EventStatusError, 10)
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestIntegration_FailedEventsListing(t *testing.T) {
	app := newTestApp(t)

	// An unknown event type leaves its delivery in the error state.
	payload := []byte(`{"type":"applicantWorkflowCompleted","applicantId":"app-stuck"}`)
	resp := app.postWebhook(t, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.getMaintenance(t, "/api/v1/maintenance/failed-events", app.adminToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	events := data["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "app-stuck", events[0].(map[string]interface{})["applicant_id"])
}

func TestIntegration_ApplicantProfileLookup(t *testing.T) {
	app := newTestApp(t)
	app.seedIssuer(42, 9)

	created := []byte(`{
		"type": "applicantCreated",
		"applicantId": "app-prof-1",
		"externalUserId": "issuer-42",
		"reviewStatus": "init"
	}`)
	resp := app.postWebhook(t, created)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.getMaintenance(t, "/api/v1/maintenance/applicants/app-prof-1", app.adminToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	applicant := data["applicant"].(map[string]interface{})
	assert.Equal(t, "app-prof-1", applicant["applicant_id"])
	assert.Equal(t, float64(42), applicant["user_id"])
	history := data["history"].([]interface{})
	assert.Len(t, history, 1)

	resp = app.getMaintenance(t, "/api/v1/maintenance/applicants/app-nope", app.adminToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIntegration_AuditRowKeepsSignature(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	payload := []byte(`{"type":"applicantPending","applicantId":"app-sig-1","reviewStatus":"pending"}`)
	resp := app.postWebhook(t, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	processed, err := app.events.ListByStatus(ctx, domain.EventStatusProcessed, 10)
	require.NoError(t, err)
	require.Len(t, processed, 1)
	assert.Equal(t,
		app.sigSvc.Sign(payload, testWebhookSecret, ports.AlgHMACSHA256),
		processed[0].Signature,
		"the digest that authenticated the delivery is kept on its audit row")
}
