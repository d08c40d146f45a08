package handler

import (
	"kyc-credential-gateway/config"
	"kyc-credential-gateway/internal/adapter/http/middleware"
	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ProviderCfg    config.ProviderConfig
	SigVerifier    ports.SignatureVerifier
	EventLog       ports.EventLog
	Engine         ports.ReconciliationService
	MaintenanceSvc ports.MaintenanceService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Webhook intake. Authenticated by the payload digest over the raw
	// body, not by middleware, so the handler owns the byte buffer.
	webhookHandler := NewWebhookHandler(deps.ProviderCfg, deps.SigVerifier, deps.EventLog, deps.Engine, deps.Logger)
	r.POST("/webhooks/:provider", webhookHandler.Receive)

	// --- Admin maintenance API (JWT-authenticated, admin only) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceSvc, deps.Logger)

	v1 := r.Group("/api/v1")
	maintenance := v1.Group("/maintenance", jwtAuth, adminOnly)
	{
		maintenance.POST("/relink-applicants", maintenanceHandler.RelinkApplicants)
		maintenance.POST("/backfill-dids", maintenanceHandler.BackfillDIDs)
		maintenance.GET("/failed-events", maintenanceHandler.FailedEvents)
		maintenance.GET("/applicants/:applicantId", maintenanceHandler.ApplicantProfile)
	}

	return r
}
