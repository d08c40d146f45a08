package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kyc-credential-gateway/config"
	"kyc-credential-gateway/internal/adapter/provider"
	"kyc-credential-gateway/pkg/logger"
	"kyc-credential-gateway/pkg/metrics"

	httpHandler "kyc-credential-gateway/internal/adapter/http/handler"
	pgStorage "kyc-credential-gateway/internal/adapter/storage/postgres"
	redisStorage "kyc-credential-gateway/internal/adapter/storage/redis"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Name).
		Msg("Starting KYC Credential Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	eventRepo := pgStorage.NewEventRepo(pool)
	applicantRepo := pgStorage.NewApplicantRepo(pool)
	personalRepo := pgStorage.NewPersonalInfoRepo(pool)
	historyRepo := pgStorage.NewHistoryRepo(pool)
	issuerRepo := pgStorage.NewIssuerRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Per-applicant processing lock
	applicantLock := redisStorage.NewApplicantLock(rdb)

	// Metrics
	m := metrics.New()

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	eventLog := service.NewEventLogService(eventRepo, log)
	resolver := service.NewIdentityResolver(applicantRepo, log)
	normalizer := service.NewPersonalInfoNormalizer()

	// External providers
	verifClient := provider.NewVerificationClient(cfg.Provider, sigSvc, log)
	walletClient := provider.NewWalletClient(cfg.Wallet, log)

	// Business services
	provisioningSvc := service.NewProvisioningService(
		issuerRepo,
		walletRepo,
		walletClient,
		cfg.Wallet.Chain,
		cfg.Wallet.DIDMethod,
		m,
		log,
	)
	engine := service.NewReconciliationEngine(
		applicantRepo,
		personalRepo,
		historyRepo,
		issuerRepo,
		eventLog,
		resolver,
		normalizer,
		provisioningSvc,
		verifClient,
		walletClient,
		transactor,
		applicantLock,
		cfg.Wallet.MintOnVerify,
		m,
		log,
	)
	maintenanceSvc := service.NewMaintenanceService(
		applicantRepo, issuerRepo, userRepo,
		eventRepo, personalRepo, historyRepo,
		resolver, provisioningSvc, log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ProviderCfg:    cfg.Provider,
		SigVerifier:    sigSvc,
		EventLog:       eventLog,
		Engine:         engine,
		MaintenanceSvc: maintenanceSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
