package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProvisioningServiceImpl implements ports.ProvisioningService: idempotent
// wallet and DID bootstrap for issuers. No database lock is held across
// the external wallet-provider call; the conditional SetDID write
// re-validates against a concurrently completed provisioning.
type ProvisioningServiceImpl struct {
	issuerRepo   ports.IssuerRepository
	walletRepo   ports.WalletRepository
	walletClient ports.WalletProviderClient
	chain        string
	didMethod    string
	metrics      *metrics.Metrics
	log          zerolog.Logger
}

// NewProvisioningService creates a new provisioning service.
func NewProvisioningService(
	issuerRepo ports.IssuerRepository,
	walletRepo ports.WalletRepository,
	walletClient ports.WalletProviderClient,
	chain string,
	didMethod string,
	m *metrics.Metrics,
	log zerolog.Logger,
) *ProvisioningServiceImpl {
	return &ProvisioningServiceImpl{
		issuerRepo:   issuerRepo,
		walletRepo:   walletRepo,
		walletClient: walletClient,
		chain:        chain,
		didMethod:    didMethod,
		metrics:      m,
		log:          log,
	}
}

// EnsureDID returns the issuer's DID, provisioning wallet and DID first if
// needed. The bool result reports whether this call set the DID. Failure
// leaves the issuer's verification decision untouched; the backfill sweep
// retries later.
func (s *ProvisioningServiceImpl) EnsureDID(ctx context.Context, issuer *domain.Issuer) (string, bool, error) {
	if issuer.HasDID() {
		return *issuer.DID, false, nil
	}

	wallet, err := s.ensureWallet(ctx, issuer.UserID)
	if err != nil {
		return "", false, err
	}

	did := domain.BuildDID(s.didMethod, wallet.Address)

	set, err := s.issuerRepo.SetDID(ctx, issuer.ID, did, time.Now().UTC())
	if err != nil {
		return "", false, fmt.Errorf("persist did: %w", err)
	}
	if !set {
		// A concurrent delivery won the conditional write.
		current, err := s.issuerRepo.GetByID(ctx, issuer.ID)
		if err != nil {
			return "", false, fmt.Errorf("reload issuer after did race: %w", err)
		}
		if current != nil && current.HasDID() {
			return *current.DID, false, nil
		}
		return "", false, fmt.Errorf("did not set and no concurrent did found for issuer %d", issuer.ID)
	}

	s.metrics.IncrementDID()
	s.log.Info().
		Int64("issuer_id", issuer.ID).
		Str("did", did).
		Msg("provisioning: did generated")
	return did, true, nil
}

// ensureWallet returns the user's wallet on the configured chain, creating
// it via the external provider if absent. A provider "duplicate" error is
// treated as success followed by a re-fetch.
func (s *ProvisioningServiceImpl) ensureWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserAndChain(ctx, userID, s.chain)
	if err != nil {
		return nil, fmt.Errorf("load wallet: %w", err)
	}
	if wallet != nil {
		return wallet, nil
	}

	result, err := s.walletClient.CreateWallet(ctx, userID, s.chain)
	if err != nil {
		if errors.Is(err, ports.ErrWalletExists) {
			wallet, err = s.walletRepo.GetByUserAndChain(ctx, userID, s.chain)
			if err != nil {
				return nil, fmt.Errorf("reload wallet after duplicate: %w", err)
			}
			if wallet != nil {
				return wallet, nil
			}
			return nil, fmt.Errorf("provider reports existing wallet but none stored for user %d", userID)
		}
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	wallet = &domain.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Address:   result.Address,
		Chain:     s.chain,
		DID:       domain.BuildDID(s.didMethod, result.Address),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		// Tolerate a store race: another delivery may have persisted the
		// same wallet between our check and create.
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("provisioning: wallet insert failed, re-checking")
		existing, lookupErr := s.walletRepo.GetByUserAndChain(ctx, userID, s.chain)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("persist wallet: %w", err)
	}
	return wallet, nil
}
