package ports

import (
	"context"
	"errors"
)

// ErrWalletExists is returned by WalletProviderClient.CreateWallet when the
// provider reports a duplicate. Callers treat it as success and re-fetch.
var ErrWalletExists = errors.New("wallet already exists for user")

// WalletCreateResult holds the provider's response to a wallet creation.
type WalletCreateResult struct {
	Address string
}

// VerificationProviderClient talks to the external KYC provider's API.
type VerificationProviderClient interface {
	// FetchApplicantDetail re-fetches the rich applicant payload, which
	// often carries more data than the webhook-embedded shape.
	FetchApplicantDetail(ctx context.Context, applicantID string) ([]byte, error)
}

// WalletProviderClient talks to the external wallet/credential provider.
// The engine only decides eligibility and recipient; chain mechanics are
// the provider's problem.
type WalletProviderClient interface {
	CreateWallet(ctx context.Context, userID int64, chain string) (*WalletCreateResult, error)
	MintCredential(ctx context.Context, recipientDID string, claims map[string]any) (string, error)
}
