package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kyc-credential-gateway/config"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// WalletClient implements ports.WalletProviderClient against the external
// wallet/credential service. Chain mechanics, key custody and credential
// anchoring all live on the provider side; this client only requests and
// reports.
type WalletClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// NewWalletClient creates a new wallet provider client.
func NewWalletClient(cfg config.WalletConfig, log zerolog.Logger) *WalletClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WalletClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type createWalletRequest struct {
	UserID int64  `json:"userId"`
	Chain  string `json:"chain"`
}

type createWalletResponse struct {
	Address string `json:"address"`
	Error   string `json:"error,omitempty"`
}

// CreateWallet requests a wallet for the user on the given chain. A
// duplicate-wallet response maps to ports.ErrWalletExists so callers can
// treat it as success and re-fetch.
func (c *WalletClient) CreateWallet(ctx context.Context, userID int64, chain string) (*ports.WalletCreateResult, error) {
	body, err := json.Marshal(createWalletRequest{UserID: userID, Chain: chain})
	if err != nil {
		return nil, fmt.Errorf("marshal wallet request: %w", err)
	}

	respBody, status, err := c.post(ctx, "/v1/wallets", body)
	if err != nil {
		return nil, err
	}

	var parsed createWalletResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode wallet response: %w", err)
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
		if parsed.Address == "" {
			return nil, fmt.Errorf("wallet provider returned empty address")
		}
		c.log.Info().Int64("user_id", userID).Str("chain", chain).Msg("provider: wallet created")
		return &ports.WalletCreateResult{Address: parsed.Address}, nil
	case http.StatusConflict:
		return nil, ports.ErrWalletExists
	default:
		return nil, fmt.Errorf("wallet creation returned %d: %s", status, parsed.Error)
	}
}

type mintRequest struct {
	RecipientDID string         `json:"recipientDid"`
	Claims       map[string]any `json:"claims"`
}

type mintResponse struct {
	CredentialID string `json:"credentialId"`
	Error        string `json:"error,omitempty"`
}

// MintCredential asks the provider to issue a credential to a DID.
// Returns the provider-assigned credential id.
func (c *WalletClient) MintCredential(ctx context.Context, recipientDID string, claims map[string]any) (string, error) {
	body, err := json.Marshal(mintRequest{RecipientDID: recipientDID, Claims: claims})
	if err != nil {
		return "", fmt.Errorf("marshal mint request: %w", err)
	}

	respBody, status, err := c.post(ctx, "/v1/credentials", body)
	if err != nil {
		return "", err
	}

	var parsed mintResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode mint response: %w", err)
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return "", fmt.Errorf("credential mint returned %d: %s", status, parsed.Error)
	}

	c.log.Info().
		Str("recipient_did", recipientDID).
		Str("credential_id", parsed.CredentialID).
		Msg("provider: credential minted")
	return parsed.CredentialID, nil
}

func (c *WalletClient) post(ctx context.Context, path string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("build wallet provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("wallet provider request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read wallet provider response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}
