package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"kyc-credential-gateway/config"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// VerificationClient implements ports.VerificationProviderClient against
// the KYC provider's REST API. Outbound requests carry the app token plus
// an HMAC access signature over ts + method + path + body, the inverse of
// the digest the provider sends on webhooks.
type VerificationClient struct {
	baseURL  string
	appToken string
	secret   string
	alg      ports.SignatureAlgorithm
	signer   apiSigner
	http     *http.Client
	log      zerolog.Logger
}

// apiSigner is the outbound-request signing capability of the signature
// service.
type apiSigner interface {
	BuildAPISignature(secret string, timestamp int64, method, path string, body []byte, alg ports.SignatureAlgorithm) string
}

// NewVerificationClient creates a new verification provider client.
func NewVerificationClient(cfg config.ProviderConfig, signer apiSigner, log zerolog.Logger) *VerificationClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &VerificationClient{
		baseURL:  cfg.BaseURL,
		appToken: cfg.AppToken,
		secret:   cfg.WebhookSecret,
		alg:      ports.SignatureAlgorithm(cfg.Algorithm),
		signer:   signer,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

// FetchApplicantDetail re-fetches the rich applicant payload from the
// provider's detail endpoint. Returns the raw response bytes; parsing is
// the normalizer's job.
func (c *VerificationClient) FetchApplicantDetail(ctx context.Context, applicantID string) ([]byte, error) {
	path := "/resources/applicants/" + applicantID + "/one"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build applicant detail request: %w", err)
	}
	c.sign(req, path, nil)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch applicant detail: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read applicant detail response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("applicant detail fetch returned %d", resp.StatusCode)
	}

	c.log.Debug().
		Str("applicant_id", applicantID).
		Int("bytes", len(body)).
		Msg("provider: applicant detail fetched")
	return body, nil
}

func (c *VerificationClient) sign(req *http.Request, path string, body []byte) {
	ts := time.Now().Unix()
	sig := c.signer.BuildAPISignature(c.secret, ts, req.Method, path, body, c.alg)

	req.Header.Set("X-App-Token", c.appToken)
	req.Header.Set("X-App-Access-Ts", fmt.Sprintf("%d", ts))
	req.Header.Set("X-App-Access-Sig", sig)
	req.Header.Set("Accept", "application/json")
}
