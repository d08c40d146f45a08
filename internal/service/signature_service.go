package service

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"kyc-credential-gateway/internal/core/ports"
)

// HMACSignatureService implements ports.SignatureVerifier for webhook
// payload digests. The provider signs the exact raw request body; any
// verification against a reserialized body would be a correctness bug,
// so callers must pass the original byte buffer untouched.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes the HMAC of payload using secret under the given algorithm.
// Returns lowercase hex-encoded digest.
func (s *HMACSignatureService) Sign(payload []byte, secret string, alg ports.SignatureAlgorithm) string {
	mac := hmac.New(hasherFor(alg), []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against the HMAC of rawBody. Uses constant-time
// comparison. Returns false, never panics, on missing signature or secret.
func (s *HMACSignatureService) Verify(rawBody []byte, signature, secret string, alg ports.SignatureAlgorithm) bool {
	if signature == "" || secret == "" {
		return false
	}
	expected := s.Sign(rawBody, secret, alg)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// BuildAPISignature constructs the outbound request signature for
// authenticated provider API calls: HMAC(ts + method + path + body).
func (s *HMACSignatureService) BuildAPISignature(secret string, timestamp int64, method, path string, body []byte, alg ports.SignatureAlgorithm) string {
	payload := fmt.Sprintf("%d%s%s", timestamp, method, path)
	return s.Sign(append([]byte(payload), body...), secret, alg)
}

func hasherFor(alg ports.SignatureAlgorithm) func() hash.Hash {
	if alg == ports.AlgHMACSHA1 {
		return sha1.New
	}
	return sha256.New
}
