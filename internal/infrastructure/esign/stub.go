package esign

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

const signaturePrefix = "sha256="

// StubProvider simulates an e-signature service for local development.
// Envelopes are accepted unconditionally and the signing URL points at a
// non-routable host; status changes arrive through the webhook endpoint.
type StubProvider struct {
	webhookSecret []byte
	skipVerify    bool
}

// NewStubProvider creates a stub provider. When skipVerify is set the
// webhook signature check is bypassed (development only).
func NewStubProvider(webhookSecret string, skipVerify bool) *StubProvider {
	return &StubProvider{
		webhookSecret: []byte(webhookSecret),
		skipVerify:    skipVerify,
	}
}

// Name identifies the provider in persisted envelopes
func (p *StubProvider) Name() string {
	return "stub"
}

// CreateEnvelope issues a fake envelope with a placeholder signing URL
func (p *StubProvider) CreateEnvelope(_ context.Context, _, _, _ string) (*Envelope, error) {
	id := uuid.NewString()
	return &Envelope{
		ProviderEnvelopeID: id,
		SigningURL:         "https://example.invalid/sign/" + id,
	}, nil
}

// ParseWebhook verifies the HMAC-SHA256 signature over the raw body and
// decodes the event payload.
func (p *StubProvider) ParseWebhook(body []byte, signature string) (*WebhookEvent, error) {
	if !p.skipVerify {
		if !p.verify(body, signature) {
			return nil, ErrInvalidSignature
		}
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, ErrMalformedPayload
	}
	if event.ProviderEnvelopeID == "" || event.Status == "" {
		return nil, ErrMalformedPayload
	}
	event.Raw = body
	return &event, nil
}

// Sign computes the signature header value for a payload. Used by tests
// and by the local webhook replay tooling.
func (p *StubProvider) Sign(body []byte) string {
	mac := hmac.New(sha256.New, p.webhookSecret)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

func (p *StubProvider) verify(body []byte, signature string) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, p.webhookSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
