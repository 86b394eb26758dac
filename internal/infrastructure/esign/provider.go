package esign

import (
	"context"
	"errors"
)

// Envelope is the provider-side representation of a signature request
type Envelope struct {
	ProviderEnvelopeID string
	SigningURL         string
}

// WebhookEvent is a normalized signature status notification
type WebhookEvent struct {
	ProviderEnvelopeID string `json:"envelope_id"`
	Status             string `json:"status"`
	Raw                []byte `json:"-"`
}

var (
	// ErrInvalidSignature is returned when a webhook payload fails verification
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedPayload is returned when a webhook body cannot be decoded
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// Provider abstracts an e-signature service. Only the stub implementation
// ships today; a real provider integration plugs in behind this interface.
type Provider interface {
	// Name identifies the provider in persisted envelopes
	Name() string
	// CreateEnvelope requests a signature for the given document
	CreateEnvelope(ctx context.Context, documentPath, signerName, signerEmail string) (*Envelope, error)
	// ParseWebhook verifies and decodes a webhook notification.
	// signature is the value of the X-ESign-Signature header.
	ParseWebhook(body []byte, signature string) (*WebhookEvent, error)
}
