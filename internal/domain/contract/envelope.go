package contract

import (
	"time"

	"github.com/google/uuid"
)

// EnvelopeStatus tracks the provider-side state of a signing envelope
type EnvelopeStatus string

const (
	EnvelopeStatusSent     EnvelopeStatus = "sent"
	EnvelopeStatusSigned   EnvelopeStatus = "signed"
	EnvelopeStatusDeclined EnvelopeStatus = "declined"
	EnvelopeStatusVoided   EnvelopeStatus = "voided"
)

// SignatureEnvelope records one signing attempt with an e-signature provider.
// The (provider, provider_envelope_id) pair is unique so webhook events can
// be routed back to the originating contract.
type SignatureEnvelope struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ContractID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Provider           string         `gorm:"type:varchar(50);not null;uniqueIndex:uq_provider_envelope,priority:1"`
	ProviderEnvelopeID string         `gorm:"type:varchar(200);not null;uniqueIndex:uq_provider_envelope,priority:2;index"`
	Status             EnvelopeStatus `gorm:"type:varchar(30);not null"`
	SigningURL         string         `gorm:"type:varchar(500)"`
	LastWebhookAt      *time.Time
	EvidenceJSON       string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName returns the table name for GORM
func (SignatureEnvelope) TableName() string {
	return "signature_envelopes"
}

// NewEnvelope creates an envelope for a freshly started signing process
func NewEnvelope(contractID uuid.UUID, provider, providerEnvelopeID, signingURL string) *SignatureEnvelope {
	now := time.Now()
	return &SignatureEnvelope{
		ID:                 uuid.New(),
		ContractID:         contractID,
		Provider:           provider,
		ProviderEnvelopeID: providerEnvelopeID,
		Status:             EnvelopeStatusSent,
		SigningURL:         signingURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// RecordWebhook updates the envelope from a provider event
func (e *SignatureEnvelope) RecordWebhook(status EnvelopeStatus, at time.Time) {
	e.Status = status
	e.LastWebhookAt = &at
	e.UpdatedAt = at
}
