package contract

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for contracts
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	Save(ctx context.Context, contract *Contract) error
	Update(ctx context.Context, contract *Contract) error
}

// EnvelopeRepository defines the persistence interface for signature envelopes
type EnvelopeRepository interface {
	FindByProviderEnvelopeID(ctx context.Context, provider, providerEnvelopeID string) (*SignatureEnvelope, error)
	FindLatestByContractID(ctx context.Context, contractID uuid.UUID) (*SignatureEnvelope, error)
	Save(ctx context.Context, envelope *SignatureEnvelope) error
	Update(ctx context.Context, envelope *SignatureEnvelope) error
}
