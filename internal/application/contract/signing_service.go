package contract

import (
	"context"
	"errors"
	"time"

	"github.com/dmc/portal/internal/domain/catalog"
	"github.com/dmc/portal/internal/domain/contract"
	"github.com/dmc/portal/internal/domain/partner"
	"github.com/dmc/portal/internal/domain/shared"
	"github.com/dmc/portal/internal/infrastructure/esign"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SigningService drives the e-signature process for contracts
type SigningService struct {
	contractRepo     contract.Repository
	envelopeRepo     contract.EnvelopeRepository
	counterpartyRepo partner.CounterpartyRepository
	offerRepo        catalog.OfferRepository
	provider         esign.Provider
	renderer         DocumentRenderer
	logger           *zap.Logger
}

// NewSigningService creates a new SigningService
func NewSigningService(
	contractRepo contract.Repository,
	envelopeRepo contract.EnvelopeRepository,
	counterpartyRepo partner.CounterpartyRepository,
	offerRepo catalog.OfferRepository,
	provider esign.Provider,
	renderer DocumentRenderer,
	logger *zap.Logger,
) *SigningService {
	return &SigningService{
		contractRepo:     contractRepo,
		envelopeRepo:     envelopeRepo,
		counterpartyRepo: counterpartyRepo,
		offerRepo:        offerRepo,
		provider:         provider,
		renderer:         renderer,
		logger:           logger,
	}
}

// Start begins the signing process for a draft contract. The contract must
// be in draft status and have a rendered draft document.
func (s *SigningService) Start(ctx context.Context, contractID uuid.UUID) (*StartSigningResponse, error) {
	c, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Contract not found")
		}
		return nil, err
	}

	cp, err := s.counterpartyRepo.FindByID(ctx, c.CounterpartyID)
	if err != nil {
		return nil, err
	}

	if err := c.StartSigning(); err != nil {
		return nil, err
	}

	providerEnv, err := s.provider.CreateEnvelope(ctx, c.DraftPDFPath, cp.Name, cp.Email)
	if err != nil {
		return nil, err
	}

	env := contract.NewEnvelope(c.ID, s.provider.Name(), providerEnv.ProviderEnvelopeID, providerEnv.SigningURL)
	if err := s.envelopeRepo.Save(ctx, env); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Signing started",
		zap.String("contract_id", c.ID.String()),
		zap.String("provider", env.Provider),
		zap.String("provider_envelope_id", env.ProviderEnvelopeID),
	)

	return &StartSigningResponse{
		ContractID:         c.ID,
		Status:             string(c.Status),
		Provider:           env.Provider,
		ProviderEnvelopeID: env.ProviderEnvelopeID,
		SigningURL:         env.SigningURL,
	}, nil
}

// HandleWebhook applies a provider status notification. Signed events render
// the final document and close the contract; repeated signed events for an
// already signed contract are absorbed. Declined and voided events return
// the contract to draft so signing can be restarted.
func (s *SigningService) HandleWebhook(ctx context.Context, event *esign.WebhookEvent) error {
	status, err := mapEnvelopeStatus(event.Status)
	if err != nil {
		return err
	}

	env, err := s.envelopeRepo.FindByProviderEnvelopeID(ctx, s.provider.Name(), event.ProviderEnvelopeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Unknown envelope")
		}
		return err
	}

	now := time.Now()
	env.RecordWebhook(status, now)
	env.EvidenceJSON = string(event.Raw)
	if err := s.envelopeRepo.Update(ctx, env); err != nil {
		return err
	}

	c, err := s.contractRepo.FindByID(ctx, env.ContractID)
	if err != nil {
		return err
	}

	switch status {
	case contract.EnvelopeStatusSigned:
		if c.IsSigned() {
			s.logger.Info("Duplicate signed event absorbed",
				zap.String("contract_id", c.ID.String()))
			return nil
		}
		cp, err := s.counterpartyRepo.FindByID(ctx, c.CounterpartyID)
		if err != nil {
			return err
		}
		offer, err := s.offerRepo.FindByID(ctx, c.OfferID)
		if err != nil {
			return err
		}
		signedPath, err := s.renderer.RenderSigned(documentData(c, cp, offer), now)
		if err != nil {
			return err
		}
		c.MarkSigned(signedPath, now)

	case contract.EnvelopeStatusDeclined, contract.EnvelopeStatusVoided:
		if err := c.ReturnToDraft(); err != nil {
			return err
		}

	case contract.EnvelopeStatusSent:
		// status refresh only, nothing to do on the contract
		return nil
	}

	if err := s.contractRepo.Update(ctx, c); err != nil {
		return err
	}

	s.logger.Info("Webhook applied",
		zap.String("contract_id", c.ID.String()),
		zap.String("envelope_status", string(status)),
		zap.String("contract_status", string(c.Status)),
	)
	return nil
}

func mapEnvelopeStatus(status string) (contract.EnvelopeStatus, error) {
	switch contract.EnvelopeStatus(status) {
	case contract.EnvelopeStatusSent,
		contract.EnvelopeStatusSigned,
		contract.EnvelopeStatusDeclined,
		contract.EnvelopeStatusVoided:
		return contract.EnvelopeStatus(status), nil
	}
	return "", shared.NewDomainError("INVALID_INPUT", "Unknown envelope status: "+status)
}
