package contract

import (
	"context"
	"errors"
	"time"

	"github.com/dmc/portal/internal/domain/catalog"
	"github.com/dmc/portal/internal/domain/contract"
	"github.com/dmc/portal/internal/domain/partner"
	"github.com/dmc/portal/internal/domain/shared"
	"github.com/dmc/portal/internal/infrastructure/pdf"
	"github.com/google/uuid"
)

// DocumentRenderer renders contract documents to storage.
// Satisfied by pdf.Renderer.
type DocumentRenderer interface {
	RenderDraft(data pdf.DocumentData) (string, error)
	RenderSigned(data pdf.DocumentData, signedAt time.Time) (string, error)
	AbsolutePath(relative string) string
}

// ContractService handles the contract draft lifecycle
type ContractService struct {
	contractRepo     contract.Repository
	counterpartyRepo partner.CounterpartyRepository
	offerRepo        catalog.OfferRepository
	renderer         DocumentRenderer
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo contract.Repository,
	counterpartyRepo partner.CounterpartyRepository,
	offerRepo catalog.OfferRepository,
	renderer DocumentRenderer,
) *ContractService {
	return &ContractService{
		contractRepo:     contractRepo,
		counterpartyRepo: counterpartyRepo,
		offerRepo:        offerRepo,
		renderer:         renderer,
	}
}

// CreateDraft creates a contract draft for a counterparty and an offer and
// renders the draft document.
func (s *ContractService) CreateDraft(ctx context.Context, req CreateDraftRequest) (*ContractResponse, error) {
	cp, err := s.counterpartyRepo.FindByID(ctx, req.CounterpartyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Counterparty not found")
		}
		return nil, err
	}

	offer, err := s.offerRepo.FindByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Offer not found")
		}
		return nil, err
	}
	if !offer.IsActive {
		return nil, shared.NewDomainError("BUSINESS_RULE", "Offer is not active")
	}

	c := contract.NewDraft(cp.ID, offer.ID)

	draftPath, err := s.renderer.RenderDraft(documentData(c, cp, offer))
	if err != nil {
		return nil, err
	}
	c.AttachDraftPDF(draftPath)

	if err := s.contractRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	return toContractResponse(c, cp, offer), nil
}

// Get returns a contract with its counterparty and offer projections
func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*ContractResponse, error) {
	c, cp, offer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toContractResponse(c, cp, offer), nil
}

// DraftPDFPath returns the absolute path of the rendered draft document
func (s *ContractService) DraftPDFPath(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := s.findContract(ctx, id)
	if err != nil {
		return "", err
	}
	if c.DraftPDFPath == "" {
		return "", shared.NewDomainError("NOT_FOUND", "Draft document not available")
	}
	return s.renderer.AbsolutePath(c.DraftPDFPath), nil
}

// SignedPDFPath returns the absolute path of the signed document
func (s *ContractService) SignedPDFPath(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := s.findContract(ctx, id)
	if err != nil {
		return "", err
	}
	if c.SignedPDFPath == "" {
		return "", shared.NewDomainError("NOT_FOUND", "Signed document not available")
	}
	return s.renderer.AbsolutePath(c.SignedPDFPath), nil
}

func (s *ContractService) findContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Contract not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *ContractService) load(ctx context.Context, id uuid.UUID) (*contract.Contract, *partner.Counterparty, *catalog.Offer, error) {
	c, err := s.findContract(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	cp, err := s.counterpartyRepo.FindByID(ctx, c.CounterpartyID)
	if err != nil {
		return nil, nil, nil, err
	}
	offer, err := s.offerRepo.FindByID(ctx, c.OfferID)
	if err != nil {
		return nil, nil, nil, err
	}
	return c, cp, offer, nil
}

func documentData(c *contract.Contract, cp *partner.Counterparty, offer *catalog.Offer) pdf.DocumentData {
	return pdf.DocumentData{
		ContractID:          c.ID,
		CounterpartyName:    cp.Name,
		CounterpartyAddress: cp.Address(),
		CounterpartyEmail:   cp.Email,
		OfferName:           offer.Name,
		Price:               offer.Price(),
		Currency:            offer.Currency,
		BillingPeriod:       string(offer.BillingPeriod),
	}
}
