package contract

import (
	"time"

	"github.com/dmc/portal/internal/domain/catalog"
	"github.com/dmc/portal/internal/domain/contract"
	"github.com/dmc/portal/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDraftRequest represents a request to create a contract draft
type CreateDraftRequest struct {
	CounterpartyID int64 `json:"counterparty_id" binding:"required"`
	OfferID        int64 `json:"offer_id" binding:"required"`
}

// CounterpartySummary is the counterparty projection embedded in contracts
type CounterpartySummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OfferSummary is the offer projection embedded in contracts
type OfferSummary struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Currency      string          `json:"currency"`
	Price         decimal.Decimal `json:"price"`
	BillingPeriod string          `json:"billing_period"`
}

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Status             string              `json:"status"`
	Counterparty       CounterpartySummary `json:"counterparty"`
	Offer              OfferSummary        `json:"offer"`
	DraftPDFAvailable  bool                `json:"draft_pdf_available"`
	SignedPDFAvailable bool                `json:"signed_pdf_available"`
	SignedAt           *time.Time          `json:"signed_at"`
	CreatedAt          time.Time           `json:"created_at"`
}

// StartSigningResponse represents a freshly started signing process
type StartSigningResponse struct {
	ContractID         uuid.UUID `json:"contract_id"`
	Status             string    `json:"status"`
	Provider           string    `json:"provider"`
	ProviderEnvelopeID string    `json:"provider_envelope_id"`
	SigningURL         string    `json:"signing_url"`
}

func toContractResponse(c *contract.Contract, cp *partner.Counterparty, offer *catalog.Offer) *ContractResponse {
	return &ContractResponse{
		ID:     c.ID,
		Status: string(c.Status),
		Counterparty: CounterpartySummary{
			ID:    cp.ID,
			Name:  cp.Name,
			Email: cp.Email,
		},
		Offer: OfferSummary{
			ID:            offer.ID,
			Code:          offer.Code,
			Name:          offer.Name,
			Currency:      offer.Currency,
			Price:         offer.Price(),
			BillingPeriod: string(offer.BillingPeriod),
		},
		DraftPDFAvailable:  c.DraftPDFPath != "",
		SignedPDFAvailable: c.SignedPDFPath != "",
		SignedAt:           c.SignedAt,
		CreatedAt:          c.CreatedAt,
	}
}
