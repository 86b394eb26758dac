package catalog

import (
	"github.com/dmc/portal/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// OfferResponse represents an offer in API responses
type OfferResponse struct {
	ID               int64           `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Description      *string         `json:"description"`
	Currency         string          `json:"currency"`
	Price            decimal.Decimal `json:"price"`
	BillingPeriod    string          `json:"billing_period"`
	MinTermMonths    int             `json:"min_term_months"`
	NoticePeriodDays int             `json:"notice_period_days"`
}

func toOfferResponse(offer *catalog.Offer) OfferResponse {
	return OfferResponse{
		ID:               offer.ID,
		Code:             offer.Code,
		Name:             offer.Name,
		Description:      offer.Description,
		Currency:         offer.Currency,
		Price:            offer.Price(),
		BillingPeriod:    string(offer.BillingPeriod),
		MinTermMonths:    offer.MinTermMonths,
		NoticePeriodDays: offer.NoticePeriodDays,
	}
}
