package partner

import (
	"github.com/dmc/portal/internal/domain/partner"
)

// CreateCounterpartyRequest represents a request to create a counterparty
type CreateCounterpartyRequest struct {
	Type       string `json:"type" binding:"omitempty,oneof=person company"`
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Street     string `json:"street" binding:"required,min=1,max=255"`
	PostalCode string `json:"postal_code" binding:"required,min=1,max=32"`
	City       string `json:"city" binding:"required,min=1,max=128"`
	Country    string `json:"country" binding:"omitempty,country_code"`
	Email      string `json:"email" binding:"required,email,max=255"`
}

// CounterpartyResponse represents a counterparty in API responses
type CounterpartyResponse struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Email      string `json:"email"`
}

func toCounterpartyResponse(cp *partner.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:         cp.ID,
		Type:       string(cp.Type),
		Name:       cp.Name,
		Street:     cp.Street,
		PostalCode: cp.PostalCode,
		City:       cp.City,
		Country:    cp.Country,
		Email:      cp.Email,
	}
}
