package partner

import (
	"context"

	"github.com/dmc/portal/internal/domain/partner"
)

// CounterpartyService handles counterparty operations
type CounterpartyService struct {
	counterpartyRepo partner.CounterpartyRepository
}

// NewCounterpartyService creates a new CounterpartyService
func NewCounterpartyService(counterpartyRepo partner.CounterpartyRepository) *CounterpartyService {
	return &CounterpartyService{counterpartyRepo: counterpartyRepo}
}

// Create registers a new counterparty. Emails are unique across all
// counterparties; the conflict comes from the insert itself, so two
// concurrent registrations cannot both get through.
func (s *CounterpartyService) Create(ctx context.Context, req CreateCounterpartyRequest) (*CounterpartyResponse, error) {
	cpType := partner.CounterpartyType(req.Type)
	if req.Type == "" {
		cpType = partner.CounterpartyTypePerson
	}
	country := req.Country
	if country == "" {
		country = "DE"
	}

	cp, err := partner.NewCounterparty(cpType, req.Name, req.Street, req.PostalCode, req.City, country, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.counterpartyRepo.Save(ctx, cp); err != nil {
		return nil, err
	}

	resp := toCounterpartyResponse(cp)
	return &resp, nil
}

// GetByID returns a single counterparty
func (s *CounterpartyService) GetByID(ctx context.Context, id int64) (*CounterpartyResponse, error) {
	cp, err := s.counterpartyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCounterpartyResponse(cp)
	return &resp, nil
}
