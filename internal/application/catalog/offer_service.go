package catalog

import (
	"context"

	"github.com/dmc/portal/internal/domain/catalog"
)

// OfferService handles offer catalog operations
type OfferService struct {
	offerRepo catalog.OfferRepository
}

// NewOfferService creates a new OfferService
func NewOfferService(offerRepo catalog.OfferRepository) *OfferService {
	return &OfferService{offerRepo: offerRepo}
}

// ListActive returns all active offers ordered by price
func (s *OfferService) ListActive(ctx context.Context) ([]OfferResponse, error) {
	offers, err := s.offerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OfferResponse, len(offers))
	for i := range offers {
		responses[i] = toOfferResponse(&offers[i])
	}
	return responses, nil
}

// GetByID returns a single offer
func (s *OfferService) GetByID(ctx context.Context, id int64) (*OfferResponse, error) {
	offer, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOfferResponse(offer)
	return &resp, nil
}
