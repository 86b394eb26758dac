package catalog

import "context"

// OfferRepository defines the persistence interface for offers
type OfferRepository interface {
	FindByID(ctx context.Context, id int64) (*Offer, error)
	FindActive(ctx context.Context) ([]Offer, error)
	Save(ctx context.Context, offer *Offer) error
}
