package persistence

import (
	"context"
	"errors"

	"github.com/dmc/portal/internal/domain/catalog"
	"github.com/dmc/portal/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOfferRepository implements catalog.OfferRepository using GORM
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GormOfferRepository
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// FindByID finds an offer by its ID
func (r *GormOfferRepository) FindByID(ctx context.Context, id int64) (*catalog.Offer, error) {
	var offer catalog.Offer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// FindActive returns all active offers ordered by price
func (r *GormOfferRepository) FindActive(ctx context.Context) ([]catalog.Offer, error) {
	var offers []catalog.Offer
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_cents").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Save persists an offer
func (r *GormOfferRepository) Save(ctx context.Context, offer *catalog.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}
