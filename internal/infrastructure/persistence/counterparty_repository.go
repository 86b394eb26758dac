package persistence

import (
	"context"
	"errors"

	"github.com/dmc/portal/internal/domain/partner"
	"github.com/dmc/portal/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCounterpartyRepository implements partner.CounterpartyRepository using GORM
type GormCounterpartyRepository struct {
	db *gorm.DB
}

// NewGormCounterpartyRepository creates a new GormCounterpartyRepository
func NewGormCounterpartyRepository(db *gorm.DB) *GormCounterpartyRepository {
	return &GormCounterpartyRepository{db: db}
}

// FindByID finds a counterparty by its ID
func (r *GormCounterpartyRepository) FindByID(ctx context.Context, id int64) (*partner.Counterparty, error) {
	var cp partner.Counterparty
	if err := r.db.WithContext(ctx).First(&cp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cp, nil
}

// Save persists a counterparty. The unique index on email turns a
// concurrent duplicate insert into a domain conflict instead of leaking the
// driver error.
func (r *GormCounterpartyRepository) Save(ctx context.Context, cp *partner.Counterparty) error {
	if err := r.db.WithContext(ctx).Save(cp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ALREADY_EXISTS", "A counterparty with this email already exists")
		}
		return err
	}
	return nil
}
