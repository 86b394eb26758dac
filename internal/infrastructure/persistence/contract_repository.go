package persistence

import (
	"context"
	"errors"

	"github.com/dmc/portal/internal/domain/contract"
	"github.com/dmc/portal/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements contract.Repository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by its ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	var c contract.Contract
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save persists a new contract
func (r *GormContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Update persists changes to an existing contract
func (r *GormContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// GormEnvelopeRepository implements contract.EnvelopeRepository using GORM
type GormEnvelopeRepository struct {
	db *gorm.DB
}

// NewGormEnvelopeRepository creates a new GormEnvelopeRepository
func NewGormEnvelopeRepository(db *gorm.DB) *GormEnvelopeRepository {
	return &GormEnvelopeRepository{db: db}
}

// FindByProviderEnvelopeID finds an envelope by its provider-assigned ID
func (r *GormEnvelopeRepository) FindByProviderEnvelopeID(ctx context.Context, provider, providerEnvelopeID string) (*contract.SignatureEnvelope, error) {
	var env contract.SignatureEnvelope
	if err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_envelope_id = ?", provider, providerEnvelopeID).
		First(&env).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &env, nil
}

// FindLatestByContractID finds the most recent envelope for a contract
func (r *GormEnvelopeRepository) FindLatestByContractID(ctx context.Context, contractID uuid.UUID) (*contract.SignatureEnvelope, error) {
	var env contract.SignatureEnvelope
	if err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		First(&env).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &env, nil
}

// Save persists a new envelope
func (r *GormEnvelopeRepository) Save(ctx context.Context, env *contract.SignatureEnvelope) error {
	return r.db.WithContext(ctx).Create(env).Error
}

// Update persists changes to an existing envelope
func (r *GormEnvelopeRepository) Update(ctx context.Context, env *contract.SignatureEnvelope) error {
	return r.db.WithContext(ctx).Save(env).Error
}
