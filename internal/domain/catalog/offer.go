package catalog

import (
	"strings"
	"time"

	"github.com/dmc/portal/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BillingPeriod represents how often an offer is billed
type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

// Offer represents a direct-marketing package that a customer can subscribe to.
// Offers are seeded via migrations and managed out of band; the portal only
// lists and reads them.
type Offer struct {
	ID               int64         `gorm:"primaryKey;autoIncrement"`
	Code             string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name             string        `gorm:"type:varchar(200);not null"`
	Description      *string       `gorm:"type:text"`
	Currency         string        `gorm:"type:varchar(3);not null;default:'EUR'"`
	PriceCents       int64         `gorm:"not null"`
	BillingPeriod    BillingPeriod `gorm:"type:varchar(20);not null;default:'monthly'"`
	MinTermMonths    int           `gorm:"not null;default:1"`
	NoticePeriodDays int           `gorm:"not null;default:14"`
	IsActive         bool          `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (Offer) TableName() string {
	return "offers"
}

// NewOffer creates a new offer with required fields
func NewOffer(code, name string, priceCents int64) (*Offer, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Offer code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Offer name cannot be empty")
	}
	if priceCents < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Offer price cannot be negative")
	}

	now := time.Now()
	return &Offer{
		Code:             code,
		Name:             name,
		Currency:         "EUR",
		PriceCents:       priceCents,
		BillingPeriod:    BillingPeriodMonthly,
		MinTermMonths:    1,
		NoticePeriodDays: 14,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Price returns the offer price in currency units
func (o *Offer) Price() decimal.Decimal {
	return decimal.New(o.PriceCents, -2)
}

// Deactivate marks the offer as no longer sellable
func (o *Offer) Deactivate() {
	o.IsActive = false
	o.UpdatedAt = time.Now()
}

// Activate marks the offer as sellable
func (o *Offer) Activate() {
	o.IsActive = true
	o.UpdatedAt = time.Now()
}
