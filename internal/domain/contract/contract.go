package contract

import (
	"fmt"
	"time"

	"github.com/dmc/portal/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the lifecycle state of a contract
type Status string

const (
	StatusDraft             Status = "draft"
	StatusAwaitingSignature Status = "awaiting_signature"
	StatusSigned            Status = "signed"
)

// Contract represents a direct-marketing agreement between a counterparty
// and one of the seeded offers. It starts as a draft with a generated
// placeholder PDF and becomes binding once the e-signature provider reports
// the signed event.
type Contract struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CounterpartyID int64      `gorm:"not null;index"`
	OfferID        int64      `gorm:"not null;index"`
	Status         Status     `gorm:"type:varchar(30);not null;default:'draft'"`
	DraftPDFPath   string     `gorm:"type:varchar(500)"`
	SignedPDFPath  string     `gorm:"type:varchar(500)"`
	SignedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM
func (Contract) TableName() string {
	return "contracts"
}

// NewDraft creates a new contract in draft status
func NewDraft(counterpartyID, offerID int64) *Contract {
	now := time.Now()
	return &Contract{
		ID:             uuid.New(),
		CounterpartyID: counterpartyID,
		OfferID:        offerID,
		Status:         StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AttachDraftPDF records the storage path of the rendered draft document
func (c *Contract) AttachDraftPDF(path string) {
	c.DraftPDFPath = path
	c.UpdatedAt = time.Now()
}

// StartSigning transitions the contract to awaiting_signature.
// The contract must be a draft and must already have a draft PDF.
func (c *Contract) StartSigning() error {
	if c.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Contract must be in draft status, currently: %s", c.Status))
	}
	if c.DraftPDFPath == "" {
		return shared.NewDomainError("INVALID_STATE", "Contract must have a draft PDF")
	}
	c.Status = StatusAwaitingSignature
	c.UpdatedAt = time.Now()
	return nil
}

// MarkSigned transitions the contract to signed. Repeated signed events from
// the provider are absorbed: a contract that is already signed stays untouched.
func (c *Contract) MarkSigned(signedPDFPath string, signedAt time.Time) {
	if c.Status == StatusSigned {
		return
	}
	c.Status = StatusSigned
	c.SignedAt = &signedAt
	c.SignedPDFPath = signedPDFPath
	c.UpdatedAt = time.Now()
}

// ReturnToDraft moves an unsigned contract back to draft, e.g. after the
// signer declined. Signed contracts are final and cannot be reopened.
func (c *Contract) ReturnToDraft() error {
	if c.Status == StatusSigned {
		return shared.NewDomainError("INVALID_STATE", "Signed contracts cannot be reopened")
	}
	c.Status = StatusDraft
	c.UpdatedAt = time.Now()
	return nil
}

// IsSigned reports whether the contract has reached its terminal state
func (c *Contract) IsSigned() bool {
	return c.Status == StatusSigned
}
