package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/dmc/portal/internal/domain/shared"
)

// CounterpartyType represents the kind of contract party
type CounterpartyType string

const (
	CounterpartyTypePerson  CounterpartyType = "person"
	CounterpartyTypeCompany CounterpartyType = "company"
)

var (
	countryRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Counterparty represents the customer side of a direct-marketing contract.
// One counterparty can hold several contracts; the email is unique so a
// returning customer is recognized instead of duplicated.
type Counterparty struct {
	ID         int64            `gorm:"primaryKey;autoIncrement"`
	Type       CounterpartyType `gorm:"type:varchar(20);not null;default:'person'"`
	Name       string           `gorm:"type:varchar(200);not null"`
	Street     string           `gorm:"type:varchar(200);not null"`
	PostalCode string           `gorm:"type:varchar(20);not null"`
	City       string           `gorm:"type:varchar(100);not null"`
	Country    string           `gorm:"type:varchar(2);not null;default:'DE'"`
	Email      string           `gorm:"type:varchar(200);not null;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (Counterparty) TableName() string {
	return "counterparties"
}

// NewCounterparty creates a new counterparty with validated fields
func NewCounterparty(cpType CounterpartyType, name, street, postalCode, city, country, email string) (*Counterparty, error) {
	if err := validateType(cpType); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if street == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	if postalCode == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Postal code cannot be empty")
	}
	if city == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if err := validateCountry(country); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Counterparty{
		Type:       cpType,
		Name:       name,
		Street:     street,
		PostalCode: postalCode,
		City:       city,
		Country:    country,
		Email:      strings.ToLower(email),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Address returns the single-line postal address used in contract documents
func (c *Counterparty) Address() string {
	return c.Street + ", " + c.PostalCode + " " + c.City + ", " + c.Country
}

func validateType(t CounterpartyType) error {
	switch t {
	case CounterpartyTypePerson, CounterpartyTypeCompany:
		return nil
	}
	return shared.NewDomainError("INVALID_TYPE", "Type must be 'person' or 'company'")
}

func validateCountry(country string) error {
	if !countryRegex.MatchString(country) {
		return shared.NewDomainError("INVALID_COUNTRY", "Country must be a 2-letter uppercase code (e.g., 'DE', 'US')")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" || len(email) > 200 || !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	return nil
}
