package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounterparty(t *testing.T) {
	cp, err := NewCounterparty(CounterpartyTypePerson, "Max Mustermann", "Musterstr. 1", "10115", "Berlin", "DE", "Max@Example.com")
	require.NoError(t, err)

	assert.Equal(t, CounterpartyTypePerson, cp.Type)
	assert.Equal(t, "Max Mustermann", cp.Name)
	// Emails are stored lowercase so the unique index catches case variants
	assert.Equal(t, "max@example.com", cp.Email)
}

func TestNewCounterparty_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cpType  CounterpartyType
		country string
		email   string
	}{
		{"invalid type", CounterpartyType("robot"), "DE", "a@example.com"},
		{"lowercase country", CounterpartyTypePerson, "de", "a@example.com"},
		{"three letter country", CounterpartyTypePerson, "DEU", "a@example.com"},
		{"bad email", CounterpartyTypePerson, "DE", "not-an-email"},
		{"empty email", CounterpartyTypePerson, "DE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCounterparty(tt.cpType, "Name", "Street 1", "12345", "City", tt.country, tt.email)
			assert.Error(t, err)
		})
	}
}

func TestCounterparty_Address(t *testing.T) {
	cp, err := NewCounterparty(CounterpartyTypeCompany, "Acme GmbH", "Hauptstr. 5", "80331", "Munich", "DE", "billing@acme.example")
	require.NoError(t, err)

	assert.Equal(t, "Hauptstr. 5, 80331 Munich, DE", cp.Address())
}
