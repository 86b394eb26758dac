package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	offer, err := NewOffer("basic", "Basic Plan", 9900)
	require.NoError(t, err)

	assert.Equal(t, "BASIC", offer.Code)
	assert.Equal(t, "Basic Plan", offer.Name)
	assert.Equal(t, int64(9900), offer.PriceCents)
	assert.Equal(t, "EUR", offer.Currency)
	assert.Equal(t, BillingPeriodMonthly, offer.BillingPeriod)
	assert.True(t, offer.IsActive)
}

func TestNewOffer_Validation(t *testing.T) {
	_, err := NewOffer("", "Basic Plan", 9900)
	assert.Error(t, err)

	_, err = NewOffer("BASIC", "", 9900)
	assert.Error(t, err)

	_, err = NewOffer("BASIC", "Basic Plan", -1)
	assert.Error(t, err)
}

func TestOffer_Price(t *testing.T) {
	offer, err := NewOffer("PRO", "Professional Plan", 19900)
	require.NoError(t, err)

	assert.True(t, offer.Price().Equal(decimal.RequireFromString("199.00")))
}

func TestOffer_Deactivate(t *testing.T) {
	offer, err := NewOffer("BASIC", "Basic Plan", 9900)
	require.NoError(t, err)

	offer.Deactivate()
	assert.False(t, offer.IsActive)

	offer.Activate()
	assert.True(t, offer.IsActive)
}
