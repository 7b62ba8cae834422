package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

func TestSessionParams(t *testing.T) {
	params, err := sessionParams(domain.CheckoutSessionRequest{
		LineItems:         []domain.LineItem{{Name: "Robotics Team", Currency: "usd", UnitAmount: 1000, Quantity: 1}},
		Mode:              domain.CheckoutModePayment,
		SuccessURL:        "https://fund.example.edu/fundraisers/abc?success=true",
		CancelURL:         "https://fund.example.edu/fundraisers/abc?canceled=true",
		ClientReferenceID: "abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, []*string{ptr("card")}, params.PaymentMethodTypes)
	require.Len(t, params.LineItems, 1)

	li := params.LineItems[0]
	assert.Equal(t, int64(1000), *li.PriceData.UnitAmount)
	assert.Equal(t, "usd", *li.PriceData.Currency)
	assert.Equal(t, "Robotics Team", *li.PriceData.ProductData.Name)
	assert.Equal(t, int64(1), *li.Quantity)

	assert.Equal(t, "https://fund.example.edu/fundraisers/abc?success=true", *params.SuccessURL)
	assert.Equal(t, "https://fund.example.edu/fundraisers/abc?canceled=true", *params.CancelURL)
	assert.Equal(t, "abc", *params.ClientReferenceID)
	assert.Equal(t, "abc", params.Metadata["fundraiser_id"])
}

func TestSessionParamsRejectsBadInput(t *testing.T) {
	_, err := sessionParams(domain.CheckoutSessionRequest{Mode: "setup", LineItems: []domain.LineItem{{Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrPaymentGatewayError)

	_, err = sessionParams(domain.CheckoutSessionRequest{Mode: domain.CheckoutModePayment})
	assert.Error(t, err)
}

func ptr(s string) *string { return &s }
