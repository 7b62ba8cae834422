// Package stripe implements the PaymentGateway interface with Stripe Checkout.
package stripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// Gateway creates Stripe Checkout sessions.
type Gateway struct {
	api *client.API
}

// NewGateway creates a gateway authenticated with the secret key.
func NewGateway(secretKey string) *Gateway {
	return &Gateway{api: client.New(secretKey, nil)}
}

// CreateCheckoutSession creates a hosted checkout session and returns its id.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.PaymentSessionHandle, error) {
	params, err := sessionParams(req)
	if err != nil {
		return nil, err
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%w: %s (%s)", domain.ErrPaymentGatewayError, serr.Msg, serr.Code)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentGatewayError, err)
	}
	return &domain.PaymentSessionHandle{SessionID: s.ID, URL: s.URL}, nil
}

func sessionParams(req domain.CheckoutSessionRequest) (*stripe.CheckoutSessionParams, error) {
	if req.Mode != domain.CheckoutModePayment {
		return nil, fmt.Errorf("%w: unsupported checkout mode %q", domain.ErrPaymentGatewayError, req.Mode)
	}
	if len(req.LineItems) == 0 {
		return nil, errors.New("stripe: no line items")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(li.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(li.Name),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
		params.AddMetadata("fundraiser_id", req.ClientReferenceID)
	}
	return params, nil
}
