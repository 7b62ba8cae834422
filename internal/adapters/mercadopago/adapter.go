// Package mercadopago implements the PaymentGateway interface using the official SDK.
package mercadopago

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// Adapter implements ports.PaymentGateway with Checkout Pro preferences.
type Adapter struct {
	client  preference.Client
	sandbox bool
}

// NewAdapter creates a new Mercado Pago adapter. With sandbox set the
// returned URL is the sandbox init point.
func NewAdapter(accessToken string, sandbox bool) (*Adapter, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &Adapter{client: preference.NewClient(cfg), sandbox: sandbox}, nil
}

// CreateCheckoutSession creates a Checkout Pro preference. The preference id
// is the session id.
func (a *Adapter) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.PaymentSessionHandle, error) {
	prefRequest, err := buildPreference(req)
	if err != nil {
		return nil, err
	}

	result, err := a.client.Create(ctx, prefRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: create preference: %v", domain.ErrPaymentGatewayError, err)
	}

	url := result.InitPoint
	if a.sandbox && result.SandboxInitPoint != "" {
		url = result.SandboxInitPoint
	}
	return &domain.PaymentSessionHandle{SessionID: result.ID, URL: url}, nil
}

// buildPreference maps a checkout request onto a preference. Item prices are
// in major units.
func buildPreference(req domain.CheckoutSessionRequest) (preference.Request, error) {
	if req.Mode != domain.CheckoutModePayment {
		return preference.Request{}, fmt.Errorf("%w: unsupported checkout mode %q", domain.ErrPaymentGatewayError, req.Mode)
	}
	if len(req.LineItems) == 0 {
		return preference.Request{}, errors.New("mercadopago: no line items")
	}

	items := make([]preference.ItemRequest, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, preference.ItemRequest{
			Title:      li.Name,
			Quantity:   int(li.Quantity),
			UnitPrice:  decimal.New(li.UnitAmount, -2).InexactFloat64(),
			CurrencyID: strings.ToUpper(li.Currency),
		})
	}

	return preference.Request{
		Items:             items,
		ExternalReference: req.ClientReferenceID,
		AutoReturn:        "approved",
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.CancelURL,
			Pending: req.SuccessURL,
		},
	}, nil
}
