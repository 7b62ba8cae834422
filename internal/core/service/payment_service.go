// Package service implements the core business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/ports"
)

// minorUnitExponent is the number of decimal places of two-decimal currencies.
const minorUnitExponent = 2

// PaymentOptions parameterizes checkout sessions.
type PaymentOptions struct {
	// BaseURL is the public site URL used for the success and cancel redirects.
	BaseURL  string
	Currency string
}

// PaymentService orchestrates donation checkout sessions.
type PaymentService struct {
	campaigns ports.CampaignRepository
	gateway   ports.PaymentGateway
	opts      PaymentOptions
	logger    *slog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	campaigns ports.CampaignRepository,
	gateway ports.PaymentGateway,
	opts PaymentOptions,
	logger *slog.Logger,
) *PaymentService {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	return &PaymentService{
		campaigns: campaigns,
		gateway:   gateway,
		opts:      opts,
		logger:    logger,
	}
}

// CreateDonationSession requests a hosted checkout session for a donation to
// a campaign. The gateway is never contacted for a campaign that does not
// resolve. Gateway failures are not retried.
func (s *PaymentService) CreateDonationSession(ctx context.Context, req domain.PaymentSessionRequest) (*domain.PaymentSessionHandle, error) {
	minor, err := validateDonation(req)
	if err != nil {
		return nil, err
	}

	// Step 1: resolve the campaign
	c, err := s.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			return nil, domain.NewServiceError(domain.ErrCampaignNotFound,
				"Fundraiser not found", "CAMPAIGN_NOT_FOUND")
		}
		s.logger.ErrorContext(ctx, "campaign lookup failed",
			slog.String("campaign_id", req.CampaignID), slog.Any("error", err))
		return nil, domain.NewServiceError(domain.ErrUnexpected,
			"failed to look up fundraiser", "DATA_STORE_ERROR")
	}

	// Step 2: ask the gateway for a session
	checkout := domain.CheckoutSessionRequest{
		LineItems: []domain.LineItem{{
			Name:       c.Title,
			Currency:   s.opts.Currency,
			UnitAmount: minor,
			Quantity:   1,
		}},
		Mode:              domain.CheckoutModePayment,
		SuccessURL:        s.redirectURL(c.ID, "success"),
		CancelURL:         s.redirectURL(c.ID, "canceled"),
		ClientReferenceID: c.ID,
	}

	handle, err := s.gateway.CreateCheckoutSession(ctx, checkout)
	if err != nil {
		s.logger.ErrorContext(ctx, "checkout session creation failed",
			slog.String("campaign_id", c.ID), slog.Any("error", err))
		return nil, domain.NewServiceError(domain.ErrPaymentGatewayError,
			"failed to create payment session", "GATEWAY_ERROR")
	}

	s.logger.InfoContext(ctx, "checkout session created",
		slog.String("session_id", handle.SessionID),
		slog.String("campaign_id", c.ID),
		slog.Float64("amount", req.AmountMajorUnits))

	return handle, nil
}

// ToMinorUnits converts an amount in major currency units to the gateway's
// minor units for a two-decimal currency, rounding half away from zero.
// It reports false when the result is below one minor unit or does not fit
// in an int64.
func ToMinorUnits(amount float64) (int64, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	minor := decimal.NewFromFloat(amount).Shift(minorUnitExponent).Round(0)
	if minor.LessThan(decimal.NewFromInt(1)) || minor.GreaterThan(maxMinorUnits) {
		return 0, false
	}
	return minor.IntPart(), true
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

func (s *PaymentService) redirectURL(campaignID, flag string) string {
	base := strings.TrimRight(s.opts.BaseURL, "/")
	return fmt.Sprintf("%s/fundraisers/%s?%s=true", base, url.PathEscape(campaignID), flag)
}

// validateDonation performs basic validation on the donation request and
// returns the amount in minor units.
func validateDonation(req domain.PaymentSessionRequest) (int64, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.CampaignID) == "" {
		fields["fundraiserId"] = "fundraiserId is required"
	}

	minor, ok := int64(0), false
	switch {
	case math.IsNaN(req.AmountMajorUnits), math.IsInf(req.AmountMajorUnits, 0), req.AmountMajorUnits <= 0:
		fields["amount"] = "amount must be greater than 0"
	default:
		if minor, ok = ToMinorUnits(req.AmountMajorUnits); !ok {
			fields["amount"] = "amount must be between 0.01 and the largest chargeable amount"
		}
	}

	if len(fields) > 0 {
		return 0, &domain.ValidationError{Fields: fields}
	}
	return minor, nil
}
