// Package mocks provides testify/mock doubles for the ports.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// CampaignRepository is a mock of ports.CampaignRepository.
type CampaignRepository struct {
	mock.Mock
}

func (m *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Campaign)
	return c, args.Error(1)
}

func (m *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Campaign)
	return cs, args.Error(1)
}

func (m *CampaignRepository) ListCampaignsByOwner(ctx context.Context, ownerID string, scope domain.CampaignScope, day time.Time) ([]domain.Campaign, error) {
	args := m.Called(ctx, ownerID, scope, day)
	cs, _ := args.Get(0).([]domain.Campaign)
	return cs, args.Error(1)
}

func (m *CampaignRepository) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	args := m.Called(ctx, draft)
	c, _ := args.Get(0).(*domain.Campaign)
	return c, args.Error(1)
}

// DonationRepository is a mock of ports.DonationRepository.
type DonationRepository struct {
	mock.Mock
}

func (m *DonationRepository) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	args := m.Called(ctx, donorID)
	ds, _ := args.Get(0).([]domain.Donation)
	return ds, args.Error(1)
}

func (m *DonationRepository) ListRecentDonations(ctx context.Context, campaignIDs []string, limit int) ([]domain.Donation, error) {
	args := m.Called(ctx, campaignIDs, limit)
	ds, _ := args.Get(0).([]domain.Donation)
	return ds, args.Error(1)
}

// UserRepository is a mock of ports.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

// IdentityProvider is a mock of ports.IdentityProvider.
type IdentityProvider struct {
	mock.Mock
}

func (m *IdentityProvider) SignUp(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*domain.AuthSession)
	return s, args.Error(1)
}

func (m *IdentityProvider) SignIn(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*domain.AuthSession)
	return s, args.Error(1)
}

// ObjectStorage is a mock of ports.ObjectStorage.
type ObjectStorage struct {
	mock.Mock
}

func (m *ObjectStorage) Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, bucket, name, contentType, body)
	return args.String(0), args.Error(1)
}

// PaymentGateway is a mock of ports.PaymentGateway.
type PaymentGateway struct {
	mock.Mock
}

func (m *PaymentGateway) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.PaymentSessionHandle, error) {
	args := m.Called(ctx, req)
	h, _ := args.Get(0).(*domain.PaymentSessionHandle)
	return h, args.Error(1)
}

// ContentFeed is a mock of ports.ContentFeed.
type ContentFeed struct {
	mock.Mock
}

func (m *ContentFeed) List(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	args := m.Called(ctx, kind)
	items, _ := args.Get(0).([]domain.ContentItem)
	return items, args.Error(1)
}
