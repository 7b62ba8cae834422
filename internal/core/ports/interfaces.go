// Package ports defines the interfaces (ports) for the fundraising service.
// These are contracts that adapters must implement.
package ports

import (
	"context"
	"io"
	"time"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// CampaignRepository reads and inserts campaigns.
type CampaignRepository interface {
	// GetCampaign returns domain.ErrCampaignNotFound when the id does not resolve.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// ListCampaigns returns every campaign, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// ListCampaignsByOwner returns the owner's campaigns in the given scope
	// relative to day. Active campaigns are newest first, past campaigns
	// most recently ended first.
	ListCampaignsByOwner(ctx context.Context, ownerID string, scope domain.CampaignScope, day time.Time) ([]domain.Campaign, error)

	// CreateCampaign inserts a campaign with AmountRaised set to zero.
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)
}

// DonationRepository reads donation records.
type DonationRepository interface {
	// ListDonationsByDonor returns every donation made by the donor.
	ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error)

	// ListRecentDonations returns the most recent donations received by the campaigns.
	ListRecentDonations(ctx context.Context, campaignIDs []string, limit int) ([]domain.Donation, error)
}

// UserRepository stores users and reads profiles.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error

	// GetProfile returns domain.ErrProfileNotFound when the user has no profile.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

// IdentityProvider registers and authenticates users.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*domain.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*domain.AuthSession, error)
}

// ObjectStorage stores named blobs and returns a durable public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (string, error)
}

// PaymentGateway creates hosted checkout sessions.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.PaymentSessionHandle, error)
}

// ContentFeed lists static content items.
type ContentFeed interface {
	List(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error)
}
