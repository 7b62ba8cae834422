// Package domain contains the core business entities for the fundraising service.
// This is the innermost layer - no external dependencies.
package domain

import "time"

// Campaign is a fundraising record owned by the data store.
// The service only reads it; AmountRaised is mutated externally by donations.
type Campaign struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category,omitempty"`
	GoalAmount       float64   `json:"goal_amount"`
	AmountRaised     float64   `json:"amount_raised"`
	EndDate          time.Time `json:"end_date"`
	DonationCount    int       `json:"donation_count"`
	HasThankedDonors bool      `json:"has_thanked_donors"`
	ImageURL         string    `json:"image_url,omitempty"`
	CreatedBy        string    `json:"created_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// CampaignDraft is the validated input for inserting a new campaign.
type CampaignDraft struct {
	Title       string
	Description string
	Category    string
	GoalAmount  float64
	EndDate     time.Time
	ImageURL    string
	CreatedBy   string
}

// CampaignScope filters an owner's campaigns by end date relative to a day.
type CampaignScope int

const (
	// ScopeActive selects campaigns whose end date is on or after the reference day.
	ScopeActive CampaignScope = iota
	// ScopePast selects campaigns whose end date is before the reference day.
	ScopePast
)

// Donation is a single donation record.
type Donation struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"fundraiser_id"`
	CampaignTitle string    `json:"fundraiser_title,omitempty"`
	DonorID       string    `json:"donor_id,omitempty"`
	DonorName     string    `json:"donor_name,omitempty"`
	DonorAvatar   string    `json:"donor_avatar_url,omitempty"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// User is the row stored in the users collection after sign-up.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile holds display information for a user.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// AuthSession is what the identity provider returns on sign-up or sign-in.
type AuthSession struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token,omitempty"`
}

// PaymentSessionRequest is one donate action.
type PaymentSessionRequest struct {
	CampaignID       string  `json:"fundraiserId" binding:"required"`
	AmountMajorUnits float64 `json:"amount" binding:"required,gt=0"`
}

// PaymentSessionHandle is the opaque checkout session returned to the caller.
type PaymentSessionHandle struct {
	SessionID string `json:"id"`
	URL       string `json:"url,omitempty"`
}

// LineItem is a single priced entry of a checkout session.
// UnitAmount is expressed in the currency's minor units.
type LineItem struct {
	Name       string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// CheckoutMode is the gateway checkout mode.
type CheckoutMode string

// CheckoutModePayment is a one-time payment.
const CheckoutModePayment CheckoutMode = "payment"

// CheckoutSessionRequest is sent to the payment gateway.
type CheckoutSessionRequest struct {
	LineItems         []LineItem
	Mode              CheckoutMode
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
}

// ContentKind names a content feed.
type ContentKind string

const (
	ContentAnnouncements ContentKind = "announcements"
	ContentEvents        ContentKind = "events"
	ContentScholarships  ContentKind = "scholarships"
)

// ContentItem is an entry of a content feed. Fields not used by a kind are empty.
type ContentItem struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Date        string `json:"date,omitempty" yaml:"date"`
	Deadline    string `json:"deadline,omitempty" yaml:"deadline"`
	Urgency     string `json:"urgency,omitempty" yaml:"urgency"`
	Amount      string `json:"amount,omitempty" yaml:"amount"`
	Department  string `json:"department,omitempty" yaml:"department"`
	Location    string `json:"location,omitempty" yaml:"location"`
	Image       string `json:"image,omitempty" yaml:"image"`
}
