package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

const (
	dateLayout     = "2006-01-02"
	campaignSelect = "*,donations(count)"
	donationSelect = "*,fundraisers!inner(id,title,created_by),profiles(display_name,avatar_url)"
)

type countRow struct {
	Count int `json:"count"`
}

type fundraiserRow struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         *string    `json:"category"`
	GoalAmount       float64    `json:"goal_amount"`
	AmountRaised     *float64   `json:"amount_raised"`
	EndDate          *string    `json:"end_date"`
	HasThankedDonors bool       `json:"has_thanked_donors"`
	ImageURL         *string    `json:"image_url"`
	CreatedBy        *string    `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	Donations        []countRow `json:"donations,omitempty"`
}

func (r fundraiserRow) toDomain() domain.Campaign {
	c := domain.Campaign{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Category:         deref(r.Category),
		GoalAmount:       r.GoalAmount,
		HasThankedDonors: r.HasThankedDonors,
		ImageURL:         deref(r.ImageURL),
		CreatedBy:        deref(r.CreatedBy),
		CreatedAt:        r.CreatedAt,
	}
	if r.AmountRaised != nil {
		c.AmountRaised = *r.AmountRaised
	}
	if r.EndDate != nil {
		// A malformed end date is left zero and reads as ended.
		if d, err := time.Parse(dateLayout, *r.EndDate); err == nil {
			c.EndDate = d
		}
	}
	if len(r.Donations) > 0 {
		c.DonationCount = r.Donations[0].Count
	}
	return c
}

type fundraiserInsert struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category,omitempty"`
	GoalAmount   float64 `json:"goal_amount"`
	AmountRaised float64 `json:"amount_raised"`
	EndDate      string  `json:"end_date"`
	ImageURL     *string `json:"image_url"`
	CreatedBy    string  `json:"created_by"`
}

type donationRow struct {
	ID           string    `json:"id"`
	FundraiserID string    `json:"fundraiser_id"`
	DonorID      *string   `json:"donor_id"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
	Fundraiser   *struct {
		Title string `json:"title"`
	} `json:"fundraisers"`
	Profile *struct {
		DisplayName *string `json:"display_name"`
		AvatarURL   *string `json:"avatar_url"`
	} `json:"profiles"`
}

func (r donationRow) toDomain() domain.Donation {
	d := domain.Donation{
		ID:         r.ID,
		CampaignID: r.FundraiserID,
		DonorID:    deref(r.DonorID),
		Amount:     r.Amount,
		CreatedAt:  r.CreatedAt,
	}
	if r.Fundraiser != nil {
		d.CampaignTitle = r.Fundraiser.Title
	}
	if r.Profile != nil {
		d.DonorName = deref(r.Profile.DisplayName)
		d.DonorAvatar = deref(r.Profile.AvatarURL)
	}
	return d
}

// GetCampaign returns domain.ErrCampaignNotFound when no row matches id.
// GET /rest/v1/fundraisers?id=eq.{id}
func (c *Client) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	q := url.Values{}
	q.Set("select", campaignSelect)
	q.Set("id", "eq."+id)

	var rows []fundraiserRow
	if err := c.doJSON(ctx, http.MethodGet, "/rest/v1/fundraisers", q, nil, nil, &rows); err != nil {
		if isInvalidInput(err) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrCampaignNotFound
	}
	camp := rows[0].toDomain()
	return &camp, nil
}

func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	q := url.Values{}
	q.Set("select", campaignSelect)
	q.Set("order", "created_at.desc")
	return c.listCampaigns(ctx, q)
}

func (c *Client) ListCampaignsByOwner(ctx context.Context, ownerID string, scope domain.CampaignScope, day time.Time) ([]domain.Campaign, error) {
	q := url.Values{}
	q.Set("select", campaignSelect)
	q.Set("created_by", "eq."+ownerID)

	switch scope {
	case domain.ScopeActive:
		q.Set("end_date", "gte."+day.Format(dateLayout))
		q.Set("order", "created_at.desc")
	case domain.ScopePast:
		q.Set("end_date", "lt."+day.Format(dateLayout))
		q.Set("order", "end_date.desc")
	default:
		return nil, fmt.Errorf("unknown campaign scope %d", scope)
	}
	return c.listCampaigns(ctx, q)
}

func (c *Client) listCampaigns(ctx context.Context, q url.Values) ([]domain.Campaign, error) {
	var rows []fundraiserRow
	if err := c.doJSON(ctx, http.MethodGet, "/rest/v1/fundraisers", q, nil, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CreateCampaign inserts the draft with nothing raised.
// POST /rest/v1/fundraisers
func (c *Client) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	in := fundraiserInsert{
		Title:        draft.Title,
		Description:  draft.Description,
		Category:     draft.Category,
		GoalAmount:   draft.GoalAmount,
		AmountRaised: 0,
		EndDate:      draft.EndDate.Format(dateLayout),
		CreatedBy:    draft.CreatedBy,
	}
	if draft.ImageURL != "" {
		in.ImageURL = &draft.ImageURL
	}

	var rows []fundraiserRow
	headers := map[string]string{"Prefer": "return=representation"}
	if err := c.doJSON(ctx, http.MethodPost, "/rest/v1/fundraisers", nil, []fundraiserInsert{in}, headers, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("insert fundraiser: empty representation")
	}
	camp := rows[0].toDomain()
	return &camp, nil
}

func (c *Client) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	q := url.Values{}
	q.Set("select", "*,fundraisers(title)")
	q.Set("donor_id", "eq."+donorID)
	q.Set("order", "created_at.desc")
	return c.listDonations(ctx, q)
}

// ListRecentDonations returns the latest donations received by the campaigns.
// GET /rest/v1/donations?fundraiser_id=in.(...)
func (c *Client) ListRecentDonations(ctx context.Context, campaignIDs []string, limit int) ([]domain.Donation, error) {
	if len(campaignIDs) == 0 {
		return []domain.Donation{}, nil
	}
	q := url.Values{}
	q.Set("select", donationSelect)
	q.Set("fundraiser_id", "in.("+strings.Join(campaignIDs, ",")+")")
	q.Set("order", "created_at.desc")
	q.Set("limit", fmt.Sprint(limit))
	return c.listDonations(ctx, q)
}

func (c *Client) listDonations(ctx context.Context, q url.Values) ([]domain.Donation, error) {
	var rows []donationRow
	if err := c.doJSON(ctx, http.MethodGet, "/rest/v1/donations", q, nil, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Donation, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CreateUser inserts the users row for a new account.
func (c *Client) CreateUser(ctx context.Context, user domain.User) error {
	headers := map[string]string{"Prefer": "return=minimal"}
	return c.doJSON(ctx, http.MethodPost, "/rest/v1/users", nil, []domain.User{user}, headers, nil)
}

// GetProfile returns domain.ErrProfileNotFound when the user has no profile row.
func (c *Client) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	q := url.Values{}
	q.Set("select", "id,display_name,avatar_url")
	q.Set("id", "eq."+userID)

	var rows []struct {
		ID          string  `json:"id"`
		DisplayName *string `json:"display_name"`
		AvatarURL   *string `json:"avatar_url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/rest/v1/profiles", q, nil, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return &domain.Profile{
		ID:          rows[0].ID,
		DisplayName: deref(rows[0].DisplayName),
		AvatarURL:   deref(rows[0].AvatarURL),
	}, nil
}

// isInvalidInput reports a PostgREST rejection of a malformed filter value,
// such as a non-uuid id.
func isInvalidInput(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusBadRequest
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
