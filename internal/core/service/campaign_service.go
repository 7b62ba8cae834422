package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/campusfund/campusfund-api/internal/core/campaign"
	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/ports"
)

const (
	// ImageBucket is the storage bucket for campaign cover images.
	ImageBucket = "fundraiser-images"

	// MaxImageBytes is the largest accepted cover image.
	MaxImageBytes = 5 << 20

	// MaxFeaturedCount caps the featured listing.
	MaxFeaturedCount = 12

	// RecentDonationsLimit is the number of received donations shown on the dashboard.
	RecentDonationsLimit = 10

	dateLayout = "2006-01-02"
)

// Categories are the accepted campaign categories.
var Categories = []string{
	"Student Projects",
	"Campus Improvement",
	"Academic Research",
	"Sports Teams",
	"Arts & Culture",
	"Student Emergency",
	"Community Service",
	"Technology",
	"Other",
}

// CampaignForm is the raw input of the create-campaign form.
type CampaignForm struct {
	Title       string       `form:"title" validate:"required,min=5"`
	Description string       `form:"description" validate:"required,min=20"`
	Category    string       `form:"category" validate:"required,category"`
	GoalAmount  string       `form:"goal_amount" validate:"required"`
	EndDate     string       `form:"end_date" validate:"required"`
	Image       *ImageUpload `form:"-" validate:"-"`
}

// ImageUpload is an optional file attached to the form.
type ImageUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

var fieldMessages = map[string]map[string]string{
	"title": {
		"required": "Title is required",
		"min":      "Title must be at least 5 characters",
	},
	"description": {
		"required": "Description is required",
		"min":      "Please provide a more detailed description (at least 20 characters)",
	},
	"category": {
		"required": "Please select a category",
		"category": "Please select a category",
	},
	"goal_amount": {
		"required": "Goal amount is required",
	},
	"end_date": {
		"required": "End date is required",
	},
}

// CampaignService serves campaign listings, creation and the owner dashboard.
type CampaignService struct {
	campaigns ports.CampaignRepository
	donations ports.DonationRepository
	users     ports.UserRepository
	storage   ports.ObjectStorage
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

// NewCampaignService creates a new campaign service.
func NewCampaignService(
	campaigns ports.CampaignRepository,
	donations ports.DonationRepository,
	users ports.UserRepository,
	storage ports.ObjectStorage,
	logger *slog.Logger,
) *CampaignService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return formName(f.Tag.Get("form"), f.Name)
	})
	if err := v.RegisterValidation("category", isCategory); err != nil {
		panic(fmt.Sprintf("register category validation: %v", err))
	}

	return &CampaignService{
		campaigns: campaigns,
		donations: donations,
		users:     users,
		storage:   storage,
		validate:  v,
		logger:    logger,
		now:       time.Now,
	}
}

// ListCampaigns returns every campaign with its display state, newest first.
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]domain.CampaignView, error) {
	cs, err := s.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, s.storeError(ctx, "list campaigns", err)
	}
	return campaign.Views(cs, s.now()), nil
}

// FeaturedCampaigns returns up to limit campaigns with the highest funded
// ratio. A non-positive limit selects the default count.
func (s *CampaignService) FeaturedCampaigns(ctx context.Context, limit int) ([]domain.CampaignView, error) {
	switch {
	case limit <= 0:
		limit = campaign.DefaultFeaturedCount
	case limit > MaxFeaturedCount:
		limit = MaxFeaturedCount
	}

	cs, err := s.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, s.storeError(ctx, "list campaigns", err)
	}
	return campaign.Views(campaign.SelectFeatured(cs, limit), s.now()), nil
}

// GetCampaign returns one campaign with its display state.
func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*domain.CampaignView, error) {
	c, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			return nil, domain.NewServiceError(domain.ErrCampaignNotFound,
				"Fundraiser not found", "CAMPAIGN_NOT_FOUND")
		}
		return nil, s.storeError(ctx, "get campaign", err)
	}
	v := campaign.View(*c, s.now())
	return &v, nil
}

// CreateCampaign validates the form, uploads the optional image and inserts
// the campaign owned by ownerID. Nothing is uploaded or inserted when the
// form is invalid.
func (s *CampaignService) CreateCampaign(ctx context.Context, ownerID string, form CampaignForm) (*domain.Campaign, error) {
	now := s.now()

	draft, image, err := s.validateForm(form, now)
	if err != nil {
		return nil, err
	}
	draft.CreatedBy = ownerID

	if image != nil {
		name := objectName(now, form.Image.Filename)
		url, err := s.storage.Upload(ctx, ImageBucket, name, image.contentType, bytes.NewReader(image.data))
		if err != nil {
			s.logger.ErrorContext(ctx, "image upload failed",
				slog.String("object", name), slog.Any("error", err))
			return nil, domain.NewServiceError(domain.ErrUnexpected,
				"failed to upload image", "STORAGE_ERROR")
		}
		draft.ImageURL = url
	}

	c, err := s.campaigns.CreateCampaign(ctx, draft)
	if err != nil {
		return nil, s.storeError(ctx, "create campaign", err)
	}

	s.logger.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("created_by", ownerID))
	return c, nil
}

// Dashboard assembles the owner's campaigns, received donations and stats.
func (s *CampaignService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	now := s.now()
	today := startOfDay(now)

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, s.storeError(ctx, "get profile", err)
	}

	active, err := s.campaigns.ListCampaignsByOwner(ctx, userID, domain.ScopeActive, today)
	if err != nil {
		return nil, s.storeError(ctx, "list active campaigns", err)
	}
	past, err := s.campaigns.ListCampaignsByOwner(ctx, userID, domain.ScopePast, today)
	if err != nil {
		return nil, s.storeError(ctx, "list past campaigns", err)
	}

	owned := slices.Concat(active, past)

	recent := []domain.Donation{}
	if len(owned) > 0 {
		ids := make([]string, 0, len(owned))
		for _, c := range owned {
			ids = append(ids, c.ID)
		}
		recent, err = s.donations.ListRecentDonations(ctx, ids, RecentDonationsLimit)
		if err != nil {
			return nil, s.storeError(ctx, "list recent donations", err)
		}
	}

	made, err := s.donations.ListDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, s.storeError(ctx, "list donor donations", err)
	}

	return &domain.Dashboard{
		Profile:         profile,
		Active:          campaign.Views(active, now),
		Past:            campaign.Views(past, now),
		RecentDonations: recent,
		Stats:           campaign.ComputeStats(owned, made),
	}, nil
}

type checkedImage struct {
	data        []byte
	contentType string
}

func (s *CampaignService) validateForm(form CampaignForm, now time.Time) (domain.CampaignDraft, *checkedImage, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.Category = strings.TrimSpace(form.Category)
	form.GoalAmount = strings.TrimSpace(form.GoalAmount)
	form.EndDate = strings.TrimSpace(form.EndDate)

	fields := map[string]string{}

	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.CampaignDraft{}, nil, fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe.Field(), fe.Tag())
		}
	}

	var goal float64
	if _, set := fields["goal_amount"]; !set {
		v, err := strconv.ParseFloat(form.GoalAmount, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			fields["goal_amount"] = "Goal amount must be greater than zero"
		}
		goal = v
	}

	var endDate time.Time
	if _, set := fields["end_date"]; !set {
		d, err := time.Parse(dateLayout, form.EndDate)
		switch {
		case err != nil:
			fields["end_date"] = "End date must be a date in YYYY-MM-DD format"
		case !d.After(startOfDay(now)):
			fields["end_date"] = "End date must be in the future"
		}
		endDate = d
	}

	var image *checkedImage
	if form.Image != nil {
		img, msg := checkImage(form.Image)
		if msg != "" {
			fields["image"] = msg
		}
		image = img
	}

	if len(fields) > 0 {
		return domain.CampaignDraft{}, nil, &domain.ValidationError{Fields: fields}
	}

	return domain.CampaignDraft{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		GoalAmount:  goal,
		EndDate:     endDate,
	}, image, nil
}

func isCategory(fl validator.FieldLevel) bool {
	return slices.Contains(Categories, fl.Field().String())
}

// checkImage reads the upload and returns a user-facing message when it is
// not an image or too large.
func checkImage(u *ImageUpload) (*checkedImage, string) {
	if u.Size > MaxImageBytes {
		return nil, "Image must be less than 5MB"
	}
	data, err := io.ReadAll(io.LimitReader(u.Body, MaxImageBytes+1))
	if err != nil {
		return nil, "Image could not be read"
	}
	if len(data) > MaxImageBytes {
		return nil, "Image must be less than 5MB"
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, "Please select an image file"
	}
	return &checkedImage{data: data, contentType: mtype.String()}, ""
}

func (s *CampaignService) storeError(ctx context.Context, op string, err error) error {
	s.logger.ErrorContext(ctx, op+" failed", slog.Any("error", err))
	return domain.NewServiceError(domain.ErrUnexpected, "failed to "+op, "DATA_STORE_ERROR")
}

func fieldMessage(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	return field + " is invalid"
}

func formName(tag, fallback string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return fallback
	}
	return name
}

func objectName(now time.Time, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "-")
	if base == "." || base == "/" {
		base = "image"
	}
	return fmt.Sprintf("fundraiser-%d-%s-%s", now.UnixMilli(), uuid.NewString(), base)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
