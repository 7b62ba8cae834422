package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// Store implements the campaign, donation and user repositories using pgxpool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// campaignColumns is scanned by scanCampaign in this order.
const campaignColumns = `
        f.id::text,
        f.title,
        f.description,
        COALESCE(f.category, ''),
        f.goal_amount::float8,
        f.amount_raised::float8,
        f.end_date,
        (SELECT count(*) FROM donations d WHERE d.fundraiser_id = f.id),
        f.has_thanked_donors,
        COALESCE(f.image_url, ''),
        COALESCE(f.created_by::text, ''),
        f.created_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.GoalAmount,
		&c.AmountRaised,
		&c.EndDate,
		&c.DonationCount,
		&c.HasThankedDonors,
		&c.ImageURL,
		&c.CreatedBy,
		&c.CreatedAt,
	)
	return c, err
}

// GetCampaign returns domain.ErrCampaignNotFound when no row matches id.
func (s *Store) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	query := `SELECT` + campaignColumns + `
        FROM fundraisers f
        WHERE f.id::text = $1`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `SELECT` + campaignColumns + `
        FROM fundraisers f
        ORDER BY f.created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

func (s *Store) ListCampaignsByOwner(ctx context.Context, ownerID string, scope domain.CampaignScope, day time.Time) ([]domain.Campaign, error) {
	var filter string
	switch scope {
	case domain.ScopeActive:
		filter = `f.end_date >= $2::date ORDER BY f.created_at DESC`
	case domain.ScopePast:
		filter = `f.end_date < $2::date ORDER BY f.end_date DESC`
	default:
		return nil, fmt.Errorf("unknown campaign scope %d", scope)
	}

	query := `SELECT` + campaignColumns + `
        FROM fundraisers f
        WHERE f.created_by::text = $1 AND ` + filter

	rows, err := s.pool.Query(ctx, query, ownerID, day)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// CreateCampaign inserts the draft with nothing raised and returns the stored row.
func (s *Store) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	query := `
        WITH f AS (
            INSERT INTO fundraisers (title, description, category, goal_amount, amount_raised, end_date, image_url, created_by)
            VALUES ($1, $2, NULLIF($3, ''), $4, 0, $5::date, NULLIF($6, ''), NULLIF($7, '')::uuid)
            RETURNING *
        )
        SELECT` + campaignColumns + `
        FROM f`

	rows, err := s.pool.Query(ctx, query,
		draft.Title,
		draft.Description,
		draft.Category,
		draft.GoalAmount,
		draft.EndDate,
		draft.ImageURL,
		draft.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const donationColumns = `
        d.id::text,
        d.fundraiser_id::text,
        f.title,
        COALESCE(d.donor_id::text, ''),
        COALESCE(p.display_name, ''),
        COALESCE(p.avatar_url, ''),
        d.amount::float8,
        d.created_at`

const donationJoins = `
        FROM donations d
        JOIN fundraisers f ON f.id = d.fundraiser_id
        LEFT JOIN profiles p ON p.id = d.donor_id`

func (s *Store) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	query := `SELECT` + donationColumns + donationJoins + `
        WHERE d.donor_id::text = $1
        ORDER BY d.created_at DESC`

	rows, err := s.pool.Query(ctx, query, donorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Donation])
}

func (s *Store) ListRecentDonations(ctx context.Context, campaignIDs []string, limit int) ([]domain.Donation, error) {
	if len(campaignIDs) == 0 {
		return []domain.Donation{}, nil
	}

	query := `SELECT` + donationColumns + donationJoins + `
        WHERE d.fundraiser_id::text = ANY($1::text[])
        ORDER BY d.created_at DESC
        LIMIT $2`

	rows, err := s.pool.Query(ctx, query, campaignIDs, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Donation])
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email) VALUES ($1::text::uuid, $2)`,
		user.ID, user.Email)
	return err
}

// GetProfile returns domain.ErrProfileNotFound when the user has no profile row.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := s.pool.QueryRow(ctx, `
        SELECT id::text, COALESCE(display_name, ''), COALESCE(avatar_url, '')
        FROM profiles
        WHERE id::text = $1`, userID).Scan(&p.ID, &p.DisplayName, &p.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}
