package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// authResponse covers both shapes GoTrue returns: a session with a nested
// user, or the bare user when email confirmation is pending.
type authResponse struct {
	AccessToken string    `json:"access_token"`
	User        *authUser `json:"user"`
	authUser
}

func (r authResponse) session() (*domain.AuthSession, error) {
	u := r.User
	if u == nil {
		u = &r.authUser
	}
	if u.ID == "" {
		return nil, errors.New("identity response has no user id")
	}
	return &domain.AuthSession{UserID: u.ID, Email: u.Email, AccessToken: r.AccessToken}, nil
}

// SignUp registers an account.
// POST /auth/v1/signup
func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/v1/signup", nil, credentials{email, password}, nil, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 && se.StatusCode != http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, se.Body)
		}
		return nil, err
	}
	return resp.session()
}

// SignIn exchanges a password for a session.
// POST /auth/v1/token?grant_type=password
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	q := url.Values{}
	q.Set("grant_type", "password")

	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/v1/token", q, credentials{email, password}, nil, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusBadRequest || se.StatusCode == http.StatusUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return resp.session()
}
