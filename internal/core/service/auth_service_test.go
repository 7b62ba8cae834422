package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/ports/mocks"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestRegister_SavesUser(t *testing.T) {
	ctx := context.Background()
	idp := new(mocks.IdentityProvider)
	users := new(mocks.UserRepository)

	idp.On("SignUp", ctx, "ana@uni.edu", "hunter22").
		Return(&domain.AuthSession{UserID: "u-1", Email: "ana@uni.edu"}, nil)
	users.On("CreateUser", ctx, domain.User{ID: "u-1", Email: "ana@uni.edu"}).Return(nil)

	reg, err := NewAuthService(idp, users, testSecret, discardLogger()).
		Register(ctx, Credentials{Email: " ana@uni.edu ", Password: "hunter22"})

	require.NoError(t, err)
	assert.True(t, reg.ProfileSaved)
	assert.Equal(t, "u-1", reg.Session.UserID)
}

func TestRegister_UserInsertFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	idp := new(mocks.IdentityProvider)
	users := new(mocks.UserRepository)

	idp.On("SignUp", ctx, "ana@uni.edu", "hunter22").
		Return(&domain.AuthSession{UserID: "u-1", Email: "ana@uni.edu"}, nil)
	users.On("CreateUser", ctx, mock.Anything).Return(errors.New("duplicate key"))

	reg, err := NewAuthService(idp, users, testSecret, discardLogger()).
		Register(ctx, Credentials{Email: "ana@uni.edu", Password: "hunter22"})

	require.NoError(t, err)
	assert.False(t, reg.ProfileSaved)
}

func TestRegister_InvalidCredentials(t *testing.T) {
	idp := new(mocks.IdentityProvider)
	users := new(mocks.UserRepository)

	_, err := NewAuthService(idp, users, testSecret, discardLogger()).
		Register(context.Background(), Credentials{Email: "not-an-email", Password: "123"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	idp.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	idp := new(mocks.IdentityProvider)

	idp.On("SignIn", ctx, "ana@uni.edu", "hunter22").
		Return(&domain.AuthSession{UserID: "u-1", AccessToken: "tok"}, nil)
	idp.On("SignIn", ctx, "ana@uni.edu", "wrong-pass").
		Return(nil, domain.ErrUnauthorized)

	svc := NewAuthService(idp, new(mocks.UserRepository), testSecret, discardLogger())

	s, err := svc.Login(ctx, Credentials{Email: "ana@uni.edu", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)

	_, err = svc.Login(ctx, Credentials{Email: "ana@uni.edu", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyAccessToken(t *testing.T) {
	svc := NewAuthService(new(mocks.IdentityProvider), new(mocks.UserRepository), testSecret, discardLogger())
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "u-1", ExpiresAt: future})
	sub, err := svc.VerifyAccessToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "u-1", sub)

	tests := map[string]string{
		"expired":      signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "u-1", ExpiresAt: past}),
		"wrong key":    signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.RegisteredClaims{Subject: "u-1", ExpiresAt: future}),
		"wrong method": signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{Subject: "u-1", ExpiresAt: future}),
		"no expiry":    signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "u-1"}),
		"no subject":   signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{ExpiresAt: future}),
		"garbage":      "not.a.token",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyAccessToken(tok)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestContentService(t *testing.T) {
	ctx := context.Background()
	feed := new(mocks.ContentFeed)
	feed.On("List", ctx, domain.ContentEvents).Return([]domain.ContentItem{{ID: "1", Title: "Career Fair"}}, nil)
	feed.On("List", ctx, domain.ContentScholarships).Return(nil, errors.New("read failed"))

	svc := NewContentService(feed, discardLogger())

	item, err := svc.Get(ctx, domain.ContentEvents, "1")
	require.NoError(t, err)
	assert.Equal(t, "Career Fair", item.Title)

	_, err = svc.Get(ctx, domain.ContentEvents, "2")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)

	_, err = svc.List(ctx, domain.ContentScholarships)
	assert.ErrorIs(t, err, domain.ErrUnexpected)
}
