package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/ports"
)

// Credentials is the email/password pair used to register or sign in.
type Credentials struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
}

// Registration is the outcome of a sign-up. ProfileSaved is false when the
// account exists but the users row could not be written.
type Registration struct {
	Session      domain.AuthSession `json:"session"`
	ProfileSaved bool               `json:"profile_saved"`
}

// AuthService forwards sign-up and sign-in to the identity provider and
// verifies the access tokens it issues.
type AuthService struct {
	identity  ports.IdentityProvider
	users     ports.UserRepository
	jwtSecret []byte
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAuthService creates a new auth service. jwtSecret is the HS256 key the
// identity provider signs access tokens with.
func NewAuthService(identity ports.IdentityProvider, users ports.UserRepository, jwtSecret string, logger *slog.Logger) *AuthService {
	return &AuthService{
		identity:  identity,
		users:     users,
		jwtSecret: []byte(jwtSecret),
		validate:  validator.New(),
		logger:    logger,
	}
}

// Register creates an account and records it in the users collection.
func (s *AuthService) Register(ctx context.Context, creds Credentials) (*Registration, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validateCredentials(creds); err != nil {
		return nil, err
	}

	session, err := s.identity.SignUp(ctx, creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return nil, domain.NewServiceError(err, "sign-up rejected", "SIGNUP_REJECTED")
		}
		s.logger.ErrorContext(ctx, "sign-up failed", slog.Any("error", err))
		return nil, domain.NewServiceError(domain.ErrUnexpected, "sign-up failed", "IDENTITY_ERROR")
	}

	reg := &Registration{Session: *session, ProfileSaved: true}
	if err := s.users.CreateUser(ctx, domain.User{ID: session.UserID, Email: creds.Email}); err != nil {
		s.logger.WarnContext(ctx, "user row not saved after sign-up",
			slog.String("user_id", session.UserID), slog.Any("error", err))
		reg.ProfileSaved = false
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", session.UserID))
	return reg, nil
}

// Login exchanges credentials for an access token.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*domain.AuthSession, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validateCredentials(creds); err != nil {
		return nil, err
	}

	session, err := s.identity.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.NewServiceError(domain.ErrUnauthorized, "invalid email or password", "INVALID_CREDENTIALS")
		}
		s.logger.ErrorContext(ctx, "sign-in failed", slog.Any("error", err))
		return nil, domain.NewServiceError(domain.ErrUnexpected, "sign-in failed", "IDENTITY_ERROR")
	}
	return session, nil
}

// VerifyAccessToken validates an HS256 access token and returns its subject.
func (s *AuthService) VerifyAccessToken(token string) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", domain.NewServiceError(domain.ErrUnauthorized, "token verification is not configured", "UNAUTHORIZED")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", domain.NewServiceError(fmt.Errorf("%w: %v", domain.ErrUnauthorized, err), "invalid access token", "UNAUTHORIZED")
	}
	if claims.Subject == "" {
		return "", domain.NewServiceError(domain.ErrUnauthorized, "access token has no subject", "UNAUTHORIZED")
	}
	return claims.Subject, nil
}

func (s *AuthService) validateCredentials(creds Credentials) error {
	err := s.validate.Struct(creds)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate credentials: %w", err)
	}

	fields := map[string]string{}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			fields["email"] = "A valid email is required"
		case "Password":
			fields["password"] = "Password must be at least 6 characters"
		}
	}
	return &domain.ValidationError{Fields: fields}
}
