package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusfund/campusfund-api/internal/core/service"
)

// AuthHandler exposes sign-up and sign-in.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var creds service.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	reg, err := h.service.Register(c.Request.Context(), creds)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id":       reg.Session.UserID,
		"email":         reg.Session.Email,
		"profile_saved": reg.ProfileSaved,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var creds service.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      session.UserID,
		"access_token": session.AccessToken,
	})
}
