package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusfund/campusfund-api/internal/core/campaign"
	"github.com/campusfund/campusfund-api/internal/core/service"
)

// CampaignHandler serves campaign listings, creation and the owner dashboard.
type CampaignHandler struct {
	service *service.CampaignService
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: svc}
}

// List handles GET /fundraisers
func (h *CampaignHandler) List(c *gin.Context) {
	views, err := h.service.ListCampaigns(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Featured handles GET /fundraisers/featured?limit=N
func (h *CampaignHandler) Featured(c *gin.Context) {
	limit := campaign.DefaultFeaturedCount
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	views, err := h.service.FeaturedCampaigns(c.Request.Context(), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Get handles GET /fundraisers/:id
func (h *CampaignHandler) Get(c *gin.Context) {
	view, err := h.service.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create handles POST /fundraisers (multipart form, optional "image" file).
func (h *CampaignHandler) Create(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var form service.CampaignForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Invalid form: "+err.Error())
		return
	}

	fh, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		badRequest(c, "Invalid image upload")
		return
	default:
		f, err := fh.Open()
		if err != nil {
			badRequest(c, "Invalid image upload")
			return
		}
		defer f.Close()
		form.Image = &service.ImageUpload{Filename: fh.Filename, Size: fh.Size, Body: f}
	}

	created, err := h.service.CreateCampaign(c.Request.Context(), userID, form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Dashboard handles GET /dashboard
func (h *CampaignHandler) Dashboard(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	dash, err := h.service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
