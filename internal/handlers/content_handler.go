package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/service"
)

// ContentHandler serves the read-only announcement, event and scholarship feeds.
type ContentHandler struct {
	service *service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{service: svc}
}

// List returns the handler for GET /<kind>.
func (h *ContentHandler) List(kind domain.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.service.List(c.Request.Context(), kind)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Get returns the handler for GET /<kind>/:id.
func (h *ContentHandler) Get(kind domain.ContentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := h.service.Get(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
