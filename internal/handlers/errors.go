package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// handleServiceError maps domain errors to HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:  "Validation failed",
			Code:   "VALIDATION_ERROR",
			Fields: verr.Fields,
		})
		return
	}

	status, message, code := http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		status, message, code = http.StatusNotFound, "Fundraiser not found", "CAMPAIGN_NOT_FOUND"
	case errors.Is(err, domain.ErrContentNotFound):
		status, message, code = http.StatusNotFound, "Not found", "CONTENT_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidRequest):
		status, message, code = http.StatusBadRequest, "Invalid request", "INVALID_REQUEST"
	case errors.Is(err, domain.ErrUnauthorized):
		status, message, code = http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED"
	case errors.Is(err, domain.ErrPaymentGatewayError):
		status, message, code = http.StatusBadGateway, "Payment provider unavailable", "GATEWAY_ERROR"
	}

	// Internal failures keep the generic message; details are logged by the service.
	var svcErr *domain.ServiceError
	if errors.As(err, &svcErr) {
		if svcErr.Code != "" {
			code = svcErr.Code
		}
		if status != http.StatusInternalServerError && svcErr.Message != "" {
			message = svcErr.Message
		}
	}

	c.JSON(status, errorResponse{Error: message, Code: code})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Code: "VALIDATION_ERROR"})
}
