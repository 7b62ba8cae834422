package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/service"
	"github.com/campusfund/campusfund-api/internal/metrics"
)

// PaymentHandler handles HTTP requests for donation checkout sessions.
type PaymentHandler struct {
	service *service.PaymentService
	metrics *metrics.Metrics
}

// NewPaymentHandler creates a new payment handler. m may be nil.
func NewPaymentHandler(svc *service.PaymentService, m *metrics.Metrics) *PaymentHandler {
	return &PaymentHandler{service: svc, metrics: m}
}

// CreatePayment handles POST /payments
// Opens a checkout session for a donation and returns its id.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req domain.PaymentSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordDonationSession(metrics.OutcomeInvalid)
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	handle, err := h.service.CreateDonationSession(c.Request.Context(), req)
	if err != nil {
		h.metrics.RecordDonationSession(outcomeFor(err))
		handleServiceError(c, err)
		return
	}

	h.metrics.RecordDonationSession(metrics.OutcomeCreated)
	c.JSON(http.StatusOK, handle)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrPaymentGatewayError):
		return metrics.OutcomeGatewayError
	default:
		return metrics.OutcomeError
	}
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "campusfund-api",
	})
}
