package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/campusfund/campusfund-api/internal/core/domain"
	"github.com/campusfund/campusfund-api/internal/core/service"
	"github.com/campusfund/campusfund-api/internal/metrics"
)

// RouterConfig carries everything SetupRouter wires together.
type RouterConfig struct {
	Payments       *PaymentHandler
	Campaigns      *CampaignHandler
	Auth           *AuthHandler
	Content        *ContentHandler
	AuthService    *service.AuthService
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	GinMode        string
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(cfg RouterConfig) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))
	router.Use(RequestIDMiddleware())
	if cfg.Logger != nil {
		router.Use(LoggerMiddleware(cfg.Logger))
	}
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Health check (public)
	router.GET("/health", Health)

	router.POST("/payments", cfg.Payments.CreatePayment)

	requireUser := AuthMiddleware(cfg.AuthService)

	fundraisers := router.Group("/fundraisers")
	{
		fundraisers.GET("", cfg.Campaigns.List)
		fundraisers.GET("/featured", cfg.Campaigns.Featured)
		fundraisers.GET("/:id", cfg.Campaigns.Get)
		fundraisers.POST("", requireUser, cfg.Campaigns.Create)
	}
	router.GET("/dashboard", requireUser, cfg.Campaigns.Dashboard)

	auth := router.Group("/auth")
	{
		auth.POST("/register", cfg.Auth.Register)
		auth.POST("/login", cfg.Auth.Login)
	}

	for _, kind := range []domain.ContentKind{
		domain.ContentAnnouncements,
		domain.ContentEvents,
		domain.ContentScholarships,
	} {
		router.GET("/"+string(kind), cfg.Content.List(kind))
		router.GET("/"+string(kind)+"/:id", cfg.Content.Get(kind))
	}

	return router
}
