package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/campusfund/campusfund-api/config"
	"github.com/campusfund/campusfund-api/internal/adapters/cloudinary"
	"github.com/campusfund/campusfund-api/internal/adapters/feed"
	"github.com/campusfund/campusfund-api/internal/adapters/mercadopago"
	"github.com/campusfund/campusfund-api/internal/adapters/postgres"
	"github.com/campusfund/campusfund-api/internal/adapters/stripe"
	"github.com/campusfund/campusfund-api/internal/adapters/supabase"
	"github.com/campusfund/campusfund-api/internal/core/ports"
	"github.com/campusfund/campusfund-api/internal/core/service"
	"github.com/campusfund/campusfund-api/internal/handlers"
	"github.com/campusfund/campusfund-api/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

// store bundles the three repositories; both drivers implement all of them.
type store interface {
	ports.CampaignRepository
	ports.DonationRepository
	ports.UserRepository
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Infrastructure
	sb := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey, cfg.Supabase.Timeout)

	var repo store = sb
	if cfg.App.StoreDriver == config.DriverPostgres {
		if cfg.Postgres.RunMigrations {
			if err := postgres.Migrate(cfg.Postgres.Addr); err != nil {
				return err
			}
			logger.Info("migrations applied")
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.Addr, cfg.Postgres.MaxConns)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = postgres.NewStore(pool)
	}

	var storage ports.ObjectStorage = sb
	if cfg.App.StorageDriver == config.DriverCloudinary {
		cld, err := cloudinary.NewStorage(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			return err
		}
		storage = cld
	}

	var gateway ports.PaymentGateway
	switch cfg.App.PaymentProvider {
	case config.ProviderMercadoPago:
		mp, err := mercadopago.NewAdapter(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Sandbox)
		if err != nil {
			return err
		}
		gateway = mp
	default:
		gateway = stripe.NewGateway(cfg.Stripe.SecretKey)
	}

	content, err := loadFeed(cfg.App.ContentFile)
	if err != nil {
		return err
	}

	// Services
	paymentSvc := service.NewPaymentService(repo, gateway, service.PaymentOptions{
		BaseURL:  cfg.App.BaseURL,
		Currency: cfg.App.Currency,
	}, logger)
	campaignSvc := service.NewCampaignService(repo, repo, repo, storage, logger)
	authSvc := service.NewAuthService(sb, repo, cfg.Auth.JWTSecret, logger)
	contentSvc := service.NewContentService(content, logger)

	// HTTP
	m := metrics.New()
	router := handlers.SetupRouter(handlers.RouterConfig{
		Payments:       handlers.NewPaymentHandler(paymentSvc, m),
		Campaigns:      handlers.NewCampaignHandler(campaignSvc),
		Auth:           handlers.NewAuthHandler(authSvc),
		Content:        handlers.NewContentHandler(contentSvc),
		AuthService:    authSvc,
		Metrics:        m,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		GinMode:        cfg.Server.GinMode,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", srv.Addr),
			slog.String("store", cfg.App.StoreDriver),
			slog.String("storage", cfg.App.StorageDriver),
			slog.String("payments", cfg.App.PaymentProvider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadFeed(path string) (*feed.Feed, error) {
	if path == "" {
		return feed.Default()
	}
	return feed.Load(path)
}
