package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ddlogi/quote-platform/internal/api/router"
	"github.com/ddlogi/quote-platform/internal/app/bootstrap"
	"github.com/ddlogi/quote-platform/internal/cleaning"
	appconfig "github.com/ddlogi/quote-platform/internal/config"
	"github.com/ddlogi/quote-platform/internal/distance"
	"github.com/ddlogi/quote-platform/internal/inquiry"
	"github.com/ddlogi/quote-platform/internal/observability/metrics"
	"github.com/ddlogi/quote-platform/internal/pricing"
	"github.com/ddlogi/quote-platform/internal/quotes"
	"github.com/ddlogi/quote-platform/internal/slots"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

func main() {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting quote-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"slot_backend", cfg.SlotStoreBackend,
	)

	ctx := context.Background()

	pool, err := bootstrap.BuildPostgresPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect postgres", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	// Slot reservation store (postgres, dynamo, or memory) plus Redis cache.
	slotStore, err := bootstrap.BuildSlotStore(ctx, cfg, pool, logger)
	if err != nil {
		logger.Error("failed to build slot store", "error", err)
		os.Exit(1)
	}

	pricingCfg := pricing.Config{
		OperatorMultiplier:  cfg.OperatorMultiplier,
		DisplayMultiplier:   cfg.DisplayMultiplier,
		HalfPackingPremium:  cfg.HalfPackingPremium,
		ItemPriceMultiplier: cfg.ItemPriceMultiplier,
		ItemGrowthRate:      cfg.ItemGrowthRate,
	}
	cleaningCfg := cleaning.Config{
		OperatorMultiplier: cfg.OperatorMultiplier,
		DisplayMultiplier:  cfg.DisplayMultiplier,
	}

	slotService := slots.NewService(slotStore, logger, metrics.NewSlotMetrics(nil))

	// Distance resolution falls back to straight-line when Kakao is not
	// configured, so a missing key only degrades precision.
	var distanceHandler *distance.Handler
	if cfg.KakaoRESTKey != "" {
		kakao := distance.NewKakaoClient(cfg.KakaoRESTKey, cfg.KakaoLocalBaseURL, cfg.KakaoMobilityBaseURL, logger)
		resolver := distance.NewResolver(kakao, kakao, cfg.DistanceTimeout, logger, metrics.NewDistanceMetrics(nil))
		distanceHandler = distance.NewHandler(resolver, logger)
	} else {
		logger.Warn("KAKAO_MOBILITY_REST_KEY not set, distance endpoint disabled")
	}

	// The inquiry log shares the slot store's database when one is configured.
	var recorder inquiry.Recorder
	if pool != nil {
		recorder = inquiry.NewRepository(pool)
	}

	routerCfg := &router.Config{
		Logger:          logger,
		QuotesHandler:   quotes.NewHandler(pricingCfg, cleaningCfg, logger, metrics.NewQuoteMetrics(nil)),
		SlotsHandler:    slots.NewHandler(slotService, logger),
		DistanceHandler: distanceHandler,
		InquiryHandler:  inquiry.NewHandler(pricingCfg, cleaningCfg, cfg.SMSInquiryNumber, recorder, logger),

		AdminJWTSecret: cfg.AdminJWTSecret,
		AdminEmails:    cfg.AdminEmails,

		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
