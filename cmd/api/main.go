package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/mom-generator/docs"
	"github.com/johnquangdev/mom-generator/internal/adapter/handler"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/external/oauth"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/external/zoom"
	httpmw "github.com/johnquangdev/mom-generator/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	"github.com/johnquangdev/mom-generator/internal/usecase/mom"
	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
	"github.com/johnquangdev/mom-generator/pkg/ai"
	"github.com/johnquangdev/mom-generator/pkg/config"
	"github.com/johnquangdev/mom-generator/pkg/jwt"
	pkglogger "github.com/johnquangdev/mom-generator/pkg/logger"
	pkgvalidator "github.com/johnquangdev/mom-generator/pkg/validator"
)

// @title           MoM Generator API
// @version         1.0
// @description     Generates Minutes of Meeting from transcripts, agendas and attendance rosters

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	e.Use(httpmw.Global(cfg.Server, os.Stdout)...)

	log.Println("🔧 Initializing dependencies...")

	log.Println("📊 Registering metrics...")
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	log.Printf("🤖 Initializing %s generation backend...", cfg.Generation.Backend)
	backend, err := ai.NewGenerator(context.Background(), cfg.Generation, m)
	if err != nil {
		log.Fatalf("Failed to initialize generation backend: %v", err)
	}

	zoomCreds := entities.ZoomCredentials{
		ClientID:     cfg.Zoom.ClientID,
		ClientSecret: cfg.Zoom.ClientSecret,
		AccountID:    cfg.Zoom.AccountID,
	}
	momOpts := mom.Options{
		Generator:       mom.NewBoundedGenerator(backend),
		Deadline:        cfg.Generation.Timeout,
		ZoomCredentials: zoomCreds,
		Metrics:         m,
		Logger:          logger,
	}

	var zoomHandler *handler.Zoom
	if cfg.ZoomConfigured() {
		log.Println("🎥 Initializing Zoom client...")
		zoomClient := zoom.NewClient(zoom.Options{
			OAuthURL:   cfg.Zoom.OAuthURL,
			APIBaseURL: cfg.Zoom.APIBaseURL,
			Timeout:    cfg.Zoom.HTTPTimeout,
			Metrics:    m,
			Logger:     logger,
		})
		transcripts := transcript.NewService(zoomClient, logger)
		momOpts.Transcripts = transcripts
		zoomHandler = handler.NewZoomHandler(transcripts, zoomCreds, logger)
	} else {
		log.Println("⚠️  Zoom credentials missing, transcript retrieval disabled")
		zoomHandler = handler.NewZoomHandler(nil, zoomCreds, logger)
	}

	momHandler := handler.NewMoMHandler(mom.NewService(momOpts), logger)

	log.Println("🔐 Initializing identity providers...")
	identityHandler := handler.NewIdentityHandler(logger,
		oauth.NewTeamsProvider(cfg.Teams, m),
		oauth.NewGoogleProvider(cfg.Google, m),
	)

	var authMW echo.MiddlewareFunc
	if cfg.AuthEnabled() {
		log.Println("🔑 API token auth enabled")
		authMW = httpmw.EchoAuth(jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry))
	}

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, momHandler, zoomHandler, identityHandler, authMW, registry)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("server.starting",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.Duration("generation_timeout", cfg.Generation.Timeout),
			zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
