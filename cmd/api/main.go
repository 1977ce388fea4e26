package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/daireto/phishing-url-detector/internal/api"
	"github.com/daireto/phishing-url-detector/internal/classifier"
	"github.com/daireto/phishing-url-detector/internal/config"
	"github.com/daireto/phishing-url-detector/internal/detector"
	"github.com/daireto/phishing-url-detector/internal/extractor"
	"github.com/daireto/phishing-url-detector/internal/i18n"
	"github.com/daireto/phishing-url-detector/internal/log"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/metrics"
	"github.com/daireto/phishing-url-detector/internal/repository"
	"github.com/daireto/phishing-url-detector/internal/tracing"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadAPI()

	// Setup logging
	logger := log.SetupFromEnv(cfg.Service.Name)
	logger.Info("Starting API service")

	// Setup tracing
	otelShutdown, err := tracing.SetupOTelSDK(ctx, cfg.Tracing)
	if err != nil {
		logger.Error("Failed to setup tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer otelShutdown(ctx)

	// Initialize dependencies
	deps, cleanup, err := initializeDependencies(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize dependencies", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	// Create API service
	apiService := api.NewAPI(
		deps.ScanRepo,
		deps.StageRepo,
		deps.MessageBus,
		deps.Predictor,
		deps.Bundle,
		deps.Metrics,
		logger,
	)

	// Start server in goroutine
	go func() {
		if err := apiService.Start(ctx, cfg); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("Shutting down API service", slog.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server gracefully", slog.Any("error", err))
	}

	logger.Info("API service stopped")
}

type dependencies struct {
	ScanRepo   *repository.ScanRepository
	StageRepo  *repository.StageRepository
	MessageBus *messagebus.MessageBus
	Predictor  *detector.Detector
	Bundle     *i18n.Bundle
	Metrics    *metrics.APIMetrics
	NC         *nats.Conn
}

func initializeDependencies(cfg *config.APIConfig, logger *slog.Logger) (*dependencies, func(), error) {
	// Initialize metrics
	m := metrics.NewAPIMetrics()
	m.MustRegisterAPI()
	m.SetServiceInfo(cfg.Service.Version, runtime.Version())

	// Start metrics server
	metricsServer := m.StartMetricsServer(cfg.Metrics.Port)

	// Load the classification model
	model, err := classifier.LoadMostRecent(cfg.Model.Dir)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded classification model",
		slog.String("model", model.Name),
		slog.Float64("threshold", model.Threshold))

	// Initialize DynamoDB client
	dynamodb, err := repository.NewDynamoDBClient(cfg.DynamoDB)
	if err != nil {
		return nil, nil, err
	}

	// Seed tables
	if err := repository.SeedTables(dynamodb, m); err != nil {
		return nil, nil, err
	}

	// Create repositories
	scanRepo, err := repository.NewScanRepository(cfg.DynamoDB, m)
	if err != nil {
		return nil, nil, err
	}

	stageRepo, err := repository.NewStageRepository(cfg.DynamoDB, m)
	if err != nil {
		return nil, nil, err
	}

	// Connect to NATS
	nc, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return nil, nil, err
	}

	// Create message bus
	mb := messagebus.New(nc, m)

	// Load locales
	bundle, err := i18n.NewBundle(
		i18n.WithDefaultLocale(cfg.Locale.Default),
		i18n.WithLogger(logger),
	)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	// Build the synchronous prediction pipeline
	tr := tracing.HTTPClientMiddleware()(http.DefaultTransport)
	ext := extractor.New(
		extractor.WithWhoisClient(extractor.NewWhoisClient(cfg.Whois.Timeout)),
		extractor.WithHTTPClient(extractor.NewPageClient(cfg.Client.Timeout, tr)),
		extractor.WithLogger(logger),
	)

	predictor := detector.NewDetector(
		model,
		scanRepo,
		stageRepo,
		mb,
		detector.WithExtractor(ext),
		detector.WithCache(cfg.Cache.Size, cfg.Cache.TTL),
		detector.WithLogger(logger),
	)

	deps := &dependencies{
		ScanRepo:   scanRepo,
		StageRepo:  stageRepo,
		MessageBus: mb,
		Predictor:  predictor,
		Bundle:     bundle,
		Metrics:    m,
		NC:         nc,
	}

	cleanup := func() {
		logger.Info("Cleaning up dependencies")

		// Shutdown metrics server
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown metrics server", slog.Any("error", err))
		}

		// Close NATS connection
		nc.Close()
	}

	return deps, cleanup, nil
}
