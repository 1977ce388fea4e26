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

	"github.com/daireto/phishing-url-detector/internal/classifier"
	"github.com/daireto/phishing-url-detector/internal/config"
	"github.com/daireto/phishing-url-detector/internal/detector"
	"github.com/daireto/phishing-url-detector/internal/extractor"
	"github.com/daireto/phishing-url-detector/internal/log"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/metrics"
	"github.com/daireto/phishing-url-detector/internal/repository"
	"github.com/daireto/phishing-url-detector/internal/tracing"
)

func main() {
	cfg := config.LoadDetector()
	log := log.SetupFromEnv(cfg.Service.Name)

	log.Info("Starting detector service", slog.String("version", cfg.Service.Version))

	ctx := context.Background()
	shutdown, err := tracing.SetupOTelSDK(ctx, cfg.Tracing)
	if err != nil {
		log.Error("Failed to setup tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdown(ctx)

	deps, cleanup, err := initializeDependencies(cfg, log)
	if err != nil {
		log.Error("Failed to initialize dependencies", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	dtctr := detector.NewDetector(
		deps.Model,
		deps.ScanRepo,
		deps.StageRepo,
		deps.MessageBus,
		detector.WithExtractor(deps.Extractor),
		detector.WithCache(cfg.Cache.Size, cfg.Cache.TTL),
		detector.WithMetrics(deps.Metrics),
		detector.WithLogger(log),
	)

	sub, err := deps.MessageBus.SubscribeToScanRequested(dtctr.ProcessScanRequested)
	if err != nil {
		log.Error("Failed to subscribe to scan requests", slog.Any("error", err))
		os.Exit(1)
	}
	defer sub.Unsubscribe()

	log.Info("Detector service is running")

	waitForShutdown(log)
}

type dependencies struct {
	Model      *classifier.Model
	ScanRepo   *repository.ScanRepository
	StageRepo  *repository.StageRepository
	MessageBus *messagebus.MessageBus
	Extractor  *extractor.Extractor
	Metrics    metrics.DetectorMetricsInterface
}

// initializeDependencies initializes individual dependencies
func initializeDependencies(cfg *config.DetectorConfig, log *slog.Logger) (*dependencies, func(), error) {
	// Initialize metrics
	m := metrics.NewDetectorMetrics()
	m.MustRegisterDetector()
	m.SetServiceInfo(cfg.Service.Version, runtime.Version())

	// Start metrics server
	srv := m.StartMetricsServer(cfg.Metrics.Port)

	// Load the classification model
	model, err := classifier.LoadMostRecent(cfg.Model.Dir)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Loaded classification model",
		slog.String("model", model.Name),
		slog.Float64("threshold", model.Threshold))

	// Initialize database
	ddc, err := repository.NewDynamoDBClient(cfg.DynamoDB)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.SeedTables(ddc, m); err != nil {
		return nil, nil, err
	}

	scans, err := repository.NewScanRepository(cfg.DynamoDB, m)
	if err != nil {
		return nil, nil, err
	}

	stages, err := repository.NewStageRepository(cfg.DynamoDB, m)
	if err != nil {
		return nil, nil, err
	}

	// Initialize HTTP client with tracing
	tr := tracing.HTTPClientMiddleware()(http.DefaultTransport)

	ext := extractor.New(
		extractor.WithWhoisClient(extractor.NewWhoisClient(cfg.Whois.Timeout)),
		extractor.WithHTTPClient(extractor.NewPageClient(cfg.Client.Timeout, tr)),
		extractor.WithMetrics(m),
		extractor.WithLogger(log),
	)

	// Initialize NATS connection
	nc, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return nil, nil, err
	}

	bus := messagebus.New(nc, m)

	deps := &dependencies{
		Model:      model,
		ScanRepo:   scans,
		StageRepo:  stages,
		MessageBus: bus,
		Extractor:  ext,
		Metrics:    m,
	}

	cleanup := func() {
		nc.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if srv != nil {
			srv.Shutdown(ctx)
		}
	}

	return deps, cleanup, nil
}

// waitForShutdown waits for a shutdown signal
func waitForShutdown(log *slog.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch

	log.Info("Shutting down detector service", slog.String("signal", sig.String()))
}
