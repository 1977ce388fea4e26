// Package detector runs the phishing detection pipeline: feature
// extraction, classification, persistence and progress updates.
package detector

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/oklog/ulid/v2"

	"github.com/daireto/phishing-url-detector/internal/classifier"
	"github.com/daireto/phishing-url-detector/internal/extractor"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/metrics"
	"github.com/daireto/phishing-url-detector/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_detector.go -package=mocks . ScanStore,StageStore

// ScanStore is the scan persistence surface the detector needs.
type ScanStore interface {
	CreateScan(ctx context.Context, scan *models.Scan) error
	GetScan(ctx context.Context, id string) (*models.Scan, error)
	UpdateScanStatus(ctx context.Context, id string, status models.ScanStatus) error
	CompleteScan(ctx context.Context, id string, prediction *models.Prediction) error
	FailScan(ctx context.Context, id string, scanErr string) error
}

// StageStore is the stage persistence surface the detector needs.
type StageStore interface {
	CreateStages(ctx context.Context, stages ...*models.Stage) error
	UpdateStageStatus(ctx context.Context, scanId string, stageType models.StageType, status models.StageStatus) error
}

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 10 * time.Minute
)

// Detector extracts features and classifies URLs with all dependencies consolidated
type Detector struct {
	model     *classifier.Model
	scanRepo  ScanStore
	stageRepo StageStore
	publisher messagebus.MessageBusInterface
	extractor *extractor.Extractor
	cache     *expirable.LRU[string, *models.Prediction]
	metrics   metrics.DetectorMetricsInterface
	log       *slog.Logger
}

// Option configures the Detector
type Option func(*Detector)

// WithExtractor sets the feature extractor
func WithExtractor(e *extractor.Extractor) Option {
	return func(d *Detector) {
		d.extractor = e
	}
}

// WithCache sets the prediction cache dimensions
func WithCache(size int, ttl time.Duration) Option {
	return func(d *Detector) {
		d.cache = expirable.NewLRU[string, *models.Prediction](size, nil, ttl)
	}
}

// WithMetrics sets the metrics collector
func WithMetrics(metrics metrics.DetectorMetricsInterface) Option {
	return func(d *Detector) {
		d.metrics = metrics
	}
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(d *Detector) {
		d.log = log
	}
}

// NewDetector creates a new detector with required dependencies and optional configurations
func NewDetector(
	model *classifier.Model,
	scanRepo ScanStore,
	stageRepo StageStore,
	publisher messagebus.MessageBusInterface,
	opts ...Option,
) *Detector {
	d := &Detector{
		model:     model,
		scanRepo:  scanRepo,
		stageRepo: stageRepo,
		publisher: publisher,
		extractor: extractor.New(),
		cache:     expirable.NewLRU[string, *models.Prediction](defaultCacheSize, nil, defaultCacheTTL),
		metrics:   metrics.NewNoopDetectorMetrics(),
		log:       slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Predict classifies a URL synchronously. Repeated lookups for the same
// URL are served from the prediction cache; fresh predictions are stored
// as completed scans and announced on the message bus.
func (d *Detector) Predict(ctx context.Context, rawURL string) (*models.Prediction, error) {
	if prediction, ok := d.cache.Get(rawURL); ok {
		d.metrics.RecordCacheLookup(true)
		d.log.Debug("Prediction cache hit", slog.String("url", rawURL))
		return prediction, nil
	}
	d.metrics.RecordCacheLookup(false)

	features, err := d.extractor.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	prediction := d.classify(rawURL, features)
	d.cache.Add(rawURL, prediction)

	if err := d.recordPrediction(ctx, prediction); err != nil {
		d.log.Error("Failed to record prediction",
			slog.String("url", rawURL),
			slog.Any("error", err))
	}

	return prediction, nil
}

// recordPrediction stores a synchronous prediction as a completed scan and
// publishes the matching scan update.
func (d *Detector) recordPrediction(ctx context.Context, prediction *models.Prediction) error {
	now := time.Now().UTC()
	scan := &models.Scan{
		ID:          ulid.Make().String(),
		URL:         prediction.URL,
		Status:      models.ScanStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		StartedAt:   &now,
		CompletedAt: &now,
		Result:      prediction,
	}

	if err := d.scanRepo.CreateScan(ctx, scan); err != nil {
		return err
	}

	return d.publisher.PublishScanUpdate(ctx, messagebus.ScanUpdateMessage{
		Type:   messagebus.ScanUpdateMessageType,
		ScanID: scan.ID,
		Status: string(models.ScanStatusCompleted),
		Result: prediction,
	})
}

// classify scores a feature vector and builds the prediction.
func (d *Detector) classify(rawURL string, features extractor.Features) *models.Prediction {
	phishing, score := d.model.Predict(features)
	return &models.Prediction{
		URL:      rawURL,
		Phishing: phishing,
		Score:    score,
		Features: features,
	}
}
