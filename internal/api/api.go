package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/yousuf64/shift"

	"github.com/daireto/phishing-url-detector/internal/config"
	"github.com/daireto/phishing-url-detector/internal/i18n"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/metrics"
	"github.com/daireto/phishing-url-detector/internal/middleware"
	"github.com/daireto/phishing-url-detector/internal/models"
	"github.com/daireto/phishing-url-detector/internal/tracing"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks . ScanRepositoryInterface,StageRepositoryInterface,Predictor

// ScanRepositoryInterface is the scan persistence surface the API needs.
type ScanRepositoryInterface interface {
	CreateScan(ctx context.Context, scan *models.Scan) error
	GetScan(ctx context.Context, id string) (*models.Scan, error)
	ListScans(ctx context.Context, limit int64) ([]models.Scan, error)
}

// StageRepositoryInterface is the stage persistence surface the API needs.
type StageRepositoryInterface interface {
	CreateStages(ctx context.Context, stages ...*models.Stage) error
	GetStagesByScanId(ctx context.Context, scanId string) ([]models.Stage, error)
}

// Predictor classifies a URL synchronously.
type Predictor interface {
	Predict(ctx context.Context, rawURL string) (*models.Prediction, error)
}

// API handles the HTTP server and routes
type API struct {
	scanRepo  ScanRepositoryInterface
	stageRepo StageRepositoryInterface
	mb        messagebus.MessageBusInterface
	predictor Predictor
	bundle    *i18n.Bundle
	metrics   *metrics.APIMetrics
	log       *slog.Logger
	srv       *http.Server
}

// PredictRequest is the request body for the predict and scan endpoints
type PredictRequest struct {
	URL string `json:"url"`
}

// ScanResponse is the response body for the scan creation endpoint
type ScanResponse struct {
	Scan models.Scan `json:"scan"`
}

// NewAPI creates a new API with all dependencies
func NewAPI(
	scanRepo ScanRepositoryInterface,
	stageRepo StageRepositoryInterface,
	mb messagebus.MessageBusInterface,
	predictor Predictor,
	bundle *i18n.Bundle,
	metrics *metrics.APIMetrics,
	log *slog.Logger,
) *API {
	return &API{
		scanRepo:  scanRepo,
		stageRepo: stageRepo,
		mb:        mb,
		predictor: predictor,
		bundle:    bundle,
		metrics:   metrics,
		log:       log,
	}
}

// Start starts the HTTP server
func (a *API) Start(ctx context.Context, cfg *config.APIConfig) error {
	router := shift.New()
	router.Use(tracing.OtelMiddleware)
	router.Use(middleware.CORSMiddleware)
	if a.metrics != nil {
		router.Use(a.metrics.HTTPMiddleware)
	}
	router.Use(middleware.LanguageMiddleware(a.bundle))
	router.Use(middleware.ErrorMiddleware(a.log))

	// Register routes
	router.OPTIONS("/*wildcard", middleware.OptionsHandler)
	router.GET("/", a.handleIndex)
	router.GET("/health", a.handleHealth)
	router.POST("/predict", a.handlePredict)
	router.POST("/scans", a.handleCreateScan)
	router.GET("/scans", a.handleGetScans)
	router.GET("/scans/:scan_id", a.handleGetScan)
	router.GET("/scans/:scan_id/stages", a.handleGetStagesByScanID)

	addr := ":8080"
	if cfg != nil && cfg.HTTP.Addr != "" {
		addr = cfg.HTTP.Addr
	}

	a.srv = &http.Server{
		Addr:         addr,
		Handler:      router.Serve(),
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.log.Info("API server starting", slog.String("addr", addr))
	return a.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *API) Shutdown(ctx context.Context) error {
	a.log.Info("Shutting down API server")
	if a.srv != nil {
		return a.srv.Shutdown(ctx)
	}
	return nil
}
