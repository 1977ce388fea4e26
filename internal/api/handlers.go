package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/yousuf64/shift"

	"github.com/daireto/phishing-url-detector/internal/i18n"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/middleware"
	"github.com/daireto/phishing-url-detector/internal/models"
	"github.com/daireto/phishing-url-detector/internal/repository"
)

// handleHealth handles the health endpoint
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	t := i18n.FromContext(r.Context())
	return writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": t.T("health.ok"),
	})
}

// handlePredict classifies a URL synchronously and returns the prediction
func (a *API) handlePredict(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	ctx := r.Context()
	start := time.Now()

	var success, phishing bool
	defer func() {
		if a.metrics != nil {
			a.metrics.RecordPrediction(success, phishing, time.Since(start))
		}
	}()

	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.NewValidationError("%s", i18n.FromContext(ctx).T("errors.url_required"))
	}

	// Validate and normalize the URL
	validatedURL, err := validateURL(i18n.FromContext(ctx), req.URL)
	if err != nil {
		return err
	}

	a.log.Info("Predicting URL", slog.String("url", validatedURL))

	prediction, err := a.predictor.Predict(ctx, validatedURL)
	if err != nil {
		return errors.Join(err, errors.New("failed to predict"))
	}

	a.log.Info("Prediction served",
		slog.String("url", validatedURL),
		slog.Bool("phishing", prediction.Phishing),
		slog.Float64("score", prediction.Score),
		slog.Duration("duration", time.Since(start)))

	success = true
	phishing = prediction.Phishing
	return writeJSON(w, http.StatusOK, prediction)
}

// handleCreateScan stores a scan and queues it for asynchronous processing
func (a *API) handleCreateScan(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	ctx := r.Context()
	start := time.Now()

	var success bool
	defer func() {
		if a.metrics != nil {
			a.metrics.RecordScanCreation(success, time.Since(start))
		}
	}()

	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return middleware.NewValidationError("%s", i18n.FromContext(ctx).T("errors.url_required"))
	}

	// Validate and normalize the URL
	validatedURL, err := validateURL(i18n.FromContext(ctx), req.URL)
	if err != nil {
		return err
	}

	scanID := generateID()
	a.log.Info("Creating new scan",
		slog.String("scanId", scanID),
		slog.String("url", validatedURL))

	scan := &models.Scan{
		ID:        scanID,
		URL:       validatedURL,
		Status:    models.ScanStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := a.scanRepo.CreateScan(ctx, scan); err != nil {
		return errors.Join(err, errors.New("failed to create scan"))
	}

	defaultStages := getDefaultStages(scanID)
	if err := a.stageRepo.CreateStages(ctx, defaultStages...); err != nil {
		return errors.Join(err, errors.New("failed to create stages"))
	}

	if err := a.mb.PublishScanRequested(ctx, messagebus.ScanRequestedMessage{
		Type:   messagebus.ScanRequestedMessageType,
		ScanID: scanID,
	}); err != nil {
		return errors.Join(err, errors.New("failed to publish scan request"))
	}

	a.log.Info("Scan request published",
		slog.String("scanId", scanID),
		slog.String("url", validatedURL),
		slog.Duration("duration", time.Since(start)))

	success = true
	return writeJSON(w, http.StatusAccepted, ScanResponse{Scan: *scan})
}

// handleGetScans handles the scan listing endpoint
func (a *API) handleGetScans(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	ctx := r.Context()

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return middleware.NewValidationError("limit must be a non-negative integer")
		}
		limit = parsed
	}

	scans, err := a.scanRepo.ListScans(ctx, limit)
	if err != nil {
		return errors.Join(err, errors.New("failed to get scans"))
	}

	return writeJSON(w, http.StatusOK, scans)
}

// handleGetScan handles the get scan by ID endpoint
func (a *API) handleGetScan(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	ctx := r.Context()
	scanID := route.Params.Get("scan_id")

	scan, err := a.scanRepo.GetScan(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrScanNotFound) {
			return middleware.NotFoundError("%s", i18n.FromContext(ctx).T("errors.scan_not_found"))
		}
		return errors.Join(err, errors.New("failed to get scan"))
	}

	return writeJSON(w, http.StatusOK, scan)
}

// handleGetStagesByScanID handles the get stages by scan ID endpoint
func (a *API) handleGetStagesByScanID(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	ctx := r.Context()
	scanID := route.Params.Get("scan_id")

	stages, err := a.stageRepo.GetStagesByScanId(ctx, scanID)
	if err != nil {
		return errors.Join(err, errors.New("failed to get stages"))
	}

	return writeJSON(w, http.StatusOK, stages)
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}
