package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/daireto/phishing-url-detector/internal/extractor"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/models"
)

// ProcessScanRequested handles incoming scan request messages
func (d *Detector) ProcessScanRequested(ctx context.Context, msg *nats.Msg) {
	var sm messagebus.ScanRequestedMessage
	if err := json.Unmarshal(msg.Data, &sm); err != nil {
		d.log.Error("Failed to unmarshal scan request",
			slog.Any("error", err),
			slog.String("data", string(msg.Data)))
		return
	}

	d.log.Info("Processing scan request", slog.String("scanId", sm.ScanID))

	start := time.Now()
	err := d.runScan(ctx, sm.ScanID)
	if err != nil {
		d.log.Error("Failed to process scan request",
			slog.String("scanId", sm.ScanID),
			slog.Any("error", err))
		d.metrics.RecordScanProcessed(false, time.Since(start).Seconds())
		return
	}

	elapsed := time.Since(start)
	d.log.Info("Completed scan request",
		slog.String("scanId", sm.ScanID),
		slog.Duration("processingTime", elapsed))

	d.metrics.RecordScanProcessed(true, elapsed.Seconds())
}

// runScan performs the complete detection workflow for a stored scan
func (d *Detector) runScan(ctx context.Context, scanID string) error {
	scan, err := d.scanRepo.GetScan(ctx, scanID)
	if err != nil {
		return fmt.Errorf("scan not found: %w", err)
	}

	d.log.Info("Starting scan",
		slog.String("scanId", scanID),
		slog.String("url", scan.URL))

	if err := d.updateScanStatus(ctx, scanID, models.ScanStatusRunning); err != nil {
		d.failScan(ctx, scanID, "failed to start scan")
		return fmt.Errorf("failed to update scan status: %w", err)
	}

	if prediction, ok := d.cache.Get(scan.URL); ok {
		d.metrics.RecordCacheLookup(true)
		d.log.Debug("Prediction cache hit", slog.String("url", scan.URL))
		d.skipAllStages(ctx, scanID)
		return d.completeScan(ctx, scanID, prediction)
	}
	d.metrics.RecordCacheLookup(false)

	u, err := url.Parse(scan.URL)
	if err != nil {
		d.failScan(ctx, scanID, "invalid URL")
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	features := make(extractor.Features, len(extractor.FeatureNames()))

	d.runStage(ctx, scanID, models.StageTypeExtractingLexical, func() {
		mergeFeatures(features, d.extractor.AddressBarFeatures(scan.URL, u))
	})

	d.runStage(ctx, scanID, models.StageTypeResolvingDomain, func() {
		mergeFeatures(features, d.extractor.DomainFeatures(ctx, u))
	})

	d.runStage(ctx, scanID, models.StageTypeFetchingContent, func() {
		mergeFeatures(features, d.extractor.ContentFeatures(ctx, scan.URL))
	})

	var prediction *models.Prediction
	d.runStage(ctx, scanID, models.StageTypeClassifying, func() {
		prediction = d.classify(scan.URL, features)
	})

	d.cache.Add(scan.URL, prediction)
	return d.completeScan(ctx, scanID, prediction)
}

// runStage executes a pipeline stage, tracking its status transitions.
// Stages degrade to pessimistic feature defaults instead of failing, so
// execution always completes.
func (d *Detector) runStage(ctx context.Context, scanID string, stageType models.StageType, fn func()) {
	start := time.Now()
	d.updateStageStatus(ctx, scanID, stageType, models.StageStatusRunning)

	fn()

	d.updateStageStatus(ctx, scanID, stageType, models.StageStatusCompleted)
	d.metrics.RecordStage(string(stageType), true, time.Since(start).Seconds())
}

// updateScanStatus updates scan status and publishes an update
func (d *Detector) updateScanStatus(ctx context.Context, scanID string, status models.ScanStatus) error {
	if err := d.scanRepo.UpdateScanStatus(ctx, scanID, status); err != nil {
		return err
	}

	return d.publisher.PublishScanUpdate(ctx, messagebus.ScanUpdateMessage{
		Type:   messagebus.ScanUpdateMessageType,
		ScanID: scanID,
		Status: string(status),
		Result: nil,
	})
}

// completeScan finalizes the scan with its prediction
func (d *Detector) completeScan(ctx context.Context, scanID string, prediction *models.Prediction) error {
	d.log.Info("Scan completed",
		slog.String("scanId", scanID),
		slog.String("url", prediction.URL),
		slog.Bool("phishing", prediction.Phishing),
		slog.Float64("score", prediction.Score))

	if err := d.scanRepo.CompleteScan(ctx, scanID, prediction); err != nil {
		return fmt.Errorf("failed to complete scan: %w", err)
	}

	return d.publisher.PublishScanUpdate(ctx, messagebus.ScanUpdateMessage{
		Type:   messagebus.ScanUpdateMessageType,
		ScanID: scanID,
		Status: string(models.ScanStatusCompleted),
		Result: prediction,
	})
}

// failScan marks the scan and every stage as failed
func (d *Detector) failScan(ctx context.Context, scanID, reason string) {
	if err := d.scanRepo.FailScan(ctx, scanID, reason); err != nil {
		d.log.Error("Failed to mark scan as failed",
			slog.String("scanId", scanID),
			slog.Any("error", err))
	}

	for _, stageType := range models.StageTypes() {
		d.updateStageStatus(ctx, scanID, stageType, models.StageStatusFailed)
	}

	if err := d.publisher.PublishScanUpdate(ctx, messagebus.ScanUpdateMessage{
		Type:   messagebus.ScanUpdateMessageType,
		ScanID: scanID,
		Status: string(models.ScanStatusFailed),
		Error:  reason,
	}); err != nil {
		d.log.Error("Failed to publish scan update",
			slog.String("scanId", scanID),
			slog.Any("error", err))
	}
}

// skipAllStages marks every stage as skipped, used on cache hits
func (d *Detector) skipAllStages(ctx context.Context, scanID string) {
	for _, stageType := range models.StageTypes() {
		d.updateStageStatus(ctx, scanID, stageType, models.StageStatusSkipped)
	}
}

// updateStageStatus updates stage status and publishes an update
func (d *Detector) updateStageStatus(ctx context.Context, scanID string, stageType models.StageType, status models.StageStatus) {
	if err := d.stageRepo.UpdateStageStatus(ctx, scanID, stageType, status); err != nil {
		d.log.Error("Failed to update stage status",
			slog.String("scanId", scanID),
			slog.String("stageType", string(stageType)),
			slog.String("status", string(status)),
			slog.Any("error", err))
	}

	if err := d.publisher.PublishStageUpdate(ctx, messagebus.StageUpdateMessage{
		Type:      messagebus.StageUpdateMessageType,
		ScanID:    scanID,
		StageType: string(stageType),
		Status:    string(status),
	}); err != nil {
		d.log.Error("Failed to publish stage update",
			slog.String("scanId", scanID),
			slog.String("stageType", string(stageType)),
			slog.String("status", string(status)),
			slog.Any("error", err))
	}
}

func mergeFeatures(dst, src extractor.Features) {
	for k, v := range src {
		dst[k] = v
	}
}
