package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daireto/phishing-url-detector/internal/classifier"
	"github.com/daireto/phishing-url-detector/internal/extractor"
	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/mocks"
	"github.com/daireto/phishing-url-detector/internal/models"
)

// testModel weighs the unregistered-domain signal heavily so verdicts in
// tests are deterministic: the default WHOIS client resolves nothing.
func testModel() *classifier.Model {
	return &classifier.Model{
		Name:      "test-model",
		Bias:      -1,
		Weights:   map[string]float64{extractor.FeatureNoDNSRecord: 3.0},
		Threshold: 0.5,
	}
}

// setupDetector creates a detector with mocked stores and message bus.
func setupDetector(t *testing.T) (*Detector, *mocks.MockScanStore, *mocks.MockStageStore, *mocks.MockMessageBusInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockScanStore := mocks.NewMockScanStore(ctrl)
	mockStageStore := mocks.NewMockStageStore(ctrl)
	mockMessageBus := mocks.NewMockMessageBusInterface(ctrl)

	d := NewDetector(testModel(), mockScanStore, mockStageStore, mockMessageBus)

	return d, mockScanStore, mockStageStore, mockMessageBus, ctrl
}

// servePage starts a test server returning a benign HTML page.
func servePage(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>hello</p></body></html>`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDetector_Predict(t *testing.T) {
	d, mockScanStore, _, mockMessageBus, ctrl := setupDetector(t)
	defer ctrl.Finish()

	srv := servePage(t)

	var recorded *models.Scan
	mockScanStore.EXPECT().
		CreateScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, scan *models.Scan) error {
			recorded = scan
			return nil
		})
	mockMessageBus.EXPECT().PublishScanUpdate(gomock.Any(), gomock.Any()).Return(nil)

	prediction, err := d.Predict(context.Background(), srv.URL)
	require.NoError(t, err, "Prediction should succeed")

	assert.Equal(t, srv.URL, prediction.URL, "Prediction echoes the URL")
	assert.True(t, prediction.Phishing, "An unresolvable domain should flag as phishing")
	assert.Greater(t, prediction.Score, 0.5)
	assert.Len(t, prediction.Features, len(extractor.FeatureNames()), "The vector should be complete")

	require.NotNil(t, recorded, "The prediction should be stored as a scan")
	assert.Equal(t, models.ScanStatusCompleted, recorded.Status, "Synchronous predictions store completed scans")
	assert.NotNil(t, recorded.Result, "The stored scan carries the prediction")
	assert.NotEmpty(t, recorded.ID)
}

func TestDetector_Predict_CacheHit(t *testing.T) {
	d, mockScanStore, _, mockMessageBus, ctrl := setupDetector(t)
	defer ctrl.Finish()

	srv := servePage(t)

	// A single persistence round trip despite two predictions.
	mockScanStore.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockMessageBus.EXPECT().PublishScanUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := d.Predict(context.Background(), srv.URL)
	require.NoError(t, err)

	second, err := d.Predict(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Same(t, first, second, "The second prediction should come from the cache")
}

func TestDetector_Predict_UnparsableURL(t *testing.T) {
	d, _, _, _, ctrl := setupDetector(t)
	defer ctrl.Finish()

	_, err := d.Predict(context.Background(), "http://[::1")
	assert.Error(t, err, "An unparsable URL should fail extraction")
}

func TestDetector_Predict_SurvivesPersistenceFailure(t *testing.T) {
	d, mockScanStore, _, _, ctrl := setupDetector(t)
	defer ctrl.Finish()

	srv := servePage(t)

	mockScanStore.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Return(assert.AnError)

	prediction, err := d.Predict(context.Background(), srv.URL)
	require.NoError(t, err, "A storage failure should not lose the prediction")
	assert.NotNil(t, prediction)
}

func scanRequest(t *testing.T, scanID string) *nats.Msg {
	t.Helper()
	data, err := json.Marshal(messagebus.ScanRequestedMessage{
		Type:   messagebus.ScanRequestedMessageType,
		ScanID: scanID,
	})
	require.NoError(t, err)
	return &nats.Msg{Subject: string(messagebus.ScanRequestedMessageType), Data: data}
}

func TestDetector_ProcessScanRequested_FullPipeline(t *testing.T) {
	d, mockScanStore, mockStageStore, mockMessageBus, ctrl := setupDetector(t)
	defer ctrl.Finish()

	srv := servePage(t)

	scanID := "scan-pipeline"
	scan := &models.Scan{
		ID:     scanID,
		URL:    srv.URL,
		Status: models.ScanStatusPending,
	}

	mockScanStore.EXPECT().GetScan(gomock.Any(), scanID).Return(scan, nil)
	mockScanStore.EXPECT().UpdateScanStatus(gomock.Any(), scanID, models.ScanStatusRunning).Return(nil)

	// Each of the four stages transitions running then completed.
	mockStageStore.EXPECT().
		UpdateStageStatus(gomock.Any(), scanID, gomock.Any(), models.StageStatusRunning).
		Return(nil).Times(4)
	mockStageStore.EXPECT().
		UpdateStageStatus(gomock.Any(), scanID, gomock.Any(), models.StageStatusCompleted).
		Return(nil).Times(4)
	mockMessageBus.EXPECT().PublishStageUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(8)

	var result *models.Prediction
	mockScanStore.EXPECT().
		CompleteScan(gomock.Any(), scanID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string, prediction *models.Prediction) error {
			result = prediction
			return nil
		})

	// One update for the running transition, one for completion.
	mockMessageBus.EXPECT().PublishScanUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	d.ProcessScanRequested(context.Background(), scanRequest(t, scanID))

	require.NotNil(t, result, "The pipeline should produce a prediction")
	assert.Equal(t, srv.URL, result.URL)
	assert.Len(t, result.Features, len(extractor.FeatureNames()), "Every stage should contribute its features")
}

func TestDetector_ProcessScanRequested_CacheHitSkipsStages(t *testing.T) {
	d, mockScanStore, mockStageStore, mockMessageBus, ctrl := setupDetector(t)
	defer ctrl.Finish()

	scanID := "scan-cached"
	cachedURL := "http://cached.example.com"
	cached := &models.Prediction{URL: cachedURL, Phishing: true, Score: 0.9}
	d.cache.Add(cachedURL, cached)

	scan := &models.Scan{ID: scanID, URL: cachedURL, Status: models.ScanStatusPending}

	mockScanStore.EXPECT().GetScan(gomock.Any(), scanID).Return(scan, nil)
	mockScanStore.EXPECT().UpdateScanStatus(gomock.Any(), scanID, models.ScanStatusRunning).Return(nil)

	mockStageStore.EXPECT().
		UpdateStageStatus(gomock.Any(), scanID, gomock.Any(), models.StageStatusSkipped).
		Return(nil).Times(4)
	mockMessageBus.EXPECT().PublishStageUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	mockScanStore.EXPECT().CompleteScan(gomock.Any(), scanID, cached).Return(nil)
	mockMessageBus.EXPECT().PublishScanUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	d.ProcessScanRequested(context.Background(), scanRequest(t, scanID))
}

func TestDetector_ProcessScanRequested_ScanNotFound(t *testing.T) {
	d, mockScanStore, _, _, ctrl := setupDetector(t)
	defer ctrl.Finish()

	mockScanStore.EXPECT().GetScan(gomock.Any(), "missing").Return(nil, assert.AnError)

	// Nothing else should be touched when the scan cannot be loaded.
	d.ProcessScanRequested(context.Background(), scanRequest(t, "missing"))
}

func TestDetector_ProcessScanRequested_InvalidStoredURL(t *testing.T) {
	d, mockScanStore, mockStageStore, mockMessageBus, ctrl := setupDetector(t)
	defer ctrl.Finish()

	scanID := "scan-bad-url"
	scan := &models.Scan{ID: scanID, URL: "http://[::1", Status: models.ScanStatusPending}

	mockScanStore.EXPECT().GetScan(gomock.Any(), scanID).Return(scan, nil)
	mockScanStore.EXPECT().UpdateScanStatus(gomock.Any(), scanID, models.ScanStatusRunning).Return(nil)
	mockScanStore.EXPECT().FailScan(gomock.Any(), scanID, "invalid URL").Return(nil)

	mockStageStore.EXPECT().
		UpdateStageStatus(gomock.Any(), scanID, gomock.Any(), models.StageStatusFailed).
		Return(nil).Times(4)
	mockMessageBus.EXPECT().PublishStageUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	// One update for the running transition, one for the failure.
	mockMessageBus.EXPECT().PublishScanUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	d.ProcessScanRequested(context.Background(), scanRequest(t, scanID))
}

func TestDetector_ProcessScanRequested_MalformedMessage(t *testing.T) {
	d, _, _, _, ctrl := setupDetector(t)
	defer ctrl.Finish()

	msg := &nats.Msg{Subject: "scan.requested", Data: []byte("not json")}
	d.ProcessScanRequested(context.Background(), msg)
}

func TestDetector_CacheExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScanStore := mocks.NewMockScanStore(ctrl)
	mockStageStore := mocks.NewMockStageStore(ctrl)
	mockMessageBus := mocks.NewMockMessageBusInterface(ctrl)

	d := NewDetector(testModel(), mockScanStore, mockStageStore, mockMessageBus,
		WithCache(8, 50*time.Millisecond))

	srv := servePage(t)

	// Two round trips: the entry expires between predictions.
	mockScanStore.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockMessageBus.EXPECT().PublishScanUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := d.Predict(context.Background(), srv.URL)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = d.Predict(context.Background(), srv.URL)
	require.NoError(t, err)
}
