package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	detectorServiceName = "detector"
)

type DetectorMetricsInterface interface {
	MustRegisterDetector()
	RecordScanProcessed(success bool, duration float64)
	RecordStage(stageType string, success bool, duration float64)
	RecordWhoisLookup(success bool, duration float64)
	RecordHTTPClientRequest(statusCode int, duration float64, method, requestType string)
	RecordCacheLookup(hit bool)
}

type NoopDetectorMetrics struct{}

func NewNoopDetectorMetrics() DetectorMetricsInterface {
	return &NoopDetectorMetrics{}
}

func (n *NoopDetectorMetrics) MustRegisterDetector()                       {}
func (n *NoopDetectorMetrics) SetServiceInfo(version, goVersion string)    {}
func (n *NoopDetectorMetrics) StartMetricsServer(port string) *http.Server { return nil }
func (n *NoopDetectorMetrics) RecordScanProcessed(success bool, duration float64) {
}
func (n *NoopDetectorMetrics) RecordStage(stageType string, success bool, duration float64) {}
func (n *NoopDetectorMetrics) RecordWhoisLookup(success bool, duration float64) {
}
func (n *NoopDetectorMetrics) RecordHTTPClientRequest(statusCode int, duration float64, method, requestType string) {
}
func (n *NoopDetectorMetrics) RecordCacheLookup(hit bool) {}

type DetectorMetrics struct {
	*ServiceMetrics

	ScansProcessedTotal  *prometheus.CounterVec
	ScanDuration         *prometheus.HistogramVec
	StagesCompletedTotal *prometheus.CounterVec
	StageDuration        *prometheus.HistogramVec

	WhoisLookupsTotal   *prometheus.CounterVec
	WhoisLookupDuration *prometheus.HistogramVec

	HTTPClientRequestsTotal   *prometheus.CounterVec
	HTTPClientRequestDuration *prometheus.HistogramVec

	CacheLookupsTotal *prometheus.CounterVec
}

func NewDetectorMetrics() *DetectorMetrics {
	baseMetrics := NewServiceMetrics(detectorServiceName)

	detectorMetrics := &DetectorMetrics{
		ServiceMetrics: baseMetrics,

		ScansProcessedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "scans_processed_total",
				Help:        "Total number of scans processed",
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{LabelStatus},
		),

		ScanDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "scan_duration_seconds",
				Help:        "Total processing time per scan in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{},
		),

		StagesCompletedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "scan_stages_completed_total",
				Help:        "Total number of scan stages completed",
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{LabelStageType, LabelStatus},
		),

		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "scan_stage_duration_seconds",
				Help:        "Scan stage processing time in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{LabelStageType},
		),

		WhoisLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "whois_lookups_total",
				Help:        "Total number of WHOIS lookups",
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{"outcome"},
		),

		WhoisLookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "whois_lookup_duration_seconds",
				Help:        "WHOIS lookup time in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{"outcome"},
		),

		HTTPClientRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_client_requests_total",
				Help:        "Total number of outbound HTTP requests",
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{LabelStatus, LabelMethod, LabelRequestType},
		),

		HTTPClientRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_client_request_duration_seconds",
				Help:        "HTTP client request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{LabelMethod, LabelRequestType},
		),

		CacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "prediction_cache_lookups_total",
				Help:        "Total number of prediction cache lookups",
				ConstLabels: prometheus.Labels{LabelService: detectorServiceName},
			},
			[]string{"outcome"},
		),
	}

	return detectorMetrics
}

func (m *DetectorMetrics) MustRegisterDetector() {
	m.ServiceMetrics.MustRegister()

	prometheus.MustRegister(
		m.ScansProcessedTotal,
		m.ScanDuration,
		m.StagesCompletedTotal,
		m.StageDuration,
		m.WhoisLookupsTotal,
		m.WhoisLookupDuration,
		m.HTTPClientRequestsTotal,
		m.HTTPClientRequestDuration,
		m.CacheLookupsTotal,
	)
}

func (m *DetectorMetrics) RecordScanProcessed(success bool, duration float64) {
	status := "success"
	if !success {
		status = "error"
	}

	m.ScansProcessedTotal.WithLabelValues(status).Inc()
	m.ScanDuration.WithLabelValues().Observe(duration)
}

func (m *DetectorMetrics) RecordStage(stageType string, success bool, duration float64) {
	status := "success"
	if !success {
		status = "error"
	}
	m.StagesCompletedTotal.WithLabelValues(stageType, status).Inc()
	m.StageDuration.WithLabelValues(stageType).Observe(duration)
}

func (m *DetectorMetrics) RecordWhoisLookup(success bool, duration float64) {
	outcome := "success"
	if !success {
		outcome = "failed"
	}

	m.WhoisLookupsTotal.WithLabelValues(outcome).Inc()
	m.WhoisLookupDuration.WithLabelValues(outcome).Observe(duration)
}

func (m *DetectorMetrics) RecordHTTPClientRequest(status int, duration float64, method, requestType string) {
	m.HTTPClientRequestsTotal.WithLabelValues(strconv.Itoa(status), method, requestType).Inc()
	m.HTTPClientRequestDuration.WithLabelValues(method, requestType).Observe(duration)
}

func (m *DetectorMetrics) RecordCacheLookup(hit bool) {
	outcome := "hit"
	if !hit {
		outcome = "miss"
	}
	m.CacheLookupsTotal.WithLabelValues(outcome).Inc()
}
