package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	apiServiceName = "api"
)

type APIMetrics struct {
	*ServiceMetrics

	PredictionsTotal     *prometheus.CounterVec
	PredictionDuration   *prometheus.HistogramVec
	ScansCreatedTotal    *prometheus.CounterVec
	ScanCreationDuration *prometheus.HistogramVec
}

func NewAPIMetrics() *APIMetrics {
	baseMetrics := NewServiceMetrics(apiServiceName)

	apiMetrics := &APIMetrics{
		ServiceMetrics: baseMetrics,

		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "predictions_total",
				Help:        "Total number of synchronous predictions served",
				ConstLabels: prometheus.Labels{LabelService: apiServiceName},
			},
			[]string{LabelStatus, "verdict"},
		),

		PredictionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "prediction_duration_seconds",
				Help:        "Time taken to serve a prediction in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{LabelService: apiServiceName},
			},
			[]string{},
		),

		ScansCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "scans_created_total",
				Help:        "Total number of scans created",
				ConstLabels: prometheus.Labels{LabelService: apiServiceName},
			},
			[]string{LabelStatus},
		),

		ScanCreationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "scan_creation_duration_seconds",
				Help:        "Time taken to create a scan in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{LabelService: apiServiceName},
			},
			[]string{},
		),
	}

	return apiMetrics
}

func (m *APIMetrics) MustRegisterAPI() {
	m.ServiceMetrics.MustRegister()

	prometheus.MustRegister(
		m.PredictionsTotal,
		m.PredictionDuration,
		m.ScansCreatedTotal,
		m.ScanCreationDuration,
	)
}

func (m *APIMetrics) RecordPrediction(success, phishing bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	verdict := "legitimate"
	if phishing {
		verdict = "phishing"
	}
	m.PredictionsTotal.WithLabelValues(status, verdict).Inc()
	m.PredictionDuration.WithLabelValues().Observe(duration.Seconds())
}

func (m *APIMetrics) RecordScanCreation(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	m.ScansCreatedTotal.WithLabelValues(status).Inc()
	m.ScanCreationDuration.WithLabelValues().Observe(duration.Seconds())
}
