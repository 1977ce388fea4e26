package models

import (
	"time"
)

// Scan represents a URL scan domain model
type Scan struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	Status      ScanStatus  `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	StartedAt   *time.Time  `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at"`
	Error       string      `json:"error,omitempty"`
	Result      *Prediction `json:"result"`
}

// ScanStatus represents the overall status of a scan
type ScanStatus string

const (
	ScanStatusPending   ScanStatus = "pending"
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// Prediction represents the outcome of classifying a URL
type Prediction struct {
	URL      string             `json:"url"`
	Phishing bool               `json:"phishing"`
	Score    float64            `json:"score"`
	Features map[string]float64 `json:"features"`
}

// Stage represents an individual pipeline stage within a scan
type Stage struct {
	ScanID string      `json:"scan_id"`
	Type   StageType   `json:"type"`
	Status StageStatus `json:"status"`
}

// StageType represents different stages of the detection pipeline
type StageType string

const (
	StageTypeExtractingLexical StageType = "extracting_lexical"
	StageTypeResolvingDomain   StageType = "resolving_domain"
	StageTypeFetchingContent   StageType = "fetching_content"
	StageTypeClassifying       StageType = "classifying"
)

// StageStatus represents the status of a stage
type StageStatus string

const (
	StageStatusPending   StageStatus = "pending"
	StageStatusRunning   StageStatus = "running"
	StageStatusCompleted StageStatus = "completed"
	StageStatusFailed    StageStatus = "failed"
	StageStatusSkipped   StageStatus = "skipped"
)

// StageTypes lists every pipeline stage in execution order.
func StageTypes() []StageType {
	return []StageType{
		StageTypeExtractingLexical,
		StageTypeResolvingDomain,
		StageTypeFetchingContent,
		StageTypeClassifying,
	}
}
