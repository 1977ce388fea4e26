package repository

import (
	"time"

	"github.com/daireto/phishing-url-detector/internal/models"
)

// ScanEntity represents a scan as stored in DynamoDB
type ScanEntity struct {
	PartitionKey string            `dynamodbav:"partition_key"`
	ID           string            `dynamodbav:"id"`
	URL          string            `dynamodbav:"url"`
	Status       string            `dynamodbav:"status"`
	CreatedAt    time.Time         `dynamodbav:"created_at"`
	UpdatedAt    time.Time         `dynamodbav:"updated_at"`
	StartedAt    *time.Time        `dynamodbav:"started_at"`
	CompletedAt  *time.Time        `dynamodbav:"completed_at"`
	Error        string            `dynamodbav:"error"`
	Result       *PredictionEntity `dynamodbav:"result"`
}

// ToModel converts ScanEntity to domain model
func (e *ScanEntity) ToModel() *models.Scan {
	var result *models.Prediction
	if e.Result != nil {
		result = e.Result.ToModel()
	}

	return &models.Scan{
		ID:          e.ID,
		URL:         e.URL,
		Status:      models.ScanStatus(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		StartedAt:   e.StartedAt,
		CompletedAt: e.CompletedAt,
		Error:       e.Error,
		Result:      result,
	}
}

// FromModel converts domain model to ScanEntity
func (e *ScanEntity) FromModel(scan *models.Scan) {
	e.PartitionKey = "1000" // Fixed partition key
	e.ID = scan.ID
	e.URL = scan.URL
	e.Status = string(scan.Status)
	e.CreatedAt = scan.CreatedAt
	e.UpdatedAt = scan.UpdatedAt
	e.StartedAt = scan.StartedAt
	e.CompletedAt = scan.CompletedAt
	e.Error = scan.Error

	if scan.Result != nil {
		e.Result = &PredictionEntity{}
		e.Result.FromModel(scan.Result)
	}
}

// PredictionEntity represents a prediction result as stored in DynamoDB
type PredictionEntity struct {
	URL      string             `dynamodbav:"url"`
	Phishing bool               `dynamodbav:"phishing"`
	Score    float64            `dynamodbav:"score"`
	Features map[string]float64 `dynamodbav:"features"`
}

// ToModel converts PredictionEntity to domain model
func (e *PredictionEntity) ToModel() *models.Prediction {
	return &models.Prediction{
		URL:      e.URL,
		Phishing: e.Phishing,
		Score:    e.Score,
		Features: e.Features,
	}
}

// FromModel converts domain model to PredictionEntity
func (e *PredictionEntity) FromModel(prediction *models.Prediction) {
	e.URL = prediction.URL
	e.Phishing = prediction.Phishing
	e.Score = prediction.Score
	e.Features = prediction.Features
}

// StageEntity represents a scan stage as stored in DynamoDB
type StageEntity struct {
	ScanID string `dynamodbav:"scan_id"`
	Type   string `dynamodbav:"type"`
	Status string `dynamodbav:"status"`
}

// ToModel converts StageEntity to domain model
func (e *StageEntity) ToModel() *models.Stage {
	return &models.Stage{
		ScanID: e.ScanID,
		Type:   models.StageType(e.Type),
		Status: models.StageStatus(e.Status),
	}
}

// FromModel converts domain model to StageEntity
func (e *StageEntity) FromModel(stage *models.Stage) {
	e.ScanID = stage.ScanID
	e.Type = string(stage.Type)
	e.Status = string(stage.Status)
}
