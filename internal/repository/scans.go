package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/daireto/phishing-url-detector/internal/config"
	"github.com/daireto/phishing-url-detector/internal/models"
	"github.com/daireto/phishing-url-detector/internal/tracing"
)

const ScansTableName = "phishguard-scans"

// scanPartitionKey is the fixed partition key shared by every scan item so
// the listing query can return scans sorted by their ULID range key.
const scanPartitionKey = "1000"

// ErrScanNotFound is returned when a scan does not exist.
var ErrScanNotFound = errors.New("scan not found")

type ScanRepository struct {
	ddb *dynamodb.DynamoDB
	mc  MetricsCollector
}

// NewScanRepository creates a new ScanRepository with the given metrics collector
func NewScanRepository(cfg config.DynamoDBConfig, mc MetricsCollector) (*ScanRepository, error) {
	ddb, err := NewDynamoDBClient(cfg)
	if err != nil {
		return nil, err
	}

	if mc == nil {
		mc = NoOpMetricsCollector{}
	}

	return &ScanRepository{
		ddb: ddb,
		mc:  mc,
	}, nil
}

// CreateScan creates a scan
func (s *ScanRepository) CreateScan(ctx context.Context, scan *models.Scan) (err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "create_scan", ScansTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("create_scan", ScansTableName, start, err)
		span.Close(err)
	}()

	// Convert domain model to entity
	entity := &ScanEntity{}
	entity.FromModel(scan)

	item, err := dynamodbattribute.MarshalMap(entity)
	if err != nil {
		return err
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(ScansTableName),
		Item:      item,
	}

	_, err = s.ddb.PutItem(input)
	return err
}

// GetScan retrieves a scan by ID
func (s *ScanRepository) GetScan(ctx context.Context, id string) (scan *models.Scan, err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "get_scan", ScansTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("get_scan", ScansTableName, start, err)
		span.Close(err)
	}()

	input := &dynamodb.GetItemInput{
		TableName: aws.String(ScansTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"partition_key": {
				S: aws.String(scanPartitionKey),
			},
			"id": {
				S: aws.String(id),
			},
		},
	}

	result, err := s.ddb.GetItem(input)
	if err != nil {
		return nil, err
	}

	if result.Item == nil {
		return nil, ErrScanNotFound
	}

	var entity ScanEntity
	err = dynamodbattribute.UnmarshalMap(result.Item, &entity)
	if err != nil {
		return nil, err
	}

	return entity.ToModel(), nil
}

// ListScans queries scans, newest first
func (s *ScanRepository) ListScans(ctx context.Context, limit int64) (scans []models.Scan, err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "list_scans", ScansTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("list_scans", ScansTableName, start, err)
		span.Close(err)
	}()

	input := &dynamodb.QueryInput{
		TableName:              aws.String(ScansTableName),
		KeyConditionExpression: aws.String("partition_key = :partition_key"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":partition_key": {
				S: aws.String(scanPartitionKey),
			},
		},
		// ULID range keys sort lexicographically by creation time, so a
		// backward scan yields newest first.
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int64(limit)
	}

	result, err := s.ddb.Query(input)
	if err != nil {
		return nil, err
	}

	scans = make([]models.Scan, 0, len(result.Items))
	for _, item := range result.Items {
		var entity ScanEntity
		err = dynamodbattribute.UnmarshalMap(item, &entity)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *entity.ToModel())
	}

	return scans, nil
}

// UpdateScanStatus updates scan status, stamping started_at when the scan
// moves to running
func (s *ScanRepository) UpdateScanStatus(ctx context.Context, id string, status models.ScanStatus) (err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "update_scan_status", ScansTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("update_scan_status", ScansTableName, start, err)
		span.Close(err)
	}()

	updateExpression := "SET #status = :status, updated_at = :updated_at"
	expressionAttributeValues := map[string]*dynamodb.AttributeValue{
		":status": {
			S: aws.String(string(status)),
		},
		":updated_at": {
			S: aws.String(time.Now().UTC().Format(time.RFC3339)),
		},
	}

	if status == models.ScanStatusRunning {
		updateExpression += ", started_at = :started_at"
		expressionAttributeValues[":started_at"] = &dynamodb.AttributeValue{
			S: aws.String(time.Now().UTC().Format(time.RFC3339)),
		}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(ScansTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"partition_key": {
				S: aws.String(scanPartitionKey),
			},
			"id": {
				S: aws.String(id),
			},
		},
		UpdateExpression: aws.String(updateExpression),
		ExpressionAttributeNames: map[string]*string{
			"#status": aws.String("status"),
		},
		ExpressionAttributeValues: expressionAttributeValues,
	}

	_, err = s.ddb.UpdateItem(input)
	return err
}

// CompleteScan marks a scan as completed and stores its prediction
func (s *ScanRepository) CompleteScan(ctx context.Context, id string, prediction *models.Prediction) (err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "complete_scan", ScansTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("complete_scan", ScansTableName, start, err)
		span.Close(err)
	}()

	entity := &PredictionEntity{}
	entity.FromModel(prediction)

	resultAttr, err := dynamodbattribute.Marshal(entity)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(ScansTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"partition_key": {
				S: aws.String(scanPartitionKey),
			},
			"id": {
				S: aws.String(id),
			},
		},
		UpdateExpression: aws.String("SET #status = :status, updated_at = :updated_at, completed_at = :completed_at, #result = :result"),
		ExpressionAttributeNames: map[string]*string{
			"#status": aws.String("status"),
			"#result": aws.String("result"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":status": {
				S: aws.String(string(models.ScanStatusCompleted)),
			},
			":updated_at": {
				S: aws.String(now),
			},
			":completed_at": {
				S: aws.String(now),
			},
			":result": resultAttr,
		},
	}

	_, err = s.ddb.UpdateItem(input)
	return err
}

// FailScan marks a scan as failed with an error message
func (s *ScanRepository) FailScan(ctx context.Context, id string, scanErr string) (err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "fail_scan", ScansTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("fail_scan", ScansTableName, start, err)
		span.Close(err)
	}()

	now := time.Now().UTC().Format(time.RFC3339)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(ScansTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"partition_key": {
				S: aws.String(scanPartitionKey),
			},
			"id": {
				S: aws.String(id),
			},
		},
		UpdateExpression: aws.String("SET #status = :status, updated_at = :updated_at, completed_at = :completed_at, #error = :error"),
		ExpressionAttributeNames: map[string]*string{
			"#status": aws.String("status"),
			"#error":  aws.String("error"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":status": {
				S: aws.String(string(models.ScanStatusFailed)),
			},
			":updated_at": {
				S: aws.String(now),
			},
			":completed_at": {
				S: aws.String(now),
			},
			":error": {
				S: aws.String(scanErr),
			},
		},
	}

	_, err = s.ddb.UpdateItem(input)
	return err
}
