package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/daireto/phishing-url-detector/internal/config"
	"github.com/daireto/phishing-url-detector/internal/models"
	"github.com/daireto/phishing-url-detector/internal/tracing"
)

const StagesTableName = "phishguard-stages"

type StageRepository struct {
	ddb *dynamodb.DynamoDB
	mc  MetricsCollector
}

// NewStageRepository creates a new StageRepository with the given metrics collector
func NewStageRepository(cfg config.DynamoDBConfig, mc MetricsCollector) (*StageRepository, error) {
	ddb, err := NewDynamoDBClient(cfg)
	if err != nil {
		return nil, err
	}

	if mc == nil {
		mc = NoOpMetricsCollector{}
	}

	return &StageRepository{
		ddb: ddb,
		mc:  mc,
	}, nil
}

// CreateStages creates stages
func (s *StageRepository) CreateStages(ctx context.Context, stages ...*models.Stage) (err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "create_stages", StagesTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("create_stages", StagesTableName, start, err)
		span.Close(err)
	}()

	writeRequests := make([]*dynamodb.WriteRequest, 0, len(stages))

	for _, stage := range stages {
		// Convert domain model to entity
		entity := &StageEntity{}
		entity.FromModel(stage)

		item, err := dynamodbattribute.MarshalMap(entity)
		if err != nil {
			return err
		}

		writeRequests = append(writeRequests, &dynamodb.WriteRequest{
			PutRequest: &dynamodb.PutRequest{
				Item: item,
			},
		})
	}

	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]*dynamodb.WriteRequest{
			StagesTableName: writeRequests,
		},
	}

	_, err = s.ddb.BatchWriteItem(input)
	return err
}

// UpdateStageStatus updates stage status
func (s *StageRepository) UpdateStageStatus(ctx context.Context, scanId string, stageType models.StageType, status models.StageStatus) (err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "update_stage_status", StagesTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("update_stage_status", StagesTableName, start, err)
		span.Close(err)
	}()

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(StagesTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"scan_id": {
				S: aws.String(scanId),
			},
			"type": {
				S: aws.String(string(stageType)),
			},
		},
		UpdateExpression: aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]*string{
			"#status": aws.String("status"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":status": {
				S: aws.String(string(status)),
			},
		},
	}

	_, err = s.ddb.UpdateItem(input)
	return err
}

// GetStagesByScanId queries stages by scan ID
func (s *StageRepository) GetStagesByScanId(ctx context.Context, scanId string) (stages []models.Stage, err error) {
	start := time.Now()
	_, span := tracing.CreateDatabaseSpan(ctx, "query_stages_by_scan_id", StagesTableName)

	defer func() {
		s.mc.RecordDatabaseOperation("query_stages_by_scan_id", StagesTableName, start, err)
		span.Close(err)
	}()

	input := &dynamodb.QueryInput{
		TableName:              aws.String(StagesTableName),
		KeyConditionExpression: aws.String("scan_id = :scan_id"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":scan_id": {
				S: aws.String(scanId),
			},
		},
	}

	result, err := s.ddb.Query(input)
	if err != nil {
		return nil, err
	}

	stages = make([]models.Stage, 0, len(result.Items))
	for _, item := range result.Items {
		var entity StageEntity
		err = dynamodbattribute.UnmarshalMap(item, &entity)
		if err != nil {
			return nil, err
		}
		stages = append(stages, *entity.ToModel())
	}

	return stages, nil
}
