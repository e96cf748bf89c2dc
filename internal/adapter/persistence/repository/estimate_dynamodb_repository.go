package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	// counterID is the reserved row holding the last assigned estimate id.
	counterID = 0
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, opts ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// estimateItem keeps customer_info as JSON text so numbers and nested values
// come back exactly as they were saved.
type estimateItem struct {
	ID           int64  `dynamodbav:"id"`
	Content      string `dynamodbav:"content"`
	TotalPrice   int64  `dynamodbav:"total_price"`
	CustomerInfo string `dynamodbav:"customer_info,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Ids are integers taken from a counter row (id = 0) with an atomic ADD, so
// they stay compatible with the relational store's serial ids.

type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return newEstimateDynamoRepository(ddb, getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName))
}

func newEstimateDynamoRepository(ddb dynamoAPI, table string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: table}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("allocate estimate id: %w", err)
	}
	e.ID = id
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	item, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return entities.Estimate{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       numberKey(counterID),
		UpdateExpression:          aws.String("ADD #seq :one"),
		ExpressionAttributeNames:  map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter row has no numeric seq")
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Estimate, error) {
	if id == counterID {
		return entities.Estimate{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func numberKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	it := estimateItem{
		ID:         e.ID,
		Content:    e.Content,
		TotalPrice: e.TotalPrice,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(e.CustomerInfo) > 0 {
		b, err := json.Marshal(e.CustomerInfo)
		if err != nil {
			return estimateItem{}, fmt.Errorf("encode customer info: %w", err)
		}
		it.CustomerInfo = string(b)
	}
	return it, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	customer, err := entities.DecodeCustomerInfo([]byte(it.CustomerInfo))
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("decode customer info of estimate %d: %w", it.ID, err)
	}
	return entities.Estimate{
		ID:           it.ID,
		Content:      it.Content,
		TotalPrice:   it.TotalPrice,
		CustomerInfo: customer,
		CreatedAt:    createdAt,
	}, nil
}
