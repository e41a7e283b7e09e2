package kv

import (
	"context"
	"time"

	"liquidation_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "backoffice_kv"

// dynamoAPI is the part of *dynamodb.Client the store uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     []byte `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBStore persists values in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)

type DynamoDBStore struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoDBStore)(nil)

func NewDynamoDBStore(ddb dynamoAPI, tableName string) *DynamoDBStore {
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &DynamoDBStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoDBStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		// An unreadable item is the same as no item for the caller.
		return nil, false, nil
	}
	return it.Value, true, nil
}

func (s *DynamoDBStore) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
