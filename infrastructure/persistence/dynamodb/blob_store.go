// Package dynamodb implements the blob store on a DynamoDB table using the
// single-table key layout BLOB#<key> / VALUE.
package dynamodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	pkgerrors "mindflow-backend/pkg/errors"
)

// BlobStore persists serialized collections as single DynamoDB items.
type BlobStore struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewBlobStore creates a DynamoDB-backed blob store.
func NewBlobStore(client *dynamodb.Client, tableName string, logger *zap.Logger) *BlobStore {
	return &BlobStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// blobItem is the DynamoDB representation of one stored value.
type blobItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Payload   string `dynamodbav:"Payload"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

func blobKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "BLOB#" + key},
		"SK": &types.AttributeValueMemberS{Value: "VALUE"},
	}
}

// Save serializes the value and writes it as one item.
func (s *BlobStore) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.NewPersistenceError(fmt.Sprintf("serializing %s", key), err)
	}

	item, err := attributevalue.MarshalMap(blobItem{
		PK:        "BLOB#" + key,
		SK:        "VALUE",
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return pkgerrors.NewPersistenceError(fmt.Sprintf("marshaling item for %s", key), err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		s.logger.Error("dynamodb put failed", zap.String("key", key), zap.Error(err))
		return pkgerrors.NewPersistenceError(fmt.Sprintf("writing %s", key), err)
	}
	return nil
}

// Load reads the item for the key and deserializes its payload into out.
func (s *BlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	output, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            blobKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, pkgerrors.NewPersistenceError(fmt.Sprintf("reading %s", key), err)
	}
	if output.Item == nil {
		return false, nil
	}

	var item blobItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return true, pkgerrors.NewPersistenceError(fmt.Sprintf("unmarshaling item for %s", key), err)
	}
	if err := json.Unmarshal([]byte(item.Payload), out); err != nil {
		return true, pkgerrors.NewPersistenceError(fmt.Sprintf("deserializing %s", key), err)
	}
	return true, nil
}

// Clear deletes the item for the key. Deleting an absent key is a no-op.
func (s *BlobStore) Clear(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       blobKey(key),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil
		}
		return pkgerrors.NewPersistenceError(fmt.Sprintf("clearing %s", key), err)
	}
	return nil
}

// Exists reports whether the key holds a value.
func (s *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	output, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(s.tableName),
		Key:                  blobKey(key),
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, pkgerrors.NewPersistenceError(fmt.Sprintf("checking %s", key), err)
	}
	return output.Item != nil, nil
}
