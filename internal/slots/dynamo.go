package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// idIndexName is the GSI that maps a reservation id back to its (date, slot)
// key for cancellation.
const idIndexName = "id-index"

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(context.Context, *dynamodb.UpdateItemInput, ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type dynamoRecord struct {
	Date      string `dynamodbav:"date"`
	Slot      string `dynamodbav:"timeSlot"`
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	Memo      string `dynamodbav:"memo,omitempty"`
	CreatedAt string `dynamodbav:"createdAt"`
}

// DynamoStore persists reservations in a table keyed by (date, timeSlot).
type DynamoStore struct {
	client    dynamoAPI
	tableName string
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore builds a store backed by the provided DynamoDB client.
func NewDynamoStore(client dynamoAPI, tableName string) *DynamoStore {
	if client == nil {
		panic("slots: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("slots: table name cannot be empty")
	}
	return &DynamoStore{client: client, tableName: tableName}
}

// Insert performs a conditional put on the (date, timeSlot) key. A canceled
// row at the same key may be overwritten; a confirmed one conflicts.
func (s *DynamoStore) Insert(ctx context.Context, res *Reservation) error {
	now := time.Now().UTC()
	record := dynamoRecord{
		Date:      res.Date,
		Slot:      string(res.Slot),
		ID:        uuid.New().String(),
		Status:    string(StatusConfirmed),
		Memo:      res.Memo,
		CreatedAt: now.Format(time.RFC3339Nano),
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("slots: failed to marshal reservation: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#d) OR #s = :canceled"),
		ExpressionAttributeNames: map[string]string{
			"#d": "date",
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":canceled": &types.AttributeValueMemberS{Value: string(StatusCanceled)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrSlotConflict
		}
		return fmt.Errorf("slots: failed to persist reservation: %w", err)
	}

	res.ID = record.ID
	res.Status = StatusConfirmed
	res.CreatedAt = now
	return nil
}

// Cancel resolves the key through the id index, then flips the status with a
// condition so a concurrent cancel cannot double-apply.
func (s *DynamoStore) Cancel(ctx context.Context, id string) error {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(idIndexName),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("slots: failed to resolve reservation %s: %w", id, err)
	}
	if len(out.Items) == 0 {
		return ErrNotFound
	}

	var record dynamoRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &record); err != nil {
		return fmt.Errorf("slots: failed to decode reservation: %w", err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"date":     &types.AttributeValueMemberS{Value: record.Date},
			"timeSlot": &types.AttributeValueMemberS{Value: record.Slot},
		},
		UpdateExpression:    aws.String("SET #s = :canceled"),
		ConditionExpression: aws.String("#s = :confirmed AND id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":canceled":  &types.AttributeValueMemberS{Value: string(StatusCanceled)},
			":confirmed": &types.AttributeValueMemberS{Value: string(StatusConfirmed)},
			":id":        &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrNotFound
		}
		return fmt.Errorf("slots: failed to cancel reservation %s: %w", id, err)
	}
	return nil
}

// ConfirmedByDate queries the partition for one day's confirmed rows.
func (s *DynamoStore) ConfirmedByDate(ctx context.Context, date string) ([]Reservation, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#d = :date"),
		FilterExpression:       aws.String("#s = :confirmed"),
		ExpressionAttributeNames: map[string]string{
			"#d": "date",
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date":      &types.AttributeValueMemberS{Value: date},
			":confirmed": &types.AttributeValueMemberS{Value: string(StatusConfirmed)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("slots: failed to query date %s: %w", date, err)
	}
	return decodeRecords(out.Items)
}

// ListConfirmed scans for confirmed rows on or after fromDate.
func (s *DynamoStore) ListConfirmed(ctx context.Context, fromDate string) ([]Reservation, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("#s = :confirmed AND #d >= :from"),
		ExpressionAttributeNames: map[string]string{
			"#d": "date",
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":confirmed": &types.AttributeValueMemberS{Value: string(StatusConfirmed)},
			":from":      &types.AttributeValueMemberS{Value: fromDate},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("slots: failed to scan reservations: %w", err)
	}
	rows, err := decodeRecords(out.Items)
	if err != nil {
		return nil, err
	}
	sortReservations(rows)
	return rows, nil
}

func decodeRecords(items []map[string]types.AttributeValue) ([]Reservation, error) {
	var out []Reservation
	for _, item := range items {
		var record dynamoRecord
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			return nil, fmt.Errorf("slots: failed to decode reservation: %w", err)
		}
		created, _ := time.Parse(time.RFC3339Nano, record.CreatedAt)
		out = append(out, Reservation{
			ID:        record.ID,
			Date:      record.Date,
			Slot:      SlotID(record.Slot),
			Status:    Status(record.Status),
			Memo:      record.Memo,
			CreatedAt: created,
		})
	}
	return out, nil
}
