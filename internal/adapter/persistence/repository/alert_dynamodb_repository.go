package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAlertsTableName = "alerts"

type alertItem struct {
	OrderID    string `dynamodbav:"order_id"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	Type       string `dynamodbav:"type"`
	Priority   string `dynamodbav:"priority"`
	Title      string `dynamodbav:"title"`
	Message    string `dynamodbav:"message"`
	TargetUser string `dynamodbav:"target_user,omitempty"`
	Read       bool   `dynamodbav:"read"`
	Resolved   bool   `dynamodbav:"resolved"`
	ReadAt     string `dynamodbav:"read_at,omitempty"`
	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// AlertDynamoRepository persists Alert entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: sk (string)
//
// The open alert for an (order, type) pair always sits at SK "open#<type>",
// so the conditional put in CreateOpenIfAbsent is what enforces the one
// unresolved alert per pair invariant. Resolving moves the item to
// "resolved#<type>#<id>", freeing the open slot for a later recurrence.

type AlertDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAlertRepository = (*AlertDynamoRepository)(nil)

func NewAlertDynamoRepository(ddb *dynamodb.Client) *AlertDynamoRepository {
	return &AlertDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ALERTS_TABLE", defaultAlertsTableName),
	}
}

func openAlertSK(t entities.AlertType) string {
	return "open#" + string(t)
}

func resolvedAlertSK(t entities.AlertType, id string) string {
	return fmt.Sprintf("resolved#%s#%s", t, id)
}

func (r *AlertDynamoRepository) CreateOpenIfAbsent(ctx context.Context, a entities.Alert) (entities.Alert, bool, error) {
	it := toAlertItem(a)
	it.SK = openAlertSK(a.Type)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Alert{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(order_id) AND attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetOpen(ctx, a.OrderID, a.Type)
			if getErr != nil {
				return entities.Alert{}, false, getErr
			}
			return existing, false, nil
		}
		return entities.Alert{}, false, err
	}
	return a, true, nil
}

func (r *AlertDynamoRepository) GetOpen(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"sk":       &types.AttributeValueMemberS{Value: openAlertSK(t)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Alert{}, err
	}
	if len(out.Item) == 0 {
		return entities.Alert{}, nil
	}

	var it alertItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Alert{}, err
	}
	return fromAlertItem(it), nil
}

func (r *AlertDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.Alert, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	alerts := make([]entities.Alert, 0, len(out.Items))
	for _, raw := range out.Items {
		var it alertItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		alerts = append(alerts, fromAlertItem(it))
	}
	return alerts, nil
}

// MarkRead updates the open row only. Once an alert is resolved its row
// lives under the resolved SK range and keeps the read state it had at
// resolution time; read-marking does not reach into that range.
func (r *AlertDynamoRepository) MarkRead(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"sk":       &types.AttributeValueMemberS{Value: openAlertSK(t)},
		},
		ConditionExpression: aws.String("attribute_exists(order_id)"),
		UpdateExpression:    aws.String("SET #read = :read, #read_at = :read_at"),
		ExpressionAttributeNames: map[string]string{
			"#read":    "read",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read":    &types.AttributeValueMemberBOOL{Value: true},
			":read_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Alert{}, nil
		}
		return entities.Alert{}, err
	}

	var it alertItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Alert{}, err
	}
	return fromAlertItem(it), nil
}

// Resolve re-keys the open alert into its resolved slot. Delete and put run
// in one transaction so the open slot and the resolved copy can never both
// exist.
func (r *AlertDynamoRepository) Resolve(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error) {
	open, err := r.GetOpen(ctx, orderID, t)
	if err != nil {
		return entities.Alert{}, err
	}
	if open.ID == "" {
		return entities.Alert{}, nil
	}

	now := time.Now().UTC()
	open.Resolved = true
	open.ResolvedAt = &now

	resolved := toAlertItem(open)
	resolved.SK = resolvedAlertSK(t, open.ID)
	av, err := attributevalue.MarshalMap(resolved)
	if err != nil {
		return entities.Alert{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"order_id": &types.AttributeValueMemberS{Value: orderID},
						"sk":       &types.AttributeValueMemberS{Value: openAlertSK(t)},
					},
					ConditionExpression: aws.String("attribute_exists(order_id)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Alert{}, nil
		}
		return entities.Alert{}, err
	}
	return open, nil
}

func toAlertItem(a entities.Alert) alertItem {
	it := alertItem{
		OrderID:    a.OrderID,
		ID:         a.ID,
		Type:       string(a.Type),
		Priority:   string(a.Priority),
		Title:      a.Title,
		Message:    a.Message,
		TargetUser: a.TargetUser,
		Read:       a.Read,
		Resolved:   a.Resolved,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.ReadAt != nil {
		it.ReadAt = a.ReadAt.UTC().Format(time.RFC3339Nano)
	}
	if a.ResolvedAt != nil {
		it.ResolvedAt = a.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAlertItem(it alertItem) entities.Alert {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Alert{
		ID:         it.ID,
		OrderID:    it.OrderID,
		Type:       entities.AlertType(it.Type),
		Priority:   entities.AlertPriority(it.Priority),
		Title:      it.Title,
		Message:    it.Message,
		TargetUser: it.TargetUser,
		Read:       it.Read,
		Resolved:   it.Resolved,
		ReadAt:     parseOptionalTime(it.ReadAt),
		ResolvedAt: parseOptionalTime(it.ResolvedAt),
		CreatedAt:  createdAt,
	}
}
