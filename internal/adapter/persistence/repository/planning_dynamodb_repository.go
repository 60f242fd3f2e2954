package repository

import (
	"context"
	"errors"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultPlanningsTableName = "plannings"

type planningItem struct {
	OrderID   string `dynamodbav:"order_id"`
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PlanningDynamoRepository persists Planning draft records in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// Using order_id as PK guarantees one planning record per order; the
// conditional put in CreateIfAbsent makes draft provisioning idempotent.

type PlanningDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanningRepository = (*PlanningDynamoRepository)(nil)

func NewPlanningDynamoRepository(ddb *dynamodb.Client) *PlanningDynamoRepository {
	return &PlanningDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANNINGS_TABLE", defaultPlanningsTableName),
	}
}

func (r *PlanningDynamoRepository) CreateIfAbsent(ctx context.Context, orderID string) (entities.Planning, bool, error) {
	p := entities.Planning{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Status:    entities.PlanningStatusDraft,
		CreatedAt: time.Now().UTC(),
	}
	av, err := attributevalue.MarshalMap(toPlanningItem(p))
	if err != nil {
		return entities.Planning{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(order_id)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByOrder(ctx, orderID)
			if getErr != nil {
				return entities.Planning{}, false, getErr
			}
			return existing, false, nil
		}
		return entities.Planning{}, false, err
	}
	return p, true, nil
}

func (r *PlanningDynamoRepository) GetByOrder(ctx context.Context, orderID string) (entities.Planning, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Planning{}, err
	}
	if len(out.Item) == 0 {
		return entities.Planning{}, nil
	}

	var it planningItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Planning{}, err
	}
	return fromPlanningItem(it), nil
}

func toPlanningItem(p entities.Planning) planningItem {
	return planningItem{
		OrderID:   p.OrderID,
		ID:        p.ID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPlanningItem(it planningItem) entities.Planning {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Planning{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Status:    entities.PlanningStatus(it.Status),
		CreatedAt: createdAt,
	}
}
