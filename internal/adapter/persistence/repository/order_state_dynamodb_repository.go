package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName      = "orders"
	defaultTransitionsTableName = "order_transitions"
	defaultCountersTableName    = "counters"
	ordersCurrentStepIndex      = "current_step-index"
	orderNumberCounterName      = "order-number"
)

type orderItem struct {
	ID                   string  `dynamodbav:"id"`
	Number               string  `dynamodbav:"number"`
	CurrentStep          string  `dynamodbav:"current_step"`
	CoarseStatus         string  `dynamodbav:"coarse_status"`
	Version              int64   `dynamodbav:"version"`
	ClientName           string  `dynamodbav:"client_name"`
	Description          string  `dynamodbav:"description,omitempty"`
	Priority             string  `dynamodbav:"priority"`
	AssignedTechnicianID string  `dynamodbav:"assigned_technician_id,omitempty"`
	EstimateLabor        float64 `dynamodbav:"estimate_labor"`
	EstimateMaterials    float64 `dynamodbav:"estimate_materials"`
	EstimateEquipment    float64 `dynamodbav:"estimate_equipment"`
	EstimateTransport    float64 `dynamodbav:"estimate_transport"`
	EstimateOther        float64 `dynamodbav:"estimate_other"`
	ScheduledStart       string  `dynamodbav:"scheduled_start,omitempty"`
	ScheduledEnd         string  `dynamodbav:"scheduled_end,omitempty"`
	CompletedAt          string  `dynamodbav:"completed_at,omitempty"`
	CreatedAt            string  `dynamodbav:"created_at"`
	UpdatedAt            string  `dynamodbav:"updated_at"`
}

type transitionItem struct {
	OrderID  string            `dynamodbav:"order_id"`
	Seq      int64             `dynamodbav:"seq"`
	ID       string            `dynamodbav:"id"`
	FromStep string            `dynamodbav:"from_step,omitempty"`
	ToStep   string            `dynamodbav:"to_step"`
	ActorID  string            `dynamodbav:"actor_id,omitempty"`
	Note     string            `dynamodbav:"note,omitempty"`
	Metadata map[string]string `dynamodbav:"metadata,omitempty"`
	At       string            `dynamodbav:"at"`
}

// OrderStateDynamoRepository persists Order entities and their transition
// ledger in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string), GSI current_step-index (PK: current_step,
//     SK: updated_at)
//   - order_transitions: PK order_id (string), SK seq (number)
//   - counters: PK name (string)
//
// The order row and its ledger record are written in one TransactWriteItems
// call so a transition can never land without its history entry.

type OrderStateDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	transitionsTable string
	countersTable    string
}

var _ interfaces.IOrderStateRepository = (*OrderStateDynamoRepository)(nil)

func NewOrderStateDynamoRepository(ddb *dynamodb.Client) *OrderStateDynamoRepository {
	return &OrderStateDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		transitionsTable: getenvDefault("TRANSITIONS_TABLE", defaultTransitionsTableName),
		countersTable:    getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *OrderStateDynamoRepository) NextNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderNumberCounterName},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("order number counter returned no sequence")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *OrderStateDynamoRepository) Create(ctx context.Context, o entities.Order, initial entities.TransitionRecord) (entities.Order, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	recordAV, err := attributevalue.MarshalMap(toTransitionItem(initial))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.transitionsTable),
					Item:      recordAV,
					ConditionExpression: aws.String(
						"attribute_not_exists(order_id) AND attribute_not_exists(#seq)",
					),
					ExpressionAttributeNames: map[string]string{
						"#seq": "seq",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderStateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// ApplyTransition moves the order and appends the ledger record in a single
// transaction. The update is conditioned on the expected version and source
// step, so a concurrent writer makes the whole transaction fail with
// ErrVersionConflict instead of silently winning.
func (r *OrderStateDynamoRepository) ApplyTransition(ctx context.Context, w interfaces.TransitionWrite) (entities.Order, error) {
	recordAV, err := attributevalue.MarshalMap(toTransitionItem(w.Record))
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr := "SET #current_step = :to, #coarse_status = :coarse, #version = :newv, #updated_at = :updated_at"
	names := map[string]string{
		"#current_step":  "current_step",
		"#coarse_status": "coarse_status",
		"#version":       "version",
		"#updated_at":    "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(w.ToStep)},
		":coarse":     &types.AttributeValueMemberS{Value: string(w.CoarseStatus)},
		":newv":       &types.AttributeValueMemberN{Value: strconv.FormatInt(w.ExpectedVersion+1, 10)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(w.ExpectedVersion, 10)},
		":from":       &types.AttributeValueMemberS{Value: string(w.FromStep)},
	}
	if w.CompletedAt != nil {
		updateExpr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: w.CompletedAt.UTC().Format(time.RFC3339Nano)}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: w.OrderID},
					},
					ConditionExpression:       aws.String("#version = :expected AND #current_step = :from"),
					UpdateExpression:          aws.String(updateExpr),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.transitionsTable),
					Item:      recordAV,
					ConditionExpression: aws.String(
						"attribute_not_exists(order_id) AND attribute_not_exists(#seq)",
					),
					ExpressionAttributeNames: map[string]string{
						"#seq": "seq",
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}

	return r.GetByID(ctx, w.OrderID)
}

func (r *OrderStateDynamoRepository) ListHistory(ctx context.Context, orderID string) ([]entities.TransitionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.transitionsTable),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.TransitionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transitionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromTransitionItem(it))
	}
	return records, nil
}

func (r *OrderStateDynamoRepository) ListByStepOlderThan(ctx context.Context, step lifecycle.Step, cutoff time.Time) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCurrentStepIndex),
		KeyConditionExpression: aws.String("current_step = :step AND updated_at < :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":step":   &types.AttributeValueMemberS{Value: string(step)},
			":cutoff": &types.AttributeValueMemberS{Value: cutoff.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

// isConditionalCancellation reports whether a TransactWriteItems failure was
// caused by a condition check, as opposed to a throttling or validation
// error.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                   o.ID,
		Number:               o.Number,
		CurrentStep:          string(o.CurrentStep),
		CoarseStatus:         string(o.CoarseStatus),
		Version:              o.Version,
		ClientName:           o.ClientName,
		Description:          o.Description,
		Priority:             string(o.Priority),
		AssignedTechnicianID: o.AssignedTechnicianID,
		EstimateLabor:        o.Estimate.Labor,
		EstimateMaterials:    o.Estimate.Materials,
		EstimateEquipment:    o.Estimate.Equipment,
		EstimateTransport:    o.Estimate.Transport,
		EstimateOther:        o.Estimate.Other,
		CreatedAt:            o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.ScheduledStart != nil {
		it.ScheduledStart = o.ScheduledStart.UTC().Format(time.RFC3339Nano)
	}
	if o.ScheduledEnd != nil {
		it.ScheduledEnd = o.ScheduledEnd.UTC().Format(time.RFC3339Nano)
	}
	if o.CompletedAt != nil {
		it.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.Order{
		ID:                   it.ID,
		Number:               it.Number,
		CurrentStep:          lifecycle.Step(it.CurrentStep),
		CoarseStatus:         lifecycle.CoarseStatus(it.CoarseStatus),
		Version:              it.Version,
		ClientName:           it.ClientName,
		Description:          it.Description,
		Priority:             entities.Priority(it.Priority),
		AssignedTechnicianID: it.AssignedTechnicianID,
		Estimate: entities.EstimateBreakdown{
			Labor:     it.EstimateLabor,
			Materials: it.EstimateMaterials,
			Equipment: it.EstimateEquipment,
			Transport: it.EstimateTransport,
			Other:     it.EstimateOther,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	o.ScheduledStart = parseOptionalTime(it.ScheduledStart)
	o.ScheduledEnd = parseOptionalTime(it.ScheduledEnd)
	o.CompletedAt = parseOptionalTime(it.CompletedAt)
	return o
}

func toTransitionItem(r entities.TransitionRecord) transitionItem {
	return transitionItem{
		OrderID:  r.OrderID,
		Seq:      r.Seq,
		ID:       r.ID,
		FromStep: string(r.FromStep),
		ToStep:   string(r.ToStep),
		ActorID:  r.ActorID,
		Note:     r.Note,
		Metadata: r.Metadata,
		At:       r.At.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransitionItem(it transitionItem) entities.TransitionRecord {
	at, _ := time.Parse(time.RFC3339Nano, it.At)
	return entities.TransitionRecord{
		ID:       it.ID,
		OrderID:  it.OrderID,
		Seq:      it.Seq,
		FromStep: lifecycle.Step(it.FromStep),
		ToStep:   lifecycle.Step(it.ToStep),
		ActorID:  it.ActorID,
		Note:     it.Note,
		Metadata: it.Metadata,
		At:       at,
	}
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
