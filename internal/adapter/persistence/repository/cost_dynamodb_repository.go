package repository

import (
	"context"
	"strconv"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCostEntriesTableName     = "cost_entries"
	defaultCostComparisonsTableName = "cost_comparisons"
)

type costEntryItem struct {
	OrderID     string `dynamodbav:"order_id"`
	ID          string `dynamodbav:"id"`
	Category    string `dynamodbav:"category"`
	Description string `dynamodbav:"description,omitempty"`
	Amount      string `dynamodbav:"amount"`
	RecordedBy  string `dynamodbav:"recorded_by,omitempty"`
	RecordedAt  string `dynamodbav:"recorded_at"`
}

// CostEntryDynamoRepository persists CostEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: id (string)
//
// Entries are append-only; there is no update or delete path.

type CostEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostEntryRepository = (*CostEntryDynamoRepository)(nil)

func NewCostEntryDynamoRepository(ddb *dynamodb.Client) *CostEntryDynamoRepository {
	return &CostEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_ENTRIES_TABLE", defaultCostEntriesTableName),
	}
}

func (r *CostEntryDynamoRepository) Add(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error) {
	av, err := attributevalue.MarshalMap(toCostEntryItem(e))
	if err != nil {
		return entities.CostEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(order_id) AND attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CostEntry{}, err
	}
	return e, nil
}

func (r *CostEntryDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.CostEntry, error) {
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

	entries := make([]entities.CostEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromCostEntryItem(it))
	}
	return entries, nil
}

type costComparisonItem struct {
	OrderID            string  `dynamodbav:"order_id"`
	EstimateLabor      float64 `dynamodbav:"estimate_labor"`
	EstimateMaterials  float64 `dynamodbav:"estimate_materials"`
	EstimateEquipment  float64 `dynamodbav:"estimate_equipment"`
	EstimateTransport  float64 `dynamodbav:"estimate_transport"`
	EstimateOther      float64 `dynamodbav:"estimate_other"`
	TotalEstimated     string  `dynamodbav:"total_estimated"`
	TotalActual        string  `dynamodbav:"total_actual"`
	VariancePercentage string  `dynamodbav:"variance_percentage"`
	RealizedMargin     string  `dynamodbav:"realized_margin"`
	ComputedAt         string  `dynamodbav:"computed_at"`
}

// CostComparisonDynamoRepository persists the single derived comparison row
// per order.
//
// Table requirements:
//   - PK: order_id (string)

type CostComparisonDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostComparisonRepository = (*CostComparisonDynamoRepository)(nil)

func NewCostComparisonDynamoRepository(ddb *dynamodb.Client) *CostComparisonDynamoRepository {
	return &CostComparisonDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_COMPARISONS_TABLE", defaultCostComparisonsTableName),
	}
}

func (r *CostComparisonDynamoRepository) Upsert(ctx context.Context, c entities.CostComparison) (entities.CostComparison, error) {
	av, err := attributevalue.MarshalMap(toCostComparisonItem(c))
	if err != nil {
		return entities.CostComparison{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CostComparison{}, err
	}
	return c, nil
}

func (r *CostComparisonDynamoRepository) GetByOrder(ctx context.Context, orderID string) (entities.CostComparison, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostComparison{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostComparison{}, nil
	}

	var it costComparisonItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostComparison{}, err
	}
	return fromCostComparisonItem(it), nil
}

func toCostEntryItem(e entities.CostEntry) costEntryItem {
	return costEntryItem{
		OrderID:     e.OrderID,
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      floatToString(e.Amount),
		RecordedBy:  e.RecordedBy,
		RecordedAt:  e.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCostEntryItem(it costEntryItem) entities.CostEntry {
	recordedAt, _ := time.Parse(time.RFC3339Nano, it.RecordedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.CostEntry{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Category:    it.Category,
		Description: it.Description,
		Amount:      amount,
		RecordedBy:  it.RecordedBy,
		RecordedAt:  recordedAt,
	}
}

func toCostComparisonItem(c entities.CostComparison) costComparisonItem {
	return costComparisonItem{
		OrderID:            c.OrderID,
		EstimateLabor:      c.Estimated.Labor,
		EstimateMaterials:  c.Estimated.Materials,
		EstimateEquipment:  c.Estimated.Equipment,
		EstimateTransport:  c.Estimated.Transport,
		EstimateOther:      c.Estimated.Other,
		TotalEstimated:     floatToString(c.TotalEstimated),
		TotalActual:        floatToString(c.TotalActual),
		VariancePercentage: floatToString(c.VariancePercentage),
		RealizedMargin:     floatToString(c.RealizedMargin),
		ComputedAt:         c.ComputedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCostComparisonItem(it costComparisonItem) entities.CostComparison {
	computedAt, _ := time.Parse(time.RFC3339Nano, it.ComputedAt)
	totalEstimated, _ := strconv.ParseFloat(it.TotalEstimated, 64)
	totalActual, _ := strconv.ParseFloat(it.TotalActual, 64)
	variance, _ := strconv.ParseFloat(it.VariancePercentage, 64)
	margin, _ := strconv.ParseFloat(it.RealizedMargin, 64)
	return entities.CostComparison{
		OrderID: it.OrderID,
		Estimated: entities.EstimateBreakdown{
			Labor:     it.EstimateLabor,
			Materials: it.EstimateMaterials,
			Equipment: it.EstimateEquipment,
			Transport: it.EstimateTransport,
			Other:     it.EstimateOther,
		},
		TotalEstimated:     totalEstimated,
		TotalActual:        totalActual,
		VariancePercentage: variance,
		RealizedMargin:     margin,
		ComputedAt:         computedAt,
	}
}
