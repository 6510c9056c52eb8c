package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDiscountsTableName = "discounts"

type discountItem struct {
	Code      string `dynamodbav:"code"`
	Type      string `dynamodbav:"type"`
	Value     string `dynamodbav:"value"`
	Active    bool   `dynamodbav:"active"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
}

// DiscountDynamoRepository persists promo codes in DynamoDB.
//
// Table requirements:
//   - PK: code (string, uppercase)
type DiscountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiscountRepository = (*DiscountDynamoRepository)(nil)

func NewDiscountDynamoRepository(ddb *dynamodb.Client) *DiscountDynamoRepository {
	return &DiscountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNTS_TABLE", defaultDiscountsTableName),
	}
}

func (r *DiscountDynamoRepository) Create(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Discount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: strings.ToUpper(strings.TrimSpace(code))},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Item) == 0 {
		return entities.Discount{}, nil
	}

	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

func toDiscountItem(d entities.Discount) discountItem {
	it := discountItem{
		Code:   d.Code,
		Type:   string(d.Type),
		Value:  floatToString(d.Value),
		Active: d.Active,
	}
	if d.ExpiresAt != nil {
		it.ExpiresAt = d.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDiscountItem(it discountItem) entities.Discount {
	value, _ := strconv.ParseFloat(it.Value, 64)
	d := entities.Discount{
		Code:   it.Code,
		Type:   entities.DiscountType(it.Type),
		Value:  value,
		Active: it.Active,
	}
	if it.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			d.ExpiresAt = &t
		}
	}
	return d
}
