package repository

import (
	"context"
	"encoding/json"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID     string `dynamodbav:"id"`
	CartID string `dynamodbav:"cart_id"`
	Status string `dynamodbav:"status"`
	Date   string `dynamodbav:"date"`

	// Pricing is the serialized PricingResult. It is audit data, never
	// recalculated from storage, so JSON keeps it exactly as computed.
	Pricing string `dynamodbav:"pricing"`

	CountryCode   string `dynamodbav:"country_code"`
	StateOrCounty string `dynamodbav:"state_or_county,omitempty"`
	PostalCode    string `dynamodbav:"postal_code,omitempty"`
	City          string `dynamodbav:"city,omitempty"`

	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
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
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) (orderItem, error) {
	pricing, err := json.Marshal(o.Pricing)
	if err != nil {
		return orderItem{}, err
	}
	return orderItem{
		ID:                 o.ID,
		CartID:             o.CartID,
		Status:             string(o.Status),
		Date:               o.Date.UTC().Format(time.RFC3339Nano),
		Pricing:            string(pricing),
		CountryCode:        o.Address.CountryCode,
		StateOrCounty:      o.Address.StateOrCounty,
		PostalCode:         o.Address.PostalCode,
		City:               o.Address.City,
		ProviderPaymentID:  o.ProviderPaymentID,
		ProviderStatus:     o.ProviderStatus,
		ProviderPayloadRaw: string(o.ProviderPayloadRaw),
	}, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)

	var pricing entities.PricingResult
	if it.Pricing != "" {
		if err := json.Unmarshal([]byte(it.Pricing), &pricing); err != nil {
			return entities.Order{}, err
		}
	}

	o := entities.Order{
		ID:      it.ID,
		CartID:  it.CartID,
		Status:  entities.OrderStatus(it.Status),
		Date:    date,
		Pricing: pricing,
		Address: entities.RateAddress{
			CountryCode:   it.CountryCode,
			StateOrCounty: it.StateOrCounty,
			PostalCode:    it.PostalCode,
			City:          it.City,
		},
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
	if it.ProviderPayloadRaw != "" {
		o.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return o, nil
}
