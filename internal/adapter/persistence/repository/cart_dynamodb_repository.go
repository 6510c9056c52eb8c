package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartLineItem struct {
	ID       string `dynamodbav:"id"`
	SKU      string `dynamodbav:"sku"`
	Name     string `dynamodbav:"name,omitempty"`
	Category string `dynamodbav:"category,omitempty"`
	Price    string `dynamodbav:"price"`
	Quantity int    `dynamodbav:"quantity"`
}

type cartItem struct {
	ID        string         `dynamodbav:"id"`
	Items     []cartLineItem `dynamodbav:"items"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists Cart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Unit prices are stored as strings to keep the cent-exact values the
// pricing engine produced; DynamoDB numbers round-trip through floats.
type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Create(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return entities.Cart{}, err
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
		return entities.Cart{}, err
	}
	return c, nil
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) ReplaceItems(ctx context.Context, id string, items []entities.CartItem) (entities.Cart, error) {
	lines := make([]cartLineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, toCartLineItem(it))
	}
	list, err := attributevalue.MarshalList(lines)
	if err != nil {
		return entities.Cart{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #items = :items, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":items":      &types.AttributeValueMemberL{Value: list},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#items": "items", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cart{}, nil
		}
		return entities.Cart{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCartItem(c entities.Cart) cartItem {
	lines := make([]cartLineItem, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, toCartLineItem(it))
	}
	return cartItem{
		ID:        c.ID,
		Items:     lines,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toCartLineItem(it entities.CartItem) cartLineItem {
	return cartLineItem{
		ID:       it.ID,
		SKU:      it.SKU,
		Name:     it.Name,
		Category: it.Category,
		Price:    floatToString(it.Price),
		Quantity: it.Quantity,
	}
}

func fromCartItem(it cartItem) entities.Cart {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	items := make([]entities.CartItem, 0, len(it.Items))
	for _, line := range it.Items {
		price, _ := strconv.ParseFloat(line.Price, 64)
		items = append(items, entities.CartItem{
			ID:       line.ID,
			SKU:      line.SKU,
			Name:     line.Name,
			Category: line.Category,
			Price:    price,
			Quantity: line.Quantity,
		})
	}
	return entities.Cart{
		ID:        it.ID,
		Items:     items,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
