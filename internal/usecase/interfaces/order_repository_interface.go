package interfaces

import (
	"context"

	"framecraft/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
