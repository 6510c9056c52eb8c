package interfaces

import (
	"context"

	"framecraft/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for Cart.
type ICartRepository interface {
	Create(ctx context.Context, c entities.Cart) (entities.Cart, error)
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	ReplaceItems(ctx context.Context, id string, items []entities.CartItem) (entities.Cart, error)
	Delete(ctx context.Context, id string) error
}
