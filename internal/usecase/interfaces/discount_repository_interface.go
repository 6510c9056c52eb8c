package interfaces

import (
	"context"

	"framecraft/internal/domain/entities"
)

// IDiscountRepository abstracts DynamoDB persistence for promo codes.
//
// GetByCode returns a zero-value Discount (empty Code) when the code does
// not exist; "unknown code" is not an error at this layer.
type IDiscountRepository interface {
	Create(ctx context.Context, d entities.Discount) (entities.Discount, error)
	GetByCode(ctx context.Context, code string) (entities.Discount, error)
}
