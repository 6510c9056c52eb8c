package request

import (
	"framecraft/internal/domain/entities"
)

// CartItemRequest is one line of a cart create/replace payload.
type CartItemRequest struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku" binding:"required"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required"`
}

// CartRequest carries the full set of lines; replacement is wholesale, the
// storefront owns the merge logic.
type CartRequest struct {
	Items []CartItemRequest `json:"items"`
}

func (r CartRequest) ResolveItems() []entities.CartItem {
	items := make([]entities.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.CartItem{
			ID:       it.ID,
			SKU:      it.SKU,
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return items
}
