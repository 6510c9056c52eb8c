package entities

import "time"

// CartItem is one framed-print line kept in a persisted cart.
//
// SKU encodes the artwork + frame + size combination picked in the
// configurator; Price is the unit price at the time the line was added.
type CartItem struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name,omitempty"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is the shopping cart persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PricingItems maps the persisted lines onto the pricing engine's input.
func (c Cart) PricingItems() []PricingItem {
	items := make([]PricingItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, PricingItem{
			ID:       it.ID,
			SKU:      it.SKU,
			Price:    it.Price,
			Quantity: it.Quantity,
			Name:     it.Name,
			Category: it.Category,
		})
	}
	return items
}
