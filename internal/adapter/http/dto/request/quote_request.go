package request

import (
	"strings"

	"framecraft/internal/domain/entities"

	"github.com/google/uuid"
)

// QuoteItemRequest is one cart line as the storefront sends it. ID is
// optional; lines priced ad hoc (before the cart is persisted) get one
// assigned.
type QuoteItemRequest struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AddressRequest is the checkout address form.
type AddressRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

func (a AddressRequest) ToEntity() entities.ShippingAddress {
	return entities.ShippingAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
	}
}

// QuoteRequest asks for a full pricing breakdown. A missing items field is
// rejected; an empty list is a valid empty cart. Address is optional; no
// address simply means no shipping line in the result.
type QuoteRequest struct {
	Items        []QuoteItemRequest `json:"items"`
	Address      *AddressRequest    `json:"address"`
	DiscountCode string             `json:"discount_code"`
}

func (r QuoteRequest) HasItems() bool { return r.Items != nil }

func (r QuoteRequest) ResolveItems() []entities.PricingItem {
	items := make([]entities.PricingItem, 0, len(r.Items))
	for _, it := range r.Items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, entities.PricingItem{
			ID:       id,
			SKU:      it.SKU,
			Price:    it.Price,
			Quantity: it.Quantity,
			Name:     it.Name,
			Category: it.Category,
		})
	}
	return items
}

func (r QuoteRequest) ResolveAddress() *entities.ShippingAddress {
	if r.Address == nil {
		return nil
	}
	addr := r.Address.ToEntity()
	return &addr
}
