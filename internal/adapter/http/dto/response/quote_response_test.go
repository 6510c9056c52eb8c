package response

import (
	"testing"
	"time"

	"framecraft/internal/domain/entities"
)

func TestFromPricingResult(t *testing.T) {
	r := entities.PricingResult{
		Subtotal:       79.98,
		TaxAmount:      6.40,
		ShippingAmount: 9.99,
		DiscountAmount: 10,
		Total:          86.37,
		ItemCount:      2,
		Currency:       "USD",
		Breakdown: entities.PricingBreakdown{
			Items:    []entities.LineBreakdown{{SKU: "FRAME-16x20-OAK", Quantity: 2, Total: 79.98}},
			Shipping: &entities.ShippingBreakdown{Cost: 9.99, Method: "Standard"},
			Discount: &entities.DiscountBreakdown{Code: "SAVE10", Amount: 10},
		},
	}

	got := FromPricingResult(r)
	if got.Total != 86.37 || got.Currency != "USD" || got.ItemCount != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.Breakdown.Items) != 1 || got.Breakdown.Items[0].SKU != "FRAME-16x20-OAK" {
		t.Fatalf("unexpected breakdown: %+v", got.Breakdown)
	}
	if got.Breakdown.Discount == nil || got.Breakdown.Discount.Code != "SAVE10" {
		t.Fatalf("unexpected discount: %+v", got.Breakdown.Discount)
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:                "order-1",
		CartID:            "cart-1",
		Status:            entities.OrderStatusPaid,
		Date:              now,
		Pricing:           entities.PricingResult{Total: 96.37, Currency: "USD"},
		Address:           entities.RateAddress{CountryCode: "US", PostalCode: "94107"},
		ProviderPaymentID: "mp-1",
		ProviderStatus:    "approved",
	}

	got := FromOrder(o)
	if got.ID != "order-1" || got.Status != "paid" || !got.Date.Equal(now) {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Pricing.Total != 96.37 || got.Address.CountryCode != "US" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.ProviderPaymentID != "mp-1" || got.ProviderStatus != "approved" {
		t.Fatalf("unexpected provider fields: %+v", got)
	}
}
