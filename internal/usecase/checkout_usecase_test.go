package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"framecraft/internal/domain/entities"
	mock_interfaces "framecraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func checkoutAddress() entities.ShippingAddress {
	return entities.ShippingAddress{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address1:  "1 Analytical Way",
		City:      "San Francisco",
		State:     "CA",
		Zip:       "94107",
		Country:   "us",
	}
}

func storedCart() entities.Cart {
	return entities.Cart{
		ID: "cart-1",
		Items: []entities.CartItem{
			{ID: itemID1, SKU: "FRAME-16x20-OAK", Price: 39.99, Quantity: 2, Name: "Oak framed print 16x20"},
		},
	}
}

func TestCheckoutUseCase_Checkout_Validations(t *testing.T) {
	calc := NewPricingCalculator(nil, "")

	t.Run("empty cart id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, calc)
		_, err := uc.Checkout(context.Background(), "  ", checkoutAddress(), "", nil)
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("malformed payment payload", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, calc)
		_, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("cart not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCheckoutUseCase(carts, nil, nil, nil, nil, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(entities.Cart{}, nil)

		_, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "", nil)
		if !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCheckoutUseCase(carts, nil, nil, nil, nil, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(entities.Cart{ID: "cart-1"}, nil)

		_, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "", nil)
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("invalid address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCheckoutUseCase(carts, nil, nil, nil, nil, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(storedCart(), nil)

		addr := checkoutAddress()
		addr.Zip = ""
		_, err := uc.Checkout(context.Background(), "cart-1", addr, "", nil)
		var shipErr *ShippingError
		if !errors.As(err, &shipErr) {
			t.Fatalf("expected shipping error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Checkout(t *testing.T) {
	calc := NewPricingCalculator(nil, "")

	t.Run("without a gateway the order stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		rates := mock_interfaces.NewMockIShippingRateClient(ctrl)
		uc := NewCheckoutUseCase(carts, orders, nil, rates, nil, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(storedCart(), nil)
		rates.EXPECT().CalculateShipping(gomock.Any(), gomock.Any()).Return(&entities.ShippingQuote{
			Cost: 9.99, Currency: "USD", EstimatedDays: 5, Method: "Standard",
		})
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		got, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
		if got.CartID != "cart-1" || got.ID == "" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if got.Pricing.Total != 96.37 {
			t.Fatalf("expected total 96.37, got %v", got.Pricing.Total)
		}
		if got.Address.CountryCode != "US" {
			t.Fatalf("expected normalized country US, got %q", got.Address.CountryCode)
		}
	})

	t.Run("gateway charge marks the order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		rates := mock_interfaces.NewMockIShippingRateClient(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(carts, orders, nil, rates, gateway, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(storedCart(), nil)
		rates.EXPECT().CalculateShipping(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Errorf("gateway payload is not json: %v", err)
				}
				if req["transaction_amount"] != 86.38 {
					t.Errorf("amount must come from pricing, got %v", req["transaction_amount"])
				}
				if req["payment_method_id"] != "pix" {
					t.Errorf("caller fields must survive, got %v", req["payment_method_id"])
				}
				if req["external_reference"] == "" {
					t.Error("external_reference was not set")
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			})
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		got, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
		if got.ProviderPaymentID != "mp-1" || got.ProviderStatus != "approved" {
			t.Fatalf("unexpected provider fields: %+v", got)
		}
	})

	t.Run("gateway failure aborts without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(carts, orders, nil, nil, gateway, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(storedCart(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("card declined"))

		_, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "", nil)
		if err == nil || err.Error() != "card declined" {
			t.Fatalf("expected card declined, got %v", err)
		}
	})

	t.Run("discount code is applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		discounts := mock_interfaces.NewMockIDiscountRepository(ctrl)
		uc := NewCheckoutUseCase(carts, orders, discounts, nil, nil, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(storedCart(), nil)
		discounts.EXPECT().GetByCode(gomock.Any(), "SAVE10").Return(entities.Discount{
			Code: "SAVE10", Type: entities.DiscountTypeFixed, Value: 10, Active: true,
		}, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		got, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "save10", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Pricing.DiscountAmount != 10 {
			t.Fatalf("expected discount 10, got %v", got.Pricing.DiscountAmount)
		}
		if got.Pricing.Breakdown.Discount == nil || got.Pricing.Breakdown.Discount.Code != "SAVE10" {
			t.Fatalf("unexpected discount breakdown: %+v", got.Pricing.Breakdown.Discount)
		}
	})

	t.Run("invalid discount code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		discounts := mock_interfaces.NewMockIDiscountRepository(ctrl)
		uc := NewCheckoutUseCase(carts, nil, discounts, nil, nil, calc)

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(storedCart(), nil)
		discounts.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Discount{}, nil)

		_, err := uc.Checkout(context.Background(), "cart-1", checkoutAddress(), "NOPE", nil)
		if !errors.Is(err, ErrInvalidDiscountCode) {
			t.Fatalf("expected ErrInvalidDiscountCode, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetOrderByID(t *testing.T) {
	calc := NewPricingCalculator(nil, "")

	t.Run("empty id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, calc)
		if _, err := uc.GetOrderByID(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCheckoutUseCase(nil, orders, nil, nil, nil, calc)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		if _, err := uc.GetOrderByID(context.Background(), "order-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCheckoutUseCase(nil, orders, nil, nil, nil, calc)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		got, err := uc.GetOrderByID(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "order-1" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}
