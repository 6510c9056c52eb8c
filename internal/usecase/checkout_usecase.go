package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart             = errors.New("cart has no items")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
)

// ICheckoutUseCase turns a persisted cart into a paid order: shipping quote,
// pricing breakdown, gateway charge, persisted Order.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, cartID string, addr entities.ShippingAddress, discountCode string, paymentPayload json.RawMessage) (entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
}

type CheckoutUseCase struct {
	carts      interfaces.ICartRepository
	orders     interfaces.IOrderRepository
	discounts  interfaces.IDiscountRepository
	rates      interfaces.IShippingRateClient
	gateway    interfaces.IPaymentGateway
	calculator *PricingCalculator
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	carts interfaces.ICartRepository,
	orders interfaces.IOrderRepository,
	discounts interfaces.IDiscountRepository,
	rates interfaces.IShippingRateClient,
	gateway interfaces.IPaymentGateway,
	calculator *PricingCalculator,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:      carts,
		orders:     orders,
		discounts:  discounts,
		rates:      rates,
		gateway:    gateway,
		calculator: calculator,
	}
}

// Checkout prices the cart exactly like the quote flow does, then charges
// the total through the payment gateway. A nil shipping quote does not block
// checkout; the order ships "calculated at checkout". Gateway failures
// propagate so the handler can tell the shopper the charge did not happen.
func (u *CheckoutUseCase) Checkout(ctx context.Context, cartID string, addr entities.ShippingAddress, discountCode string, paymentPayload json.RawMessage) (entities.Order, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Order{}, ErrInvalidCartID
	}
	if len(paymentPayload) > 0 && !json.Valid(paymentPayload) {
		return entities.Order{}, ErrInvalidPaymentPayload
	}

	cart, err := u.carts.GetByID(ctx, cartID)
	if err != nil {
		return entities.Order{}, err
	}
	if cart.ID == "" {
		return entities.Order{}, ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		return entities.Order{}, ErrEmptyCart
	}

	rateAddr := addr.Normalize()
	if err := u.calculator.ValidateShippingAddress(rateAddr); err != nil {
		return entities.Order{}, err
	}

	items := cart.PricingItems()
	subtotal, err := u.calculator.CalculateSubtotal(items)
	if err != nil {
		return entities.Order{}, err
	}

	var quote *entities.ShippingQuote
	if u.rates != nil {
		quote = u.rates.CalculateShipping(ctx, addr)
	}
	quote = applyFreeShipping(u.calculator, subtotal, quote)

	discountAmount, code, err := resolveDiscountAmount(ctx, u.discounts, discountCode, subtotal)
	if err != nil {
		return entities.Order{}, err
	}

	pricing, err := u.calculator.CalculateTotal(items, quote, discountAmount)
	if err != nil {
		return entities.Order{}, err
	}
	if pricing.Breakdown.Discount != nil {
		pricing.Breakdown.Discount.Code = code
	}

	orderID := uuid.NewString()
	order := entities.Order{
		ID:      orderID,
		CartID:  cart.ID,
		Status:  entities.OrderStatusPending,
		Pricing: pricing,
		Address: rateAddr,
		Date:    time.Now().UTC(),
	}

	if u.gateway != nil {
		providerID, providerStatus, providerResp, err := u.charge(ctx, orderID, pricing, paymentPayload)
		if err != nil {
			return entities.Order{}, err
		}
		order.Status = entities.OrderStatusPaid
		order.ProviderPaymentID = providerID
		order.ProviderStatus = providerStatus
		order.ProviderPayloadRaw = providerResp
	}

	return u.orders.Create(ctx, order)
}

func (u *CheckoutUseCase) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// charge enriches the caller payload before hitting the gateway. The source
// of truth for the amount is the computed pricing, never the client.
func (u *CheckoutUseCase) charge(ctx context.Context, orderID string, pricing entities.PricingResult, payload json.RawMessage) (string, string, json.RawMessage, error) {
	reqMap := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &reqMap); err != nil {
			return "", "", nil, ErrInvalidPaymentPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Framed print order %s", orderID)
	}
	reqMap["transaction_amount"] = pricing.Total

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", "", nil, err
	}
	return u.gateway.CreatePayment(ctx, enriched)
}
