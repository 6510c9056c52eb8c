package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"
)

var (
	ErrInvalidDiscountCode = errors.New("invalid or expired discount code")
)

// IQuoteUseCase prices a cart the way the storefront renders it: items plus
// an optional shipping address plus an optional promo code in, a full
// PricingResult out.
type IQuoteUseCase interface {
	PriceCart(ctx context.Context, items []entities.PricingItem, addr *entities.ShippingAddress, discountCode string) (entities.PricingResult, error)
}

type QuoteUseCase struct {
	calculator *PricingCalculator
	rates      interfaces.IShippingRateClient
	discounts  interfaces.IDiscountRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(calculator *PricingCalculator, rates interfaces.IShippingRateClient, discounts interfaces.IDiscountRepository) *QuoteUseCase {
	return &QuoteUseCase{calculator: calculator, rates: rates, discounts: discounts}
}

// PriceCart obtains a shipping quote when an address is given (a nil quote
// is fine; the UI shows "calculated at checkout"), resolves the promo code
// against the subtotal, and hands everything to the pricing engine.
func (u *QuoteUseCase) PriceCart(ctx context.Context, items []entities.PricingItem, addr *entities.ShippingAddress, discountCode string) (entities.PricingResult, error) {
	subtotal, err := u.calculator.CalculateSubtotal(items)
	if err != nil {
		return entities.PricingResult{}, err
	}

	var quote *entities.ShippingQuote
	if addr != nil && u.rates != nil {
		quote = u.rates.CalculateShipping(ctx, *addr)
	}
	quote = applyFreeShipping(u.calculator, subtotal, quote)

	discountAmount, code, err := resolveDiscountAmount(ctx, u.discounts, discountCode, subtotal)
	if err != nil {
		return entities.PricingResult{}, err
	}

	result, err := u.calculator.CalculateTotal(ensureItems(items), quote, discountAmount)
	if err != nil {
		return entities.PricingResult{}, err
	}
	if result.Breakdown.Discount != nil {
		result.Breakdown.Discount.Code = code
	}
	return result, nil
}

// ensureItems keeps "no items supplied" representable for the engine while
// letting callers of this usecase treat nil as an empty cart.
func ensureItems(items []entities.PricingItem) []entities.PricingItem {
	if items == nil {
		return []entities.PricingItem{}
	}
	return items
}

// applyFreeShipping zeroes the quoted cost once the subtotal clears the
// threshold. The rate endpoint doesn't know the cart, so the policy lives
// here.
func applyFreeShipping(calc *PricingCalculator, subtotal float64, quote *entities.ShippingQuote) *entities.ShippingQuote {
	if quote == nil || !calc.QualifiesForFreeShipping(subtotal, 0) {
		return quote
	}
	free := *quote
	free.Cost = 0
	free.Method = "Free Shipping"
	return &free
}

// resolveDiscountAmount turns a promo code into a concrete amount against
// the subtotal. An empty code means no discount; an unknown, inactive or
// expired code is ErrInvalidDiscountCode so the UI can tell the shopper.
func resolveDiscountAmount(ctx context.Context, repo interfaces.IDiscountRepository, code string, subtotal float64) (float64, string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, "", nil
	}
	if repo == nil {
		return 0, "", ErrInvalidDiscountCode
	}

	d, err := repo.GetByCode(ctx, code)
	if err != nil {
		return 0, "", err
	}
	if d.Code == "" || !d.Usable(time.Now().UTC()) {
		return 0, "", ErrInvalidDiscountCode
	}
	return d.AmountFor(subtotal), d.Code, nil
}
