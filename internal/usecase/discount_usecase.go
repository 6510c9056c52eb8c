package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"
)

var ErrInvalidDiscount = errors.New("invalid discount definition")

// IDiscountUseCase manages the promo codes the quote/checkout flows resolve.
type IDiscountUseCase interface {
	Create(ctx context.Context, d entities.Discount) (entities.Discount, error)
	GetByCode(ctx context.Context, code string) (entities.Discount, error)
}

type DiscountUseCase struct {
	repo interfaces.IDiscountRepository
}

var _ IDiscountUseCase = (*DiscountUseCase)(nil)

func NewDiscountUseCase(repo interfaces.IDiscountRepository) *DiscountUseCase {
	return &DiscountUseCase{repo: repo}
}

// Create validates and stores a code. Codes are case-insensitive; they are
// stored and matched uppercase.
func (u *DiscountUseCase) Create(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	if d.Code == "" || d.Value <= 0 {
		return entities.Discount{}, ErrInvalidDiscount
	}
	switch d.Type {
	case entities.DiscountTypeFixed:
	case entities.DiscountTypePercent:
		if d.Value > 100 {
			return entities.Discount{}, ErrInvalidDiscount
		}
	default:
		return entities.Discount{}, ErrInvalidDiscount
	}
	if d.ExpiresAt != nil && d.ExpiresAt.Before(time.Now().UTC()) {
		return entities.Discount{}, ErrInvalidDiscount
	}
	return u.repo.Create(ctx, d)
}

func (u *DiscountUseCase) GetByCode(ctx context.Context, code string) (entities.Discount, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entities.Discount{}, ErrInvalidDiscountCode
	}

	d, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Discount{}, err
	}
	if d.Code == "" {
		return entities.Discount{}, ErrInvalidDiscountCode
	}
	return d, nil
}
