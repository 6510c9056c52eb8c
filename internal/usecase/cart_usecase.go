package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidCartID   = errors.New("invalid cart id")
	ErrInvalidCartItem = errors.New("invalid cart item")
)

// ICartUseCase exposes cart persistence operations.
type ICartUseCase interface {
	Create(ctx context.Context, items []entities.CartItem) (entities.Cart, error)
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	ReplaceItems(ctx context.Context, id string, items []entities.CartItem) (entities.Cart, error)
	Delete(ctx context.Context, id string) error
}

type CartUseCase struct {
	repo interfaces.ICartRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

func (u *CartUseCase) Create(ctx context.Context, items []entities.CartItem) (entities.Cart, error) {
	normalized, err := normalizeCartItems(items)
	if err != nil {
		return entities.Cart{}, err
	}

	now := time.Now().UTC()
	c := entities.Cart{
		ID:        uuid.NewString(),
		Items:     normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CartUseCase) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cart{}, err
	}
	if c.ID == "" {
		return entities.Cart{}, ErrCartNotFound
	}
	return c, nil
}

func (u *CartUseCase) ReplaceItems(ctx context.Context, id string, items []entities.CartItem) (entities.Cart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	normalized, err := normalizeCartItems(items)
	if err != nil {
		return entities.Cart{}, err
	}

	updated, err := u.repo.ReplaceItems(ctx, id, normalized)
	if err != nil {
		return entities.Cart{}, err
	}
	if updated.ID == "" {
		return entities.Cart{}, ErrCartNotFound
	}
	return updated, nil
}

func (u *CartUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCartID
	}
	return u.repo.Delete(ctx, id)
}

// normalizeCartItems validates lines against the same contract the pricing
// engine enforces and assigns line ids where the client didn't send one.
func normalizeCartItems(items []entities.CartItem) ([]entities.CartItem, error) {
	out := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.SKU) == "" || it.Quantity < 1 || it.Price < 0 {
			return nil, ErrInvalidCartItem
		}
		if strings.TrimSpace(it.ID) == "" || uuid.Validate(it.ID) != nil {
			it.ID = uuid.NewString()
		}
		out = append(out, it)
	}
	return out, nil
}
