package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"framecraft/internal/domain/entities"
	mock_interfaces "framecraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiscountUseCase_Create(t *testing.T) {
	t.Run("uppercases and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiscountRepository(ctrl)
		uc := NewDiscountUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.Code != "SAVE10" {
					t.Errorf("expected uppercase code, got %q", d.Code)
				}
				return d, nil
			})

		got, err := uc.Create(context.Background(), entities.Discount{
			Code: " save10 ", Type: entities.DiscountTypeFixed, Value: 10, Active: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Code != "SAVE10" {
			t.Fatalf("unexpected discount: %+v", got)
		}
	})

	t.Run("rejects bad definitions", func(t *testing.T) {
		uc := NewDiscountUseCase(nil)
		past := time.Now().UTC().Add(-time.Hour)

		cases := []entities.Discount{
			{Code: "", Type: entities.DiscountTypeFixed, Value: 10},
			{Code: "X", Type: entities.DiscountTypeFixed, Value: 0},
			{Code: "X", Type: "unknown", Value: 10},
			{Code: "X", Type: entities.DiscountTypePercent, Value: 150},
			{Code: "X", Type: entities.DiscountTypeFixed, Value: 10, ExpiresAt: &past},
		}
		for _, bad := range cases {
			if _, err := uc.Create(context.Background(), bad); !errors.Is(err, ErrInvalidDiscount) {
				t.Fatalf("expected ErrInvalidDiscount for %+v, got %v", bad, err)
			}
		}
	})
}

func TestDiscountUseCase_GetByCode(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc := NewDiscountUseCase(nil)
		if _, err := uc.GetByCode(context.Background(), "  "); !errors.Is(err, ErrInvalidDiscountCode) {
			t.Fatalf("expected ErrInvalidDiscountCode, got %v", err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiscountRepository(ctrl)
		uc := NewDiscountUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Discount{}, nil)

		if _, err := uc.GetByCode(context.Background(), "nope"); !errors.Is(err, ErrInvalidDiscountCode) {
			t.Fatalf("expected ErrInvalidDiscountCode, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiscountRepository(ctrl)
		uc := NewDiscountUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "SAVE10").Return(entities.Discount{
			Code: "SAVE10", Type: entities.DiscountTypeFixed, Value: 10, Active: true,
		}, nil)

		got, err := uc.GetByCode(context.Background(), " save10 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Code != "SAVE10" || got.Value != 10 {
			t.Fatalf("unexpected discount: %+v", got)
		}
	})
}
