package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"framecraft/internal/adapter/http/handlers/mocks"
	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func discountRouter(h *DiscountHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/discounts", h.CreateDiscount)
	r.GET("/v1/discounts/:code", h.GetDiscount)
	return r
}

func TestDiscountHandler_CreateDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		r := discountRouter(NewDiscountHandler(uc))

		w := postJSON(t, r, "/v1/discounts", `{"code":"SAVE10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid definition from the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		r := discountRouter(NewDiscountHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Discount{}, usecase.ErrInvalidDiscount)

		w := postJSON(t, r, "/v1/discounts", `{"code":"X","type":"percent","value":150}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		r := discountRouter(NewDiscountHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Discount{
			Code: "SAVE10", Type: entities.DiscountTypeFixed, Value: 10, Active: true,
		}, nil)

		w := postJSON(t, r, "/v1/discounts", `{"code":"save10","type":"fixed","value":10,"active":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "SAVE10" || body["value"] != float64(10) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestDiscountHandler_GetDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		r := discountRouter(NewDiscountHandler(uc))

		uc.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Discount{}, usecase.ErrInvalidDiscountCode)

		req := httptest.NewRequest(http.MethodGet, "/v1/discounts/NOPE", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		r := discountRouter(NewDiscountHandler(uc))

		uc.EXPECT().GetByCode(gomock.Any(), "SAVE10").Return(entities.Discount{
			Code: "SAVE10", Type: entities.DiscountTypeFixed, Value: 10, Active: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/discounts/SAVE10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
