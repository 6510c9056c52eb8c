package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"framecraft/internal/usecase"

	"github.com/gin-gonic/gin"
)

func ratesRouter() *gin.Engine {
	h := NewShippingRatesHandler(usecase.NewPricingCalculator(nil, ""))
	r := gin.New()
	r.POST("/api/cart/shipping", h.CalculateRate)
	return r
}

func TestShippingRatesHandler_CalculateRate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		w := postJSON(t, ratesRouter(), "/api/cart/shipping", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing country code", func(t *testing.T) {
		w := postJSON(t, ratesRouter(), "/api/cart/shipping", `{"postalCode":"94107"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("US address without postal code", func(t *testing.T) {
		w := postJSON(t, ratesRouter(), "/api/cart/shipping", `{"countryCode":"US"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != usecase.CodeShippingCalculationError {
			t.Fatalf("expected %s, got %s", usecase.CodeShippingCalculationError, body["code"])
		}
	})

	t.Run("domestic rate", func(t *testing.T) {
		w := postJSON(t, ratesRouter(), "/api/cart/shipping", `{"countryCode":"US","stateOrCounty":"CA","postalCode":"94107","city":"San Francisco"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["cost"] != 9.99 || body["method"] != "Standard Ground" || body["carrier"] != "USPS" {
			t.Fatalf("unexpected rate: %v", body)
		}
		if body["estimatedDays"] != float64(5) || body["trackingAvailable"] != true || body["addressValidated"] != true {
			t.Fatalf("unexpected rate: %v", body)
		}
	})

	t.Run("canadian rate", func(t *testing.T) {
		w := postJSON(t, ratesRouter(), "/api/cart/shipping", `{"countryCode":"CA","city":"Toronto"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["cost"] != 14.99 || body["carrier"] != "Canada Post" || body["estimatedDays"] != float64(7) {
			t.Fatalf("unexpected rate: %v", body)
		}
	})

	t.Run("international rate is estimated", func(t *testing.T) {
		w := postJSON(t, ratesRouter(), "/api/cart/shipping", `{"countryCode":"GB","city":"London"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["cost"] != 24.99 || body["method"] != "International" || body["isEstimated"] != true {
			t.Fatalf("unexpected rate: %v", body)
		}
		if body["estimatedDays"] != float64(12) {
			t.Fatalf("unexpected rate: %v", body)
		}
	})
}
