package shipping

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"framecraft/internal/domain/entities"

	"github.com/rs/zerolog"
)

func validAddress() entities.ShippingAddress {
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

func newTestClient(baseURL string, getToken TokenProvider) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		RetryBase: time.Millisecond,
	}, getToken, zerolog.Nop())
}

func TestCalculateShipping_Success(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/cart/shipping" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %s", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cost":12.5,"currency":"USD","estimatedDays":3,"method":"Express","carrier":"FedEx","trackingAvailable":true,"addressValidated":true}`))
	}))
	defer srv.Close()

	quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
	if quote == nil {
		t.Fatal("expected a quote")
	}
	if quote.Cost != 12.5 || quote.Method != "Express" || quote.Carrier != "FedEx" {
		t.Fatalf("unexpected quote: %+v", quote)
	}
	if quote.EstimatedDays != 3 || !quote.TrackingAvailable || !quote.AddressValidated {
		t.Fatalf("unexpected quote: %+v", quote)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected 1 request, got %d", got)
	}
}

func TestCalculateShipping_EmptyBodyGetsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
	if quote == nil {
		t.Fatal("expected a defaulted quote")
	}
	if quote.Cost != 0 || quote.Currency != "USD" || quote.EstimatedDays != 5 || quote.Method != "Standard" {
		t.Fatalf("unexpected defaults: %+v", quote)
	}
	if quote.IsEstimated || quote.AddressValidated || quote.TrackingAvailable {
		t.Fatalf("boolean defaults should be false: %+v", quote)
	}
}

func TestCalculateShipping_RetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
	if quote != nil {
		t.Fatalf("expected nil quote, got %+v", quote)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", got)
	}
}

func TestCalculateShipping_RecoversWithinAttemptBudget(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"cost":9.99}`))
	}))
	defer srv.Close()

	quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
	if quote == nil {
		t.Fatal("expected a quote on the third attempt")
	}
	if quote.Cost != 9.99 {
		t.Fatalf("unexpected cost %v", quote.Cost)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestCalculateShipping_ClientErrorsAreNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound} {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(status)
		}))

		quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
		srv.Close()
		if quote != nil {
			t.Fatalf("status %d: expected nil quote, got %+v", status, quote)
		}
		if got := atomic.LoadInt32(&hits); got != 1 {
			t.Fatalf("status %d: expected exactly 1 attempt, got %d", status, got)
		}
	}
}

func TestCalculateShipping_MalformedBodyIsTerminal(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"truncated json", `{"cost":`},
		{"json null", `null`},
		{"json array", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var hits int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
			if quote != nil {
				t.Fatalf("expected nil quote, got %+v", quote)
			}
			if got := atomic.LoadInt32(&hits); got != 1 {
				t.Fatalf("expected exactly 1 attempt, got %d", got)
			}
		})
	}
}

func TestCalculateShipping_InvalidAddressSkipsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	client := newTestClient(srv.URL, nil)

	cases := []struct {
		name   string
		mutate func(*entities.ShippingAddress)
	}{
		{"missing first name", func(a *entities.ShippingAddress) { a.FirstName = "" }},
		{"missing address line", func(a *entities.ShippingAddress) { a.Address1 = "  " }},
		{"missing city", func(a *entities.ShippingAddress) { a.City = "" }},
		{"short state", func(a *entities.ShippingAddress) { a.State = "C" }},
		{"short zip", func(a *entities.ShippingAddress) { a.Zip = "94" }},
		{"missing country", func(a *entities.ShippingAddress) { a.Country = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addr := validAddress()
			tc.mutate(&addr)
			if quote := client.CalculateShipping(context.Background(), addr); quote != nil {
				t.Fatalf("expected nil quote, got %+v", quote)
			}
		})
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Fatalf("expected no requests, got %d", got)
	}
}

func TestCalculateShipping_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	getToken := func(ctx context.Context) (string, error) { return "session-token", nil }
	if quote := newTestClient(srv.URL, getToken).CalculateShipping(context.Background(), validAddress()); quote == nil {
		t.Fatal("expected a quote")
	}
	if gotAuth != "Bearer session-token" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestCalculateShipping_TokenFailureSendsUnauthenticated(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuthHeader = r.Header.Get("Authorization") != ""
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	getToken := func(ctx context.Context) (string, error) { return "", context.DeadlineExceeded }
	if quote := newTestClient(srv.URL, getToken).CalculateShipping(context.Background(), validAddress()); quote == nil {
		t.Fatal("expected a quote despite the token failure")
	}
	if sawAuthHeader {
		t.Fatal("request should have gone out without an Authorization header")
	}
}

func TestCalculateShipping_NetworkErrorExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	quote := newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
	if quote != nil {
		t.Fatalf("expected nil quote against a dead endpoint, got %+v", quote)
	}
}

func TestCalculateShipping_NormalizesAddressPayload(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	newTestClient(srv.URL, nil).CalculateShipping(context.Background(), validAddress())
	want := `{"countryCode":"US","stateOrCounty":"CA","postalCode":"94107","city":"San Francisco"}`
	if gotBody != want {
		t.Fatalf("unexpected payload\n got: %s\nwant: %s", gotBody, want)
	}
}
