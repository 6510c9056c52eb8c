package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

const ratePath = "/api/cart/shipping"

const (
	defaultTimeout   = 8 * time.Second
	defaultRetryBase = 250 * time.Millisecond

	// maxRetries is retries after the first attempt: 3 attempts total.
	maxRetries = 2
)

// TokenProvider yields a bearer token for the rate endpoint, or empty when
// no session is available. A nil provider (or an empty token) means the
// request goes out unauthenticated and the server decides.
type TokenProvider func(ctx context.Context) (string, error)

// Config tunes the rate client. Zero values mean defaults.
type Config struct {
	// BaseURL is the scheme://host of the rate service; ratePath is
	// appended.
	BaseURL string
	// Timeout bounds each attempt, not the whole call.
	Timeout time.Duration
	// RetryBase seeds the exponential backoff between attempts. Tests set
	// this to something tiny; timing is never part of the contract, the
	// 3-attempt ceiling is.
	RetryBase time.Duration
}

// Client talks to the external shipping-rate service.
//
// Every failure mode collapses to a nil quote: an invalid address is
// rejected locally before any network traffic, network errors and 5xx are
// retried up to the attempt ceiling, 4xx and malformed bodies fail
// immediately. Callers never see an error, only quote-or-no-quote.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retryBase  time.Duration
	getToken   TokenProvider
	logger     zerolog.Logger
}

var _ interfaces.IShippingRateClient = (*Client)(nil)

func NewClient(cfg Config, getToken TokenProvider, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retryBase := cfg.RetryBase
	if retryBase <= 0 {
		retryBase = defaultRetryBase
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		retryBase:  retryBase,
		getToken:   getToken,
		logger:     logger,
	}
}

// rateResponse mirrors the endpoint's 2xx body. Everything is optional;
// missing fields get conservative defaults so an incomplete-but-successful
// response still yields a usable quote instead of failing checkout.
type rateResponse struct {
	Cost              *float64 `json:"cost"`
	Currency          *string  `json:"currency"`
	EstimatedDays     *int     `json:"estimatedDays"`
	Method            *string  `json:"method"`
	Carrier           *string  `json:"carrier"`
	TrackingAvailable *bool    `json:"trackingAvailable"`
	IsEstimated       *bool    `json:"isEstimated"`
	AddressValidated  *bool    `json:"addressValidated"`
}

// CalculateShipping validates the address locally, then runs the bounded
// retry loop against the rate endpoint. Attempts are strictly sequential.
func (c *Client) CalculateShipping(ctx context.Context, addr entities.ShippingAddress) *entities.ShippingQuote {
	if reason := rejectAddress(addr); reason != "" {
		c.logger.Debug().Str("reason", reason).Msg("shipping address rejected before rate lookup")
		return nil
	}

	body, err := json.Marshal(addr.Normalize())
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode rate payload")
		return nil
	}

	var quote *entities.ShippingQuote
	backoff := retry.NewExponential(c.retryBase)
	if jitter := c.retryBase / 2; jitter > 0 {
		backoff = retry.WithJitter(jitter, backoff)
	}
	backoff = retry.WithMaxRetries(maxRetries, backoff)

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		q, attemptErr := c.fetchQuote(ctx, body)
		if attemptErr != nil {
			return attemptErr
		}
		quote = q
		return nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("no shipping quote available")
		return nil
	}

	c.logger.Debug().
		Float64("cost", quote.Cost).
		Str("method", quote.Method).
		Int("estimated_days", quote.EstimatedDays).
		Msg("shipping quote obtained")
	return quote
}

// fetchQuote is one attempt. Retryable errors are wrapped with
// retry.RetryableError; anything else (4xx, parse failures) is terminal.
func (c *Client) fetchQuote(ctx context.Context, body []byte) (*entities.ShippingQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ratePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if c.getToken != nil {
		token, tokenErr := c.getToken(ctx)
		if tokenErr != nil {
			// No session is tolerated; the request proceeds unauthenticated.
			c.logger.Debug().Err(tokenErr).Msg("auth token lookup failed, sending unauthenticated")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, retry.RetryableError(fmt.Errorf("rate service returned %d", resp.StatusCode))
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("rate service rejected request with %d", resp.StatusCode)
	}

	var parsed *rateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("malformed rate response: %w", err)
	}
	if parsed == nil {
		return nil, errors.New("rate response is not a JSON object")
	}
	return normalizeQuote(parsed), nil
}

func normalizeQuote(r *rateResponse) *entities.ShippingQuote {
	q := &entities.ShippingQuote{
		Cost:          0,
		Currency:      "USD",
		EstimatedDays: 5,
		Method:        "Standard",
	}
	if r.Cost != nil {
		q.Cost = *r.Cost
	}
	if r.Currency != nil && *r.Currency != "" {
		q.Currency = *r.Currency
	}
	if r.EstimatedDays != nil {
		q.EstimatedDays = *r.EstimatedDays
	}
	if r.Method != nil && *r.Method != "" {
		q.Method = *r.Method
	}
	if r.Carrier != nil {
		q.Carrier = *r.Carrier
	}
	if r.TrackingAvailable != nil {
		q.TrackingAvailable = *r.TrackingAvailable
	}
	if r.IsEstimated != nil {
		q.IsEstimated = *r.IsEstimated
	}
	if r.AddressValidated != nil {
		q.AddressValidated = *r.AddressValidated
	}
	return q
}

// rejectAddress is the cheap local quality gate run before spending a
// network round trip. It returns the rejection reason, or "" when the
// address is plausible enough to quote.
func rejectAddress(a entities.ShippingAddress) string {
	required := map[string]string{
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"address1":   a.Address1,
		"city":       a.City,
		"state":      a.State,
		"zip":        a.Zip,
		"country":    a.Country,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			return field + " is required"
		}
	}
	if len(strings.TrimSpace(a.City)) < 2 {
		return "city is too short"
	}
	if len(strings.TrimSpace(a.State)) < 2 {
		return "state is too short"
	}
	if len(strings.TrimSpace(a.Zip)) < 3 {
		return "zip is too short"
	}
	return ""
}
