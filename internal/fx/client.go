package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
)

// Client fetches live exchange rates from the exchangerate.host (Apilayer)
// API. With an API key it uses the /live endpoint; without one it falls back
// to the older keyless /latest endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Client for the given API base URL. The timeout bounds
// every lookup so a stalled FX source fails the operation instead of hanging.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Rate returns the current rate converting one unit of `from` into `to`.
// Same-currency pairs return 1 without a network call.
func (c *Client) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	if c.apiKey != "" {
		return c.liveRate(ctx, from, to)
	}
	return c.latestRate(ctx, from, to)
}

// liveResponse is the shape of the keyed /live endpoint response.
type liveResponse struct {
	Success bool                       `json:"success"`
	Quotes  map[string]decimal.Decimal `json:"quotes"`
}

func (c *Client) liveRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("source", from)
	params.Set("currencies", to)

	var body liveResponse
	if err := c.getJSON(ctx, "/live", params, &body); err != nil {
		return decimal.Decimal{}, err
	}

	if !body.Success {
		return decimal.Decimal{}, apperrors.WithMessage(apperrors.ErrRateUnavailable, "FX API reported failure")
	}

	rate, ok := body.Quotes[from+to]
	if !ok {
		return decimal.Decimal{}, apperrors.WithMessage(apperrors.ErrRateUnavailable, fmt.Sprintf("missing FX pair %s%s in response", from, to))
	}
	return rate, nil
}

// latestResponse is the shape of the keyless /latest endpoint response.
type latestResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (c *Client) latestRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("base", from)
	params.Set("symbols", to)

	var body latestResponse
	if err := c.getJSON(ctx, "/latest", params, &body); err != nil {
		return decimal.Decimal{}, err
	}

	rate, ok := body.Rates[to]
	if !ok {
		return decimal.Decimal{}, apperrors.WithMessage(apperrors.ErrRateUnavailable, fmt.Sprintf("missing rate for %s in response", to))
	}
	return rate, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRateUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Wrap(apperrors.ErrRateUnavailable, fmt.Errorf("FX API returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrRateUnavailable, err)
	}
	return nil
}
