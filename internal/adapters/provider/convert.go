package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type convertResponse struct {
	Result decimal.Decimal `json:"result"`
}

// ConversionClient converts single amounts through an external pricing service.
// It does not retry: callers fall back to local rates per amount.
type ConversionClient struct {
	client
}

// NewConversionClient creates an authoritative converter for baseURL.
func NewConversionClient(baseURL string, timeout time.Duration) *ConversionClient {
	return &ConversionClient{client: newClient("conversion provider", baseURL, timeout)}
}

// ConvertAmount calls GET {url}?amount=&from=&to= and returns the converted amount.
func (c *ConversionClient) ConvertAmount(ctx context.Context, amount float64, fromCurrency, toCurrency string) (float64, error) {
	query := url.Values{
		"amount": {decimal.NewFromFloat(amount).String()},
		"from":   {strings.ToUpper(fromCurrency)},
		"to":     {strings.ToUpper(toCurrency)},
	}
	var body convertResponse
	if err := c.getJSON(ctx, query, &body); err != nil {
		return 0, err
	}
	if body.Result.IsNegative() != (amount < 0) && !body.Result.IsZero() {
		return 0, fmt.Errorf("conversion provider: sign mismatch for %v %s->%s: %s", amount, fromCurrency, toCurrency, body.Result)
	}
	return body.Result.InexactFloat64(), nil
}
