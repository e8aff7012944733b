package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/SscSPs/finance_engine/internal/middleware"
)

// ratesResponse is the body of GET {url}?base=USD.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// RateClient fetches full rate tables, retrying transient failures with exponential backoff.
type RateClient struct {
	client
	maxElapsed time.Duration
}

// NewRateClient creates a rate source for baseURL. maxElapsed bounds the total retry time;
// zero disables retries.
func NewRateClient(baseURL string, timeout, maxElapsed time.Duration) *RateClient {
	return &RateClient{client: newClient("rate provider", baseURL, timeout), maxElapsed: maxElapsed}
}

// FetchRates returns units of each currency per one unit of base.
func (c *RateClient) FetchRates(ctx context.Context, baseCurrencyCode string) (map[string]float64, error) {
	base := strings.ToUpper(baseCurrencyCode)
	query := url.Values{"base": {base}}

	var body ratesResponse
	operation := func() error {
		body = ratesResponse{}
		err := c.getJSON(ctx, query, &body)
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		middleware.GetLoggerFromCtx(ctx).Warn("Rate fetch failed, retrying",
			slog.String("error", err.Error()), slog.Duration("retry_in", wait))
	}

	if err := backoff.RetryNotify(operation, c.policy(ctx), notify); err != nil {
		return nil, err
	}

	if body.Base != "" && !strings.EqualFold(body.Base, base) {
		return nil, fmt.Errorf("rate provider: requested base %s, got %s", base, body.Base)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate provider: empty rate table for %s", base)
	}
	return body.Rates, nil
}

func (c *RateClient) policy(ctx context.Context) backoff.BackOff {
	if c.maxElapsed <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxElapsedTime = c.maxElapsed
	return backoff.WithContext(exp, ctx)
}
