package services

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// RateSource fetches a full rate table for a base currency from an external API.
// Returned rates are units of each currency per one unit of base.
type RateSource interface {
	FetchRates(ctx context.Context, baseCurrencyCode string) (map[string]float64, error)
}

// CurrencyCatalogSource fetches the list of supported currencies.
type CurrencyCatalogSource interface {
	FetchCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// AuthoritativeConverter converts a single amount through an external pricing service.
type AuthoritativeConverter interface {
	ConvertAmount(ctx context.Context, amount float64, fromCurrency, toCurrency string) (float64, error)
}
