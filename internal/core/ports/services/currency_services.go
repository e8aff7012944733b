package services

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// CurrencyReaderSvc defines read operations on the currency catalog.
type CurrencyReaderSvc interface {
	// ListCurrencies returns the installed catalog, never empty.
	ListCurrencies(ctx context.Context) []domain.Currency

	// GetCurrencyByCode returns apperrors.ErrNotFound for codes outside the catalog.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FormatAmount renders an amount for display using the catalog metadata.
	FormatAmount(ctx context.Context, amount float64, currencyCode string) string
}

// CurrencyWriterSvc defines write operations on the currency catalog.
type CurrencyWriterSvc interface {
	// RefreshCatalog reloads the catalog from its source. On failure the built-in
	// catalog is installed and returned together with an error wrapping
	// apperrors.ErrCatalogFetchFailed.
	RefreshCatalog(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data.
type ExchangeRateReaderSvc interface {
	// GetRateTable returns a copy of the active rate table.
	GetRateTable(ctx context.Context) domain.RateTable

	// ConvertAmount converts through the active table. With strict set, a missing rate
	// yields apperrors.ErrRateUnavailable instead of the fail-open 1:1 rate.
	ConvertAmount(ctx context.Context, amount float64, fromCode, toCode string, strict bool) (float64, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data.
type ExchangeRateWriterSvc interface {
	// ReplaceRateTable installs a caller-supplied table.
	ReplaceRateTable(ctx context.Context, baseCurrencyCode string, rates map[string]float64) (domain.RateTable, error)

	// RefreshRates fetches a fresh table; on failure the previous table is kept.
	RefreshRates(ctx context.Context) (domain.RateTable, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
