package services

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// ConversionResult is the outcome of converting a dataset between currencies.
type ConversionResult struct {
	Records   []domain.Record
	Stats     domain.ConversionStats
	Performed bool
	Entry     *domain.ConversionHistoryEntry
}

// ConversionSvcFacade orchestrates dataset conversions on currency changes.
type ConversionSvcFacade interface {
	// OnCurrencyChange converts a dataset with the local rate table.
	// It is a no-op when previous == next or no rate table is loaded.
	OnCurrencyChange(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (ConversionResult, error)

	// ConvertWithAuthoritative converts a dataset through the authoritative provider,
	// falling back to local rates per amount.
	ConvertWithAuthoritative(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (ConversionResult, error)

	// IsConverting reports whether a conversion is currently running.
	IsConverting() bool

	// RecentHistory returns the last n history entries, oldest first. n <= 0 returns all.
	RecentHistory(n int) []domain.ConversionHistoryEntry

	// ActiveCurrency returns the currently displayed currency.
	ActiveCurrency() string
}
