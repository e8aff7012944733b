package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
)

// exchangeRateService exposes the controller's rate table.
type exchangeRateService struct {
	BaseService
	controller *ConversionController
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(controller *ConversionController) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{controller: controller}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetRateTable returns a copy of the active rate table.
func (s *exchangeRateService) GetRateTable(ctx context.Context) domain.RateTable {
	return s.controller.Rates()
}

// ConvertAmount converts a single amount through the active table.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, amount float64, fromCode, toCode string, strict bool) (float64, error) {
	if len(normalizeCode(fromCode)) != 3 || len(normalizeCode(toCode)) != 3 {
		return 0, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	store := s.controller.Store()
	if strict {
		return ConvertAmountStrict(amount, fromCode, toCode, store)
	}
	if !store.HasRate(fromCode) || !store.HasRate(toCode) {
		s.LogDebug(ctx, "Converting with 1:1 fallback for a missing rate",
			slog.String("from", fromCode), slog.String("to", toCode))
	}
	return ConvertAmount(amount, fromCode, toCode, store), nil
}

// ReplaceRateTable installs a caller-supplied table.
func (s *exchangeRateService) ReplaceRateTable(ctx context.Context, baseCurrencyCode string, rates map[string]float64) (domain.RateTable, error) {
	table, err := s.controller.ReplaceRates(ctx, baseCurrencyCode, rates)
	if err != nil {
		return table, fmt.Errorf("failed to replace rate table in service: %w", err)
	}
	s.LogInfo(ctx, "Rate table replaced", slog.String("base", table.Base), slog.Int("count", len(table.Rates)))
	return table, nil
}

// RefreshRates fetches a fresh table from the configured source.
func (s *exchangeRateService) RefreshRates(ctx context.Context) (domain.RateTable, error) {
	return s.controller.RefreshRates(ctx)
}
