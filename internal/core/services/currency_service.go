package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	controller *ConversionController
	formatter  *CurrencyFormatter
}

// NewCurrencyService creates a currency service over the controller's catalog.
func NewCurrencyService(controller *ConversionController, formatter *CurrencyFormatter) portssvc.CurrencySvcFacade {
	return &currencyService{controller: controller, formatter: formatter}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	return s.controller.Catalog()
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	cur, ok := s.controller.Currency(currencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, normalizeCode(currencyCode))
	}
	return &cur, nil
}

func (s *currencyService) FormatAmount(ctx context.Context, amount float64, currencyCode string) string {
	return s.formatter.Format(amount, currencyCode)
}

func (s *currencyService) RefreshCatalog(ctx context.Context) ([]domain.Currency, error) {
	return s.controller.LoadCatalog(ctx)
}
