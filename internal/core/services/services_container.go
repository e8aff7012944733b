package services

import (
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/platform/config"
)

// Providers groups the optional external adapters. Nil fields disable the feature.
type Providers struct {
	Rates         portssvc.RateSource
	Catalog       portssvc.CurrencyCatalogSource
	Authoritative portssvc.AuthoritativeConverter
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The controller is returned as well so the caller can restore and refresh rates at startup.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, providers Providers) (*portssvc.ServiceContainer, *ConversionController) {
	formatter := NewCurrencyFormatter(cfg.DisplayLocale, domain.DefaultCurrencies())

	options := []ControllerOption{
		WithFormatter(formatter),
		WithHistoryLimit(cfg.ConversionHistoryLimit),
		WithAuthoritativeConcurrency(cfg.AuthoritativeConcurrency),
	}
	if providers.Rates != nil {
		options = append(options, WithRateSource(providers.Rates))
	}
	if providers.Catalog != nil {
		options = append(options, WithCatalogSource(providers.Catalog))
	}
	if providers.Authoritative != nil {
		options = append(options, WithAuthoritativeConverter(providers.Authoritative))
	}
	if repos.RateSnapshotRepo != nil {
		options = append(options, WithRateSnapshotRepository(repos.RateSnapshotRepo))
	}
	if repos.ConversionHistoryRepo != nil {
		options = append(options, WithConversionHistoryRepository(repos.ConversionHistoryRepo))
	}

	controller := NewConversionController(cfg.BaseCurrency, options...)

	container := &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(controller, formatter),
		ExchangeRate: NewExchangeRateService(controller),
		Conversion:   controller,
		Journal:      NewJournalService(repos.JournalRepo),
	}
	return container, controller
}
