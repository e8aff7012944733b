package services

// ServiceContainer holds instances of all the application services.
// Handlers only see these interfaces.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Conversion   ConversionSvcFacade
	Journal      JournalSvcFacade
}
