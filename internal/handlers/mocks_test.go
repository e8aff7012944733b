package handlers_test

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency)
}
func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) FormatAmount(ctx context.Context, amount float64, currencyCode string) string {
	args := m.Called(ctx, amount, currencyCode)
	return args.String(0)
}
func (m *MockCurrencyService) RefreshCatalog(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRateTable(ctx context.Context) domain.RateTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable)
}
func (m *MockExchangeRateService) ConvertAmount(ctx context.Context, amount float64, fromCode, toCode string, strict bool) (float64, error) {
	args := m.Called(ctx, amount, fromCode, toCode, strict)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockExchangeRateService) ReplaceRateTable(ctx context.Context, baseCurrencyCode string, rates map[string]float64) (domain.RateTable, error) {
	args := m.Called(ctx, baseCurrencyCode, rates)
	return args.Get(0).(domain.RateTable), args.Error(1)
}
func (m *MockExchangeRateService) RefreshRates(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) OnCurrencyChange(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (portssvc.ConversionResult, error) {
	args := m.Called(ctx, previous, next, dataset, shape)
	return args.Get(0).(portssvc.ConversionResult), args.Error(1)
}
func (m *MockConversionService) ConvertWithAuthoritative(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (portssvc.ConversionResult, error) {
	args := m.Called(ctx, previous, next, dataset, shape)
	return args.Get(0).(portssvc.ConversionResult), args.Error(1)
}
func (m *MockConversionService) IsConverting() bool {
	return m.Called().Bool(0)
}
func (m *MockConversionService) RecentHistory(n int) []domain.ConversionHistoryEntry {
	args := m.Called(n)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ConversionHistoryEntry)
}
func (m *MockConversionService) ActiveCurrency() string {
	return m.Called().String(0)
}

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) ValidateJournal(ctx context.Context, entry domain.JournalEntry, accounts []domain.Account) domain.EntryValidation {
	args := m.Called(ctx, entry, accounts)
	return args.Get(0).(domain.EntryValidation)
}
func (m *MockJournalService) ResolveAccountBehavior(category domain.AccountCategory) domain.AccountBehavior {
	args := m.Called(category)
	return args.Get(0).(domain.AccountBehavior)
}
func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) SaveJournal(ctx context.Context, entry domain.JournalEntry, accounts []domain.Account, creatorUserID string) (*domain.JournalEntry, domain.EntryValidation, error) {
	args := m.Called(ctx, entry, accounts, creatorUserID)
	var saved *domain.JournalEntry
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.JournalEntry)
	}
	return saved, args.Get(1).(domain.EntryValidation), args.Error(2)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)
