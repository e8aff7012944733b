package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock RateSnapshotRepository ---
type MockRateSnapshotRepository struct {
	mock.Mock
}

var _ portsrepo.RateSnapshotRepositoryFacade = (*MockRateSnapshotRepository)(nil)

func (m *MockRateSnapshotRepository) SaveRateTable(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRateSnapshotRepository) FindLatestRateTable(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// --- Mock ConversionHistoryRepository ---
type MockConversionHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.ConversionHistoryRepository = (*MockConversionHistoryRepository)(nil)

func (m *MockConversionHistoryRepository) SaveConversion(ctx context.Context, entry domain.ConversionHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockConversionHistoryRepository) ListRecentConversions(ctx context.Context, limit int) ([]domain.ConversionHistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionHistoryEntry), args.Error(1)
}

// --- Mock providers ---
type MockRateSource struct {
	mock.Mock
}

var _ portssvc.RateSource = (*MockRateSource)(nil)

func (m *MockRateSource) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type MockCatalogSource struct {
	mock.Mock
}

var _ portssvc.CurrencyCatalogSource = (*MockCatalogSource)(nil)

func (m *MockCatalogSource) FetchCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

type MockAuthoritativeConverter struct {
	mock.Mock
}

var _ portssvc.AuthoritativeConverter = (*MockAuthoritativeConverter)(nil)

func (m *MockAuthoritativeConverter) ConvertAmount(ctx context.Context, amount float64, from, to string) (float64, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(float64), args.Error(1)
}

// authoritativeFunc adapts a plain function to portssvc.AuthoritativeConverter.
type authoritativeFunc func(ctx context.Context, amount float64, from, to string) (float64, error)

func (f authoritativeFunc) ConvertAmount(ctx context.Context, amount float64, from, to string) (float64, error) {
	return f(ctx, amount, from, to)
}
