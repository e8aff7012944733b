package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/core/services"
)

func newUSDStore(t *testing.T) *services.ExchangeRateStore {
	t.Helper()
	store := services.NewExchangeRateStore("USD")
	dropped, err := store.ReplaceRates("USD", map[string]float64{"EUR": 0.9, "GBP": 0.8, "JPY": 150})
	require.NoError(t, err)
	require.Empty(t, dropped)
	return store
}

func TestExchangeRateStore_Rate(t *testing.T) {
	store := newUSDStore(t)

	assert.Equal(t, 1.0, store.Rate("USD"))
	assert.Equal(t, 0.9, store.Rate("eur"), "codes are case-insensitive")
	assert.Equal(t, 1.0, store.Rate("CHF"), "unknown codes fail open to 1")
	assert.True(t, store.HasRate("GBP"))
	assert.False(t, store.HasRate("CHF"))
	assert.Equal(t, 4, store.Len())

	_, err := store.LookupRate("CHF")
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
}

func TestExchangeRateStore_ReplaceRatesForcesBase(t *testing.T) {
	store := services.NewExchangeRateStore("USD")
	_, err := store.ReplaceRates("EUR", map[string]float64{"EUR": 3, "USD": 1.1})
	require.NoError(t, err)

	assert.Equal(t, "EUR", store.Base())
	assert.Equal(t, 1.0, store.Rate("EUR"))
	assert.Equal(t, 1.1, store.Rate("USD"))
}

func TestExchangeRateStore_DropsNonPositiveRates(t *testing.T) {
	store := newUSDStore(t)

	dropped, err := store.ReplaceRates("USD", map[string]float64{"EUR": 0.95, "GBP": -1, "VES": 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"GBP", "VES"}, dropped)
	assert.Equal(t, 0.95, store.Rate("EUR"), "valid entries are installed")
	assert.False(t, store.HasRate("GBP"), "the whole table is replaced, not merged")
	assert.False(t, store.HasRate("VES"))
	assert.Equal(t, 2, store.Len())
}

func TestExchangeRateStore_AllInvalidRatesKeepPreviousTable(t *testing.T) {
	store := newUSDStore(t)

	dropped, err := store.ReplaceRates("USD", map[string]float64{"EUR": 0, "GBP": -1})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, []string{"EUR", "GBP"}, dropped)
	assert.Equal(t, 0.9, store.Rate("EUR"), "previous table is kept")
	assert.Equal(t, 4, store.Len())
}

func TestExchangeRateStore_SetBaseDropsTable(t *testing.T) {
	store := newUSDStore(t)

	store.SetBase("usd")
	assert.Equal(t, 4, store.Len(), "same base keeps the table")

	store.SetBase("EUR")
	assert.Equal(t, "EUR", store.Base())
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Snapshot().Empty())
}

func TestExchangeRateStore_SnapshotIsACopy(t *testing.T) {
	store := newUSDStore(t)
	snap := store.Snapshot()
	snap.Rates["EUR"] = 42

	assert.Equal(t, 0.9, store.Rate("EUR"))
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestExchangeRateStore_ReplaceTableKeepsFetchedAt(t *testing.T) {
	fetched := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := services.NewExchangeRateStore("USD")
	_, err := store.ReplaceTable(domain.RateTable{Base: "USD", Rates: map[string]float64{"EUR": 0.9}, FetchedAt: fetched})
	require.NoError(t, err)

	assert.Equal(t, fetched, store.Snapshot().FetchedAt)
}

func TestConvertAmount(t *testing.T) {
	store := newUSDStore(t)

	testCases := []struct {
		name     string
		amount   float64
		from, to string
		expected float64
	}{
		{"base to quote", 100, "USD", "EUR", 90},
		{"quote to base", 90, "EUR", "USD", 100},
		{"cross rate", 90, "EUR", "GBP", 80},
		{"identity", 123.45, "GBP", "GBP", 123.45},
		{"zero", 0, "USD", "JPY", 0},
		{"unknown currency is 1:1 against base", 50, "USD", "CHF", 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, services.ConvertAmount(tc.amount, tc.from, tc.to, store), 1e-9)
		})
	}
}

func TestConvertAmount_RoundTrip(t *testing.T) {
	store := newUSDStore(t)
	for _, amount := range []float64{0.01, 1, 99.99, 1234.56, -250} {
		there := services.ConvertAmount(amount, "EUR", "JPY", store)
		back := services.ConvertAmount(there, "JPY", "EUR", store)
		assert.InDelta(t, amount, back, 1e-9)
	}
}

func TestConvertAmountStrict(t *testing.T) {
	store := newUSDStore(t)

	got, err := services.ConvertAmountStrict(100, "USD", "EUR", store)
	require.NoError(t, err)
	assert.InDelta(t, 90, got, 1e-9)

	_, err = services.ConvertAmountStrict(100, "USD", "CHF", store)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)

	got, err = services.ConvertAmountStrict(100, "CHF", "CHF", store)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}
