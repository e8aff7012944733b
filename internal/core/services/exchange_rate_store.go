package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// RateLookup is the read side of the rate table used by ConvertAmount.
type RateLookup interface {
	Rate(currencyCode string) float64
}

// ExchangeRateStore holds the active rate table. Tables are always replaced whole;
// readers never observe a half-installed table.
type ExchangeRateStore struct {
	mu        sync.RWMutex
	base      string
	rates     map[string]float64
	fetchedAt time.Time
	now       func() time.Time
}

// NewExchangeRateStore creates an empty store for the given base currency.
func NewExchangeRateStore(baseCurrencyCode string) *ExchangeRateStore {
	base := normalizeCode(baseCurrencyCode)
	return &ExchangeRateStore{
		base:  base,
		rates: map[string]float64{base: 1},
		now:   time.Now,
	}
}

// SetBase declares the reference currency. Changing it drops the current table,
// because rates quoted against another base must never be mixed in.
func (s *ExchangeRateStore) SetBase(baseCurrencyCode string) {
	base := normalizeCode(baseCurrencyCode)
	s.mu.Lock()
	defer s.mu.Unlock()
	if base == s.base {
		return
	}
	s.base = base
	s.rates = map[string]float64{base: 1}
	s.fetchedAt = time.Time{}
}

// ReplaceRates installs a full table for base. The base entry is forced to 1.
// Non-positive rates are dropped and their codes returned; the remaining entries are
// installed together. A table whose entries are all invalid leaves the previous one in place.
func (s *ExchangeRateStore) ReplaceRates(baseCurrencyCode string, rates map[string]float64) ([]string, error) {
	return s.replace(baseCurrencyCode, rates, time.Time{})
}

// ReplaceTable installs a previously captured table, keeping its FetchedAt.
func (s *ExchangeRateStore) ReplaceTable(table domain.RateTable) ([]string, error) {
	return s.replace(table.Base, table.Rates, table.FetchedAt)
}

func (s *ExchangeRateStore) replace(baseCurrencyCode string, rates map[string]float64, fetchedAt time.Time) ([]string, error) {
	base := normalizeCode(baseCurrencyCode)
	if base == "" {
		return nil, fmt.Errorf("%w: base currency code is required", apperrors.ErrValidation)
	}

	table := make(map[string]float64, len(rates)+1)
	var dropped []string
	for code, rate := range rates {
		code = normalizeCode(code)
		if code == base {
			continue
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			dropped = append(dropped, code)
			continue
		}
		table[code] = rate
	}
	sort.Strings(dropped)
	if len(table) == 0 && len(dropped) > 0 {
		return dropped, fmt.Errorf("%w: no positive rates against %s (rejected %s)",
			apperrors.ErrValidation, base, strings.Join(dropped, ", "))
	}
	table[base] = 1

	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = base
	s.rates = table
	if fetchedAt.IsZero() {
		fetchedAt = s.now()
	}
	s.fetchedAt = fetchedAt
	return dropped, nil
}

// Rate returns the rate for code relative to the base, or 1 when the code is unknown.
// Callers that cannot tolerate the 1:1 fallback should use LookupRate or HasRate.
func (s *ExchangeRateStore) Rate(currencyCode string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rate, ok := s.rates[normalizeCode(currencyCode)]; ok {
		return rate
	}
	return 1
}

// LookupRate is the strict form of Rate.
func (s *ExchangeRateStore) LookupRate(currencyCode string) (float64, error) {
	code := normalizeCode(currencyCode)
	s.mu.RLock()
	defer s.mu.RUnlock()
	rate, ok := s.rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %s against %s", apperrors.ErrRateUnavailable, code, s.base)
	}
	return rate, nil
}

// HasRate reports whether the table carries an explicit rate for code.
func (s *ExchangeRateStore) HasRate(currencyCode string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rates[normalizeCode(currencyCode)]
	return ok
}

// Base returns the reference currency.
func (s *ExchangeRateStore) Base() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// Len returns the number of currencies in the table, base included.
func (s *ExchangeRateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rates)
}

// Snapshot returns a copy of the active table.
func (s *ExchangeRateStore) Snapshot() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rates := make(map[string]float64, len(s.rates))
	for k, v := range s.rates {
		rates[k] = v
	}
	return domain.RateTable{Base: s.base, Rates: rates, FetchedAt: s.fetchedAt}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
