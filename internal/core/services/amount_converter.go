package services

import "github.com/SscSPs/finance_engine/internal/apperrors"

// ConvertAmount converts amount from one currency to another by crossing through the
// base currency of rates. No rounding is applied; that is left to display formatting.
func ConvertAmount(amount float64, fromCurrency, toCurrency string, rates RateLookup) float64 {
	if amount == 0 {
		return 0
	}
	if normalizeCode(fromCurrency) == normalizeCode(toCurrency) {
		return amount
	}
	baseAmount := amount / rates.Rate(fromCurrency)
	return baseAmount * rates.Rate(toCurrency)
}

// ConvertAmountStrict is ConvertAmount without the fail-open default: it returns
// apperrors.ErrRateUnavailable when either currency is missing from the store.
func ConvertAmountStrict(amount float64, fromCurrency, toCurrency string, store *ExchangeRateStore) (float64, error) {
	if amount == 0 {
		return 0, nil
	}
	if normalizeCode(fromCurrency) == normalizeCode(toCurrency) {
		return amount, nil
	}
	fromRate, err := store.LookupRate(fromCurrency)
	if err != nil {
		return 0, err
	}
	toRate, err := store.LookupRate(toCurrency)
	if err != nil {
		return 0, err
	}
	if fromRate == 0 {
		return 0, apperrors.ErrRateUnavailable
	}
	return amount / fromRate * toRate, nil
}
