package dto

import "github.com/SscSPs/finance_engine/internal/core/domain"

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:          c.Code,
		Name:          c.Name,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}

// CatalogRefreshResponse is returned by a catalog refresh. Warning is set when the
// built-in catalog was installed because the source failed.
type CatalogRefreshResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
	Warning    string             `json:"warning,omitempty"`
}

// FormatAmountQuery holds the query parameters of the format endpoint.
type FormatAmountQuery struct {
	Amount float64 `form:"amount"`
}

// FormatAmountResponse is a display rendering of an amount.
type FormatAmountResponse struct {
	CurrencyCode string  `json:"currencyCode"`
	Amount       float64 `json:"amount"`
	Formatted    string  `json:"formatted"`
}
