package domain

import "time"

// Currency represents a supported currency in the domain.
// Catalogs are replaced wholesale; a Currency is never patched field by field.
type Currency struct {
	Code          string `json:"code" validate:"required,len=3,uppercase"` // Primary Key (e.g., "USD")
	Name          string `json:"name" validate:"required"`                 // e.g., "US Dollar"
	Symbol        string `json:"symbol"`                                   // e.g., "$"
	DecimalPlaces int    `json:"decimalPlaces" validate:"gte=0,lte=18"`    // e.g., 2 for USD, 0 for JPY
}

// DefaultCurrencies is the built-in catalog used when the catalog source is unreachable,
// so downstream components never work against an empty currency set.
func DefaultCurrencies() []Currency {
	return []Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2},
		{Code: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2},
		{Code: "GBP", Name: "British Pound", Symbol: "£", DecimalPlaces: 2},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0},
	}
}

// RateTable holds units of each currency per one unit of Base.
// Rates[Base] is always 1.
type RateTable struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// Empty reports whether the table carries nothing beyond the base entry.
func (t RateTable) Empty() bool {
	for code := range t.Rates {
		if code != t.Base {
			return false
		}
	}
	return true
}
