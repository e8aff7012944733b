package domain

import "time"

// ConversionHistoryEntry records one performed dataset conversion.
type ConversionHistoryEntry struct {
	ID                          string      `json:"id"`
	Timestamp                   time.Time   `json:"timestamp"`
	FromCurrency                string      `json:"fromCurrency"`
	ToCurrency                  string      `json:"toCurrency"`
	Schema                      RecordShape `json:"schema"`
	ItemCount                   int         `json:"itemCount"`
	UsedAuthoritativeConversion bool        `json:"usedAuthoritativeConversion"`
}

// ConversionStats summarises a collection conversion.
type ConversionStats struct {
	Records             int `json:"records"`
	FieldsConverted     int `json:"fieldsConverted"`
	AuthoritativeFields int `json:"authoritativeFields"`
	FallbackFields      int `json:"fallbackFields"`
}
