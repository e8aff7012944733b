package models

import "time"

// ConversionRecord is a row of conversion_history.
type ConversionRecord struct {
	EntryID           string    `json:"entryID"`
	ConvertedAt       time.Time `json:"convertedAt"`
	FromCurrency      string    `json:"fromCurrency"`
	ToCurrency        string    `json:"toCurrency"`
	SchemaName        string    `json:"schemaName"`
	ItemCount         int       `json:"itemCount"`
	UsedAuthoritative bool      `json:"usedAuthoritative"`
}
