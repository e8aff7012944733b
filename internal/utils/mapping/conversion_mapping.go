package mapping

import (
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/models"
)

// ToModelConversionRecord converts a history entry to a conversion_history row.
func ToModelConversionRecord(d domain.ConversionHistoryEntry) models.ConversionRecord {
	return models.ConversionRecord{
		EntryID:           d.ID,
		ConvertedAt:       d.Timestamp,
		FromCurrency:      d.FromCurrency,
		ToCurrency:        d.ToCurrency,
		SchemaName:        string(d.Schema),
		ItemCount:         d.ItemCount,
		UsedAuthoritative: d.UsedAuthoritativeConversion,
	}
}

// ToDomainConversionEntry converts a conversion_history row to a history entry.
func ToDomainConversionEntry(m models.ConversionRecord) domain.ConversionHistoryEntry {
	return domain.ConversionHistoryEntry{
		ID:                          m.EntryID,
		Timestamp:                   m.ConvertedAt,
		FromCurrency:                m.FromCurrency,
		ToCurrency:                  m.ToCurrency,
		Schema:                      domain.ResolveShape(m.SchemaName),
		ItemCount:                   m.ItemCount,
		UsedAuthoritativeConversion: m.UsedAuthoritative,
	}
}
