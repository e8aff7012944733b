package mapping

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/models"
)

// ToModelRateSnapshot converts a domain RateTable to a snapshot row and its entries,
// ordered by currency code.
func ToModelRateSnapshot(snapshotID string, t domain.RateTable) (models.RateSnapshot, []models.RateSnapshotEntry) {
	snapshot := models.RateSnapshot{
		SnapshotID:   snapshotID,
		BaseCurrency: t.Base,
		FetchedAt:    t.FetchedAt,
	}
	codes := make([]string, 0, len(t.Rates))
	for code := range t.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]models.RateSnapshotEntry, len(codes))
	for i, code := range codes {
		entries[i] = models.RateSnapshotEntry{
			SnapshotID:   snapshotID,
			CurrencyCode: code,
			Rate:         decimal.NewFromFloat(t.Rates[code]),
		}
	}
	return snapshot, entries
}

// ToDomainRateTable converts a snapshot row and its entries to a domain RateTable.
func ToDomainRateTable(m models.RateSnapshot, entries []models.RateSnapshotEntry) domain.RateTable {
	rates := make(map[string]float64, len(entries))
	for _, e := range entries {
		rates[e.CurrencyCode] = e.Rate.InexactFloat64()
	}
	return domain.RateTable{Base: m.BaseCurrency, Rates: rates, FetchedAt: m.FetchedAt}
}
