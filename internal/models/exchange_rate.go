package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is a row of rate_snapshots: one installed rate table.
type RateSnapshot struct {
	SnapshotID   string    `json:"snapshotID"` // Primary Key (UUID)
	BaseCurrency string    `json:"baseCurrency"`
	FetchedAt    time.Time `json:"fetchedAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RateSnapshotEntry is a row of rate_snapshot_entries.
type RateSnapshotEntry struct {
	SnapshotID   string          `json:"snapshotID"`
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"` // NUMERIC(30,12)
}
