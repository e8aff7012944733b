package repositories

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// RateSnapshotReader defines read operations for persisted rate tables.
type RateSnapshotReader interface {
	// FindLatestRateTable returns the most recently saved table for a base currency.
	// Returns apperrors.ErrNotFound when nothing has been saved for that base.
	FindLatestRateTable(ctx context.Context, baseCurrencyCode string) (*domain.RateTable, error)
}

// RateSnapshotWriter defines write operations for persisted rate tables.
type RateSnapshotWriter interface {
	// SaveRateTable persists a whole rate table as one snapshot.
	SaveRateTable(ctx context.Context, table domain.RateTable) error
}

// RateSnapshotRepositoryFacade combines all rate snapshot repository interfaces.
type RateSnapshotRepositoryFacade interface {
	RateSnapshotReader
	RateSnapshotWriter
}
