package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:           newPgxJournalRepository(dbPool),
		RateSnapshotRepo:      newPgxRateSnapshotRepository(dbPool),
		ConversionHistoryRepo: newPgxConversionHistoryRepository(dbPool),
	}
}
