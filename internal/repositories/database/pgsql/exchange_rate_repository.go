package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	"github.com/SscSPs/finance_engine/internal/models"
	"github.com/SscSPs/finance_engine/internal/utils/mapping"
)

// PgxRateSnapshotRepository stores whole rate tables, one snapshot per installed table.
type PgxRateSnapshotRepository struct {
	BaseRepository
}

func newPgxRateSnapshotRepository(pool *pgxpool.Pool) portsrepo.RateSnapshotRepositoryFacade {
	return &PgxRateSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateSnapshotRepositoryFacade = (*PgxRateSnapshotRepository)(nil)

// SaveRateTable persists table as a new snapshot.
func (r *PgxRateSnapshotRepository) SaveRateTable(ctx context.Context, table domain.RateTable) error {
	snapshot, entries := mapping.ToModelRateSnapshot(uuid.NewString(), table)
	snapshot.CreatedAt = time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO rate_snapshots (snapshot_id, base_currency, fetched_at, created_at)
		VALUES ($1, $2, $3, $4);
	`, snapshot.SnapshotID, snapshot.BaseCurrency, snapshot.FetchedAt, snapshot.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert rate snapshot", err)
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO rate_snapshot_entries (snapshot_id, currency_code, rate)
			VALUES ($1, $2, $3);
		`, e.SnapshotID, e.CurrencyCode, e.Rate)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert rate snapshot entries", err)
	}

	return r.Commit(ctx, tx)
}

// FindLatestRateTable returns the most recent snapshot for base.
func (r *PgxRateSnapshotRepository) FindLatestRateTable(ctx context.Context, baseCurrencyCode string) (*domain.RateTable, error) {
	var snapshot models.RateSnapshot
	err := r.Pool.QueryRow(ctx, `
		SELECT snapshot_id, base_currency, fetched_at, created_at
		FROM rate_snapshots
		WHERE base_currency = $1
		ORDER BY fetched_at DESC, created_at DESC
		LIMIT 1;
	`, baseCurrencyCode).Scan(&snapshot.SnapshotID, &snapshot.BaseCurrency, &snapshot.FetchedAt, &snapshot.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rate snapshot for %s: %w", baseCurrencyCode, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to find rate snapshot", err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT snapshot_id, currency_code, rate
		FROM rate_snapshot_entries
		WHERE snapshot_id = $1;
	`, snapshot.SnapshotID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rate snapshot entries", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.RateSnapshotEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan rate snapshot entries", err)
	}

	table := mapping.ToDomainRateTable(snapshot, entries)
	return &table, nil
}
