package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	"github.com/SscSPs/finance_engine/internal/models"
	"github.com/SscSPs/finance_engine/internal/utils/mapping"
)

type PgxConversionHistoryRepository struct {
	BaseRepository
}

func newPgxConversionHistoryRepository(pool *pgxpool.Pool) portsrepo.ConversionHistoryRepository {
	return &PgxConversionHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConversionHistoryRepository = (*PgxConversionHistoryRepository)(nil)

func (r *PgxConversionHistoryRepository) SaveConversion(ctx context.Context, entry domain.ConversionHistoryEntry) error {
	m := mapping.ToModelConversionRecord(entry)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO conversion_history (
			entry_id, converted_at, from_currency, to_currency, schema_name, item_count, used_authoritative
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entry_id) DO NOTHING;
	`, m.EntryID, m.ConvertedAt, m.FromCurrency, m.ToCurrency, m.SchemaName, m.ItemCount, m.UsedAuthoritative)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert conversion history entry "+m.EntryID, err)
	}
	return nil
}

// ListRecentConversions returns the newest limit entries, oldest first.
func (r *PgxConversionHistoryRepository) ListRecentConversions(ctx context.Context, limit int) ([]domain.ConversionHistoryEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, converted_at, from_currency, to_currency, schema_name, item_count, used_authoritative
		FROM (
			SELECT * FROM conversion_history ORDER BY converted_at DESC LIMIT $1
		) recent
		ORDER BY converted_at ASC;
	`, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list conversion history", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.ConversionRecord])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan conversion history", err)
	}

	entries := make([]domain.ConversionHistoryEntry, len(records))
	for i, m := range records {
		entries[i] = mapping.ToDomainConversionEntry(m)
	}
	return entries, nil
}
