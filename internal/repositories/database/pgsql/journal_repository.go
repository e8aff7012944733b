package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	"github.com/SscSPs/finance_engine/internal/models"
	"github.com/SscSPs/finance_engine/internal/utils/accounting"
	"github.com/SscSPs/finance_engine/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournal inserts the journal header and all its lines in one database transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, entry domain.JournalEntry) error {
	if err := accounting.ValidateStoredBalance(entry.Lines); err != nil {
		return err
	}
	journal, lines := mapping.ToModelJournal(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	_, err = tx.Exec(ctx, `
		INSERT INTO journals (
			journal_id, period, doc_date, reference, description, status,
			total_debits, total_credits,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		journal.JournalID, journal.Period, journal.DocDate, journal.Reference, journal.Description, journal.Status,
		journal.TotalDebits, journal.TotalCredits,
		journal.CreatedAt, journal.CreatedBy, journal.LastUpdatedAt, journal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (journal_id, line_no, account_id, description, debit_amount, credit_amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, l := range lines {
		batch.Queue(lineQuery, l.JournalID, l.LineNo, l.AccountID, l.Description, l.DebitAmount, l.CreditAmount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal "+journal.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal with its lines in entry order.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	var m models.Journal
	err := r.Pool.QueryRow(ctx, `
		SELECT journal_id, period, doc_date, reference, description, status,
		       total_debits, total_credits,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`, journalID).Scan(
		&m.JournalID, &m.Period, &m.DocDate, &m.Reference, &m.Description, &m.Status,
		&m.TotalDebits, &m.TotalCredits,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal %s: %w", journalID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal "+journalID, err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT journal_id, line_no, account_id, description, debit_amount, credit_amount
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_no;
	`, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JournalLine, error) {
		var l models.JournalLine
		err := row.Scan(&l.JournalID, &l.LineNo, &l.AccountID, &l.Description, &l.DebitAmount, &l.CreditAmount)
		return l, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan lines for journal "+journalID, err)
	}

	entry := mapping.ToDomainJournal(m, lines)
	return &entry, nil
}
