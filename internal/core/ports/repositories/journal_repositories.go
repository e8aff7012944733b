package repositories

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a journal entry with its lines in their original order.
	FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a balanced journal entry and its lines atomically.
	SaveJournal(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
