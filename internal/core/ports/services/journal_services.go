package services

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// JournalValidatorSvc validates journal entries while they are being edited.
type JournalValidatorSvc interface {
	// ValidateJournal reports totals, balance state and issues. It never fails.
	ValidateJournal(ctx context.Context, entry domain.JournalEntry, accounts []domain.Account) domain.EntryValidation

	// ResolveAccountBehavior returns the debit/credit behavior for an account category.
	ResolveAccountBehavior(category domain.AccountCategory) domain.AccountBehavior
}

// JournalReaderSvc defines read operations for journal data.
type JournalReaderSvc interface {
	GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal data.
type JournalWriterSvc interface {
	// SaveJournal validates and persists an entry. When the entry is not savable the
	// returned error wraps apperrors.ErrJournalNotSavable and the validation is returned.
	SaveJournal(ctx context.Context, entry domain.JournalEntry, accounts []domain.Account, creatorUserID string) (*domain.JournalEntry, domain.EntryValidation, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalValidatorSvc
	JournalReaderSvc
	JournalWriterSvc
}
