package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
)

// journalService validates journal entries and persists the savable ones.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time
}

// NewJournalService creates a new JournalService. journalRepo may be nil, in which
// case validation still works and persistence returns apperrors.ErrJournalStorageDisabled.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, now: time.Now}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ValidateJournal(ctx context.Context, entry domain.JournalEntry, accounts []domain.Account) domain.EntryValidation {
	result := ValidateEntry(entry, AccountsByID(accounts))
	s.LogDebug(ctx, "Journal validated",
		slog.Int("lines", len(entry.Lines)),
		slog.Bool("balanced", result.IsBalanced),
		slog.Int("issues", len(result.Issues)))
	return result
}

func (s *journalService) ResolveAccountBehavior(category domain.AccountCategory) domain.AccountBehavior {
	return ResolveAccountBehavior(category)
}

// GetJournalByID retrieves a saved journal entry.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	if s.journalRepo == nil {
		return nil, apperrors.ErrJournalStorageDisabled
	}
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal", slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to get journal in service: %w", err)
	}
	return journal, nil
}

// SaveJournal validates the entry and persists it as posted when it can be saved.
func (s *journalService) SaveJournal(ctx context.Context, entry domain.JournalEntry, accounts []domain.Account, creatorUserID string) (*domain.JournalEntry, domain.EntryValidation, error) {
	validation := ValidateEntry(entry, AccountsByID(accounts))
	if !validation.CanSave() {
		s.LogInfo(ctx, "Journal rejected",
			slog.Int("blocking_issues", len(validation.BlockingIssues())),
			slog.Float64("total_debits", validation.TotalDebits),
			slog.Float64("total_credits", validation.TotalCredits))
		return nil, validation, fmt.Errorf("%w: %d blocking issue(s)", apperrors.ErrJournalNotSavable, len(validation.BlockingIssues()))
	}
	if s.journalRepo == nil {
		return nil, validation, apperrors.ErrJournalStorageDisabled
	}

	now := s.now().UTC()
	entry.ID = uuid.NewString()
	entry.Status = domain.Posted
	entry.Lines = append([]domain.JournalLine(nil), entry.Lines...)
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.journalRepo.SaveJournal(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("journal_id", entry.ID))
		return nil, validation, fmt.Errorf("failed to save journal in service: %w", err)
	}

	s.LogInfo(ctx, "Journal posted", slog.String("journal_id", entry.ID), slog.Int("lines", len(entry.Lines)))
	return &entry, validation, nil
}
