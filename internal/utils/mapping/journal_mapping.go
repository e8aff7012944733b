package mapping

import (
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/models"
	"github.com/SscSPs/finance_engine/internal/utils/accounting"
)

// ToModelJournal converts a domain JournalEntry to a journal row and its line rows.
// Amounts are stored as NUMERIC, so they pass through decimal at storage precision.
func ToModelJournal(d domain.JournalEntry) (models.Journal, []models.JournalLine) {
	debits, credits := accounting.LedgerTotals(d.Lines)
	journal := models.Journal{
		JournalID:    d.ID,
		Period:       d.Period,
		DocDate:      d.DocDate,
		Reference:    d.Reference,
		Description:  d.Description,
		Status:       models.JournalStatus(d.Status),
		TotalDebits:  debits,
		TotalCredits: credits,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}

	lines := make([]models.JournalLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.JournalLine{
			JournalID:    d.ID,
			LineNo:       i,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  accounting.StoredAmount(l.DebitAmount),
			CreditAmount: accounting.StoredAmount(l.CreditAmount),
		}
	}
	return journal, lines
}

// ToDomainJournal converts a journal row and its ordered line rows to a domain JournalEntry.
func ToDomainJournal(m models.Journal, lines []models.JournalLine) domain.JournalEntry {
	entry := domain.JournalEntry{
		ID:          m.JournalID,
		Period:      m.Period,
		DocDate:     m.DocDate,
		Reference:   m.Reference,
		Description: m.Description,
		Status:      domain.JournalStatus(m.Status),
		Lines:       make([]domain.JournalLine, len(lines)),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		entry.Lines[i] = domain.JournalLine{
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount.InexactFloat64(),
			CreditAmount: l.CreditAmount.InexactFloat64(),
		}
	}
	return entry
}
