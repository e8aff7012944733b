package mapping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/models"
	"github.com/SscSPs/finance_engine/internal/utils/mapping"
)

func TestJournalMapping_PreservesLineOrder(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	entry := domain.JournalEntry{
		ID:          "j-1",
		Period:      "2024-01",
		DocDate:     "2024-01-15",
		Reference:   "INV-1",
		Description: "Cash sale",
		Status:      domain.Posted,
		Lines: []domain.JournalLine{
			{AccountID: "cash", Description: "in", DebitAmount: 150.25},
			{AccountID: "tax", Description: "vat", CreditAmount: 25.25},
			{AccountID: "sales", Description: "sale", CreditAmount: 125},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "u1", LastUpdatedAt: now, LastUpdatedBy: "u1"},
	}

	journal, lines := mapping.ToModelJournal(entry)

	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, i, l.LineNo)
		assert.Equal(t, "j-1", l.JournalID)
	}
	assert.Equal(t, "150.25", journal.TotalDebits.String())
	assert.Equal(t, "150.25", journal.TotalCredits.String())
	assert.Equal(t, models.JournalStatus("POSTED"), journal.Status)

	back := mapping.ToDomainJournal(journal, lines)
	assert.Equal(t, entry, back)
}
