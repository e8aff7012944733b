package dto

import (
	"time"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/accounting"
)

// JournalLineRequest is one line of a journal entry.
type JournalLineRequest struct {
	AccountID    string  `json:"accountId"`
	Description  string  `json:"description"`
	DebitAmount  float64 `json:"debitAmount" binding:"gte=0"`
	CreditAmount float64 `json:"creditAmount" binding:"gte=0"`
}

// JournalEntryRequest carries an entry under edit plus the accounts its lines refer to.
// Missing header fields and empty lines are reported as validation issues, not binding errors.
type JournalEntryRequest struct {
	Period      string               `json:"period"`
	DocDate     string               `json:"docDate"`
	Reference   string               `json:"reference"`
	Description string               `json:"description"`
	Lines       []JournalLineRequest `json:"lines" binding:"dive"`
	Accounts    []AccountRequest     `json:"accounts" binding:"dive"`
}

// ToDomainEntry converts the request to a draft journal entry.
func (r JournalEntryRequest) ToDomainEntry() domain.JournalEntry {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return domain.JournalEntry{
		Period:      r.Period,
		DocDate:     r.DocDate,
		Reference:   r.Reference,
		Description: r.Description,
		Lines:       lines,
		Status:      domain.Draft,
	}
}

// JournalResponse defines the data returned for a saved journal.
type JournalResponse struct {
	ID            string               `json:"id"`
	Period        string               `json:"period"`
	DocDate       string               `json:"docDate"`
	Reference     string               `json:"reference"`
	Description   string               `json:"description"`
	Status        domain.JournalStatus `json:"status"`
	Lines         []domain.JournalLine `json:"lines"`
	TotalDebits   float64              `json:"totalDebits"`
	TotalCredits  float64              `json:"totalCredits"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	debits, credits := accounting.LedgerTotals(e.Lines)
	return JournalResponse{
		ID:            e.ID,
		Period:        e.Period,
		DocDate:       e.DocDate,
		Reference:     e.Reference,
		Description:   e.Description,
		Status:        e.Status,
		Lines:         e.Lines,
		TotalDebits:   debits.InexactFloat64(),
		TotalCredits:  credits.InexactFloat64(),
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// SaveJournalResponse is returned by the save endpoint, on success and on 422.
type SaveJournalResponse struct {
	Journal    *JournalResponse       `json:"journal,omitempty"`
	Validation domain.EntryValidation `json:"validation"`
	Error      string                 `json:"error,omitempty"`
}
