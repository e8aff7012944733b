package models

import "github.com/shopspring/decimal"

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// Journal is a row of the journals table.
type Journal struct {
	JournalID    string          `json:"journalID"` // Primary Key (UUID)
	Period       string          `json:"period"`
	DocDate      string          `json:"docDate"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	Status       JournalStatus   `json:"status"`
	TotalDebits  decimal.Decimal `json:"totalDebits"` // NUMERIC(20,4)
	TotalCredits decimal.Decimal `json:"totalCredits"`
	AuditFields
}

// JournalLine is a row of the journal_lines table. LineNo keeps the entry order.
type JournalLine struct {
	JournalID    string          `json:"journalID"`
	LineNo       int             `json:"lineNo"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}
