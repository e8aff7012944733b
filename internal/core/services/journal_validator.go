package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/accounting"
)

// minJournalLines is the fewest lines a double-entry journal can have.
const minJournalLines = 2

// ValidateLine checks a single journal line. Amounts are judged at their stored precision.
// account is nil when the line's account is not selected or could not be resolved.
func ValidateLine(index int, line domain.JournalLine, account *domain.Account) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	add := func(kind domain.IssueKind, field, msg string) {
		issues = append(issues, domain.ValidationIssue{
			Kind: kind, LineIndex: index, Field: field, Message: msg, Blocking: kind.Blocking(),
		})
	}

	category := domain.Unknown
	switch {
	case strings.TrimSpace(line.AccountID) == "":
		add(domain.IssueMissingAccount, "accountId", "Select an account")
	case account == nil:
		add(domain.IssueMissingAccount, "accountId", fmt.Sprintf("Account %s not found", line.AccountID))
	default:
		category = account.Category
	}

	if strings.TrimSpace(line.Description) == "" {
		add(domain.IssueMissingDescription, "description", "Description is required")
	}

	debit, credit := accounting.StoredAmount(line.DebitAmount), accounting.StoredAmount(line.CreditAmount)
	if debit.IsNegative() {
		add(domain.IssueNegativeAmount, "debitAmount", "Debit amount cannot be negative")
	}
	if credit.IsNegative() {
		add(domain.IssueNegativeAmount, "creditAmount", "Credit amount cannot be negative")
	}

	hasDebit, hasCredit := !debit.IsZero(), !credit.IsZero()
	switch {
	case !hasDebit && !hasCredit:
		add(domain.IssueMissingAmount, "amount", "Enter either a debit or a credit amount")
	case hasDebit && hasCredit:
		add(domain.IssueConflictingAmount, "amount", "A line cannot carry both a debit and a credit amount")
	}

	behavior := ResolveAccountBehavior(category)
	if hasDebit && !behavior.Allows(domain.DebitSide) {
		add(domain.IssueDisallowedSide, "debitAmount", fmt.Sprintf("%s accounts are normally not debited. %s", category, behavior.HelpText))
	}
	if hasCredit && !behavior.Allows(domain.CreditSide) {
		add(domain.IssueDisallowedSide, "creditAmount", fmt.Sprintf("%s accounts are normally not credited. %s", category, behavior.HelpText))
	}

	return issues
}

// ValidateEntry validates header, lines and balance of a journal entry.
func ValidateEntry(entry domain.JournalEntry, accounts map[string]domain.Account) domain.EntryValidation {
	result := domain.EntryValidation{Issues: []domain.ValidationIssue{}}

	header := []struct{ field, value string }{
		{"period", entry.Period},
		{"docDate", entry.DocDate},
		{"reference", entry.Reference},
		{"description", entry.Description},
	}
	for _, h := range header {
		if strings.TrimSpace(h.value) == "" {
			result.Issues = append(result.Issues, domain.ValidationIssue{
				Kind:      domain.IssueMissingHeaderField,
				LineIndex: domain.HeaderLine,
				Field:     h.field,
				Message:   fmt.Sprintf("%s is required", h.field),
				Blocking:  true,
			})
		}
	}

	if len(entry.Lines) < minJournalLines {
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Kind:      domain.IssueInsufficientLines,
			LineIndex: domain.HeaderLine,
			Field:     "lines",
			Message:   fmt.Sprintf("journal must have at least %d lines", minJournalLines),
			Blocking:  true,
		})
	}

	for i, line := range entry.Lines {
		var account *domain.Account
		if acc, ok := accounts[line.AccountID]; ok {
			account = &acc
		}
		result.Issues = append(result.Issues, ValidateLine(i, line, account)...)
	}

	debits, credits := accounting.LedgerTotals(entry.Lines)
	result.TotalDebits, result.TotalCredits = debits.InexactFloat64(), credits.InexactFloat64()
	result.IsBalanced = accounting.Balanced(debits, credits)
	if !result.IsBalanced {
		result.Issues = append(result.Issues, domain.ValidationIssue{
			Kind:      domain.IssueUnbalanced,
			LineIndex: domain.HeaderLine,
			Message:   fmt.Sprintf("debits (%.2f) do not equal credits (%.2f)", result.TotalDebits, result.TotalCredits),
			Blocking:  true,
		})
	}

	return result
}

// AccountsByID indexes accounts for ValidateEntry.
func AccountsByID(accounts []domain.Account) map[string]domain.Account {
	out := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		out[a.ID] = a
	}
	return out
}
