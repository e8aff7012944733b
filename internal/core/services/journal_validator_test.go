package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/core/services"
)

var testAccounts = []domain.Account{
	{ID: "cash", Code: "1000", Name: "Cash", Category: domain.Asset},
	{ID: "loan", Code: "2000", Name: "Bank Loan", Category: domain.Liability},
	{ID: "sales", Code: "4000", Name: "Sales", Category: domain.Revenue},
	{ID: "rent", Code: "6000", Name: "Rent", Category: domain.Expense},
}

func validEntry(lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		Period:      "2024-05",
		DocDate:     "2024-05-01",
		Reference:   "JV-001",
		Description: "Monthly entry",
		Lines:       lines,
	}
}

func issueKinds(issues []domain.ValidationIssue) []domain.IssueKind {
	kinds := make([]domain.IssueKind, 0, len(issues))
	for _, i := range issues {
		kinds = append(kinds, i.Kind)
	}
	return kinds
}

func TestResolveAccountBehavior(t *testing.T) {
	testCases := []struct {
		category      domain.AccountCategory
		debit, credit bool
		normal        domain.Side
	}{
		{domain.Asset, true, true, domain.DebitSide},
		{domain.Liability, true, true, domain.CreditSide},
		{domain.Equity, true, true, domain.CreditSide},
		{domain.Revenue, false, true, domain.CreditSide},
		{domain.Expense, true, false, domain.DebitSide},
		{domain.Unknown, true, true, domain.DebitSide},
		{domain.AccountCategory(""), true, true, domain.DebitSide},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			b := services.ResolveAccountBehavior(tc.category)
			assert.Equal(t, tc.debit, b.DebitEnabled)
			assert.Equal(t, tc.credit, b.CreditEnabled)
			assert.Equal(t, tc.normal, b.NormalSide)
			assert.NotEmpty(t, b.HelpText)
			assert.Equal(t, tc.debit, b.Allows(domain.DebitSide))
		})
	}
}

func TestApplyAccountChange(t *testing.T) {
	line := domain.JournalLine{AccountID: "sales", DebitAmount: 10, CreditAmount: 5}

	assert.Equal(t, 0.0, services.ApplyAccountChange(line, domain.Revenue).DebitAmount)
	assert.Equal(t, 5.0, services.ApplyAccountChange(line, domain.Revenue).CreditAmount)
	assert.Equal(t, 0.0, services.ApplyAccountChange(line, domain.Expense).CreditAmount)
	assert.Equal(t, line, services.ApplyAccountChange(line, domain.Asset))
}

func TestValidateEntry_Balanced(t *testing.T) {
	entry := validEntry(
		domain.JournalLine{AccountID: "cash", Description: "Cash sale", DebitAmount: 100},
		domain.JournalLine{AccountID: "sales", Description: "Cash sale", CreditAmount: 100},
	)

	result := services.ValidateEntry(entry, services.AccountsByID(testAccounts))

	assert.Equal(t, 100.0, result.TotalDebits)
	assert.Equal(t, 100.0, result.TotalCredits)
	assert.True(t, result.IsBalanced)
	assert.Empty(t, result.Issues)
	assert.True(t, result.CanSave())
}

func TestValidateEntry_DisallowedSideIsAdvisory(t *testing.T) {
	entry := validEntry(
		domain.JournalLine{AccountID: "cash", Description: "Refund", DebitAmount: 100},
		domain.JournalLine{AccountID: "rent", Description: "Refund", CreditAmount: 100},
	)

	result := services.ValidateEntry(entry, services.AccountsByID(testAccounts))

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, domain.IssueDisallowedSide, issue.Kind)
	assert.Equal(t, 1, issue.LineIndex)
	assert.Equal(t, "creditAmount", issue.Field)
	assert.False(t, issue.Blocking)
	assert.True(t, result.CanSave())
}

func TestValidateEntry_Unbalanced(t *testing.T) {
	entry := validEntry(
		domain.JournalLine{AccountID: "rent", Description: "Rent", DebitAmount: 100},
		domain.JournalLine{AccountID: "loan", Description: "Rent", CreditAmount: 90},
	)

	result := services.ValidateEntry(entry, services.AccountsByID(testAccounts))

	assert.False(t, result.IsBalanced)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, domain.IssueUnbalanced, result.Issues[0].Kind)
	assert.Equal(t, domain.HeaderLine, result.Issues[0].LineIndex)
	assert.Equal(t, "debits (100.00) do not equal credits (90.00)", result.Issues[0].Message)
	assert.False(t, result.CanSave())
}

func TestValidateEntry_ToleranceBoundary(t *testing.T) {
	within := validEntry(
		domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: 100},
		domain.JournalLine{AccountID: "loan", Description: "x", CreditAmount: 100.005},
	)
	assert.True(t, services.ValidateEntry(within, services.AccountsByID(testAccounts)).IsBalanced)

	outside := validEntry(
		domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: 100},
		domain.JournalLine{AccountID: "loan", Description: "x", CreditAmount: 100.02},
	)
	assert.False(t, services.ValidateEntry(outside, services.AccountsByID(testAccounts)).IsBalanced)
}

func TestValidateEntry_LineAndHeaderIssues(t *testing.T) {
	testCases := []struct {
		name     string
		entry    domain.JournalEntry
		expected []domain.IssueKind
	}{
		{
			name: "missing account and description",
			entry: validEntry(
				domain.JournalLine{DebitAmount: 10},
				domain.JournalLine{AccountID: "cash", Description: "ok", CreditAmount: 10},
			),
			expected: []domain.IssueKind{domain.IssueMissingAccount, domain.IssueMissingDescription},
		},
		{
			name: "unknown account",
			entry: validEntry(
				domain.JournalLine{AccountID: "ghost", Description: "x", DebitAmount: 10},
				domain.JournalLine{AccountID: "cash", Description: "x", CreditAmount: 10},
			),
			expected: []domain.IssueKind{domain.IssueMissingAccount},
		},
		{
			name: "missing and conflicting amounts",
			entry: validEntry(
				domain.JournalLine{AccountID: "cash", Description: "x"},
				domain.JournalLine{AccountID: "loan", Description: "x", DebitAmount: 5, CreditAmount: 5},
			),
			expected: []domain.IssueKind{domain.IssueMissingAmount, domain.IssueConflictingAmount},
		},
		{
			name: "single line",
			entry: validEntry(
				domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: 10},
			),
			expected: []domain.IssueKind{domain.IssueInsufficientLines, domain.IssueUnbalanced},
		},
		{
			name: "missing header fields",
			entry: domain.JournalEntry{Lines: []domain.JournalLine{
				{AccountID: "cash", Description: "x", DebitAmount: 10},
				{AccountID: "loan", Description: "x", CreditAmount: 10},
			}},
			expected: []domain.IssueKind{
				domain.IssueMissingHeaderField, domain.IssueMissingHeaderField,
				domain.IssueMissingHeaderField, domain.IssueMissingHeaderField,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := services.ValidateEntry(tc.entry, services.AccountsByID(testAccounts))
			assert.Equal(t, tc.expected, issueKinds(result.Issues))
			assert.False(t, result.CanSave())
		})
	}
}

func TestValidateEntry_UsesStoredPrecision(t *testing.T) {
	// 100.00996 is stored as 100.0100, which is a full tolerance away from 100.
	entry := validEntry(
		domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: 100.00996},
		domain.JournalLine{AccountID: "loan", Description: "x", CreditAmount: 100},
	)

	result := services.ValidateEntry(entry, services.AccountsByID(testAccounts))

	assert.False(t, result.IsBalanced)
	assert.Equal(t, 100.01, result.TotalDebits)
	assert.Equal(t, []domain.IssueKind{domain.IssueUnbalanced}, issueKinds(result.Issues))
	assert.Equal(t, "debits (100.01) do not equal credits (100.00)", result.Issues[0].Message)
	assert.False(t, result.CanSave())
}

func TestValidateLine_SubStoragePrecisionAmountIsMissing(t *testing.T) {
	line := domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: 0.00001, CreditAmount: 0.00001}

	issues := services.ValidateLine(0, line, &testAccounts[0])

	assert.Equal(t, []domain.IssueKind{domain.IssueMissingAmount}, issueKinds(issues))

	entry := validEntry(line, domain.JournalLine{AccountID: "loan", Description: "x", DebitAmount: 0.00001})
	assert.False(t, services.ValidateEntry(entry, services.AccountsByID(testAccounts)).CanSave())
}

func TestValidateLine_NegativeAmounts(t *testing.T) {
	testCases := []struct {
		name  string
		line  domain.JournalLine
		field string
	}{
		{"negative debit", domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: -50}, "debitAmount"},
		{"negative credit", domain.JournalLine{AccountID: "cash", Description: "x", CreditAmount: -50}, "creditAmount"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issues := services.ValidateLine(2, tc.line, &testAccounts[0])

			require.Len(t, issues, 1)
			assert.Equal(t, domain.IssueNegativeAmount, issues[0].Kind)
			assert.Equal(t, tc.field, issues[0].Field)
			assert.Equal(t, 2, issues[0].LineIndex)
			assert.True(t, issues[0].Blocking)
		})
	}
}

func TestValidateEntry_NegativeLinesThatBalanceCannotSave(t *testing.T) {
	entry := validEntry(
		domain.JournalLine{AccountID: "cash", Description: "x", DebitAmount: -100},
		domain.JournalLine{AccountID: "loan", Description: "x", CreditAmount: -100},
	)

	result := services.ValidateEntry(entry, services.AccountsByID(testAccounts))

	assert.True(t, result.IsBalanced)
	assert.Equal(t, []domain.IssueKind{domain.IssueNegativeAmount, domain.IssueNegativeAmount}, issueKinds(result.Issues))
	assert.False(t, result.CanSave())
}
