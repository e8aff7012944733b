package accounting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/accounting"
)

func TestLedgerTotals(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "cash", DebitAmount: 0.1},
		{AccountID: "cash", DebitAmount: 0.2},
		{AccountID: "sales", CreditAmount: 0.3},
	}

	debits, credits := accounting.LedgerTotals(lines)

	assert.Equal(t, "0.3", debits.String())
	assert.True(t, debits.Equal(credits))
}

func TestStoredAmount_RoundsToStoragePlaces(t *testing.T) {
	assert.Equal(t, "12.3457", accounting.StoredAmount(12.34567).String())
	assert.True(t, accounting.StoredAmount(0).IsZero())
}

func TestValidateStoredBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{
			name: "balanced",
			lines: []domain.JournalLine{
				{AccountID: "cash", DebitAmount: 100},
				{AccountID: "sales", CreditAmount: 100},
			},
		},
		{
			name: "within tolerance",
			lines: []domain.JournalLine{
				{AccountID: "cash", DebitAmount: 100.004},
				{AccountID: "sales", CreditAmount: 100},
			},
		},
		{
			name: "unbalanced",
			lines: []domain.JournalLine{
				{AccountID: "cash", DebitAmount: 100},
				{AccountID: "sales", CreditAmount: 90},
			},
			wantErr: true,
		},
		{
			name: "both sides on one line",
			lines: []domain.JournalLine{
				{AccountID: "cash", DebitAmount: 10, CreditAmount: 10},
				{AccountID: "sales"},
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := accounting.ValidateStoredBalance(tc.lines)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
