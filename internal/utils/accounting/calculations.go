package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// StoragePlaces is the number of fractional digits kept for persisted amounts.
const StoragePlaces = 4

var tolerance = decimal.NewFromFloat(domain.BalanceTolerance)

// StoredAmount rounds a line amount to the precision it is persisted with.
func StoredAmount(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(StoragePlaces)
}

// LedgerTotals sums debit and credit columns exactly, using the stored precision
// of every line so the totals match what the database will hold.
func LedgerTotals(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(StoredAmount(l.DebitAmount))
		credits = credits.Add(StoredAmount(l.CreditAmount))
	}
	return debits, credits
}

// Balanced reports whether stored debit and credit totals agree within BalanceTolerance.
func Balanced(debits, credits decimal.Decimal) bool {
	return debits.Sub(credits).Abs().LessThan(tolerance)
}

// ValidateStoredBalance checks a journal against the constraints enforced by the
// journals table: debits and credits within tolerance, and no line carrying both sides.
func ValidateStoredBalance(lines []domain.JournalLine) error {
	for i, l := range lines {
		if !StoredAmount(l.DebitAmount).IsZero() && !StoredAmount(l.CreditAmount).IsZero() {
			return fmt.Errorf("%w: line %d has both debit and credit amounts", apperrors.ErrValidation, i+1)
		}
	}
	debits, credits := LedgerTotals(lines)
	if !Balanced(debits, credits) {
		return fmt.Errorf("%w: stored debits %s do not balance credits %s",
			apperrors.ErrValidation, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}
