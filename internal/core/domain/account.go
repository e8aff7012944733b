package domain

import "strings"

// AccountCategory defines the fundamental accounting type of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "asset"
	Liability AccountCategory = "liability"
	Equity    AccountCategory = "equity"
	Revenue   AccountCategory = "revenue"
	Expense   AccountCategory = "expense"
	Unknown   AccountCategory = "unknown"
)

// ParseAccountCategory maps free-form input onto a category.
// Matching is case-insensitive and "income" is accepted for revenue; anything else is Unknown.
func ParseAccountCategory(s string) AccountCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asset", "assets":
		return Asset
	case "liability", "liabilities":
		return Liability
	case "equity":
		return Equity
	case "revenue", "income":
		return Revenue
	case "expense", "expenses":
		return Expense
	default:
		return Unknown
	}
}

// Side is one of the two columns of a journal line.
type Side string

const (
	DebitSide  Side = "debit"
	CreditSide Side = "credit"
)

// Account is read-only input to the ledger core.
type Account struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category AccountCategory `json:"category"`
}

// AccountBehavior describes which amount columns a journal line may use for an account.
type AccountBehavior struct {
	DebitEnabled  bool   `json:"debitEnabled"`
	CreditEnabled bool   `json:"creditEnabled"`
	NormalSide    Side   `json:"normalSide"`
	DebitLabel    string `json:"debitLabel"`
	CreditLabel   string `json:"creditLabel"`
	HelpText      string `json:"helpText"`
}

// Allows reports whether amounts may be entered on the given side.
func (b AccountBehavior) Allows(side Side) bool {
	if side == DebitSide {
		return b.DebitEnabled
	}
	return b.CreditEnabled
}
