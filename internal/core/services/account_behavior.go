package services

import "github.com/SscSPs/finance_engine/internal/core/domain"

var accountBehaviors = map[domain.AccountCategory]domain.AccountBehavior{
	domain.Asset: {
		DebitEnabled: true, CreditEnabled: true, NormalSide: domain.DebitSide,
		DebitLabel: "Increase", CreditLabel: "Decrease",
		HelpText: "Asset accounts grow with debits. Credit an asset to record money or value leaving it.",
	},
	domain.Liability: {
		DebitEnabled: true, CreditEnabled: true, NormalSide: domain.CreditSide,
		DebitLabel: "Decrease", CreditLabel: "Increase",
		HelpText: "Liability accounts grow with credits. Debit a liability when it is paid down.",
	},
	domain.Equity: {
		DebitEnabled: true, CreditEnabled: true, NormalSide: domain.CreditSide,
		DebitLabel: "Decrease", CreditLabel: "Increase",
		HelpText: "Equity accounts grow with credits. Debit equity for drawings or distributions.",
	},
	domain.Revenue: {
		DebitEnabled: false, CreditEnabled: true, NormalSide: domain.CreditSide,
		DebitLabel: "Not allowed", CreditLabel: "Revenue earned",
		HelpText: "Revenue is recorded as a credit. Use a separate contra or expense account for reductions.",
	},
	domain.Expense: {
		DebitEnabled: true, CreditEnabled: false, NormalSide: domain.DebitSide,
		DebitLabel: "Expense incurred", CreditLabel: "Not allowed",
		HelpText: "Expenses are recorded as a debit. Book refunds against an asset or revenue account.",
	},
	domain.Unknown: {
		DebitEnabled: true, CreditEnabled: true, NormalSide: domain.DebitSide,
		DebitLabel: "Debit", CreditLabel: "Credit",
		HelpText: "Select an account to see which side it normally carries.",
	},
}

// ResolveAccountBehavior maps an account category to its debit/credit behavior.
// Unset or unrecognised categories behave like Unknown.
func ResolveAccountBehavior(category domain.AccountCategory) domain.AccountBehavior {
	if b, ok := accountBehaviors[category]; ok {
		return b
	}
	return accountBehaviors[domain.Unknown]
}

// ApplyAccountChange returns line with any amount in a column disabled for category cleared.
// Editors call it when the account of a line changes; the validator itself never clears.
func ApplyAccountChange(line domain.JournalLine, category domain.AccountCategory) domain.JournalLine {
	b := ResolveAccountBehavior(category)
	if !b.DebitEnabled {
		line.DebitAmount = 0
	}
	if !b.CreditEnabled {
		line.CreditAmount = 0
	}
	return line
}
