package domain

// Record is an open-ended financial record as loaded by a view (invoice, bill, ledger line...).
type Record map[string]any

// Well-known record keys.
const (
	RecordIDKey       = "id"
	RecordCurrencyKey = "currency"
)

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RecordShape names a kind of financial record. The set is closed; unknown names
// resolve to ShapeFinancial.
type RecordShape string

const (
	ShapeInvoices        RecordShape = "invoices"
	ShapeBills           RecordShape = "bills"
	ShapePayments        RecordShape = "payments"
	ShapeGLEntries       RecordShape = "gl_entries"
	ShapeJournalLines    RecordShape = "journal_lines"
	ShapeChartOfAccounts RecordShape = "coa"
	ShapeAccountBalances RecordShape = "account_balances"
	ShapeFinancial       RecordShape = "financial"
)

var monetaryFields = map[RecordShape][]string{
	ShapeInvoices:        {"subtotal", "tax", "discount", "total", "amount_paid", "balance_due"},
	ShapeBills:           {"subtotal", "tax", "total", "amount_paid", "balance_due"},
	ShapePayments:        {"amount", "fee"},
	ShapeGLEntries:       {"debit", "credit", "balance"},
	ShapeJournalLines:    {"debit_amount", "credit_amount"},
	ShapeChartOfAccounts: {"opening_balance", "balance"},
	ShapeAccountBalances: {"opening_balance", "debits", "credits", "closing_balance"},
	ShapeFinancial:       {"amount", "balance", "total", "subtotal", "tax", "discount", "debit", "credit"},
}

// ResolveShape maps a schema name to a known shape, falling back to ShapeFinancial.
func ResolveShape(name string) RecordShape {
	if _, ok := monetaryFields[RecordShape(name)]; ok {
		return RecordShape(name)
	}
	return ShapeFinancial
}

// MonetaryFields returns the ordered monetary field names for a shape.
// The returned slice is a copy.
func MonetaryFields(shape RecordShape) []string {
	fields, ok := monetaryFields[shape]
	if !ok {
		fields = monetaryFields[ShapeFinancial]
	}
	return append([]string(nil), fields...)
}
