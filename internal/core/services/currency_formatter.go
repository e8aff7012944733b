package services

import (
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

const defaultDecimalPlaces = 2

// CurrencyFormatter renders amounts for display using catalog metadata and a locale.
type CurrencyFormatter struct {
	mu      sync.RWMutex
	catalog map[string]domain.Currency
	printer *message.Printer
}

// NewCurrencyFormatter creates a formatter for a BCP 47 locale tag such as "en-US".
// Unparseable tags fall back to American English.
func NewCurrencyFormatter(locale string, catalog []domain.Currency) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	f := &CurrencyFormatter{printer: message.NewPrinter(tag)}
	f.SetCatalog(catalog)
	return f
}

// SetCatalog swaps the currency metadata wholesale.
func (f *CurrencyFormatter) SetCatalog(catalog []domain.Currency) {
	byCode := make(map[string]domain.Currency, len(catalog))
	for _, c := range catalog {
		byCode[normalizeCode(c.Code)] = c
	}
	f.mu.Lock()
	f.catalog = byCode
	f.mu.Unlock()
}

// Format renders amount in currencyCode, e.g. 1234.5 USD -> "$1,234.50" under en-US.
// Unknown currencies are rendered with the code as symbol and two decimals.
func (f *CurrencyFormatter) Format(amount float64, currencyCode string) string {
	code := normalizeCode(currencyCode)
	f.mu.RLock()
	cur, ok := f.catalog[code]
	f.mu.RUnlock()

	symbol, places := code+" ", defaultDecimalPlaces
	if ok {
		places = cur.DecimalPlaces
		if cur.Symbol != "" {
			symbol = cur.Symbol
		}
	}

	rounded := decimal.NewFromFloat(amount).Round(int32(places))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(places)))
}

// Round rounds amount to the currency's decimal places (half away from zero).
func (f *CurrencyFormatter) Round(amount float64, currencyCode string) float64 {
	places := defaultDecimalPlaces
	f.mu.RLock()
	if cur, ok := f.catalog[normalizeCode(currencyCode)]; ok {
		places = cur.DecimalPlaces
	}
	f.mu.RUnlock()
	return decimal.NewFromFloat(amount).Round(int32(places)).InexactFloat64()
}
