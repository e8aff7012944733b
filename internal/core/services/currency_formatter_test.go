package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/core/services"
)

func TestCurrencyFormatter_Format(t *testing.T) {
	f := services.NewCurrencyFormatter("en-US", domain.DefaultCurrencies())

	testCases := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"dollars", 1234.5, "USD", "$1,234.50"},
		{"yen has no minor units", 1234.56, "JPY", "¥1,235"},
		{"negative", -1234.5, "USD", "-$1,234.50"},
		{"lowercase code", 10, "eur", "€10.00"},
		{"unknown currency", 10, "XYZ", "XYZ 10.00"},
		{"zero", 0, "GBP", "£0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.Format(tc.amount, tc.code))
		})
	}
}

func TestCurrencyFormatter_Round(t *testing.T) {
	f := services.NewCurrencyFormatter("not a locale", domain.DefaultCurrencies())

	assert.Equal(t, 1.24, f.Round(1.235, "USD"))
	assert.Equal(t, 1235.0, f.Round(1234.56, "JPY"))
}

func TestCurrencyFormatter_SetCatalog(t *testing.T) {
	f := services.NewCurrencyFormatter("en-US", nil)
	assert.Equal(t, "KWD 1.50", f.Format(1.5, "KWD"))

	f.SetCatalog([]domain.Currency{{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "KD", DecimalPlaces: 3}})
	assert.Equal(t, "KD1.500", f.Format(1.5, "KWD"))
}
