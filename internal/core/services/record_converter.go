package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/middleware"
)

// ConvertOptions selects the conversion mode. A nil Authoritative means local rates only.
type ConvertOptions struct {
	Authoritative portssvc.AuthoritativeConverter
}

// RecordConverter rewrites the monetary fields of financial records.
// Inputs are never mutated; every call returns fresh records in input order.
type RecordConverter struct {
	rates       RateLookup
	concurrency int
}

// NewRecordConverter creates a converter over a rate lookup. concurrency bounds the
// number of records converted in parallel in authoritative mode.
func NewRecordConverter(rates RateLookup, concurrency int) *RecordConverter {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &RecordConverter{rates: rates, concurrency: concurrency}
}

// ConvertRecord converts a single record.
func (c *RecordConverter) ConvertRecord(ctx context.Context, record domain.Record, fromCurrency, toCurrency string, shape domain.RecordShape, opts ConvertOptions) (domain.Record, domain.ConversionStats) {
	fields := domain.MonetaryFields(domain.ResolveShape(string(shape)))
	out, stats := c.convertFields(ctx, record, fromCurrency, toCurrency, fields, opts.Authoritative)
	stats.Records = 1
	return out, stats
}

// ConvertCollection converts every record. One failed authoritative lookup only affects
// the field it was made for, which falls back to the local rate.
func (c *RecordConverter) ConvertCollection(ctx context.Context, records []domain.Record, fromCurrency, toCurrency string, shape domain.RecordShape, opts ConvertOptions) ([]domain.Record, domain.ConversionStats) {
	fields := domain.MonetaryFields(domain.ResolveShape(string(shape)))
	out := make([]domain.Record, len(records))
	perRecord := make([]domain.ConversionStats, len(records))

	if opts.Authoritative == nil {
		for i, rec := range records {
			out[i], perRecord[i] = c.convertFields(ctx, rec, fromCurrency, toCurrency, fields, nil)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.concurrency)
		for i, rec := range records {
			i, rec := i, rec
			g.Go(func() error {
				out[i], perRecord[i] = c.convertFields(ctx, rec, fromCurrency, toCurrency, fields, opts.Authoritative)
				return nil
			})
		}
		_ = g.Wait() // workers never return errors
	}

	stats := domain.ConversionStats{Records: len(records)}
	for _, s := range perRecord {
		stats.FieldsConverted += s.FieldsConverted
		stats.AuthoritativeFields += s.AuthoritativeFields
		stats.FallbackFields += s.FallbackFields
	}
	return out, stats
}

func (c *RecordConverter) convertFields(ctx context.Context, record domain.Record, fromCurrency, toCurrency string, fields []string, auth portssvc.AuthoritativeConverter) (domain.Record, domain.ConversionStats) {
	var stats domain.ConversionStats
	if record == nil {
		return nil, stats
	}
	out := record.Clone()

	for _, field := range fields {
		amount, ok := monetaryValue(record[field])
		if !ok {
			continue
		}

		value := ConvertAmount(amount, fromCurrency, toCurrency, c.rates)
		if auth != nil && amount != 0 && normalizeCode(fromCurrency) != normalizeCode(toCurrency) {
			precise, err := auth.ConvertAmount(ctx, amount, fromCurrency, toCurrency)
			if err != nil {
				err = fmt.Errorf("%w: %w", apperrors.ErrAuthoritativeLookupFailed, err)
				middleware.GetLoggerFromCtx(ctx).Warn("Authoritative conversion failed, using local rate",
					slog.Any("record_id", record[domain.RecordIDKey]),
					slog.String("field", field),
					slog.String("from", fromCurrency),
					slog.String("to", toCurrency),
					slog.String("error", err.Error()),
				)
				stats.FallbackFields++
			} else {
				value = precise
				stats.AuthoritativeFields++
			}
		}

		out[field] = value
		stats.FieldsConverted++
	}

	if _, ok := record[domain.RecordCurrencyKey]; ok {
		out[domain.RecordCurrencyKey] = toCurrency
	}
	return out, stats
}

// monetaryValue extracts a numeric amount. Missing, empty, boolean and non-numeric
// values are reported as absent so they are left untouched.
func monetaryValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil, bool:
		return 0, false
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		raw = strings.TrimSpace(v)
	}
	amount, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, false
	}
	return amount, true
}

