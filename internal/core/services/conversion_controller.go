package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
)

const defaultHistoryLimit = 100

// ConversionController owns the currency state of one client session or service:
// rate table, currency catalog, active display currency and conversion history.
// It is constructed explicitly and passed to whoever needs it.
type ConversionController struct {
	BaseService
	store     *ExchangeRateStore
	converter *RecordConverter
	formatter *CurrencyFormatter

	rateSource    portssvc.RateSource
	catalogSource portssvc.CurrencyCatalogSource
	authoritative portssvc.AuthoritativeConverter
	snapshotRepo  portsrepo.RateSnapshotRepositoryFacade
	historyRepo   portsrepo.ConversionHistoryRepository

	historyLimit int
	concurrency  int
	now          func() time.Time

	mu         sync.RWMutex
	catalog    []domain.Currency
	active     string
	history    []domain.ConversionHistoryEntry
	converting atomic.Int32
}

// ControllerOption is a functional option for configuring the controller.
type ControllerOption func(*ConversionController)

// WithRateSource sets the external rate provider.
func WithRateSource(src portssvc.RateSource) ControllerOption {
	return func(c *ConversionController) { c.rateSource = src }
}

// WithCatalogSource sets the external currency catalog provider.
func WithCatalogSource(src portssvc.CurrencyCatalogSource) ControllerOption {
	return func(c *ConversionController) { c.catalogSource = src }
}

// WithAuthoritativeConverter sets the provider used by ConvertWithAuthoritative.
func WithAuthoritativeConverter(conv portssvc.AuthoritativeConverter) ControllerOption {
	return func(c *ConversionController) { c.authoritative = conv }
}

// WithRateSnapshotRepository persists every installed table and restores it on startup.
func WithRateSnapshotRepository(repo portsrepo.RateSnapshotRepositoryFacade) ControllerOption {
	return func(c *ConversionController) { c.snapshotRepo = repo }
}

// WithConversionHistoryRepository mirrors history entries to storage.
func WithConversionHistoryRepository(repo portsrepo.ConversionHistoryRepository) ControllerOption {
	return func(c *ConversionController) { c.historyRepo = repo }
}

// WithHistoryLimit bounds the in-memory history; the oldest entries are evicted first.
func WithHistoryLimit(n int) ControllerOption {
	return func(c *ConversionController) {
		if n > 0 {
			c.historyLimit = n
		}
	}
}

// WithAuthoritativeConcurrency bounds parallel authoritative lookups.
func WithAuthoritativeConcurrency(n int) ControllerOption {
	return func(c *ConversionController) { c.concurrency = n }
}

// WithFormatter shares a formatter whose catalog follows the controller's catalog.
func WithFormatter(f *CurrencyFormatter) ControllerOption {
	return func(c *ConversionController) { c.formatter = f }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *ConversionController) { c.now = now }
}

// NewConversionController creates a controller with an empty rate table for baseCurrencyCode
// and the built-in currency catalog. Call Initialize, LoadCatalog or RefreshRates to populate it.
func NewConversionController(baseCurrencyCode string, options ...ControllerOption) *ConversionController {
	c := &ConversionController{
		store:        NewExchangeRateStore(baseCurrencyCode),
		historyLimit: defaultHistoryLimit,
		concurrency:  1,
		now:          time.Now,
	}
	for _, option := range options {
		option(c)
	}
	c.converter = NewRecordConverter(c.store, c.concurrency)
	c.catalog = domain.DefaultCurrencies()
	c.active = c.store.Base()
	if c.formatter != nil {
		c.formatter.SetCatalog(c.catalog)
	}
	return c
}

// Ensure ConversionController implements the portssvc.ConversionSvcFacade interface
var _ portssvc.ConversionSvcFacade = (*ConversionController)(nil)

// Initialize installs a catalog and the initial base currency, which also becomes
// the active display currency. An empty catalog installs the built-in one.
func (c *ConversionController) Initialize(catalog []domain.Currency, initialBase string) {
	c.store.SetBase(initialBase)
	c.setCatalog(catalog)
	c.mu.Lock()
	c.active = c.store.Base()
	c.mu.Unlock()
}

// Store exposes the rate store for read access.
func (c *ConversionController) Store() *ExchangeRateStore { return c.store }

// Catalog returns a copy of the installed currency catalog.
func (c *ConversionController) Catalog() []domain.Currency {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Currency(nil), c.catalog...)
}

// Currency looks a currency up in the catalog.
func (c *ConversionController) Currency(code string) (domain.Currency, bool) {
	code = normalizeCode(code)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cur := range c.catalog {
		if cur.Code == code {
			return cur, true
		}
	}
	return domain.Currency{}, false
}

// LoadCatalog refreshes the catalog from its source. When the source fails or returns
// nothing, the built-in catalog is installed and an error wrapping
// apperrors.ErrCatalogFetchFailed is returned alongside it as a warning.
func (c *ConversionController) LoadCatalog(ctx context.Context) ([]domain.Currency, error) {
	if c.catalogSource == nil {
		return c.Catalog(), nil
	}

	currencies, err := c.catalogSource.FetchCurrencies(ctx)
	if err == nil && len(currencies) == 0 {
		err = fmt.Errorf("catalog source returned no currencies")
	}
	if err != nil {
		warn := fmt.Errorf("%w: %w", apperrors.ErrCatalogFetchFailed, err)
		c.LogWarn(ctx, warn, "Currency catalog fetch failed, using built-in catalog")
		fallback := domain.DefaultCurrencies()
		c.setCatalog(fallback)
		return fallback, warn
	}

	c.setCatalog(currencies)
	c.LogInfo(ctx, "Currency catalog loaded", slog.Int("count", len(currencies)))
	return c.Catalog(), nil
}

func (c *ConversionController) setCatalog(catalog []domain.Currency) {
	if len(catalog) == 0 {
		catalog = domain.DefaultCurrencies()
	}
	installed := make([]domain.Currency, len(catalog))
	for i, cur := range catalog {
		cur.Code = normalizeCode(cur.Code)
		installed[i] = cur
	}
	c.mu.Lock()
	c.catalog = installed
	c.mu.Unlock()
	if c.formatter != nil {
		c.formatter.SetCatalog(installed)
	}
}

// Rates returns a copy of the active rate table.
func (c *ConversionController) Rates() domain.RateTable {
	return c.store.Snapshot()
}

// ReplaceRates installs a caller-supplied table and persists it when a snapshot
// repository is configured.
func (c *ConversionController) ReplaceRates(ctx context.Context, baseCurrencyCode string, rates map[string]float64) (domain.RateTable, error) {
	dropped, err := c.store.ReplaceRates(baseCurrencyCode, rates)
	if err != nil {
		return c.store.Snapshot(), err
	}
	c.logDroppedRates(ctx, dropped)
	table := c.store.Snapshot()
	c.persistSnapshot(ctx, table)
	return table, nil
}

// RefreshRates fetches a fresh table for the current base. Any failure keeps the
// previously held rates and is returned wrapped in apperrors.ErrRateRefreshFailed.
func (c *ConversionController) RefreshRates(ctx context.Context) (domain.RateTable, error) {
	base := c.store.Base()
	if c.rateSource == nil {
		return c.store.Snapshot(), fmt.Errorf("%w: no rate source configured", apperrors.ErrRateRefreshFailed)
	}

	rates, err := c.rateSource.FetchRates(ctx, base)
	var dropped []string
	if err == nil {
		dropped, err = c.store.ReplaceRates(base, rates)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", apperrors.ErrRateRefreshFailed, err)
		c.LogWarn(ctx, err, "Rate refresh failed, keeping previous rates",
			slog.String("base", base), slog.Int("held_rates", c.store.Len()))
		return c.store.Snapshot(), err
	}

	c.logDroppedRates(ctx, dropped)
	table := c.store.Snapshot()
	c.persistSnapshot(ctx, table)
	c.LogInfo(ctx, "Exchange rates refreshed", slog.String("base", base), slog.Int("count", len(table.Rates)))
	return table, nil
}

// RestoreRates installs the latest persisted table for the current base, if any.
func (c *ConversionController) RestoreRates(ctx context.Context) error {
	if c.snapshotRepo == nil {
		return nil
	}
	table, err := c.snapshotRepo.FindLatestRateTable(ctx, c.store.Base())
	if err != nil {
		return fmt.Errorf("failed to restore rate snapshot: %w", err)
	}
	if table.Empty() {
		return nil
	}
	dropped, err := c.store.ReplaceTable(*table)
	if err != nil {
		return fmt.Errorf("failed to install rate snapshot: %w", err)
	}
	c.logDroppedRates(ctx, dropped)
	c.LogInfo(ctx, "Restored persisted exchange rates", slog.String("base", table.Base), slog.Time("fetched_at", table.FetchedAt))
	return nil
}

func (c *ConversionController) logDroppedRates(ctx context.Context, dropped []string) {
	if len(dropped) > 0 {
		c.LogWarn(ctx, nil, "Dropped non-positive exchange rates", slog.Any("currencies", dropped))
	}
}

func (c *ConversionController) persistSnapshot(ctx context.Context, table domain.RateTable) {
	if c.snapshotRepo == nil {
		return
	}
	if err := c.snapshotRepo.SaveRateTable(ctx, table); err != nil {
		c.LogWarn(ctx, err, "Failed to persist rate snapshot", slog.String("base", table.Base))
	}
}

// StartRateRefresher refreshes rates every interval until ctx is cancelled.
func (c *ConversionController) StartRateRefresher(ctx context.Context, interval time.Duration) {
	if c.rateSource == nil || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = c.RefreshRates(ctx) // failures are logged and the old table kept
			}
		}
	}()
}

// ActiveCurrency returns the currently displayed currency.
func (c *ConversionController) ActiveCurrency() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SetActiveCurrency records the displayed currency without converting anything.
// It is used when the caller loads data that is already expressed in code.
func (c *ConversionController) SetActiveCurrency(code string) {
	c.mu.Lock()
	c.active = normalizeCode(code)
	c.mu.Unlock()
}

// OnCurrencyChange converts dataset from previous to next using the local rate table.
// It is a no-op, returning dataset as is, when the currencies match or no rates are loaded.
func (c *ConversionController) OnCurrencyChange(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (portssvc.ConversionResult, error) {
	if normalizeCode(previous) == normalizeCode(next) || c.store.Len() <= 1 {
		return portssvc.ConversionResult{Records: dataset}, nil
	}
	return c.convert(ctx, previous, next, dataset, shape, nil)
}

// ConvertWithAuthoritative converts dataset through the authoritative provider.
// Without a configured provider it degrades to local conversion.
func (c *ConversionController) ConvertWithAuthoritative(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape) (portssvc.ConversionResult, error) {
	if normalizeCode(previous) == normalizeCode(next) {
		return portssvc.ConversionResult{Records: dataset}, nil
	}
	if c.authoritative == nil {
		c.LogWarn(ctx, nil, "No authoritative converter configured, converting with local rates")
	}
	return c.convert(ctx, previous, next, dataset, shape, c.authoritative)
}

func (c *ConversionController) convert(ctx context.Context, previous, next string, dataset []domain.Record, shape domain.RecordShape, auth portssvc.AuthoritativeConverter) (portssvc.ConversionResult, error) {
	c.converting.Add(1)
	defer c.converting.Add(-1)

	if err := ctx.Err(); err != nil {
		return portssvc.ConversionResult{Records: dataset}, err
	}

	from, to := normalizeCode(previous), normalizeCode(next)
	resolved := domain.ResolveShape(string(shape))
	records, stats := c.converter.ConvertCollection(ctx, dataset, from, to, resolved, ConvertOptions{Authoritative: auth})

	entry := domain.ConversionHistoryEntry{
		ID:                          uuid.NewString(),
		Timestamp:                   c.now().UTC(),
		FromCurrency:                from,
		ToCurrency:                  to,
		Schema:                      resolved,
		ItemCount:                   len(dataset),
		UsedAuthoritativeConversion: auth != nil,
	}
	c.appendHistory(entry)

	if c.historyRepo != nil {
		if err := c.historyRepo.SaveConversion(ctx, entry); err != nil {
			c.LogWarn(ctx, err, "Failed to persist conversion history entry", slog.String("entry_id", entry.ID))
		}
	}

	c.LogInfo(ctx, "Dataset converted",
		slog.String("from", from), slog.String("to", to), slog.String("schema", string(resolved)),
		slog.Int("records", stats.Records), slog.Int("fields", stats.FieldsConverted),
		slog.Int("fallback_fields", stats.FallbackFields))

	return portssvc.ConversionResult{Records: records, Stats: stats, Performed: true, Entry: &entry}, nil
}

func (c *ConversionController) appendHistory(entry domain.ConversionHistoryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = entry.ToCurrency
	c.history = append(c.history, entry)
	if over := len(c.history) - c.historyLimit; over > 0 {
		c.history = append([]domain.ConversionHistoryEntry(nil), c.history[over:]...)
	}
}

// RestoreHistory loads the most recent persisted history entries ahead of any
// entries recorded in memory since startup. The combined history stays bounded.
func (c *ConversionController) RestoreHistory(ctx context.Context) error {
	if c.historyRepo == nil {
		return nil
	}
	persisted, err := c.historyRepo.ListRecentConversions(ctx, c.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to restore conversion history: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	seen := make(map[string]struct{}, len(c.history))
	for _, e := range c.history {
		seen[e.ID] = struct{}{}
	}
	merged := make([]domain.ConversionHistoryEntry, 0, len(persisted)+len(c.history))
	for _, e := range persisted {
		if _, ok := seen[e.ID]; !ok {
			merged = append(merged, e)
		}
	}
	merged = append(merged, c.history...)
	if over := len(merged) - c.historyLimit; over > 0 {
		merged = merged[over:]
	}
	c.history = merged
	c.LogInfo(ctx, "Restored conversion history", slog.Int("entries", len(persisted)))
	return nil
}

// IsConverting reports whether a conversion is currently running.
func (c *ConversionController) IsConverting() bool {
	return c.converting.Load() > 0
}

// History returns every retained history entry, oldest first.
func (c *ConversionController) History() []domain.ConversionHistoryEntry {
	return c.RecentHistory(0)
}

// RecentHistory returns the last n entries, oldest first. n <= 0 returns all of them.
func (c *ConversionController) RecentHistory(n int) []domain.ConversionHistoryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	start := 0
	if n > 0 && n < len(c.history) {
		start = len(c.history) - n
	}
	return append([]domain.ConversionHistoryEntry{}, c.history[start:]...)
}
