package repositories

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// ConversionHistoryRepository mirrors the in-memory conversion history to storage.
type ConversionHistoryRepository interface {
	// SaveConversion appends one history entry.
	SaveConversion(ctx context.Context, entry domain.ConversionHistoryEntry) error
	// ListRecentConversions returns up to limit entries, oldest first.
	ListRecentConversions(ctx context.Context, limit int) ([]domain.ConversionHistoryEntry, error)
}
