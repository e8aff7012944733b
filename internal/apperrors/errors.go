package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateUnavailable indicates that the current rate table has no entry for a currency.
// Rate lookups that fail open (rate 1) never return it; only the strict lookup does.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrAuthoritativeLookupFailed marks a failed per-amount call to the external conversion provider.
var ErrAuthoritativeLookupFailed = errors.New("authoritative conversion lookup failed")

// ErrCatalogFetchFailed is reported when the currency catalog could not be fetched
// and the built-in fallback catalog was installed instead.
var ErrCatalogFetchFailed = errors.New("currency catalog fetch failed")

// ErrRateRefreshFailed is reported when a rate refresh failed and the previous table was kept.
var ErrRateRefreshFailed = errors.New("exchange rate refresh failed")

// ErrJournalNotSavable is returned when a journal entry has blocking validation issues.
var ErrJournalNotSavable = errors.New("journal entry cannot be saved")

// ErrJournalStorageDisabled is returned when no journal repository is configured.
var ErrJournalStorageDisabled = errors.New("journal storage is not configured")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
