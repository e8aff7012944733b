package dto

import "github.com/SscSPs/finance_engine/internal/core/domain"

// ConvertDatasetRequest asks for a dataset to be re-expressed in another currency.
// Schema is one of the record shapes; unknown names use the generic financial shape.
type ConvertDatasetRequest struct {
	From    string           `json:"from" binding:"required,len=3,alpha"`
	To      string           `json:"to" binding:"required,len=3,alpha"`
	Schema  string           `json:"schema"`
	Records []map[string]any `json:"records" binding:"required"`
}

// ToDomainRecords converts the request records to domain records.
func (r ConvertDatasetRequest) ToDomainRecords() []domain.Record {
	out := make([]domain.Record, len(r.Records))
	for i, rec := range r.Records {
		out[i] = domain.Record(rec)
	}
	return out
}

// ConvertDatasetResponse carries the converted records. Entry is nil when nothing was converted.
type ConvertDatasetResponse struct {
	Records   []domain.Record                `json:"records"`
	Performed bool                           `json:"performed"`
	Stats     domain.ConversionStats         `json:"stats"`
	Entry     *domain.ConversionHistoryEntry `json:"entry,omitempty"`
}

// HistoryQuery holds the query parameters of the history endpoint.
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ConversionHistoryResponse lists history entries, oldest first.
type ConversionHistoryResponse struct {
	Entries []domain.ConversionHistoryEntry `json:"entries"`
}

// ConversionStatusResponse reports the controller state.
type ConversionStatusResponse struct {
	IsConverting   bool   `json:"isConverting"`
	ActiveCurrency string `json:"activeCurrency"`
}
