package dto

import (
	"time"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// ReplaceRateTableRequest installs a full rate table quoted against Base.
type ReplaceRateTableRequest struct {
	Base  string             `json:"base" binding:"required,len=3,alpha"`
	Rates map[string]float64 `json:"rates" binding:"required,min=1,dive,keys,len=3,alpha,endkeys,gt=0"`
}

// RateTableResponse defines the structure for API responses containing a rate table.
type RateTableResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt *time.Time         `json:"fetchedAt,omitempty"`
}

// ToRateTableResponse converts a domain.RateTable to RateTableResponse DTO
func ToRateTableResponse(t domain.RateTable) RateTableResponse {
	res := RateTableResponse{Base: t.Base, Rates: t.Rates}
	if !t.FetchedAt.IsZero() {
		fetched := t.FetchedAt
		res.FetchedAt = &fetched
	}
	return res
}

// ConvertAmountQuery holds the query parameters of the single amount conversion endpoint.
type ConvertAmountQuery struct {
	Amount float64 `form:"amount"`
	From   string  `form:"from" binding:"required,len=3,alpha"`
	To     string  `form:"to" binding:"required,len=3,alpha"`
	Strict bool    `form:"strict"`
}

// ConvertAmountResponse is the result of converting a single amount.
type ConvertAmountResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}
