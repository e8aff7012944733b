package dto

import "github.com/SscSPs/finance_engine/internal/core/domain"

// AccountRequest is an account referenced by journal lines. Accounts are supplied by
// the caller; this service does not own a chart of accounts.
type AccountRequest struct {
	ID       string `json:"id" binding:"required"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category" binding:"required"`
}

// ToDomainAccounts converts account requests, parsing the free-form category.
func ToDomainAccounts(reqs []AccountRequest) []domain.Account {
	out := make([]domain.Account, len(reqs))
	for i, a := range reqs {
		out[i] = domain.Account{ID: a.ID, Code: a.Code, Name: a.Name, Category: domain.ParseAccountCategory(a.Category)}
	}
	return out
}

// AccountBehaviorResponse describes how journal lines behave for a category.
type AccountBehaviorResponse struct {
	Category domain.AccountCategory `json:"category"`
	domain.AccountBehavior
}
