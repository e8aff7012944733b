package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

type catalogResponse struct {
	Currencies []domain.Currency `json:"currencies"`
}

// CatalogClient fetches the supported currency list.
type CatalogClient struct {
	client
	validate *validator.Validate
}

// NewCatalogClient creates a catalog source for baseURL.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		client:   newClient("catalog provider", baseURL, timeout),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// FetchCurrencies returns the catalog. A single malformed entry rejects the whole
// response so a partial catalog is never installed.
func (c *CatalogClient) FetchCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var body catalogResponse
	if err := c.getJSON(ctx, nil, &body); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(body.Currencies))
	for i := range body.Currencies {
		cur := &body.Currencies[i]
		cur.Code = strings.ToUpper(strings.TrimSpace(cur.Code))
		if err := c.validate.Struct(cur); err != nil {
			return nil, fmt.Errorf("catalog provider: invalid currency at index %d: %w", i, err)
		}
		if _, dup := seen[cur.Code]; dup {
			return nil, fmt.Errorf("catalog provider: duplicate currency %s", cur.Code)
		}
		seen[cur.Code] = struct{}{}
	}
	return body.Currencies, nil
}
