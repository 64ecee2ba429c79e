package apiclient

import (
	"context"
	"errors"

	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/seed"
)

// Freshness tags where catalog data came from, so a caller can tell the
// user they are looking at the bundled offline copy instead of silently
// showing stale data.
type Freshness int

const (
	// Fresh came from the API just now.
	Fresh Freshness = iota
	// Stale is the bundled fallback catalog, used when the API failed.
	Stale
	// Unavailable means no data at all could be produced.
	Unavailable
)

func (f Freshness) String() string {
	switch f {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "unavailable"
	}
}

type CatalogResult struct {
	Products  []domain.Product
	Freshness Freshness
	// Err is the fetch failure behind a Stale or Unavailable result.
	Err error
}

// Catalog fetches the product list, degrading to the bundled catalog on
// transport failure. A 4xx from the server is a real answer, not an
// outage, so it surfaces as Unavailable rather than masked with
// fallback data.
func (c *Client) Catalog(ctx context.Context) CatalogResult {
	products, err := c.Products(ctx)
	if err == nil {
		return CatalogResult{Products: products, Freshness: Fresh}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		return CatalogResult{Freshness: Unavailable, Err: err}
	}
	return CatalogResult{Products: seed.Products(), Freshness: Stale, Err: err}
}
