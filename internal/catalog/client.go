// =============================================================================
// Sales Analytics - Catalog Service Client
// =============================================================================
//
// This module performs the single read-only fetch against the external
// product catalog service. The catalog is reference data, not a hard
// dependency: every failure mode (timeout, non-success status, transport
// error, malformed body) degrades to an empty entry set so enrichment can
// proceed with all transactions unmatched.
//
// =============================================================================

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// Client is the catalog service client.
type Client struct {
	baseURL string
	limit   int
	timeout time.Duration
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a catalog client with the given endpoint and limits.
func NewClient(baseURL string, limit int, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		limit:   limit,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// productsResponse mirrors the catalog service payload. Only the product
// list is used; the paging fields are ignored.
type productsResponse struct {
	Products []types.CatalogEntry `json:"products"`
}

// FetchAll performs the catalog fetch and returns up to limit entries.
//
// FetchAll never returns an error: any failure is logged as a warning and
// yields an empty slice, which downstream stages treat as "no catalog
// available". The request is bounded by the configured timeout via both the
// HTTP client and the context.
func (c *Client) FetchAll(ctx context.Context) []types.CatalogEntry {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s?limit=%d", c.baseURL, c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("catalog request could not be built, continuing without catalog")
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("catalog fetch failed, continuing without catalog")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("catalog returned non-success status, continuing without catalog")
		return nil
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("catalog response could not be decoded, continuing without catalog")
		return nil
	}

	c.log.Info().Int("entries", len(payload.Products)).Msg("catalog fetched")
	return payload.Products
}
