package printify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
	"github.com/vredrick/printify-mcp-web/internal/metrics"
	"github.com/vredrick/printify-mcp-web/internal/pricing"
)

// degradedLimits is the ladder of progressively smaller page sizes tried
// when a blueprint listing fails: large catalog payloads are more
// failure-prone than small ones.
var degradedLimits = []int{5, 3, 1}

// ClientConfig holds Printify client settings.
type ClientConfig struct {
	Fetcher  FetcherConfig
	ShopID   string
	CacheTTL time.Duration
}

// Client composes the resilient fetcher and response cache into catalog and
// order operations against the Printify API. Each Client owns its cache;
// there are no process-wide singletons.
type Client struct {
	fetcher    *Fetcher
	cache      *Cache
	shopID     string
	maxRetries int
}

// NewClient creates a Printify client.
func NewClient(cfg ClientConfig) *Client {
	fetcher := NewFetcher(cfg.Fetcher)
	return &Client{
		fetcher:    fetcher,
		cache:      NewCache(cfg.CacheTTL),
		shopID:     cfg.ShopID,
		maxRetries: fetcher.cfg.MaxRetries,
	}
}

// GetBlueprints lists catalog blueprints, cache-first. On persistent
// non-auth failure it degrades the page size through degradedLimits, and
// finally serves the hardcoded fallback catalog so browsing callers can
// still make forward progress. Mutating paths never degrade this way.
func (c *Client) GetBlueprints(ctx context.Context, page, limit int) (*domain.BlueprintList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	key := fmt.Sprintf("blueprints:%d:%d", page, limit)
	if cached, ok := c.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("blueprints").Inc()
		return cached.(*domain.BlueprintList), nil
	}
	metrics.CacheMissesTotal.WithLabelValues("blueprints").Inc()

	var lastErr error
	for _, tier := range limitTiers(limit) {
		list, err := c.fetchBlueprintPage(ctx, page, tier)
		if err == nil {
			c.cache.Put(key, list)
			return list, nil
		}

		lastErr = err
		if domain.KindOf(err) == domain.ErrAuthFailed {
			// A bad credential cannot be fixed by smaller pages or
			// fallback data.
			return nil, err
		}

		slog.Warn("Blueprint listing failed, degrading limit",
			"page", page,
			"limit", tier,
			"kind", domain.KindOf(err),
		)
	}

	slog.Error("All blueprint listing tiers failed, serving fallback catalog",
		"page", page,
		"error", lastErr,
	)
	metrics.FallbackServedTotal.Inc()
	return fallbackCatalog(fmt.Sprintf("Last error: %v.", domain.KindOf(lastErr))), nil
}

// limitTiers returns the requested limit followed by the degradation
// ladder, with consecutive duplicates collapsed.
func limitTiers(limit int) []int {
	tiers := []int{limit}
	for _, t := range degradedLimits {
		if t > limit {
			t = limit
		}
		if t != tiers[len(tiers)-1] {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

func (c *Client) fetchBlueprintPage(ctx context.Context, page, limit int) (*domain.BlueprintList, error) {
	endpoint := fmt.Sprintf("/catalog/blueprints.json?page=%d&limit=%d", page, limit)
	raw, err := c.fetcher.ExecuteListing(ctx, http.MethodGet, endpoint, nil, c.maxRetries)
	if err != nil {
		return nil, err
	}

	// The catalog endpoint pages via a "data" envelope, but has been
	// observed returning a bare array on some resources.
	var envelope struct {
		Data []domain.Blueprint `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		var bare []domain.Blueprint
		if err2 := json.Unmarshal(raw, &bare); err2 != nil {
			return nil, &domain.CatalogError{
				Kind:     domain.ErrUnknown,
				Endpoint: endpoint,
				Body:     string(raw),
				Err:      fmt.Errorf("decode blueprints: %w", err),
			}
		}
		envelope.Data = bare
	}

	return &domain.BlueprintList{Blueprints: envelope.Data}, nil
}

// GetBlueprint fetches a single blueprint, cache-first.
func (c *Client) GetBlueprint(ctx context.Context, id int) (*domain.Blueprint, error) {
	key := fmt.Sprintf("blueprint:%d", id)
	if cached, ok := c.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("blueprint").Inc()
		return cached.(*domain.Blueprint), nil
	}
	metrics.CacheMissesTotal.WithLabelValues("blueprint").Inc()

	endpoint := fmt.Sprintf("/catalog/blueprints/%d.json", id)
	raw, err := c.fetcher.Execute(ctx, http.MethodGet, endpoint, nil, c.maxRetries)
	if err != nil {
		return nil, err
	}

	var blueprint domain.Blueprint
	if err := json.Unmarshal(raw, &blueprint); err != nil {
		return nil, decodeError(endpoint, raw, err)
	}

	c.cache.Put(key, &blueprint)
	return &blueprint, nil
}

// GetPrintProviders lists the print providers for a blueprint, cache-first.
func (c *Client) GetPrintProviders(ctx context.Context, blueprintID int) ([]domain.PrintProvider, error) {
	key := fmt.Sprintf("providers:%d", blueprintID)
	if cached, ok := c.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("providers").Inc()
		return cached.([]domain.PrintProvider), nil
	}
	metrics.CacheMissesTotal.WithLabelValues("providers").Inc()

	endpoint := fmt.Sprintf("/catalog/blueprints/%d/print_providers.json", blueprintID)
	raw, err := c.fetcher.ExecuteListing(ctx, http.MethodGet, endpoint, nil, c.maxRetries)
	if err != nil {
		return nil, err
	}

	var providers []domain.PrintProvider
	if err := json.Unmarshal(raw, &providers); err != nil {
		return nil, decodeError(endpoint, raw, err)
	}

	c.cache.Put(key, providers)
	return providers, nil
}

// GetVariants lists the variants of a blueprint+provider pair. Variant
// lists are queried live (no cache) because they carry costs.
func (c *Client) GetVariants(ctx context.Context, blueprintID, providerID int) ([]domain.Variant, error) {
	endpoint := fmt.Sprintf("/catalog/blueprints/%d/print_providers/%d/variants.json", blueprintID, providerID)
	raw, err := c.fetcher.ExecuteListing(ctx, http.MethodGet, endpoint, nil, c.maxRetries)
	if err != nil {
		return nil, err
	}

	var list domain.VariantList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, decodeError(endpoint, raw, err)
	}

	return list.Variants, nil
}

// CreateProduct creates a product in the shop. Side-effecting: no cache,
// no fallback, failures propagate verbatim.
func (c *Client) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	endpoint := fmt.Sprintf("/shops/%s/products.json", c.shopID)
	raw, err := c.fetcher.Execute(ctx, http.MethodPost, endpoint, req, c.maxRetries)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, decodeError(endpoint, raw, err)
	}
	return &product, nil
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(ctx context.Context, productID string, req domain.ProductRequest) (*domain.Product, error) {
	endpoint := fmt.Sprintf("/shops/%s/products/%s.json", c.shopID, productID)
	raw, err := c.fetcher.Execute(ctx, http.MethodPut, endpoint, req, c.maxRetries)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, decodeError(endpoint, raw, err)
	}
	return &product, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	endpoint := fmt.Sprintf("/shops/%s/products/%s.json", c.shopID, productID)
	_, err := c.fetcher.Execute(ctx, http.MethodDelete, endpoint, nil, c.maxRetries)
	return err
}

// PublishProduct publishes a product to the shop's connected sales channel.
func (c *Client) PublishProduct(ctx context.Context, productID string) error {
	endpoint := fmt.Sprintf("/shops/%s/products/%s/publish.json", c.shopID, productID)
	body := map[string]bool{
		"title":       true,
		"description": true,
		"images":      true,
		"variants":    true,
		"tags":        true,
	}
	_, err := c.fetcher.Execute(ctx, http.MethodPost, endpoint, body, c.maxRetries)
	return err
}

// UploadImage uploads artwork for use in print areas.
func (c *Client) UploadImage(ctx context.Context, upload domain.ImageUpload) (*domain.UploadedImage, error) {
	endpoint := "/uploads/images.json"
	raw, err := c.fetcher.Execute(ctx, http.MethodPost, endpoint, upload, c.maxRetries)
	if err != nil {
		return nil, err
	}

	var image domain.UploadedImage
	if err := json.Unmarshal(raw, &image); err != nil {
		return nil, decodeError(endpoint, raw, err)
	}
	return &image, nil
}

// CalculatePricing derives a selling price from a base cost and margin
// specification. Pure, no I/O.
func (c *Client) CalculatePricing(cost int64, marginSpec any) (domain.PricingResult, error) {
	return pricing.Calculate(cost, marginSpec)
}

func decodeError(endpoint string, raw json.RawMessage, err error) *domain.CatalogError {
	return &domain.CatalogError{
		Kind:     domain.ErrUnknown,
		Endpoint: endpoint,
		Body:     string(raw),
		Err:      fmt.Errorf("decode response: %w", err),
	}
}
