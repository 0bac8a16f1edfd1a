package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vredrick/printify-mcp-web/internal/core/domain"
	"github.com/vredrick/printify-mcp-web/internal/metrics"
)

// BackoffConfig defines exponential backoff behavior for one failure class.
type BackoffConfig struct {
	Base time.Duration
	Cap  time.Duration
}

// FetcherConfig holds the outbound call settings.
type FetcherConfig struct {
	BaseURL        string
	Token          string
	MaxRetries     int
	CallTimeout    time.Duration // transactional calls
	ListingTimeout time.Duration // bulk catalog listing calls
	HTTPBackoff    BackoffConfig // HTTP-classified transient failures
	TimeoutBackoff BackoffConfig // timeout-classified failures
}

// DefaultFetcherConfig provides sensible defaults.
var DefaultFetcherConfig = FetcherConfig{
	BaseURL:        "https://api.printify.com/v1",
	MaxRetries:     3,
	CallTimeout:    30 * time.Second,
	ListingTimeout: 60 * time.Second,
	HTTPBackoff:    BackoffConfig{Base: 1 * time.Second, Cap: 5 * time.Second},
	TimeoutBackoff: BackoffConfig{Base: 2 * time.Second, Cap: 10 * time.Second},
}

// Fetcher performs a single logical Printify API call: builds headers,
// applies a bounded timeout, classifies failures, and retries transient
// failures with exponential backoff. Stateless across invocations.
type Fetcher struct {
	cfg        FetcherConfig
	httpClient *http.Client
}

// NewFetcher creates a fetcher, filling zero-valued config fields from
// DefaultFetcherConfig.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultFetcherConfig.BaseURL
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultFetcherConfig.MaxRetries
	}
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = DefaultFetcherConfig.CallTimeout
	}
	if cfg.ListingTimeout == 0 {
		cfg.ListingTimeout = DefaultFetcherConfig.ListingTimeout
	}
	if cfg.HTTPBackoff.Base == 0 {
		cfg.HTTPBackoff = DefaultFetcherConfig.HTTPBackoff
	}
	if cfg.TimeoutBackoff.Base == 0 {
		cfg.TimeoutBackoff = DefaultFetcherConfig.TimeoutBackoff
	}

	return &Fetcher{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Execute performs a transactional API call with retry.
func (f *Fetcher) Execute(ctx context.Context, method, endpoint string, body any, maxRetries int) (json.RawMessage, error) {
	return f.execute(ctx, method, endpoint, body, maxRetries, f.cfg.CallTimeout)
}

// ExecuteListing performs a bulk catalog listing call with retry. Listing
// payloads are larger, so the timeout is wider.
func (f *Fetcher) ExecuteListing(ctx context.Context, method, endpoint string, body any, maxRetries int) (json.RawMessage, error) {
	return f.execute(ctx, method, endpoint, body, maxRetries, f.cfg.ListingTimeout)
}

func (f *Fetcher) execute(ctx context.Context, method, endpoint string, body any, maxRetries int, timeout time.Duration) (json.RawMessage, error) {
	if maxRetries < 0 {
		maxRetries = f.cfg.MaxRetries
	}

	callID := uuid.NewString()
	var lastErr *domain.CatalogError

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(f.backoffFor(lastErr.Kind), attempt-1)
			metrics.APIRetriesTotal.WithLabelValues(endpoint).Inc()
			slog.Warn("Retrying Printify call",
				"call_id", callID,
				"endpoint", endpoint,
				"attempt", attempt,
				"kind", lastErr.Kind,
				"delay", delay,
			)
			select {
			case <-ctx.Done():
				return nil, classifyTransport(endpoint, ctx.Err())
			case <-time.After(delay):
			}
		}

		result, err := f.doOnce(ctx, method, endpoint, body, timeout, callID)
		if err == nil {
			return result, nil
		}

		lastErr = err
		metrics.APIErrorsTotal.WithLabelValues(endpoint, string(err.Kind)).Inc()

		if !err.Retryable() {
			return nil, err
		}
	}

	slog.Error("Printify call exhausted retries",
		"call_id", callID,
		"endpoint", endpoint,
		"attempts", maxRetries+1,
		"kind", lastErr.Kind,
	)
	return nil, lastErr
}

// doOnce performs one HTTP attempt with its own bounded timeout.
func (f *Fetcher) doOnce(ctx context.Context, method, endpoint string, body any, timeout time.Duration, callID string) (json.RawMessage, *domain.CatalogError) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.CatalogError{
				Kind:     domain.ErrValidation,
				Endpoint: endpoint,
				Err:      fmt.Errorf("marshal request: %w", err),
			}
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, f.cfg.BaseURL+endpoint, reqBody)
	if err != nil {
		return nil, &domain.CatalogError{
			Kind:     domain.ErrValidation,
			Endpoint: endpoint,
			Err:      fmt.Errorf("create request: %w", err),
		}
	}
	req.Header.Set("Authorization", "Bearer "+f.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "printify-mcp-web")

	start := time.Now()
	metrics.APICallsTotal.WithLabelValues(endpoint, method).Inc()

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(endpoint, err)
	}
	defer resp.Body.Close()

	metrics.APILatency.WithLabelValues(endpoint, method).Observe(time.Since(start).Seconds())

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cerr := classifyStatus(endpoint, resp.StatusCode, string(respBody))
		slog.Debug("Printify call failed",
			"call_id", callID,
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"kind", cerr.Kind,
		)
		return nil, cerr
	}

	return json.RawMessage(respBody), nil
}

// backoffFor selects the backoff class for a failure kind. Timeouts back
// off more conservatively than HTTP-level failures.
func (f *Fetcher) backoffFor(kind domain.ErrorKind) BackoffConfig {
	if kind == domain.ErrTimeout {
		return f.cfg.TimeoutBackoff
	}
	return f.cfg.HTTPBackoff
}

func backoffDelay(b BackoffConfig, attempt int) time.Duration {
	delay := float64(b.Base) * math.Pow(2, float64(attempt))
	if delay > float64(b.Cap) {
		delay = float64(b.Cap)
	}
	return time.Duration(delay)
}
