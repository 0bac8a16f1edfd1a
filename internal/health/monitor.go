package health

import (
	"context"
	"sync"
	"time"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
)

// CatalogProber is the slice of the catalog client the monitor needs: a
// cheap single-blueprint listing probe.
type CatalogProber interface {
	GetBlueprints(ctx context.Context, page, limit int) (*domain.BlueprintList, error)
}

// Monitor checks upstream catalog reachability.
type Monitor struct {
	catalog CatalogProber

	mu         sync.RWMutex
	lastCheck  time.Time
	lastReport UpstreamHealth
}

// NewMonitor creates a new health monitor.
func NewMonitor(catalog CatalogProber) *Monitor {
	return &Monitor{catalog: catalog}
}

// CheckHealth probes the upstream catalog with a single-entry listing.
// Checks are rate limited to avoid spamming the upstream API.
func (m *Monitor) CheckHealth(ctx context.Context) UpstreamHealth {
	m.mu.Lock()
	defer m.mu.Unlock()

	if time.Since(m.lastCheck) < 30*time.Second && !m.lastCheck.IsZero() {
		return m.lastReport
	}

	report := UpstreamHealth{Status: StatusHealthy, Reachable: true}

	list, err := m.catalog.GetBlueprints(ctx, 1, 1)
	switch {
	case err != nil:
		// Listing ops degrade to fallback before erroring, so an error
		// here means a terminal failure (bad credential, bad request).
		report = UpstreamHealth{
			Status:    StatusCritical,
			Reachable: false,
			LastError: err.Error(),
			LastKind:  string(domain.KindOf(err)),
		}
	case list.Fallback:
		report = UpstreamHealth{
			Status:    StatusDegraded,
			Reachable: false,
			LastError: list.FallbackReason,
		}
	}

	m.lastCheck = time.Now()
	m.lastReport = report
	return report
}
