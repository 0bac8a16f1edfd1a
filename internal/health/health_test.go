package health

import (
	"context"
	"testing"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
)

// mockProber implements CatalogProber for testing
type mockProber struct {
	list  *domain.BlueprintList
	err   error
	calls int
}

func (m *mockProber) GetBlueprints(ctx context.Context, page, limit int) (*domain.BlueprintList, error) {
	m.calls++
	return m.list, m.err
}

func TestCheckHealth_Healthy(t *testing.T) {
	prober := &mockProber{list: &domain.BlueprintList{
		Blueprints: []domain.Blueprint{{ID: 6, Title: "Tee"}},
	}}
	monitor := NewMonitor(prober)

	report := monitor.CheckHealth(context.Background())
	if report.Status != StatusHealthy {
		t.Errorf("expected %s, got %s", StatusHealthy, report.Status)
	}
	if !report.Reachable {
		t.Error("expected upstream reachable")
	}
}

func TestCheckHealth_DegradedOnFallback(t *testing.T) {
	prober := &mockProber{list: &domain.BlueprintList{
		Blueprints:     []domain.Blueprint{{ID: 6, Title: "Tee"}},
		Fallback:       true,
		FallbackReason: "upstream unreachable",
	}}
	monitor := NewMonitor(prober)

	report := monitor.CheckHealth(context.Background())
	if report.Status != StatusDegraded {
		t.Errorf("expected %s, got %s", StatusDegraded, report.Status)
	}
	if report.Reachable {
		t.Error("expected upstream unreachable")
	}
}

func TestCheckHealth_CriticalOnError(t *testing.T) {
	prober := &mockProber{err: &domain.CatalogError{Kind: domain.ErrAuthFailed}}
	monitor := NewMonitor(prober)

	report := monitor.CheckHealth(context.Background())
	if report.Status != StatusCritical {
		t.Errorf("expected %s, got %s", StatusCritical, report.Status)
	}
	if report.LastKind != string(domain.ErrAuthFailed) {
		t.Errorf("expected last kind %s, got %s", domain.ErrAuthFailed, report.LastKind)
	}
}

func TestCheckHealth_RateLimited(t *testing.T) {
	prober := &mockProber{list: &domain.BlueprintList{}}
	monitor := NewMonitor(prober)

	monitor.CheckHealth(context.Background())
	monitor.CheckHealth(context.Background())

	if prober.calls != 1 {
		t.Errorf("expected a single probe within the rate-limit window, got %d", prober.calls)
	}
}
