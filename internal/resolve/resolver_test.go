package resolve

import (
	"context"
	"testing"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
)

// mockcatalog implements VariantSource for testing
type mockCatalog struct {
	variants []domain.Variant
	err      error
	calls    int
}

func (m *mockCatalog) GetVariants(ctx context.Context, blueprintID, providerID int) ([]domain.Variant, error) {
	m.calls++
	return m.variants, m.err
}

func TestResolveAndPrice_ExactMatch(t *testing.T) {
	catalog := &mockCatalog{variants: []domain.Variant{
		{ID: 1, Title: "White / S", Cost: 1100},
		{ID: 2, Title: "White / M", Cost: 1200},
		{ID: 3, Title: "Black / L", Cost: 1300},
	}}
	resolver := NewResolver(catalog)

	res, err := resolver.ResolveAndPrice(context.Background(), 6, 99, []string{"white"}, []string{"M"}, "50%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Tier != domain.TierExact {
		t.Errorf("expected tier %s, got %s", domain.TierExact, res.Tier)
	}
	if len(res.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(res.Variants))
	}

	v := res.Variants[0]
	if v.ID != 2 {
		t.Errorf("expected variant 2, got %d", v.ID)
	}
	if v.Price != 2400 || v.Profit != 1200 {
		t.Errorf("expected price 2400 / profit 1200, got %d / %d", v.Price, v.Profit)
	}
}

func TestResolveAndPrice_DegradedTierSurfaces(t *testing.T) {
	catalog := &mockCatalog{variants: []domain.Variant{
		{ID: 1, Title: "White / S", Cost: 1000},
	}}
	resolver := NewResolver(catalog)

	res, err := resolver.ResolveAndPrice(context.Background(), 6, 99, []string{"white"}, []string{"XL"}, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Tier != domain.TierColorOnly {
		t.Errorf("expected tier %s, got %s", domain.TierColorOnly, res.Tier)
	}
	if len(res.Variants) != 1 || res.Variants[0].Price != 1667 {
		t.Errorf("expected one variant priced 1667, got %+v", res.Variants)
	}
}

func TestResolveAndPrice_InvalidMarginRejectedBeforeFetch(t *testing.T) {
	catalog := &mockCatalog{}
	resolver := NewResolver(catalog)

	_, err := resolver.ResolveAndPrice(context.Background(), 6, 99, nil, nil, 50)
	if err == nil {
		t.Fatal("expected validation error for bare margin 50")
	}
	if kind := domain.KindOf(err); kind != domain.ErrValidation {
		t.Errorf("expected kind %s, got %s", domain.ErrValidation, kind)
	}
	if catalog.calls != 0 {
		t.Errorf("expected no upstream call for invalid margin, got %d", catalog.calls)
	}
}

func TestResolveAndPrice_UpstreamErrorPropagates(t *testing.T) {
	catalog := &mockCatalog{err: &domain.CatalogError{Kind: domain.ErrServer, Endpoint: "/variants"}}
	resolver := NewResolver(catalog)

	_, err := resolver.ResolveAndPrice(context.Background(), 6, 99, nil, nil, 0.5)
	if kind := domain.KindOf(err); kind != domain.ErrServer {
		t.Errorf("expected kind %s, got %s (err=%v)", domain.ErrServer, kind, err)
	}
}
