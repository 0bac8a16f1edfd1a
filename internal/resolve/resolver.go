// Package resolve composes the catalog client, variant matcher and pricing
// calculator into the caller-facing resolve-and-price operation.
package resolve

import (
	"context"
	"log/slog"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
	"github.com/vredrick/printify-mcp-web/internal/matching"
	"github.com/vredrick/printify-mcp-web/internal/metrics"
	"github.com/vredrick/printify-mcp-web/internal/pricing"
)

// VariantSource is the slice of the catalog client the resolver needs.
type VariantSource interface {
	GetVariants(ctx context.Context, blueprintID, providerID int) ([]domain.Variant, error)
}

// Resolver turns rough product intent into exact, priced catalog variants.
type Resolver struct {
	catalog VariantSource
}

// NewResolver creates a resolver backed by the given catalog client.
func NewResolver(catalog VariantSource) *Resolver {
	return &Resolver{catalog: catalog}
}

// ResolveAndPrice fetches the live variant list for a blueprint+provider
// pair, resolves the requested colors/sizes against it through the fallback
// ladder, and prices each matched variant. The match tier tells the caller
// how far the request degraded; the caller decides whether to reject a
// degraded result.
func (r *Resolver) ResolveAndPrice(
	ctx context.Context,
	blueprintID, providerID int,
	requestedColors, requestedSizes []string,
	marginSpec any,
) (*domain.Resolution, error) {
	margin, err := pricing.ParseMargin(marginSpec)
	if err != nil {
		return nil, err
	}

	variants, err := r.catalog.GetVariants(ctx, blueprintID, providerID)
	if err != nil {
		return nil, err
	}

	result := matching.Match(variants, requestedColors, requestedSizes)
	metrics.MatchTierTotal.WithLabelValues(string(result.Tier)).Inc()
	if result.Tier != domain.TierExact {
		slog.Info("Variant request degraded",
			"blueprint_id", blueprintID,
			"provider_id", providerID,
			"tier", result.Tier,
			"matched", len(result.Variants),
		)
	}

	priced := make([]domain.PricedVariant, 0, len(result.Variants))
	for _, v := range result.Variants {
		p, err := pricing.CalculateWithMargin(v.Cost, margin)
		if err != nil {
			return nil, err
		}
		priced = append(priced, domain.PricedVariant{
			ID:     v.ID,
			Cost:   v.Cost,
			Price:  p.Price,
			Profit: p.Profit,
		})
	}

	return &domain.Resolution{Variants: priced, Tier: result.Tier}, nil
}
