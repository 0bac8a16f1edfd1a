package printify

import "github.com/vredrick/printify-mcp-web/internal/core/domain"

// fallbackBlueprints is a small set of known-good catalog entries served
// when the upstream listing is persistently unavailable. Availability over
// freshness: these let callers make forward progress in degraded mode.
var fallbackBlueprints = []domain.Blueprint{
	{ID: 6, Title: "Unisex Heavy Cotton Tee", Brand: "Gildan", Model: "5000"},
	{ID: 12, Title: "Unisex Jersey Short Sleeve Tee", Brand: "Bella+Canvas", Model: "3001"},
	{ID: 145, Title: "Unisex Softstyle T-Shirt", Brand: "Gildan", Model: "64000"},
	{ID: 380, Title: "Unisex Heavy Blend Crewneck Sweatshirt", Brand: "Gildan", Model: "18000"},
	{ID: 384, Title: "Unisex Heavy Blend Hooded Sweatshirt", Brand: "Gildan", Model: "18500"},
}

// fallbackCatalog builds a tagged degraded-mode blueprint listing.
func fallbackCatalog(reason string) *domain.BlueprintList {
	blueprints := make([]domain.Blueprint, len(fallbackBlueprints))
	copy(blueprints, fallbackBlueprints)

	return &domain.BlueprintList{
		Blueprints:     blueprints,
		Fallback:       true,
		FallbackReason: "Printify catalog is unreachable; showing a limited set of known products. " + reason,
	}
}
