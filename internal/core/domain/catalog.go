package domain

// Blueprint is a catalog template for a product type, before a print
// provider or variant is chosen.
type Blueprint struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// BlueprintList is a page of blueprints. Fallback is set when the list
// was served from the hardcoded degraded-mode catalog instead of the
// upstream API; callers must surface FallbackReason to end users.
type BlueprintList struct {
	Blueprints     []Blueprint `json:"data"`
	Fallback       bool        `json:"_fallback,omitempty"`
	FallbackReason string      `json:"_fallback_reason,omitempty"`
}

// PrintProvider is a manufacturing partner offering a blueprint with its
// own variant set and costs.
type PrintProvider struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
}

// Variant is a sellable configuration of a blueprint+provider.
// Title encodes "Color / Size" or similar; the upstream API does not
// guarantee a structured schema, so the title is the source of truth.
// Cost is in minor currency units (cents).
type Variant struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Cost  int64  `json:"cost"`
}

// VariantList is the variant set of one blueprint+provider pair.
type VariantList struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Variants []Variant `json:"variants"`
}
