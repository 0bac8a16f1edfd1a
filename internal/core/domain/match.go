package domain

// MatchTier records which rung of the fallback ladder produced a match.
type MatchTier string

const (
	// TierExact: both requested colors and sizes matched.
	TierExact MatchTier = "exact"
	// TierColorOnly: the size constraint was relaxed entirely.
	TierColorOnly MatchTier = "color_only"
	// TierCommonFallback: safe color/size combinations were substituted.
	TierCommonFallback MatchTier = "common_fallback"
	// TierFirstN: the request was ignored and the first variants taken.
	TierFirstN MatchTier = "first_n"
)

// MatchResult is the outcome of resolving requested colors/sizes against a
// variant list. Variants is empty only if the source list itself was empty.
type MatchResult struct {
	Variants []Variant `json:"variants"`
	Tier     MatchTier `json:"match_tier"`
}

// PricingResult holds a selling price and profit derived from a base cost,
// both in minor currency units.
type PricingResult struct {
	Price  int64 `json:"price"`
	Profit int64 `json:"profit"`
}

// PricedVariant pairs a resolved variant with its computed selling price.
type PricedVariant struct {
	ID     int   `json:"id"`
	Cost   int64 `json:"cost"`
	Price  int64 `json:"price"`
	Profit int64 `json:"profit"`
}

// Resolution is the composed resolve-and-price result handed to callers.
type Resolution struct {
	Variants []PricedVariant `json:"variants"`
	Tier     MatchTier       `json:"match_tier"`
}
