package matching

import (
	"strings"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
)

// titleVariations maps canonical colors to spellings known to appear in
// upstream variant titles.
var titleVariations = map[string][]string{
	"white":  {"white", "ivory", "natural", "cream", "arctic white"},
	"black":  {"black", "jet black", "solid black"},
	"gray":   {"gray", "grey", "heather", "charcoal", "graphite", "sport grey", "athletic heather"},
	"red":    {"red", "cardinal", "cherry red", "crimson", "maroon", "burgundy"},
	"blue":   {"blue", "royal", "carolina blue", "sapphire", "aqua", "teal"},
	"green":  {"green", "forest", "kelly", "olive", "mint", "military green"},
	"pink":   {"pink", "rose", "fuchsia", "berry"},
	"purple": {"purple", "violet", "lavender", "plum", "team purple"},
	"yellow": {"yellow", "gold", "daisy", "mustard"},
	"orange": {"orange", "coral", "sunset", "burnt orange"},
	"brown":  {"brown", "tan", "chocolate", "sand", "khaki"},
	"navy":   {"navy", "midnight", "oxford navy"},
}

// commonColors and commonSizes are the safe combinations substituted when
// nothing in the request can be honored.
var (
	commonColors = []string{"white", "black", "gray", "navy"}
	commonSizes  = []string{"M", "L", "XL"}
)

// firstN bounds how many variants the last-resort tier returns.
const firstN = 5

// matchStrategy is one rung of the fallback ladder: applied in order,
// stopping at the first non-empty result.
type matchStrategy struct {
	tier  domain.MatchTier
	apply func(variants []domain.Variant, colors, sizes []string) []domain.Variant
}

var strategies = []matchStrategy{
	{domain.TierExact, matchExact},
	{domain.TierColorOnly, matchColorOnly},
	{domain.TierCommonFallback, matchCommon},
	{domain.TierFirstN, matchFirstN},
}

// Match filters variants by the requested colors and sizes, degrading
// through the fallback ladder when the strict filter yields nothing. It
// never fails: the result is empty only if the variant list itself was
// empty, and the tier records which rung produced it.
func Match(variants []domain.Variant, requestedColors, requestedSizes []string) domain.MatchResult {
	for _, strategy := range strategies {
		if matched := strategy.apply(variants, requestedColors, requestedSizes); len(matched) > 0 {
			return domain.MatchResult{Variants: matched, Tier: strategy.tier}
		}
	}
	return domain.MatchResult{Variants: nil, Tier: domain.TierFirstN}
}

// matchExact keeps variants whose title matches any requested color AND any
// requested size. An empty request list leaves that dimension unconstrained.
func matchExact(variants []domain.Variant, colors, sizes []string) []domain.Variant {
	var matched []domain.Variant
	for _, v := range variants {
		if titleMatchesAnyColor(v.Title, colors) && titleMatchesAnySize(v.Title, sizes) {
			matched = append(matched, v)
		}
	}
	return matched
}

// matchColorOnly relaxes the size constraint entirely. Only meaningful when
// colors were actually requested; otherwise the exact tier already covered it.
func matchColorOnly(variants []domain.Variant, colors, _ []string) []domain.Variant {
	if len(colors) == 0 {
		return nil
	}
	var matched []domain.Variant
	for _, v := range variants {
		if titleMatchesAnyColor(v.Title, colors) {
			matched = append(matched, v)
		}
	}
	return matched
}

// matchCommon substitutes safe color/size combinations for the request.
func matchCommon(variants []domain.Variant, _, _ []string) []domain.Variant {
	var matched []domain.Variant
	for _, v := range variants {
		if titleMatchesAnyColor(v.Title, commonColors) && titleMatchesAnySize(v.Title, commonSizes) {
			matched = append(matched, v)
		}
	}
	return matched
}

// matchFirstN takes the first variants unconditionally so the caller always
// gets something to work with, at the cost of possibly ignoring the request.
func matchFirstN(variants []domain.Variant, _, _ []string) []domain.Variant {
	n := min(firstN, len(variants))
	return variants[:n]
}

func titleMatchesAnyColor(title string, colors []string) bool {
	if len(colors) == 0 {
		return true
	}
	for _, color := range colors {
		if titleMatchesColor(title, color) {
			return true
		}
	}
	return false
}

// titleMatchesColor fuzzy-matches a requested color against a variant
// title: direct substring first, then the known title spellings of the
// normalized canonical color.
func titleMatchesColor(title, color string) bool {
	lowerTitle := strings.ToLower(title)
	lowerColor := strings.ToLower(strings.TrimSpace(color))

	if strings.Contains(lowerTitle, lowerColor) {
		return true
	}

	for _, variation := range titleVariations[NormalizeColor(color)] {
		if strings.Contains(lowerTitle, variation) {
			return true
		}
	}
	return false
}

func titleMatchesAnySize(title string, sizes []string) bool {
	if len(sizes) == 0 {
		return true
	}
	for _, size := range sizes {
		if titleMatchesSize(title, size) {
			return true
		}
	}
	return false
}
