// Package matching resolves informal color/size descriptors onto exact
// catalog variants. It never fails: unmatched requests degrade through
// fallback tiers instead, since "no exact match" is an expected condition
// in fuzzy resolution.
package matching

import "strings"

// canonicalColors is the fixed set normalization maps onto.
var canonicalColors = []string{
	"white", "black", "gray", "red", "blue", "green",
	"pink", "purple", "yellow", "orange", "brown", "navy",
}

// colorSynonyms maps informal color names to canonical colors.
var colorSynonyms = map[string]string{
	"grey":          "gray",
	"heather grey":  "gray",
	"heather gray":  "gray",
	"sport grey":    "gray",
	"sport gray":    "gray",
	"charcoal":      "gray",
	"graphite":      "gray",
	"silver":        "gray",
	"carolina blue": "blue",
	"sky blue":      "blue",
	"royal blue":    "blue",
	"royal":         "blue",
	"baby blue":     "blue",
	"light blue":    "blue",
	"aqua":          "blue",
	"teal":          "blue",
	"turquoise":     "blue",
	"midnight":      "navy",
	"midnight navy": "navy",
	"navy blue":     "navy",
	"forest green":  "green",
	"kelly green":   "green",
	"kelly":         "green",
	"olive":         "green",
	"mint":          "green",
	"burgundy":      "red",
	"maroon":        "red",
	"cardinal":      "red",
	"crimson":       "red",
	"scarlet":       "red",
	"gold":          "yellow",
	"mustard":       "yellow",
	"daisy":         "yellow",
	"lavender":      "purple",
	"violet":        "purple",
	"lilac":         "purple",
	"plum":          "purple",
	"hot pink":      "pink",
	"light pink":    "pink",
	"rose":          "pink",
	"fuchsia":       "pink",
	"coral":         "orange",
	"rust":          "orange",
	"tan":           "brown",
	"chocolate":     "brown",
	"sand":          "brown",
	"khaki":         "brown",
	"cream":         "white",
	"ivory":         "white",
	"natural":       "white",
	"off white":     "white",
	"off-white":     "white",
}

// NormalizeColor maps an informal color token to a canonical color via
// direct match, the synonym table, or substring containment. An unmapped
// token is returned lower-cased unchanged; callers must tolerate synonyms
// not in the table.
func NormalizeColor(input string) string {
	color := strings.ToLower(strings.TrimSpace(input))

	if color == "grey" {
		return "gray"
	}
	for _, c := range canonicalColors {
		if color == c {
			return c
		}
	}

	if canonical, ok := colorSynonyms[color]; ok {
		return canonical
	}

	for _, c := range canonicalColors {
		if strings.Contains(color, c) {
			return c
		}
	}
	if strings.Contains(color, "grey") {
		return "gray"
	}

	return color
}
