package matching

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Variant titles encode size positionally ("Color / Size", "Size | Color",
// "Color / Size / Material"). The upstream source does not guarantee a
// structured schema, so four positional patterns are tried per size:
// at the end after a separator, in the middle between separators, at the
// start before a separator, and as a standalone word-boundary token.
var sizePatternTemplates = []string{
	`(?i)[/|-]\s*%s\s*$`,
	`(?i)[/|-]\s*%s\s*[/|-]`,
	`(?i)^\s*%s\s*[/|-]`,
	`(?i)\b%s\b`,
}

var sizePatterns sync.Map // size -> []*regexp.Regexp

func patternsFor(size string) []*regexp.Regexp {
	key := strings.ToLower(strings.TrimSpace(size))
	if cached, ok := sizePatterns.Load(key); ok {
		return cached.([]*regexp.Regexp)
	}

	quoted := regexp.QuoteMeta(key)
	patterns := make([]*regexp.Regexp, 0, len(sizePatternTemplates))
	for _, tmpl := range sizePatternTemplates {
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(tmpl, quoted)))
	}

	sizePatterns.Store(key, patterns)
	return patterns
}

// titleMatchesSize reports whether a variant title encodes the requested
// size, case-insensitively, in any of the positional patterns.
func titleMatchesSize(title, size string) bool {
	for _, pattern := range patternsFor(size) {
		if pattern.MatchString(title) {
			return true
		}
	}
	return false
}
