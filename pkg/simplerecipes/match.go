package simplerecipes

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the case-folded form of s for case-insensitive matching.
// A new Caser is made per call because Casers keep state.
func fold(s string) string {
	return cases.Fold().String(s)
}

// normalizeSearch trims and folds a search term. An empty result means
// "match everything".
func normalizeSearch(term string) string {
	return fold(strings.TrimSpace(term))
}

// containsFolded reports whether the folded text contains the folded term.
func containsFolded(text, foldedTerm string) bool {
	if foldedTerm == "" {
		return true
	}
	return strings.Contains(fold(text), foldedTerm)
}

// isAllCategory reports whether category selects everything.
func isAllCategory(category string) bool {
	c := strings.TrimSpace(category)
	return c == "" || fold(c) == fold(CategoryAll)
}

// categoryMatches reports whether an item category passes the selected one.
func categoryMatches(selected, category string) bool {
	if isAllCategory(selected) {
		return true
	}
	return fold(strings.TrimSpace(selected)) == fold(strings.TrimSpace(category))
}

// SameCategory reports whether two category labels name the same category
// under the folding used for filtering. Every spelling of "All" is equal.
func SameCategory(a, b string) bool {
	if isAllCategory(a) || isAllCategory(b) {
		return isAllCategory(a) && isAllCategory(b)
	}
	return fold(strings.TrimSpace(a)) == fold(strings.TrimSpace(b))
}
