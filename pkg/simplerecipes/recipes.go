package simplerecipes

import (
	"math/rand/v2"
	"strings"
)

// NoSelection is the featured index when the filtered recipe list is empty.
const NoSelection = -1

// RecipeBrowser holds the home view state: search text, selected category
// and the featured recipe index into the filtered list.
// A RecipeBrowser is not safe for concurrent use; each view owns one.
type RecipeBrowser struct {
	catalog  *Catalog
	search   string
	category string
	featured int
	intN     func(n int) int
}

// BrowserOption configures a RecipeBrowser
type BrowserOption func(*RecipeBrowser)

// WithRand makes Surprise draw from r instead of the global source
func WithRand(r *rand.Rand) BrowserOption {
	return func(b *RecipeBrowser) {
		b.intN = r.IntN
	}
}

// NewRecipeBrowser creates a browser over the catalog with search "",
// category "All" and the first recipe featured.
func NewRecipeBrowser(catalog *Catalog, opts ...BrowserOption) *RecipeBrowser {
	if catalog == nil {
		catalog = &Catalog{}
	}
	b := &RecipeBrowser{
		catalog:  catalog,
		category: CategoryAll,
		intN:     rand.IntN,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.resetFeatured()
	return b
}

// Search returns the current search text
func (b *RecipeBrowser) Search() string { return b.search }

// Category returns the selected category
func (b *RecipeBrowser) Category() string { return b.category }

// FeaturedIndex returns the featured index, or NoSelection
func (b *RecipeBrowser) FeaturedIndex() int { return b.featured }

// Filtered returns the recipes matching the category and the title search.
func (b *RecipeBrowser) Filtered() []RecipeSummary {
	term := normalizeSearch(b.search)
	out := make([]RecipeSummary, 0, len(b.catalog.Recipes))
	for _, r := range b.catalog.Recipes {
		if !categoryMatches(b.category, r.Category) {
			continue
		}
		if !containsFolded(r.Title, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Featured returns the featured recipe. ok is false when nothing matches.
func (b *RecipeBrowser) Featured() (recipe RecipeSummary, ok bool) {
	filtered := b.Filtered()
	if len(filtered) == 0 || b.featured == NoSelection {
		return RecipeSummary{}, false
	}
	if b.featured >= len(filtered) {
		return filtered[0], true
	}
	return filtered[b.featured], true
}

// SetSearch changes the search text and resets the featured index.
func (b *RecipeBrowser) SetSearch(term string) {
	b.search = term
	b.resetFeatured()
}

// SetCategory changes the category and resets the featured index.
func (b *RecipeBrowser) SetCategory(category string) {
	if isAllCategory(category) {
		category = CategoryAll
	}
	b.category = strings.TrimSpace(category)
	b.resetFeatured()
}

// Select features the recipe at index i of the filtered list. Out-of-range
// indexes select the first recipe.
func (b *RecipeBrowser) Select(i int) {
	n := len(b.Filtered())
	switch {
	case n == 0:
		b.featured = NoSelection
	case i < 0 || i >= n:
		b.featured = 0
	default:
		b.featured = i
	}
}

// Surprise features a uniformly random recipe of the filtered list.
func (b *RecipeBrowser) Surprise() (RecipeSummary, bool) {
	n := len(b.Filtered())
	if n == 0 {
		b.featured = NoSelection
		return RecipeSummary{}, false
	}
	b.featured = b.intN(n)
	return b.Featured()
}

// Reset restores search "" and category "All".
func (b *RecipeBrowser) Reset() {
	b.search = ""
	b.category = CategoryAll
	b.resetFeatured()
}

func (b *RecipeBrowser) resetFeatured() {
	if len(b.Filtered()) == 0 {
		b.featured = NoSelection
		return
	}
	b.featured = 0
}

// RecipeView is the render-ready home view.
type RecipeView struct {
	Search        string          `json:"search"`
	Category      string          `json:"category"`
	Categories    []string        `json:"categories"`
	Recipes       []RecipeSummary `json:"recipes"`
	Featured      *RecipeSummary  `json:"featured"`
	FeaturedIndex int             `json:"featured_index"`
	Empty         bool            `json:"empty"`
}

// View returns the current home view.
func (b *RecipeBrowser) View() RecipeView {
	filtered := b.Filtered()
	v := RecipeView{
		Search:        b.search,
		Category:      b.category,
		Categories:    b.catalog.CategoryChips(),
		Recipes:       filtered,
		FeaturedIndex: b.featured,
		Empty:         len(filtered) == 0,
	}
	if r, ok := b.Featured(); ok {
		v.Featured = &r
	}
	return v
}
