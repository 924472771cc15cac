package simplerecipes

import (
	"slices"
	"strings"

	"github.com/tendant/simple-recipes/pkg/simplerecipes/urlstrategy"
)

// ViewFilterState is the user-controlled part of the blog list view.
//
// Visible is the pagination cursor: the number of filtered entries to show.
// It starts at PageSize and grows by Increment on LoadMore.
type ViewFilterState struct {
	Search    string    `json:"search"`
	Category  string    `json:"category"`
	Sort      SortOrder `json:"sort"`
	Visible   int       `json:"visible"`
	PageSize  int       `json:"-"`
	Increment int       `json:"-"`
}

// NewViewFilterState returns the initial filter state with the default
// page size and increment.
func NewViewFilterState() ViewFilterState {
	return NewViewFilterStateWithPaging(DefaultPageSize, DefaultPageIncrement)
}

// NewViewFilterStateWithPaging returns the initial filter state for the
// given page size and increment. Non-positive values fall back to defaults.
func NewViewFilterStateWithPaging(pageSize, increment int) ViewFilterState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if increment <= 0 {
		increment = DefaultPageIncrement
	}
	return ViewFilterState{
		Category:  CategoryAll,
		Sort:      SortNewest,
		Visible:   pageSize,
		PageSize:  pageSize,
		Increment: increment,
	}
}

// Normalize fills zero values with their defaults.
func (s ViewFilterState) Normalize() ViewFilterState {
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.Increment <= 0 {
		s.Increment = DefaultPageIncrement
	}
	if s.Visible <= 0 {
		s.Visible = s.PageSize
	}
	if !s.Sort.IsValid() {
		s.Sort = SortNewest
	}
	if isAllCategory(s.Category) {
		s.Category = CategoryAll
	}
	return s
}

// WithSearch changes the search text and resets the pagination cursor.
func (s ViewFilterState) WithSearch(term string) ViewFilterState {
	s = s.Normalize()
	s.Search = term
	s.Visible = s.PageSize
	return s
}

// WithCategory changes the category and resets the pagination cursor.
func (s ViewFilterState) WithCategory(category string) ViewFilterState {
	s = s.Normalize()
	s.Category = category
	s.Visible = s.PageSize
	return s.Normalize()
}

// WithSort changes the sort order. The pagination cursor is kept.
func (s ViewFilterState) WithSort(order SortOrder) ViewFilterState {
	s = s.Normalize()
	if order.IsValid() {
		s.Sort = order
	}
	return s
}

// LoadMore advances the cursor by one increment, never past total.
// It is a no-op once every filtered entry is visible.
func (s ViewFilterState) LoadMore(total int) ViewFilterState {
	s = s.Normalize()
	if s.Visible >= total {
		return s
	}
	s.Visible = min(s.Visible+s.Increment, total)
	return s
}

// Reset restores search, category, sort and cursor to their initial values.
func (s ViewFilterState) Reset() ViewFilterState {
	s = s.Normalize()
	return NewViewFilterStateWithPaging(s.PageSize, s.Increment)
}

// BlogList is the render-ready blog list.
type BlogList struct {
	Filter  ViewFilterState    `json:"filter"`
	Items   []BlogEntrySummary `json:"items"`
	Total   int                `json:"total"`
	Shown   int                `json:"shown"`
	HasMore bool               `json:"has_more"`
	Empty   bool               `json:"empty"`
}

// BuildBlogList derives the visible list from raw entries and the filter
// state: copy, stable sort by creation time, filter by search text and
// category, then slice to the cursor. entries is never modified.
func BuildBlogList(entries []Entry, state ViewFilterState, images urlstrategy.Strategy) BlogList {
	state = state.Normalize()
	if images == nil {
		images = urlstrategy.NewDefault()
	}

	sorted := SortEntries(entries, state.Sort)
	filtered := FilterEntries(sorted, state.Search, state.Category)

	n := min(state.Visible, len(filtered))
	items := make([]BlogEntrySummary, 0, n)
	for _, e := range filtered[:n] {
		items = append(items, Summarize(e, images))
	}

	return BlogList{
		Filter:  state,
		Items:   items,
		Total:   len(filtered),
		Shown:   n,
		HasMore: state.Visible < len(filtered),
		Empty:   len(filtered) == 0,
	}
}

// SortEntries returns a copy of entries ordered by creation time. Entries
// with equal timestamps keep their relative order.
func SortEntries(entries []Entry, order SortOrder) []Entry {
	out := slices.Clone(entries)
	if out == nil {
		out = []Entry{}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		c := a.CreatedTime().Compare(b.CreatedTime())
		if order == SortOldest {
			return c
		}
		return -c
	})
	return out
}

// FilterEntries keeps entries whose title or description contains the search
// text (case-insensitive) and whose category matches. The input order is
// preserved.
func FilterEntries(entries []Entry, search, category string) []Entry {
	term := normalizeSearch(search)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !categoryMatches(category, e.Fields.Category) {
			continue
		}
		if term != "" && !containsFolded(e.Fields.Title, term) && !containsFolded(e.Fields.Description, term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summarize projects an entry into a list card.
func Summarize(e Entry, images urlstrategy.Strategy) BlogEntrySummary {
	if images == nil {
		images = urlstrategy.NewDefault()
	}
	description := e.Fields.Description
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return BlogEntrySummary{
		ID:          e.Sys.ID,
		Title:       e.Fields.Title,
		Description: description,
		Category:    e.Fields.Category,
		CreatedAt:   e.CreatedTime(),
		ImageURL:    images.ResolveImageURL(e.ImageURL()),
	}
}

// Categories returns "All" followed by the distinct entry categories in
// order of first appearance.
func Categories(entries []Entry) []string {
	out := []string{CategoryAll}
	seen := map[string]bool{fold(CategoryAll): true}
	for _, e := range entries {
		c := strings.TrimSpace(e.Fields.Category)
		if c == "" || seen[fold(c)] {
			continue
		}
		seen[fold(c)] = true
		out = append(out, c)
	}
	return out
}
