package simplerecipes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

func scenarioEntries() []simplerecipes.Entry {
	return []simplerecipes.Entry{
		entryAt("cake", "Cake", baseTime.Add(1*time.Hour)),
		entryAt("pasta", "Pasta", baseTime.Add(3*time.Hour)),
		entryAt("tofu", "Tofu Bowl", baseTime.Add(2*time.Hour)),
	}
}

func TestBuildBlogListSortNewest(t *testing.T) {
	list := simplerecipes.BuildBlogList(scenarioEntries(), simplerecipes.NewViewFilterState(), nil)
	assert.Equal(t, []string{"pasta", "tofu", "cake"}, ids(list.Items))
	assert.Equal(t, 3, list.Total)
	assert.False(t, list.HasMore)
	assert.False(t, list.Empty)
}

func TestBuildBlogListSortOldest(t *testing.T) {
	state := simplerecipes.NewViewFilterState().WithSort(simplerecipes.SortOldest)
	list := simplerecipes.BuildBlogList(scenarioEntries(), state, nil)
	assert.Equal(t, []string{"cake", "tofu", "pasta"}, ids(list.Items))
}

func TestBuildBlogListSearch(t *testing.T) {
	for _, term := range []string{"tof", "TOF", "  Tof  "} {
		t.Run(term, func(t *testing.T) {
			state := simplerecipes.NewViewFilterState().WithSearch(term)
			list := simplerecipes.BuildBlogList(scenarioEntries(), state, nil)
			assert.Equal(t, []string{"tofu"}, ids(list.Items))
		})
	}
}

func TestBuildBlogListSearchDescription(t *testing.T) {
	entries := scenarioEntries()
	entries[0].Fields.Description = "A rich chocolate dessert"
	state := simplerecipes.NewViewFilterState().WithSearch("CHOCOLATE")
	list := simplerecipes.BuildBlogList(entries, state, nil)
	assert.Equal(t, []string{"cake"}, ids(list.Items))
}

func TestBuildBlogListCategory(t *testing.T) {
	entries := scenarioEntries()
	entries[0].Fields.Category = "Desserts"
	entries[1].Fields.Category = "Dinner"

	state := simplerecipes.NewViewFilterState().WithCategory("desserts")
	list := simplerecipes.BuildBlogList(entries, state, nil)
	assert.Equal(t, []string{"cake"}, ids(list.Items))

	state = state.WithCategory("Breakfast")
	list = simplerecipes.BuildBlogList(entries, state, nil)
	assert.True(t, list.Empty)
	assert.Empty(t, list.Items)
}

func TestLoadMore(t *testing.T) {
	entries := numberedEntries(15)
	state := simplerecipes.NewViewFilterState()
	require.Equal(t, 9, state.Visible)

	list := simplerecipes.BuildBlogList(entries, state, nil)
	assert.Len(t, list.Items, 9)
	assert.True(t, list.HasMore)

	state = state.LoadMore(list.Total)
	assert.Equal(t, 15, state.Visible)

	list = simplerecipes.BuildBlogList(entries, state, nil)
	assert.Len(t, list.Items, 15)
	assert.False(t, list.HasMore)

	again := state.LoadMore(list.Total)
	assert.Equal(t, state, again)
}

func TestSearchAndCategoryResetCursor(t *testing.T) {
	state := simplerecipes.NewViewFilterState().LoadMore(30)
	require.Equal(t, 18, state.Visible)

	assert.Equal(t, 9, state.WithSearch("x").Visible)
	assert.Equal(t, 9, state.WithCategory("Dinner").Visible)
	assert.Equal(t, 18, state.WithSort(simplerecipes.SortOldest).Visible)
}

func TestReset(t *testing.T) {
	state := simplerecipes.NewViewFilterStateWithPaging(4, 2).
		WithSearch("pasta").
		WithCategory("Dinner").
		WithSort(simplerecipes.SortOldest).
		LoadMore(10)

	reset := state.Reset()
	assert.Equal(t, "", reset.Search)
	assert.Equal(t, simplerecipes.CategoryAll, reset.Category)
	assert.Equal(t, simplerecipes.SortNewest, reset.Sort)
	assert.Equal(t, 4, reset.Visible)
	assert.Equal(t, 2, reset.Increment)
}

func TestShownNeverExceedsCursor(t *testing.T) {
	entries := numberedEntries(20)
	for _, visible := range []int{1, 5, 9, 20, 40} {
		for _, search := range []string{"", "post 1", "nothing"} {
			state := simplerecipes.NewViewFilterState().WithSearch(search)
			state.Visible = visible
			list := simplerecipes.BuildBlogList(entries, state, nil)
			filtered := simplerecipes.FilterEntries(entries, search, simplerecipes.CategoryAll)
			assert.LessOrEqual(t, len(list.Items), min(visible, len(filtered)))
			assert.Equal(t, len(filtered), list.Total)
		}
	}
}

func TestStableSort(t *testing.T) {
	garbled := entryAt("f", "F", time.Time{})
	garbled.Sys.CreatedAt = "not-a-date"

	entries := []simplerecipes.Entry{
		entryAt("a", "A", baseTime),
		entryAt("b", "B", baseTime),
		entryAt("c", "C", time.Time{}),
		garbled,
		entryAt("d", "D", baseTime),
		entryAt("e", "E", time.Time{}),
	}

	newest := simplerecipes.SortEntries(entries, simplerecipes.SortNewest)
	assert.Equal(t, []string{"a", "b", "d", "c", "f", "e"}, entryIDs(newest))

	oldest := simplerecipes.SortEntries(entries, simplerecipes.SortOldest)
	assert.Equal(t, []string{"c", "f", "e", "a", "b", "d"}, entryIDs(oldest))
}

func TestBuildBlogListDoesNotMutateSource(t *testing.T) {
	entries := scenarioEntries()
	before := entryIDs(entries)
	simplerecipes.BuildBlogList(entries, simplerecipes.NewViewFilterState(), nil)
	assert.Equal(t, before, entryIDs(entries))
}

func TestBuildBlogListIdempotent(t *testing.T) {
	entries := numberedEntries(12)
	state := simplerecipes.NewViewFilterState().WithSearch("post").LoadMore(12)
	first := simplerecipes.BuildBlogList(entries, state, nil)
	second := simplerecipes.BuildBlogList(entries, first.Filter, nil)
	assert.Equal(t, first, second)
}

func TestSummarizeDefaults(t *testing.T) {
	e := entryAt("x", "X", time.Time{})
	e.Fields.Image = &simplerecipes.Asset{Fields: simplerecipes.AssetFields{
		File: &simplerecipes.AssetFile{URL: "//images.example.com/x.jpg"},
	}}
	s := simplerecipes.Summarize(e, nil)
	assert.Equal(t, simplerecipes.DefaultDescription, s.Description)
	assert.Equal(t, "https://images.example.com/x.jpg", s.ImageURL)
	assert.Equal(t, int64(0), s.CreatedAt.Unix())
}

func TestCategories(t *testing.T) {
	entries := scenarioEntries()
	entries[0].Fields.Category = "Desserts"
	entries[1].Fields.Category = "Dinner"
	entries[2].Fields.Category = "desserts"
	assert.Equal(t, []string{"All", "Desserts", "Dinner"}, simplerecipes.Categories(entries))
}

func TestParseSortOrder(t *testing.T) {
	o, err := simplerecipes.ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, simplerecipes.SortNewest, o)

	o, err = simplerecipes.ParseSortOrder("oldest")
	require.NoError(t, err)
	assert.Equal(t, "sys.createdAt", o.CMSOrder())

	_, err = simplerecipes.ParseSortOrder("random")
	assert.ErrorIs(t, err, simplerecipes.ErrInvalidSortOrder)
}

func entryIDs(entries []simplerecipes.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Sys.ID)
	}
	return out
}

func TestSameCategory(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Dinner", "dinner", true},
		{" DINNER ", "Dinner", true},
		{"All", "", true},
		{"all", "All", true},
		{"All", "Dinner", false},
		{"Lunch", "Dinner", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, simplerecipes.SameCategory(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}
