package web

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

var errInvalidVisible = errors.New("visible must be a positive integer")

// parseFilter applies the blog list query parameters on top of initial:
// q, category, sort, visible and reset=1.
func parseFilter(q url.Values, initial simplerecipes.ViewFilterState) (simplerecipes.ViewFilterState, error) {
	state := initial.Normalize()
	if q.Get("reset") == "1" {
		return state.Reset(), nil
	}

	if v := q.Get("q"); v != "" {
		state = state.WithSearch(v)
	}
	if v := q.Get("category"); v != "" {
		state = state.WithCategory(v)
	}

	order, err := simplerecipes.ParseSortOrder(strings.ToLower(strings.TrimSpace(q.Get("sort"))))
	if err != nil {
		return state, fmt.Errorf("%w: %q", err, q.Get("sort"))
	}
	state = state.WithSort(order)

	if v := q.Get("visible"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return state, errInvalidVisible
		}
		state.Visible = max(n, state.PageSize)
	}
	return state, nil
}

// blogURL encodes a filter state as a blog list link. Default values are
// left out.
func blogURL(state simplerecipes.ViewFilterState) string {
	q := url.Values{}
	if state.Search != "" {
		q.Set("q", state.Search)
	}
	if state.Category != "" && state.Category != simplerecipes.CategoryAll {
		q.Set("category", state.Category)
	}
	if state.Sort != "" && state.Sort != simplerecipes.SortNewest {
		q.Set("sort", string(state.Sort))
	}
	if state.Visible > state.PageSize {
		q.Set("visible", strconv.Itoa(state.Visible))
	}
	return withQuery("/blog", q)
}

// homeURL builds a recipe browser link
func homeURL(search, category string, extra url.Values) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if category != "" && category != simplerecipes.CategoryAll {
		q.Set("category", category)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return withQuery("/", q)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// browseRecipes applies the home query parameters to a fresh browser:
// q, category, featured, surprise=1 and reset=1.
func browseRecipes(svc simplerecipes.Service, q url.Values, rng *rand.Rand) *simplerecipes.RecipeBrowser {
	var opts []simplerecipes.BrowserOption
	if rng != nil {
		opts = append(opts, simplerecipes.WithRand(rng))
	}
	b := simplerecipes.RecipeBrowserFor(svc, opts...)
	if q.Get("reset") == "1" {
		b.Reset()
		return b
	}

	b.SetCategory(q.Get("category"))
	b.SetSearch(q.Get("q"))
	if v := q.Get("featured"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			b.Select(i)
		}
	}
	if q.Get("surprise") == "1" {
		b.Surprise()
	}
	return b
}
