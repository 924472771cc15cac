package simplerecipes

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// User-facing messages of the error states
const (
	MessageListFailed   = "Failed to load blog posts"
	MessageDetailFailed = "Failed to load blog post"
	MessageNotFound     = "Blog post not found"
)

// BlogListView owns the fetch state and filter state of the blog list.
type BlogListView struct {
	svc     Service
	tracker *Tracker

	mu        sync.Mutex
	entries   []Entry
	filter    ViewFilterState
	slidingIn bool
	message   string
}

// BlogListSnapshot is a consistent copy of a BlogListView.
type BlogListSnapshot struct {
	State      FetchState `json:"state"`
	Message    string     `json:"message,omitempty"`
	SlidingIn  bool       `json:"sliding_in"`
	Categories []string   `json:"categories"`
	List       BlogList   `json:"list"`
}

// NewBlogListView creates an idle list view with the given filter state.
func NewBlogListView(svc Service, filter ViewFilterState) *BlogListView {
	return &BlogListView{
		svc:     svc,
		tracker: NewTracker(),
		filter:  filter.Normalize(),
	}
}

// Load fetches the entries. A failure discards previously held entries.
// It returns ErrSuperseded when a newer Load started before this one
// finished; the view then keeps the newer result.
func (v *BlogListView) Load(ctx context.Context) error {
	v.mu.Lock()
	order := v.filter.Sort
	fetchCtx, tk := v.tracker.Begin(ctx)
	v.mu.Unlock()

	slog.Debug("Loading blog list", "fetch_id", tk.ID, "generation", tk.Generation)

	entries, err := v.svc.ListEntries(fetchCtx, order)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		if !v.tracker.Fail(tk, err) {
			slog.Debug("Discarded stale blog list failure", "fetch_id", tk.ID)
			return ErrSuperseded
		}
		v.entries = nil
		v.slidingIn = false
		v.message = MessageListFailed
		return err
	}

	if !v.tracker.Succeed(tk) {
		slog.Debug("Discarded stale blog list", "fetch_id", tk.ID)
		return ErrSuperseded
	}
	v.entries = entries
	v.slidingIn = true
	v.message = ""
	return nil
}

// Retry re-enters the loading state after an error.
func (v *BlogListView) Retry(ctx context.Context) error {
	return v.Load(ctx)
}

// SetSearch changes the search text and resets the cursor.
func (v *BlogListView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = v.filter.WithSearch(term)
}

// SetCategory changes the category and resets the cursor.
func (v *BlogListView) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = v.filter.WithCategory(category)
}

// SetSort changes the sort order.
func (v *BlogListView) SetSort(order SortOrder) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = v.filter.WithSort(order)
}

// LoadMore shows one more increment of entries.
func (v *BlogListView) LoadMore() {
	v.mu.Lock()
	defer v.mu.Unlock()
	total := len(FilterEntries(v.entries, v.filter.Search, v.filter.Category))
	v.filter = v.filter.LoadMore(total)
}

// Reset restores the default filter state.
func (v *BlogListView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = v.filter.Reset()
}

// Filter returns the current filter state.
func (v *BlogListView) Filter() ViewFilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Snapshot returns the render-ready state of the view.
func (v *BlogListView) Snapshot() BlogListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	state, _ := v.tracker.State()
	snap := BlogListSnapshot{
		State:     state,
		Message:   v.message,
		SlidingIn: v.slidingIn,
	}
	if state == FetchSuccess {
		snap.Categories = Categories(v.entries)
		snap.List = BuildBlogList(v.entries, v.filter, v.svc.ImageStrategy())
	} else {
		snap.Categories = []string{CategoryAll}
		snap.List = BlogList{Filter: v.filter, Items: []BlogEntrySummary{}}
	}
	return snap
}

// BlogDetailView owns the fetch state of a single blog post.
type BlogDetailView struct {
	svc     Service
	tracker *Tracker

	mu       sync.Mutex
	id       string
	detail   *BlogEntryDetail
	message  string
	notFound bool
}

// BlogDetailSnapshot is a consistent copy of a BlogDetailView.
type BlogDetailSnapshot struct {
	State    FetchState       `json:"state"`
	ID       string           `json:"id"`
	Message  string           `json:"message,omitempty"`
	NotFound bool             `json:"not_found"`
	Detail   *BlogEntryDetail `json:"detail,omitempty"`
}

// NewBlogDetailView creates an idle detail view.
func NewBlogDetailView(svc Service) *BlogDetailView {
	return &BlogDetailView{
		svc:     svc,
		tracker: NewTracker(),
	}
}

// Load fetches the entry with the given id. Navigating to another id while
// a fetch is in flight cancels it and drops its result.
func (v *BlogDetailView) Load(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	// The id is recorded in the same critical section as Begin so the
	// latest ticket always belongs to the latest id.
	v.mu.Lock()
	fetchCtx, tk := v.tracker.Begin(ctx)
	v.id = id
	v.mu.Unlock()

	slog.Debug("Loading blog post", "entry_id", id, "fetch_id", tk.ID, "generation", tk.Generation)
	entry, err := v.svc.GetEntry(fetchCtx, id)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		if !v.tracker.Fail(tk, err) {
			slog.Debug("Discarded stale blog post failure", "entry_id", id, "fetch_id", tk.ID)
			return ErrSuperseded
		}
		v.detail = nil
		v.notFound = IsNotFound(err)
		if v.notFound {
			v.message = MessageNotFound
		} else {
			v.message = MessageDetailFailed
		}
		return err
	}

	if !v.tracker.Succeed(tk) {
		slog.Debug("Discarded stale blog post", "entry_id", id, "fetch_id", tk.ID)
		return ErrSuperseded
	}
	detail := NormalizeDetail(*entry, v.svc.ImageStrategy())
	v.detail = &detail
	v.message = ""
	v.notFound = false
	return nil
}

// Retry fetches the most recently requested id again.
func (v *BlogDetailView) Retry(ctx context.Context) error {
	v.mu.Lock()
	id := v.id
	v.mu.Unlock()
	return v.Load(ctx, id)
}

// Snapshot returns the render-ready state of the view.
func (v *BlogDetailView) Snapshot() BlogDetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	state, _ := v.tracker.State()
	snap := BlogDetailSnapshot{
		State:    state,
		ID:       v.id,
		Message:  v.message,
		NotFound: v.notFound,
	}
	if state == FetchSuccess && v.detail != nil {
		d := *v.detail
		snap.Detail = &d
	}
	return snap
}

// RecipeBrowserFor creates a home view browser over the service catalog.
func RecipeBrowserFor(svc Service, opts ...BrowserOption) *RecipeBrowser {
	catalog := svc.Catalog()
	return NewRecipeBrowser(&Catalog{
		Categories: slices.Clone(catalog.Categories),
		Recipes:    catalog.RecipesCopy(),
	}, opts...)
}
