package web

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

// Handler serves the server-rendered pages
type Handler struct {
	service   simplerecipes.Service
	templates *Templates
	body      *BodyRenderer
	filter    simplerecipes.ViewFilterState
	newRand   func() *rand.Rand
}

// HandlerOption configures a Handler
type HandlerOption func(*Handler)

// WithTemplates replaces the embedded page templates
func WithTemplates(t *Templates) HandlerOption {
	return func(h *Handler) {
		if t != nil {
			h.templates = t
		}
	}
}

// WithMarkdown renders plain-text post bodies as markdown
func WithMarkdown(enabled bool) HandlerOption {
	return func(h *Handler) {
		h.body = NewBodyRenderer(enabled)
	}
}

// WithFilterState sets the initial blog list filter state (paging)
func WithFilterState(state simplerecipes.ViewFilterState) HandlerOption {
	return func(h *Handler) {
		h.filter = state.Normalize()
	}
}

// WithSurpriseSeed makes "surprise me" deterministic: every request draws
// from a fresh generator seeded with seed1 and seed2.
func WithSurpriseSeed(seed1, seed2 uint64) HandlerOption {
	return func(h *Handler) {
		h.newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(seed1, seed2))
		}
	}
}

// NewHandler creates a new page handler
func NewHandler(service simplerecipes.Service, opts ...HandlerOption) *Handler {
	h := &Handler{
		service: service,
		body:    NewBodyRenderer(false),
		filter:  simplerecipes.NewViewFilterState(),
		newRand: func() *rand.Rand { return nil },
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.templates == nil {
		h.templates = DefaultTemplates()
	}
	return h
}

// Routes returns the page routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/blog", h.BlogList)
	r.Get("/blog/{id}", h.BlogPost)

	return r
}

type chip struct {
	Label  string
	URL    string
	Active bool
}

type recipeCard struct {
	Recipe   simplerecipes.RecipeSummary
	URL      string
	Featured bool
}

type homePage struct {
	Title       string
	View        simplerecipes.RecipeView
	Chips       []chip
	Cards       []recipeCard
	SurpriseURL string
	ResetURL    string
}

// Home renders the recipe browser
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	b := browseRecipes(h.service, r.URL.Query(), h.newRand())
	view := b.View()

	page := homePage{
		Title:       "Recipes",
		View:        view,
		SurpriseURL: homeURL(view.Search, view.Category, url.Values{"surprise": {"1"}}),
		ResetURL:    homeURL("", "", url.Values{"reset": {"1"}}),
	}
	for _, c := range view.Categories {
		page.Chips = append(page.Chips, chip{
			Label:  c,
			URL:    homeURL(view.Search, c, nil),
			Active: simplerecipes.SameCategory(c, view.Category),
		})
	}
	for i, recipe := range view.Recipes {
		page.Cards = append(page.Cards, recipeCard{
			Recipe:   recipe,
			URL:      homeURL(view.Search, view.Category, url.Values{"featured": {strconv.Itoa(i)}}),
			Featured: i == view.FeaturedIndex,
		})
	}

	h.render(w, http.StatusOK, PageHome, page)
}

type blogPage struct {
	Title       string
	Filter      simplerecipes.ViewFilterState
	List        simplerecipes.BlogList
	Chips       []chip
	Message     string
	SlidingIn   bool
	RetryURL    string
	LoadMoreURL string
	ResetURL    string
}

// BlogList renders the blog list
func (h *Handler) BlogList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query(), h.filter)
	if err != nil {
		slog.Warn("Invalid blog list query", "query", r.URL.RawQuery, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := simplerecipes.NewBlogListView(h.service, filter)
	loadErr := view.Load(r.Context())
	snap := view.Snapshot()

	page := blogPage{
		Title:       "Blog",
		Filter:      snap.List.Filter,
		List:        snap.List,
		Message:     snap.Message,
		SlidingIn:   snap.SlidingIn,
		RetryURL:    blogURL(filter),
		LoadMoreURL: blogURL(snap.List.Filter.LoadMore(snap.List.Total)),
		ResetURL:    "/blog?reset=1",
	}
	for _, c := range snap.Categories {
		page.Chips = append(page.Chips, chip{
			Label:  c,
			URL:    blogURL(snap.List.Filter.WithCategory(c)),
			Active: simplerecipes.SameCategory(c, snap.List.Filter.Category),
		})
	}

	status := http.StatusOK
	if loadErr != nil {
		status = http.StatusBadGateway
	}
	h.render(w, status, PageBlog, page)
}

type postPage struct {
	Title    string
	Detail   *simplerecipes.BlogEntryDetail
	Body     template.HTML
	Message  string
	NotFound bool
	RetryURL string
}

// BlogPost renders one blog post
func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view := simplerecipes.NewBlogDetailView(h.service)
	loadErr := view.Load(r.Context(), id)
	snap := view.Snapshot()

	page := postPage{
		Title:    "Blog post",
		Message:  snap.Message,
		NotFound: snap.NotFound,
		RetryURL: "/blog/" + url.PathEscape(id),
	}

	status := http.StatusOK
	switch {
	case loadErr != nil && snap.NotFound:
		status = http.StatusNotFound
	case loadErr != nil:
		status = http.StatusBadGateway
	case snap.Detail != nil:
		body, err := h.body.Render(snap.Detail.Content)
		if err != nil {
			slog.Error("Failed to render post body", "entry_id", id, "error", err)
			http.Error(w, "Failed to render blog post", http.StatusInternalServerError)
			return
		}
		page.Title = snap.Detail.Title
		page.Detail = snap.Detail
		page.Body = body
	}

	h.render(w, status, PagePost, page)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, name, data); err != nil {
		slog.Error("Failed to render page", "page", name, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.Debug("Failed to write page", "page", name, "error", err)
	}
}
