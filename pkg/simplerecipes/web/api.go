package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

// APIHandler serves the view-models as JSON
type APIHandler struct {
	service        simplerecipes.Service
	body           *BodyRenderer
	filter         simplerecipes.ViewFilterState
	allowedOrigins []string
}

// APIOption configures an APIHandler
type APIOption func(*APIHandler)

// WithAPIFilterState sets the initial blog list filter state (paging)
func WithAPIFilterState(state simplerecipes.ViewFilterState) APIOption {
	return func(h *APIHandler) {
		h.filter = state.Normalize()
	}
}

// WithAPIMarkdown renders plain-text post bodies as markdown in the html field
func WithAPIMarkdown(enabled bool) APIOption {
	return func(h *APIHandler) {
		h.body = NewBodyRenderer(enabled)
	}
}

// WithCORS allows cross-origin GET requests from origins
func WithCORS(origins ...string) APIOption {
	return func(h *APIHandler) {
		h.allowedOrigins = origins
	}
}

// NewAPIHandler creates a new JSON API handler
func NewAPIHandler(service simplerecipes.Service, opts ...APIOption) *APIHandler {
	h := &APIHandler{
		service: service,
		body:    NewBodyRenderer(false),
		filter:  simplerecipes.NewViewFilterState(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API routes
func (h *APIHandler) Routes() chi.Router {
	r := chi.NewRouter()

	if len(h.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/recipes", h.Recipes)
	r.Get("/blog", h.BlogList)
	r.Get("/blog/{id}", h.BlogPost)

	return r
}

// ErrorResponse is the body of every API error
type ErrorResponse struct {
	Error string `json:"error"`
}

// BlogPostResponse is the detail view-model with the rendered body
type BlogPostResponse struct {
	simplerecipes.BlogDetailSnapshot
	HTML template.HTML `json:"html,omitempty"`
}

// Recipes returns the recipe browser view
func (h *APIHandler) Recipes(w http.ResponseWriter, r *http.Request) {
	b := browseRecipes(h.service, r.URL.Query(), nil)
	render.JSON(w, r, b.View())
}

// BlogList returns the blog list view
func (h *APIHandler) BlogList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query(), h.filter)
	if err != nil {
		h.error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	view := simplerecipes.NewBlogListView(h.service, filter)
	if err := view.Load(r.Context()); err != nil {
		h.error(w, r, http.StatusBadGateway, view.Snapshot().Message)
		return
	}

	render.JSON(w, r, view.Snapshot())
}

// BlogPost returns one blog post
func (h *APIHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view := simplerecipes.NewBlogDetailView(h.service)
	if err := view.Load(r.Context(), id); err != nil {
		snap := view.Snapshot()
		status := http.StatusBadGateway
		if snap.NotFound {
			status = http.StatusNotFound
		}
		h.error(w, r, status, snap.Message)
		return
	}

	snap := view.Snapshot()
	resp := BlogPostResponse{BlogDetailSnapshot: snap}
	if snap.Detail != nil {
		body, err := h.body.Render(snap.Detail.Content)
		if err != nil {
			slog.Error("Failed to render post body", "entry_id", id, "error", err)
			h.error(w, r, http.StatusInternalServerError, "Failed to render blog post")
			return
		}
		resp.HTML = body
	}

	slog.Debug("Blog post retrieved", "entry_id", id)
	render.JSON(w, r, resp)
}

func (h *APIHandler) error(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
}
