package simplerecipes

import (
	"context"
	"time"

	"github.com/tendant/simple-recipes/pkg/simplerecipes/urlstrategy"
)

// ContentClient defines the interface for reaching the headless CMS
type ContentClient interface {
	// ListEntries returns entries of one content type in the requested order
	ListEntries(ctx context.Context, query EntryQuery) ([]Entry, error)

	// GetEntry returns a single entry. Implementations return an error
	// wrapping ErrNotFound when the identifier is unknown.
	GetEntry(ctx context.Context, id string) (*Entry, error)
}

// FetchObserver receives the outcome of every CMS call made by the service
type FetchObserver interface {
	ObserveFetch(op string, duration time.Duration, err error)
}

// Service is the main interface consumed by the web handlers and the CLI
type Service interface {
	// ListEntries fetches the blog posts in the given order
	ListEntries(ctx context.Context, order SortOrder) ([]Entry, error)

	// GetEntry fetches one blog post
	GetEntry(ctx context.Context, id string) (*Entry, error)

	// Recipes returns a copy of the static recipe catalog
	Recipes() []RecipeSummary

	// Catalog returns the recipe catalog with its category list
	Catalog() *Catalog

	// ImageStrategy returns the strategy used to resolve image URLs
	ImageStrategy() urlstrategy.Strategy
}
