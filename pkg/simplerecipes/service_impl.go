package simplerecipes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tendant/simple-recipes/pkg/simplerecipes/urlstrategy"
)

// service implements the Service interface
type service struct {
	client      ContentClient
	catalog     *Catalog
	contentType string
	fetchLimit  int
	images      urlstrategy.Strategy
	observer    FetchObserver
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithContentClient sets the CMS client for the service
func WithContentClient(client ContentClient) Option {
	return func(s *service) {
		s.client = client
	}
}

// WithCatalog sets the recipe catalog shown on the home page
func WithCatalog(catalog *Catalog) Option {
	return func(s *service) {
		s.catalog = catalog
	}
}

// WithContentType sets the CMS content type holding blog posts
func WithContentType(contentType string) Option {
	return func(s *service) {
		if contentType != "" {
			s.contentType = contentType
		}
	}
}

// WithFetchLimit sets the maximum number of entries fetched for the list
func WithFetchLimit(limit int) Option {
	return func(s *service) {
		if limit > 0 {
			s.fetchLimit = limit
		}
	}
}

// WithImageStrategy sets how asset URLs are resolved
func WithImageStrategy(strategy urlstrategy.Strategy) Option {
	return func(s *service) {
		if strategy != nil {
			s.images = strategy
		}
	}
}

// WithFetchObserver sets the observer notified after every CMS call
func WithFetchObserver(observer FetchObserver) Option {
	return func(s *service) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		contentType: DefaultContentType,
		fetchLimit:  DefaultFetchLimit,
		images:      urlstrategy.NewDefault(),
		observer:    NewNoopFetchObserver(),
	}

	for _, option := range options {
		option(s)
	}

	if s.client == nil {
		return nil, ErrContentClientRequired
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}

	return s, nil
}

// Blog operations

func (s *service) ListEntries(ctx context.Context, order SortOrder) ([]Entry, error) {
	if !order.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	start := time.Now()
	entries, err := s.client.ListEntries(ctx, EntryQuery{
		ContentType: s.contentType,
		Order:       order.CMSOrder(),
		Limit:       s.fetchLimit,
	})
	s.observer.ObserveFetch("list", time.Since(start), err)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("List entries cancelled", "content_type", s.contentType)
		} else {
			slog.Error("Failed to list entries", "content_type", s.contentType, "order", order, "error", err)
		}
		return nil, &FetchError{
			Op:          "list",
			ContentType: s.contentType,
			Err:         asFetchErr(err),
		}
	}

	slog.Debug("Listed entries", "content_type", s.contentType, "count", len(entries), "duration", time.Since(start))
	return entries, nil
}

func (s *service) GetEntry(ctx context.Context, id string) (*Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &FetchError{Op: "get", ContentType: s.contentType, Err: ErrNotFound}
	}

	start := time.Now()
	entry, err := s.client.GetEntry(ctx, id)
	s.observer.ObserveFetch("get", time.Since(start), err)
	if err != nil {
		switch {
		case IsNotFound(err):
			slog.Info("Entry not found", "entry_id", id)
		case errors.Is(err, context.Canceled):
			slog.Info("Get entry cancelled", "entry_id", id)
		default:
			slog.Error("Failed to get entry", "entry_id", id, "error", err)
		}
		return nil, &FetchError{
			Op:          "get",
			ContentType: s.contentType,
			EntryID:     id,
			Err:         asFetchErr(err),
		}
	}

	return entry, nil
}

// Catalog operations

func (s *service) Recipes() []RecipeSummary {
	return s.catalog.RecipesCopy()
}

func (s *service) Catalog() *Catalog {
	return s.catalog
}

func (s *service) ImageStrategy() urlstrategy.Strategy {
	return s.images
}

// asFetchErr makes sure every client failure matches ErrFetch or ErrNotFound.
func asFetchErr(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrFetch) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFetch, err)
}
