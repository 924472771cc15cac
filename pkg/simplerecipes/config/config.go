package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/client/memory"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/contentful"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/urlstrategy"
)

// Content backends
const (
	BackendContentful = "contentful"
	BackendMemory     = "memory"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:           "8080",
		Environment:    "development",
		LogLevel:       "info",
		ContentBackend: BackendMemory,
		Contentful: ContentfulConfig{
			Environment: contentful.DefaultEnvironment,
			Host:        contentful.DefaultHost,
		},
		ContentType:   simplerecipes.DefaultContentType,
		FetchLimit:    simplerecipes.DefaultFetchLimit,
		PageSize:      simplerecipes.DefaultPageSize,
		PageIncrement: simplerecipes.DefaultPageIncrement,
		ImageScheme:   "https",
		EnableMetrics: true,
	}
}

// ServerConfig represents server configuration for the simple-recipes service.
// The env tags are read by WithEnv; unset variables keep their current value.
type ServerConfig struct {
	Port        string `env:"PORT"`
	Environment string `env:"ENVIRONMENT"` // development, production, testing
	LogLevel    string `env:"LOG_LEVEL"`   // debug, info, warn, error

	// Content source
	ContentBackend string           `env:"CONTENT_BACKEND"` // "memory", "contentful"
	Contentful     ContentfulConfig
	ContentType    string `env:"CONTENT_TYPE"`
	FetchLimit     int    `env:"FETCH_LIMIT"`
	CatalogFile    string `env:"CATALOG_FILE"`

	// Blog list paging
	PageSize      int `env:"PAGE_SIZE"`
	PageIncrement int `env:"PAGE_INCREMENT"`

	// Image URL resolution
	ImageScheme     string `env:"IMAGE_SCHEME"`
	ImageCDNBaseURL string `env:"IMAGE_CDN_BASE_URL"`
	ImageWidth      int    `env:"IMAGE_WIDTH"`
	ImageFormat     string `env:"IMAGE_FORMAT"`

	// Server options
	RenderMarkdown bool   `env:"RENDER_MARKDOWN"`
	TemplateDir    string `env:"TEMPLATE_DIR"`
	EnableMetrics  bool   `env:"ENABLE_METRICS"`
}

// ContentfulConfig holds the delivery API credentials
type ContentfulConfig struct {
	SpaceID     string        `env:"CONTENTFUL_SPACE_ID"`
	AccessToken string        `env:"CONTENTFUL_ACCESS_TOKEN"`
	Environment string        `env:"CONTENTFUL_ENVIRONMENT"`
	Host        string        `env:"CONTENTFUL_HOST"`
	Timeout     time.Duration `env:"CONTENTFUL_TIMEOUT"`
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.ContentBackend {
	case BackendMemory:
	case BackendContentful:
		if c.Contentful.SpaceID == "" || c.Contentful.AccessToken == "" {
			return errors.New("contentful space ID and access token are required when using contentful")
		}
	default:
		return fmt.Errorf("content_backend must be '%s' or '%s'", BackendMemory, BackendContentful)
	}

	if c.FetchLimit < 1 || c.FetchLimit > contentful.MaxLimit {
		return fmt.Errorf("fetch_limit must be between 1 and %d, got: %d", contentful.MaxLimit, c.FetchLimit)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be positive, got: %d", c.PageSize)
	}
	if c.PageIncrement < 1 {
		return fmt.Errorf("page_increment must be positive, got: %d", c.PageIncrement)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.imageStrategy(); err != nil {
		return err
	}

	return nil
}

// IsDevelopment reports whether the server runs in the development environment
func (c *ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// BuildService creates a Service instance from the server configuration.
// Extra options are applied last.
func (c *ServerConfig) BuildService(extra ...simplerecipes.Option) (simplerecipes.Service, error) {
	var options []simplerecipes.Option

	client, err := c.buildContentClient()
	if err != nil {
		return nil, fmt.Errorf("failed to build content client: %w", err)
	}
	options = append(options, simplerecipes.WithContentClient(client))

	if c.CatalogFile != "" {
		catalog, err := simplerecipes.LoadCatalogFile(c.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
		}
		options = append(options, simplerecipes.WithCatalog(catalog))
	}

	images, err := c.imageStrategy()
	if err != nil {
		return nil, err
	}
	options = append(options,
		simplerecipes.WithImageStrategy(images),
		simplerecipes.WithContentType(c.ContentType),
		simplerecipes.WithFetchLimit(c.FetchLimit),
	)
	options = append(options, extra...)

	return simplerecipes.New(options...)
}

// NewFilterState returns the initial blog list filter state for the configured paging
func (c *ServerConfig) NewFilterState() simplerecipes.ViewFilterState {
	return simplerecipes.NewViewFilterStateWithPaging(c.PageSize, c.PageIncrement)
}

// NewLogger builds the slog logger for the environment: colored console
// output in development, JSON otherwise.
func (c *ServerConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if c.IsDevelopment() {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLogLevel converts a level name into a slog.Level
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// buildContentClient creates a ContentClient based on the configuration
func (c *ServerConfig) buildContentClient() (simplerecipes.ContentClient, error) {
	switch c.ContentBackend {
	case BackendMemory:
		return memory.NewWithSamples(), nil
	case BackendContentful:
		return contentful.New(contentful.Config{
			SpaceID:     c.Contentful.SpaceID,
			AccessToken: c.Contentful.AccessToken,
			Environment: c.Contentful.Environment,
			Host:        c.Contentful.Host,
			Timeout:     c.Contentful.Timeout,
		})
	default:
		return nil, fmt.Errorf("unsupported content backend: %s", c.ContentBackend)
	}
}

func (c *ServerConfig) imageStrategy() (urlstrategy.Strategy, error) {
	strategy, err := urlstrategy.New(urlstrategy.Config{
		Scheme:     c.ImageScheme,
		CDNBaseURL: c.ImageCDNBaseURL,
		Width:      c.ImageWidth,
		Format:     c.ImageFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid image configuration: %w", err)
	}
	return strategy, nil
}
