package presets

import (
	"fmt"
	"testing"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/client/memory"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/config"
)

// Configuration Presets
//
// Ready-made service setups for local development, tests and production.

// NewDevelopment creates a service for local development.
//
// Features:
//   - In-memory content client seeded with sample blog posts
//   - Embedded recipe catalog (or a YAML file via WithDevCatalogFile)
//
// Example:
//
//	svc, err := presets.NewDevelopment()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDevelopment(opts ...DevelopmentOption) (simplerecipes.Service, error) {
	cfg := &devConfig{
		entries: memory.SampleEntries(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	options := []simplerecipes.Option{
		simplerecipes.WithContentClient(memory.New(cfg.entries...)),
	}
	if cfg.catalogFile != "" {
		catalog, err := simplerecipes.LoadCatalogFile(cfg.catalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
		}
		options = append(options, simplerecipes.WithCatalog(catalog))
	}

	svc, err := simplerecipes.New(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// NewTesting creates a service for unit and integration tests. The returned
// memory client can be used to add entries or inject failures.
//
// Example:
//
//	func TestMyFeature(t *testing.T) {
//	    svc, client := presets.NewTesting(t, presets.WithTestFixtures())
//	    client.SetError(errors.New("down"))
//	}
func NewTesting(t testing.TB, opts ...TestingOption) (simplerecipes.Service, *memory.Client) {
	t.Helper()

	cfg := &testConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	entries := cfg.entries
	if cfg.fixtures {
		entries = append(memory.SampleEntries(), entries...)
	}
	client := memory.New(entries...)

	options := []simplerecipes.Option{simplerecipes.WithContentClient(client)}
	if cfg.catalog != nil {
		options = append(options, simplerecipes.WithCatalog(cfg.catalog))
	}

	svc, err := simplerecipes.New(options...)
	if err != nil {
		t.Fatalf("failed to create test service: %v", err)
	}
	return svc, client
}

// NewProduction creates a service from the environment.
//
// Required Environment Variables:
//   - CONTENTFUL_SPACE_ID
//   - CONTENTFUL_ACCESS_TOKEN
//
// The content backend is forced to contentful; all other variables are
// read as described by config.WithEnv.
func NewProduction(extra ...simplerecipes.Option) (simplerecipes.Service, *config.ServerConfig, error) {
	cfg, err := config.Load(
		config.WithEnvironment("production"),
		config.WithEnv(),
		forceContentful(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid production configuration: %w", err)
	}

	svc, err := cfg.BuildService(extra...)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func forceContentful() config.Option {
	return func(c *config.ServerConfig) error {
		c.ContentBackend = config.BackendContentful
		return nil
	}
}

// Option types for customization

// devConfig holds development preset configuration
type devConfig struct {
	entries     []simplerecipes.Entry
	catalogFile string
}

// testConfig holds testing preset configuration
type testConfig struct {
	fixtures bool
	entries  []simplerecipes.Entry
	catalog  *simplerecipes.Catalog
}

// DevelopmentOption is a functional option for NewDevelopment
type DevelopmentOption func(*devConfig)

// WithDevEntries replaces the sample posts
func WithDevEntries(entries ...simplerecipes.Entry) DevelopmentOption {
	return func(cfg *devConfig) {
		cfg.entries = entries
	}
}

// WithDevCatalogFile loads the recipe catalog from a YAML file
func WithDevCatalogFile(path string) DevelopmentOption {
	return func(cfg *devConfig) {
		cfg.catalogFile = path
	}
}

// TestingOption is a functional option for NewTesting
type TestingOption func(*testConfig)

// WithTestFixtures seeds the client with the sample posts
func WithTestFixtures() TestingOption {
	return func(cfg *testConfig) {
		cfg.fixtures = true
	}
}

// WithTestEntries seeds the client with entries
func WithTestEntries(entries ...simplerecipes.Entry) TestingOption {
	return func(cfg *testConfig) {
		cfg.entries = append(cfg.entries, entries...)
	}
}

// WithTestCatalog replaces the embedded recipe catalog
func WithTestCatalog(catalog *simplerecipes.Catalog) TestingOption {
	return func(cfg *testConfig) {
		cfg.catalog = catalog
	}
}
