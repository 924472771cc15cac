package simplerecipes

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the static recipe collection shown on the home page.
type Catalog struct {
	Categories []string        `yaml:"categories"`
	Recipes    []RecipeSummary `yaml:"recipes"`
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultCatalogYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded recipe catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalogFile reads a catalog from a YAML file.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog decodes and validates a YAML catalog. Categories used by a
// recipe but not declared are appended to the category list.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	ids := make(map[int]bool, len(c.Recipes))
	for i, recipe := range c.Recipes {
		if strings.TrimSpace(recipe.Title) == "" {
			return nil, fmt.Errorf("%w: recipe %d has no title", ErrInvalidCatalog, i)
		}
		if ids[recipe.ID] {
			return nil, fmt.Errorf("%w: duplicate recipe id %d", ErrInvalidCatalog, recipe.ID)
		}
		ids[recipe.ID] = true
		if recipe.Category != "" && !slices.ContainsFunc(c.Categories, func(s string) bool { return fold(s) == fold(recipe.Category) }) {
			c.Categories = append(c.Categories, recipe.Category)
		}
	}

	c.Categories = slices.DeleteFunc(c.Categories, isAllCategory)
	return &c, nil
}

// CategoryChips returns "All" followed by the catalog categories.
func (c *Catalog) CategoryChips() []string {
	return append([]string{CategoryAll}, c.Categories...)
}

// RecipesCopy returns a copy of the recipes.
func (c *Catalog) RecipesCopy() []RecipeSummary {
	return slices.Clone(c.Recipes)
}
