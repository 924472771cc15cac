package config

import (
	"fmt"

	"github.com/tendant/simple-recipes/pkg/simplerecipes/contentful"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the environment (development, production, testing)
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithLogLevel sets the minimum log level
func WithLogLevel(level string) Option {
	return func(c *ServerConfig) error {
		if _, err := ParseLogLevel(level); err != nil {
			return err
		}
		c.LogLevel = level
		return nil
	}
}

// WithMemoryBackend serves the built-in sample posts
func WithMemoryBackend() Option {
	return func(c *ServerConfig) error {
		c.ContentBackend = BackendMemory
		return nil
	}
}

// WithContentful configures the Contentful delivery API as content backend
func WithContentful(spaceID, accessToken string) Option {
	return func(c *ServerConfig) error {
		if spaceID == "" || accessToken == "" {
			return fmt.Errorf("contentful space ID and access token are required")
		}
		c.ContentBackend = BackendContentful
		c.Contentful.SpaceID = spaceID
		c.Contentful.AccessToken = accessToken
		return nil
	}
}

// WithContentfulPreview switches to the preview API host
func WithContentfulPreview() Option {
	return func(c *ServerConfig) error {
		c.Contentful.Host = contentful.PreviewHost
		return nil
	}
}

// WithContentType sets the content type holding blog posts
func WithContentType(contentType string) Option {
	return func(c *ServerConfig) error {
		if contentType == "" {
			return fmt.Errorf("content type cannot be empty")
		}
		c.ContentType = contentType
		return nil
	}
}

// WithFetchLimit sets how many posts the blog list fetches
func WithFetchLimit(limit int) Option {
	return func(c *ServerConfig) error {
		if limit < 1 || limit > contentful.MaxLimit {
			return fmt.Errorf("fetch limit must be between 1 and %d, got: %d", contentful.MaxLimit, limit)
		}
		c.FetchLimit = limit
		return nil
	}
}

// WithPaging sets the blog list page size and load-more increment
func WithPaging(pageSize, increment int) Option {
	return func(c *ServerConfig) error {
		if pageSize <= 0 || increment <= 0 {
			return fmt.Errorf("page size and increment must be positive, got: %d, %d", pageSize, increment)
		}
		c.PageSize = pageSize
		c.PageIncrement = increment
		return nil
	}
}

// WithImageCDN rewrites asset URLs to a CDN mirror
func WithImageCDN(baseURL string) Option {
	return func(c *ServerConfig) error {
		c.ImageCDNBaseURL = baseURL
		return nil
	}
}

// WithImageTransform requests resized and re-encoded images
func WithImageTransform(width int, format string) Option {
	return func(c *ServerConfig) error {
		c.ImageWidth = width
		c.ImageFormat = format
		return nil
	}
}

// WithCatalogFile loads the recipe catalog from a YAML file
func WithCatalogFile(path string) Option {
	return func(c *ServerConfig) error {
		c.CatalogFile = path
		return nil
	}
}

// WithMarkdown enables markdown rendering of plain-text posts
func WithMarkdown(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.RenderMarkdown = enabled
		return nil
	}
}

// WithTemplateDir serves page templates from dir and reloads them on change
func WithTemplateDir(dir string) Option {
	return func(c *ServerConfig) error {
		c.TemplateDir = dir
		return nil
	}
}

// WithMetrics enables or disables the /metrics endpoint
func WithMetrics(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableMetrics = enabled
		return nil
	}
}
