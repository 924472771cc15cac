package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// WithEnv applies environment variable overrides.
//
// Server:
//   PORT - Server port (default: "8080")
//   ENVIRONMENT - Runtime environment (default: "development")
//   LOG_LEVEL - debug, info, warn or error (default: "info")
//
// Content:
//   CONTENT_BACKEND - "memory" (sample posts, default) or "contentful"
//   CONTENTFUL_SPACE_ID, CONTENTFUL_ACCESS_TOKEN - required for contentful
//   CONTENTFUL_ENVIRONMENT - default "master"
//   CONTENTFUL_HOST - default "cdn.contentful.com"
//   CONTENT_TYPE, FETCH_LIMIT, CATALOG_FILE
//
// Blog list:
//   PAGE_SIZE, PAGE_INCREMENT
//
// Images:
//   IMAGE_SCHEME, IMAGE_CDN_BASE_URL, IMAGE_WIDTH, IMAGE_FORMAT
//
// Rendering and metrics:
//   RENDER_MARKDOWN, TEMPLATE_DIR, ENABLE_METRICS
//
// Variables that are not set keep the value configured so far.
func WithEnv() Option {
	return func(c *ServerConfig) error {
		if err := cleanenv.ReadEnv(c); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
		return nil
	}
}

// EnvUsage returns a description of the environment variables read by WithEnv
func EnvUsage() string {
	var cfg ServerConfig
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}
