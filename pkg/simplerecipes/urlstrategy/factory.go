package urlstrategy

import "fmt"

// Config holds configuration for building the image URL strategy
type Config struct {
	Scheme     string // scheme for protocol-relative URLs, default https
	CDNBaseURL string // optional CDN mirror of the asset host
	Width      int    // optional images API width
	Height     int    // optional images API height
	Format     string // optional images API format (jpg, png, webp, avif)
	Quality    int    // optional images API quality 1-100
}

var validFormats = map[string]bool{
	"jpg":  true,
	"png":  true,
	"webp": true,
	"gif":  true,
	"avif": true,
}

// New builds the strategy chain: scheme completion, then the optional CDN
// rewrite, then the optional transformation parameters.
func New(config Config) (Strategy, error) {
	if config.Width < 0 || config.Height < 0 {
		return nil, fmt.Errorf("image dimensions must not be negative")
	}
	if config.Quality < 0 || config.Quality > 100 {
		return nil, fmt.Errorf("image quality must be between 1 and 100, got: %d", config.Quality)
	}
	if config.Format != "" && !validFormats[config.Format] {
		return nil, fmt.Errorf("unsupported image format: %s", config.Format)
	}

	var s Strategy = NewSchemeStrategy(config.Scheme)

	if config.CDNBaseURL != "" {
		cdn := NewCDNStrategy(config.CDNBaseURL)
		cdn.Next = s
		s = cdn
	}

	if config.Width > 0 || config.Height > 0 || config.Format != "" || config.Quality > 0 {
		s = &TransformStrategy{
			Next:    s,
			Width:   config.Width,
			Height:  config.Height,
			Format:  config.Format,
			Quality: config.Quality,
		}
	}

	return s, nil
}

// NewDefault returns the plain https scheme strategy
func NewDefault() Strategy {
	return NewSchemeStrategy(DefaultScheme)
}
