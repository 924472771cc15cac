package urlstrategy

import (
	"net/url"
	"strings"
)

// CDNStrategy serves CMS assets from a CDN that mirrors the asset host.
// The path and query of the asset are kept; scheme and host come from
// CDNBaseURL.
type CDNStrategy struct {
	CDNBaseURL string
	Next       Strategy
}

// NewCDNStrategy creates a CDN strategy on top of the scheme strategy
func NewCDNStrategy(cdnBaseURL string) *CDNStrategy {
	return &CDNStrategy{
		CDNBaseURL: strings.TrimSuffix(cdnBaseURL, "/"),
		Next:       NewSchemeStrategy(DefaultScheme),
	}
}

// ResolveImageURL implements Strategy
func (s *CDNStrategy) ResolveImageURL(raw string) string {
	resolved := s.Next.ResolveImageURL(raw)
	if resolved == "" || s.CDNBaseURL == "" {
		return resolved
	}

	u, err := url.Parse(resolved)
	if err != nil || u.Scheme == "data" || u.Scheme == "blob" {
		return resolved
	}

	base, err := url.Parse(s.CDNBaseURL)
	if err != nil || base.Host == "" {
		return resolved
	}

	u.Scheme = base.Scheme
	u.Host = base.Host
	u.Path = strings.TrimSuffix(base.Path, "/") + u.Path
	return u.String()
}
