package urlstrategy

import "strings"

// DefaultScheme is used for protocol-relative and scheme-less asset URLs.
// The CMS asset host serves everything over TLS.
const DefaultScheme = "https"

// SchemeStrategy completes asset URLs that lack a scheme.
//
//	//images.example.com/a.jpg  -> https://images.example.com/a.jpg
//	images.example.com/a.jpg    -> https://images.example.com/a.jpg
//	http://example.com/a.jpg    -> unchanged
//	/static/a.jpg               -> unchanged (site-relative)
type SchemeStrategy struct {
	Scheme string
}

// NewSchemeStrategy creates a scheme strategy. An empty scheme means https.
func NewSchemeStrategy(scheme string) *SchemeStrategy {
	scheme = strings.TrimSuffix(strings.TrimSpace(scheme), "://")
	scheme = strings.TrimSuffix(scheme, ":")
	if scheme == "" {
		scheme = DefaultScheme
	}
	return &SchemeStrategy{Scheme: scheme}
}

// ResolveImageURL implements Strategy
func (s *SchemeStrategy) ResolveImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	scheme := s.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	if strings.HasPrefix(raw, "//") {
		return scheme + ":" + raw
	}
	if hasScheme(raw) || strings.HasPrefix(raw, "/") {
		return raw
	}
	return scheme + "://" + raw
}
