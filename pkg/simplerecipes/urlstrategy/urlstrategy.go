package urlstrategy

import "strings"

// Strategy defines how a raw asset URL from the CMS becomes the URL
// placed in rendered pages
type Strategy interface {
	// ResolveImageURL returns the URL to render, or "" when raw is empty
	ResolveImageURL(raw string) string
}

// StrategyFunc adapts a plain function to the Strategy interface
type StrategyFunc func(raw string) string

// ResolveImageURL calls f(raw)
func (f StrategyFunc) ResolveImageURL(raw string) string {
	return f(raw)
}

// hasScheme reports whether raw starts with "scheme://" or is a data/blob URL.
func hasScheme(raw string) bool {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "blob:") {
		return true
	}
	i := strings.Index(raw, "://")
	if i <= 0 {
		return false
	}
	for j, r := range raw[:i] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
