package urlstrategy

import (
	"net/url"
	"strconv"
)

// TransformStrategy appends image transformation parameters understood by
// the CMS images API (w, h, fm, q). Existing query parameters are kept.
type TransformStrategy struct {
	Next    Strategy
	Width   int
	Height  int
	Format  string
	Quality int
}

// ResolveImageURL implements Strategy
func (s *TransformStrategy) ResolveImageURL(raw string) string {
	resolved := s.Next.ResolveImageURL(raw)
	if resolved == "" {
		return ""
	}

	u, err := url.Parse(resolved)
	if err != nil || u.Scheme == "data" || u.Scheme == "blob" {
		return resolved
	}

	q := u.Query()
	if s.Width > 0 {
		q.Set("w", strconv.Itoa(s.Width))
	}
	if s.Height > 0 {
		q.Set("h", strconv.Itoa(s.Height))
	}
	if s.Format != "" {
		q.Set("fm", s.Format)
	}
	if s.Quality > 0 {
		q.Set("q", strconv.Itoa(s.Quality))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
