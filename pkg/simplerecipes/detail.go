package simplerecipes

import (
	"strings"

	"github.com/tendant/simple-recipes/pkg/simplerecipes/urlstrategy"
)

// NormalizeDetail turns a raw entry into its display record. Missing author
// and date are replaced by DefaultAuthor and DefaultDate; the image URL is
// resolved through images (the https scheme strategy when nil).
func NormalizeDetail(e Entry, images urlstrategy.Strategy) BlogEntryDetail {
	if images == nil {
		images = urlstrategy.NewDefault()
	}

	author := e.Fields.Author
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}
	date := e.Fields.Date
	if strings.TrimSpace(date) == "" {
		date = DefaultDate
	}

	return BlogEntryDetail{
		ID:       e.Sys.ID,
		Title:    e.Fields.Title,
		Author:   author,
		Date:     date,
		Content:  ParseContent(e.Fields.Content),
		ImageURL: images.ResolveImageURL(e.ImageURL()),
	}
}
