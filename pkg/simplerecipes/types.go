package simplerecipes

import (
	"encoding/json"
	"time"
)

// SortOrder is the domain type for blog list ordering.
type SortOrder string

// Sort order constants (typed).
const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// IsValid reports whether the sort order is one of the known values.
func (o SortOrder) IsValid() bool {
	return o == SortNewest || o == SortOldest
}

// CMSOrder returns the order parameter understood by the content delivery API.
func (o SortOrder) CMSOrder() string {
	if o == SortOldest {
		return OrderCreatedAtAsc
	}
	return OrderCreatedAtDesc
}

// ParseSortOrder converts user input into a SortOrder. Empty input means newest.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortNewest, nil
	}
	o := SortOrder(s)
	if !o.IsValid() {
		return "", ErrInvalidSortOrder
	}
	return o, nil
}

// Content delivery API order keys
const (
	OrderCreatedAtDesc = "-sys.createdAt"
	OrderCreatedAtAsc  = "sys.createdAt"
)

// Defaults shared by the service and the view-models
const (
	DefaultContentType   = "blogPost"
	DefaultFetchLimit    = 60
	DefaultPageSize      = 9
	DefaultPageIncrement = 9

	CategoryAll        = "All"
	DefaultAuthor      = "Admin"
	DefaultDate        = "Unknown date"
	DefaultDescription = "No description available"
)

// Entry is a raw content record as delivered by the CMS.
type Entry struct {
	Sys    EntrySys    `json:"sys"`
	Fields EntryFields `json:"fields"`
}

// EntrySys carries the CMS system metadata of an entry.
type EntrySys struct {
	ID          string `json:"id"`
	Type        string `json:"type,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	ContentType string `json:"-"`
}

// EntryFields is the field payload of a blog post entry.
// Content is kept raw because it may be plain text or a rich-text document.
type EntryFields struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Author      string          `json:"author,omitempty"`
	Date        string          `json:"date,omitempty"`
	Category    string          `json:"category,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	Image       *Asset          `json:"image,omitempty"`
}

// Asset is a resolved media asset attached to an entry.
type Asset struct {
	Sys    AssetSys    `json:"sys"`
	Fields AssetFields `json:"fields"`
}

// AssetSys identifies an asset.
type AssetSys struct {
	ID string `json:"id,omitempty"`
}

// AssetFields holds the descriptive fields of an asset.
type AssetFields struct {
	Title string     `json:"title,omitempty"`
	File  *AssetFile `json:"file,omitempty"`
}

// AssetFile points at the binary of an asset.
type AssetFile struct {
	URL         string `json:"url,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	FileName    string `json:"fileName,omitempty"`
}

// ImageURL returns the raw image URL of the entry, or "" when there is none.
func (e Entry) ImageURL() string {
	if e.Fields.Image == nil || e.Fields.Image.Fields.File == nil {
		return ""
	}
	return e.Fields.Image.Fields.File.URL
}

// CreatedTime parses the creation timestamp. Missing or unparsable values
// yield the Unix epoch so they sort as the oldest entries.
func (e Entry) CreatedTime() time.Time {
	if e.Sys.CreatedAt == "" {
		return time.Unix(0, 0).UTC()
	}
	t, err := time.Parse(time.RFC3339Nano, e.Sys.CreatedAt)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

// EntryQuery selects entries from the CMS.
type EntryQuery struct {
	ContentType string
	Order       string
	Limit       int
}

// RecipeSummary is one card of the static recipe catalog.
type RecipeSummary struct {
	ID         int     `json:"id" yaml:"id"`
	Title      string  `json:"title" yaml:"title"`
	Emoji      string  `json:"emoji" yaml:"emoji"`
	Time       string  `json:"time" yaml:"time"`
	Difficulty string  `json:"difficulty" yaml:"difficulty"`
	Rating     float64 `json:"rating" yaml:"rating"`
	Category   string  `json:"category" yaml:"category"`
}

// BlogEntrySummary is the list-card projection of an entry.
type BlogEntrySummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// BlogEntryDetail is the normalized display record of a single entry.
type BlogEntryDetail struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Date     string  `json:"date"`
	Content  Content `json:"content"`
	ImageURL string  `json:"image_url,omitempty"`
}

// HasImage reports whether the detail has a resolved image.
func (d BlogEntryDetail) HasImage() bool {
	return d.ImageURL != ""
}
