package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

// Client implements simplerecipes.ContentClient over an in-memory slice
type Client struct {
	mu      sync.RWMutex
	entries []simplerecipes.Entry
	err     error
}

// New creates a new in-memory client holding a copy of entries
func New(entries ...simplerecipes.Entry) *Client {
	return &Client{entries: slices.Clone(entries)}
}

// NewWithSamples creates a client seeded with SampleEntries
func NewWithSamples() *Client {
	return New(SampleEntries()...)
}

// Add appends entries
func (c *Client) Add(entries ...simplerecipes.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entries...)
}

// SetError makes every call fail with err until it is cleared with nil
func (c *Client) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *Client) ListEntries(ctx context.Context, query simplerecipes.EntryQuery) ([]simplerecipes.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.err != nil {
		return nil, fmt.Errorf("%w: %w", simplerecipes.ErrFetch, c.err)
	}

	out := make([]simplerecipes.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if query.ContentType != "" && e.Sys.ContentType != "" && e.Sys.ContentType != query.ContentType {
			continue
		}
		out = append(out, e)
	}

	switch query.Order {
	case simplerecipes.OrderCreatedAtAsc:
		out = simplerecipes.SortEntries(out, simplerecipes.SortOldest)
	case simplerecipes.OrderCreatedAtDesc:
		out = simplerecipes.SortEntries(out, simplerecipes.SortNewest)
	}

	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (c *Client) GetEntry(ctx context.Context, id string) (*simplerecipes.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.err != nil {
		return nil, fmt.Errorf("%w: %w", simplerecipes.ErrFetch, c.err)
	}

	for _, e := range c.entries {
		if e.Sys.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", simplerecipes.ErrNotFound, id)
}

// SampleEntries returns a small set of blog posts used by development setups
func SampleEntries() []simplerecipes.Entry {
	return []simplerecipes.Entry{
		sample("weeknight-carbonara", "2024-05-02T18:30:00Z",
			"Weeknight Carbonara", "Silky pasta with eggs, pecorino and black pepper.",
			"Giulia Rossi", "May 2, 2024", "Dinner", "//images.ctfassets.net/demo/carbonara.jpg",
			plainJSON("Whisk the eggs with the cheese.\nToss with hot pasta off the heat.")),
		sample("tofu-bowl-basics", "2024-04-18T09:00:00Z",
			"Tofu Bowl Basics", "Crispy tofu, rice and a quick sesame dressing.",
			"Sam Lee", "April 18, 2024", "Lunch", "",
			richJSON("Press the tofu for twenty minutes.", "Bake at 220C until golden.")),
		sample("lava-cake-secrets", "2024-03-09T15:45:00Z",
			"Lava Cake Secrets", "",
			"", "", "Desserts", "https://images.ctfassets.net/demo/lava.jpg",
			richJSON("Underbake by one minute.")),
		sample("pancake-sunday", "",
			"Pancake Sunday", "Fluffy pancakes for a slow morning.",
			"Admin", "", "Breakfast", "",
			plainJSON("Rest the batter for ten minutes.")),
	}
}

func sample(id, createdAt, title, description, author, date, category, imageURL string, content json.RawMessage) simplerecipes.Entry {
	e := simplerecipes.Entry{
		Sys: simplerecipes.EntrySys{
			ID:          id,
			Type:        "Entry",
			CreatedAt:   createdAt,
			ContentType: simplerecipes.DefaultContentType,
		},
		Fields: simplerecipes.EntryFields{
			Title:       title,
			Description: description,
			Author:      author,
			Date:        date,
			Category:    category,
			Content:     content,
		},
	}
	if imageURL != "" {
		e.Fields.Image = &simplerecipes.Asset{
			Sys: simplerecipes.AssetSys{ID: id + "-image"},
			Fields: simplerecipes.AssetFields{
				Title: title,
				File:  &simplerecipes.AssetFile{URL: imageURL, ContentType: "image/jpeg"},
			},
		}
	}
	return e
}

func plainJSON(text string) json.RawMessage {
	b, _ := json.Marshal(text)
	return b
}

func richJSON(paragraphs ...string) json.RawMessage {
	doc := &simplerecipes.RichTextNode{NodeType: simplerecipes.NodeDocument}
	for _, p := range paragraphs {
		doc.Content = append(doc.Content, &simplerecipes.RichTextNode{
			NodeType: simplerecipes.NodeParagraph,
			Content: []*simplerecipes.RichTextNode{
				{NodeType: simplerecipes.NodeText, Value: p},
			},
		})
	}
	b, _ := json.Marshal(doc)
	return b
}
