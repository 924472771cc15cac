package contentful

import (
	"encoding/json"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

type entriesResponse struct {
	Total    int        `json:"total"`
	Items    []rawEntry `json:"items"`
	Includes struct {
		Asset []simplerecipes.Asset `json:"Asset"`
	} `json:"includes"`
}

type rawEntry struct {
	Sys    rawSys                     `json:"sys"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type rawSys struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	ContentType *link  `json:"contentType"`
}

type link struct {
	Sys struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		LinkType string `json:"linkType"`
	} `json:"sys"`
}

// entries converts the raw items, resolving asset links from the includes.
// Links to assets that are not included leave the image empty.
func (r entriesResponse) entries() []simplerecipes.Entry {
	assets := make(map[string]simplerecipes.Asset, len(r.Includes.Asset))
	for _, a := range r.Includes.Asset {
		assets[a.Sys.ID] = a
	}

	out := make([]simplerecipes.Entry, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, item.toEntry(assets))
	}
	return out
}

func (e rawEntry) toEntry(assets map[string]simplerecipes.Asset) simplerecipes.Entry {
	entry := simplerecipes.Entry{
		Sys: simplerecipes.EntrySys{
			ID:        e.Sys.ID,
			Type:      e.Sys.Type,
			CreatedAt: e.Sys.CreatedAt,
			UpdatedAt: e.Sys.UpdatedAt,
		},
		Fields: simplerecipes.EntryFields{
			Title:       e.stringField("title"),
			Description: e.stringField("description"),
			Author:      e.stringField("author"),
			Date:        e.stringField("date"),
			Category:    e.stringField("category"),
			Content:     e.Fields["content"],
		},
	}
	if e.Sys.ContentType != nil {
		entry.Sys.ContentType = e.Sys.ContentType.Sys.ID
	}
	entry.Fields.Image = resolveAsset(e.Fields["image"], assets)
	return entry
}

// stringField returns a text field, or "" when it is missing or not a string
func (e rawEntry) stringField(name string) string {
	raw, ok := e.Fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func resolveAsset(raw json.RawMessage, assets map[string]simplerecipes.Asset) *simplerecipes.Asset {
	if len(raw) == 0 {
		return nil
	}

	var l link
	if err := json.Unmarshal(raw, &l); err == nil && l.Sys.Type == "Link" {
		a, ok := assets[l.Sys.ID]
		if !ok {
			return nil
		}
		return &a
	}

	var a simplerecipes.Asset
	if err := json.Unmarshal(raw, &a); err != nil || a.Fields.File == nil {
		return nil
	}
	return &a
}
