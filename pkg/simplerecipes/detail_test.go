package simplerecipes_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

func TestNormalizeDetail(t *testing.T) {
	tests := []struct {
		name       string
		author     string
		date       string
		wantAuthor string
		wantDate   string
	}{
		{"fields present", "Giulia", "May 2, 2024", "Giulia", "May 2, 2024"},
		{"defaults", "", "", "Admin", "Unknown date"},
		{"blank strings", "  ", " ", "Admin", "Unknown date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := simplerecipes.Entry{
				Sys: simplerecipes.EntrySys{ID: "p1"},
				Fields: simplerecipes.EntryFields{
					Title:   "Pasta",
					Author:  tt.author,
					Date:    tt.date,
					Content: rawString("Boil water."),
				},
			}
			d := simplerecipes.NormalizeDetail(e, nil)
			assert.Equal(t, "p1", d.ID)
			assert.Equal(t, "Pasta", d.Title)
			assert.Equal(t, tt.wantAuthor, d.Author)
			assert.Equal(t, tt.wantDate, d.Date)
			assert.Equal(t, simplerecipes.PlainText{Text: "Boil water."}, d.Content)
			assert.False(t, d.HasImage())
		})
	}
}

func TestNormalizeDetailImage(t *testing.T) {
	e := simplerecipes.Entry{Fields: simplerecipes.EntryFields{
		Image: &simplerecipes.Asset{Fields: simplerecipes.AssetFields{
			File: &simplerecipes.AssetFile{URL: "//images.example.com/a.jpg"},
		}},
	}}
	d := simplerecipes.NormalizeDetail(e, nil)
	assert.Equal(t, "https://images.example.com/a.jpg", d.ImageURL)
	assert.True(t, d.HasImage())
}

func TestParseContent(t *testing.T) {
	doc := `{"nodeType":"document","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"Hello"}]}]}`

	tests := []struct {
		name string
		raw  string
		kind simplerecipes.ContentKind
		text string
	}{
		{"empty", ``, simplerecipes.ContentKindPlainText, ""},
		{"null", `null`, simplerecipes.ContentKindPlainText, ""},
		{"string", `"Just text"`, simplerecipes.ContentKindPlainText, "Just text"},
		{"document", doc, simplerecipes.ContentKindStructuredDocument, "Hello"},
		{"other object", `{"a":1}`, simplerecipes.ContentKindPlainText, "{\n  \"a\": 1\n}"},
		{"number", `42`, simplerecipes.ContentKindPlainText, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := simplerecipes.ParseContent(json.RawMessage(tt.raw))
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.text, simplerecipes.RenderText(c))
		})
	}
}

func TestRenderTextDocument(t *testing.T) {
	raw := `{"nodeType":"document","content":[
		{"nodeType":"heading-2","content":[{"nodeType":"text","value":"Steps"}]},
		{"nodeType":"ordered-list","content":[
			{"nodeType":"list-item","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"Boil"}]}]},
			{"nodeType":"list-item","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"Serve"}]}]}
		]},
		{"nodeType":"paragraph","content":[
			{"nodeType":"text","value":"See "},
			{"nodeType":"hyperlink","data":{"uri":"https://example.com"},"content":[{"nodeType":"text","value":"here"}]}
		]},
		{"nodeType":"hr"}
	]}`

	text := simplerecipes.RenderText(simplerecipes.ParseContent(json.RawMessage(raw)))
	assert.Equal(t, "Steps\n\n1. Boil\n2. Serve\n\nSee here (https://example.com)\n\n---", text)
}

func TestRenderHTML(t *testing.T) {
	raw := `{"nodeType":"document","content":[
		{"nodeType":"paragraph","content":[
			{"nodeType":"text","value":"Bold <move>","marks":[{"type":"bold"}]},
			{"nodeType":"hyperlink","data":{"uri":"javascript:alert(1)"},"content":[{"nodeType":"text","value":"bad"}]}
		]},
		{"nodeType":"unordered-list","content":[
			{"nodeType":"list-item","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"one"}]}]}
		]}
	]}`

	out, err := simplerecipes.RenderHTML(simplerecipes.ParseContent(json.RawMessage(raw)))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<p><strong>Bold &lt;move&gt;</strong><a>bad</a></p>")
	assert.Contains(t, s, "<ul><li><p>one</p></li></ul>")
	assert.NotContains(t, s, "javascript")
}

func TestRenderHTMLPlainText(t *testing.T) {
	out, err := simplerecipes.RenderHTML(simplerecipes.PlainText{Text: "a < b"})
	require.NoError(t, err)
	assert.Equal(t, `<pre class="content">a &lt; b</pre>`, string(out))
}

func TestContentMarshalJSON(t *testing.T) {
	b, err := json.Marshal(simplerecipes.PlainText{Text: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"plain_text","text":"hi"}`, string(b))

	doc := simplerecipes.ParseContent(json.RawMessage(`{"nodeType":"document","content":[]}`))
	b, err = json.Marshal(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), `{"kind":"structured_document"`))
	assert.True(t, doc.IsEmpty())
}

func TestRenderTableWithNullRows(t *testing.T) {
	raw := `{"nodeType":"document","content":[
		{"nodeType":"table","content":[
			null,
			{"nodeType":"table-row","content":[
				{"nodeType":"table-cell","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"flour"}]}]},
				null,
				{"nodeType":"table-cell","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"200g"}]}]}
			]}
		]}
	]}`

	c := simplerecipes.ParseContent(json.RawMessage(raw))
	require.Equal(t, simplerecipes.ContentKindStructuredDocument, c.Kind())

	require.NotPanics(t, func() {
		assert.Contains(t, simplerecipes.RenderText(c), "flour |  | 200g")
		assert.False(t, c.IsEmpty())
	})

	out, err := simplerecipes.RenderHTML(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "flour")
}
