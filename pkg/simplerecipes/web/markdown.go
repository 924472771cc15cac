package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

// BodyRenderer turns post content into HTML for the detail page.
type BodyRenderer struct {
	markdown goldmark.Markdown
}

// NewBodyRenderer creates a renderer. With markdown enabled, plain-text
// bodies are treated as markdown; raw HTML inside them is dropped.
func NewBodyRenderer(markdown bool) *BodyRenderer {
	r := &BodyRenderer{}
	if markdown {
		r.markdown = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		)
	}
	return r
}

// Render renders c as HTML
func (r *BodyRenderer) Render(c simplerecipes.Content) (template.HTML, error) {
	if text, ok := c.(simplerecipes.PlainText); ok && r.markdown != nil {
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(text.Text), &buf); err != nil {
			return "", fmt.Errorf("failed to render markdown: %w", err)
		}
		return template.HTML(buf.String()), nil
	}
	return simplerecipes.RenderHTML(c)
}
