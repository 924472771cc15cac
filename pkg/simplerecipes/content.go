package simplerecipes

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ContentKind tags the variant held by a Content value.
type ContentKind string

// Content kind constants (typed).
const (
	ContentKindPlainText          ContentKind = "plain_text"
	ContentKindStructuredDocument ContentKind = "structured_document"
)

// Content is the body of a blog post: either PlainText or a
// StructuredDocument. Each variant has its own renderers (RenderText,
// RenderHTML).
type Content interface {
	Kind() ContentKind
	IsEmpty() bool
}

// PlainText is a body delivered as a plain string.
type PlainText struct {
	Text string
}

// Kind implements Content
func (PlainText) Kind() ContentKind { return ContentKindPlainText }

// IsEmpty implements Content
func (p PlainText) IsEmpty() bool { return strings.TrimSpace(p.Text) == "" }

// MarshalJSON encodes the variant with its kind tag
func (p PlainText) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind ContentKind `json:"kind"`
		Text string      `json:"text"`
	}{ContentKindPlainText, p.Text})
}

// StructuredDocument is a rich-text body delivered as a node tree.
type StructuredDocument struct {
	Root *RichTextNode
}

// Kind implements Content
func (StructuredDocument) Kind() ContentKind { return ContentKindStructuredDocument }

// IsEmpty implements Content
func (d StructuredDocument) IsEmpty() bool {
	return d.Root == nil || strings.TrimSpace(RenderText(d)) == ""
}

// MarshalJSON encodes the variant with its kind tag
func (d StructuredDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     ContentKind   `json:"kind"`
		Document *RichTextNode `json:"document"`
	}{ContentKindStructuredDocument, d.Root})
}

// RichTextNode is one node of a rich-text document.
type RichTextNode struct {
	NodeType string                 `json:"nodeType"`
	Value    string                 `json:"value,omitempty"`
	Marks    []RichTextMark         `json:"marks,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Content  []*RichTextNode        `json:"content,omitempty"`
}

// RichTextMark is a text decoration (bold, italic, underline, code ...).
type RichTextMark struct {
	Type string `json:"type"`
}

// Rich-text node types
const (
	NodeDocument        = "document"
	NodeParagraph       = "paragraph"
	NodeText            = "text"
	NodeHyperlink       = "hyperlink"
	NodeUnorderedList   = "unordered-list"
	NodeOrderedList     = "ordered-list"
	NodeListItem        = "list-item"
	NodeBlockquote      = "blockquote"
	NodeHR              = "hr"
	NodeTable           = "table"
	NodeTableRow        = "table-row"
	NodeTableCell       = "table-cell"
	NodeTableHeaderCell = "table-header-cell"
	nodeHeadingPrefix   = "heading-"
)

// ParseContent converts the raw content field of an entry into a Content
// variant. A JSON string becomes PlainText, a rich-text document becomes a
// StructuredDocument, and any other JSON value becomes PlainText holding its
// indented JSON form. It never fails.
func ParseContent(raw json.RawMessage) Content {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return PlainText{}
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return PlainText{Text: s}
	}

	if trimmed[0] == '{' {
		var node RichTextNode
		if err := json.Unmarshal(trimmed, &node); err == nil && node.NodeType == NodeDocument {
			return StructuredDocument{Root: &node}
		}
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, trimmed, "", "  "); err != nil {
		return PlainText{Text: string(trimmed)}
	}
	return PlainText{Text: indented.String()}
}
