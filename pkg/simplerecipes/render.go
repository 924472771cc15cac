package simplerecipes

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/net/html"
)

// RenderText renders a Content value as readable plain text.
func RenderText(c Content) string {
	switch v := c.(type) {
	case PlainText:
		return v.Text
	case StructuredDocument:
		if v.Root == nil {
			return ""
		}
		var b strings.Builder
		writeBlocks(&b, v.Root.Content, "")
		return strings.TrimRight(b.String(), "\n")
	default:
		return ""
	}
}

func writeBlocks(b *strings.Builder, nodes []*RichTextNode, prefix string) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch {
		case n.NodeType == NodeUnorderedList || n.NodeType == NodeOrderedList:
			for i, item := range n.Content {
				marker := "- "
				if n.NodeType == NodeOrderedList {
					marker = fmt.Sprintf("%d. ", i+1)
				}
				b.WriteString(prefix + marker + strings.TrimSpace(inlineText(item)) + "\n")
			}
			b.WriteString("\n")
		case n.NodeType == NodeBlockquote:
			writeBlocks(b, n.Content, prefix+"> ")
		case n.NodeType == NodeHR:
			b.WriteString(prefix + "---\n\n")
		case n.NodeType == NodeTable:
			for _, row := range n.Content {
				if row == nil {
					continue
				}
				cells := make([]string, 0, len(row.Content))
				for _, cell := range row.Content {
					cells = append(cells, strings.TrimSpace(inlineText(cell)))
				}
				b.WriteString(prefix + strings.Join(cells, " | ") + "\n")
			}
			b.WriteString("\n")
		case n.NodeType == NodeText:
			b.WriteString(prefix + n.Value + "\n\n")
		default:
			text := inlineText(n)
			if text == "" {
				continue
			}
			b.WriteString(prefix + text + "\n\n")
		}
	}
}

func inlineText(n *RichTextNode) string {
	if n == nil {
		return ""
	}
	if n.NodeType == NodeText {
		return n.Value
	}
	var b strings.Builder
	for _, c := range n.Content {
		b.WriteString(inlineText(c))
	}
	if n.NodeType == NodeHyperlink {
		if uri, ok := n.Data["uri"].(string); ok && uri != "" && uri != b.String() {
			return fmt.Sprintf("%s (%s)", b.String(), uri)
		}
	}
	return b.String()
}

// RenderHTML renders a Content value as escaped HTML. Plain text is wrapped in
// a <pre> block; documents are rendered node by node.
func RenderHTML(c Content) (template.HTML, error) {
	var nodes []*html.Node
	switch v := c.(type) {
	case PlainText:
		pre := element("pre")
		pre.Attr = []html.Attribute{{Key: "class", Val: "content"}}
		pre.AppendChild(&html.Node{Type: html.TextNode, Data: v.Text})
		nodes = append(nodes, pre)
	case StructuredDocument:
		if v.Root != nil {
			for _, child := range v.Root.Content {
				nodes = append(nodes, htmlNodes(child)...)
			}
		}
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render content: %w", err)
		}
	}
	return template.HTML(buf.String()), nil
}

var blockElements = map[string]string{
	NodeParagraph:       "p",
	NodeUnorderedList:   "ul",
	NodeOrderedList:     "ol",
	NodeListItem:        "li",
	NodeBlockquote:      "blockquote",
	NodeTable:           "table",
	NodeTableRow:        "tr",
	NodeTableCell:       "td",
	NodeTableHeaderCell: "th",
}

var markElements = map[string]string{
	"bold":        "strong",
	"italic":      "em",
	"underline":   "u",
	"code":        "code",
	"superscript": "sup",
	"subscript":   "sub",
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func htmlNodes(n *RichTextNode) []*html.Node {
	if n == nil {
		return nil
	}

	switch {
	case n.NodeType == NodeText:
		return textNodes(n)
	case n.NodeType == NodeHR:
		return []*html.Node{element("hr")}
	case n.NodeType == NodeHyperlink:
		a := element("a")
		if uri, ok := n.Data["uri"].(string); ok && safeLink(uri) {
			a.Attr = []html.Attribute{{Key: "href", Val: uri}, {Key: "rel", Val: "noopener"}}
		}
		appendChildren(a, n.Content)
		return []*html.Node{a}
	case strings.HasPrefix(n.NodeType, nodeHeadingPrefix):
		level := strings.TrimPrefix(n.NodeType, nodeHeadingPrefix)
		if len(level) == 1 && level[0] >= '1' && level[0] <= '6' {
			h := element("h" + level)
			appendChildren(h, n.Content)
			return []*html.Node{h}
		}
	}

	if tag, ok := blockElements[n.NodeType]; ok {
		el := element(tag)
		appendChildren(el, n.Content)
		return []*html.Node{el}
	}

	// Embedded entries and unknown node types keep only their children.
	var out []*html.Node
	for _, c := range n.Content {
		out = append(out, htmlNodes(c)...)
	}
	return out
}

func appendChildren(parent *html.Node, children []*RichTextNode) {
	for _, c := range children {
		for _, n := range htmlNodes(c) {
			parent.AppendChild(n)
		}
	}
}

// textNodes renders a text node, turning newlines into <br> and wrapping the
// result in one element per known mark.
func textNodes(n *RichTextNode) []*html.Node {
	var inline []*html.Node
	for i, line := range strings.Split(n.Value, "\n") {
		if i > 0 {
			inline = append(inline, element("br"))
		}
		if line != "" {
			inline = append(inline, &html.Node{Type: html.TextNode, Data: line})
		}
	}

	for i := len(n.Marks) - 1; i >= 0; i-- {
		tag, ok := markElements[n.Marks[i].Type]
		if !ok {
			continue
		}
		el := element(tag)
		for _, c := range inline {
			el.AppendChild(c)
		}
		inline = []*html.Node{el}
	}
	return inline
}

func safeLink(uri string) bool {
	lower := strings.ToLower(strings.TrimSpace(uri))
	return strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "/")
}
