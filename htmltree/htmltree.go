// Package htmltree is a reference TreeSink implementation: a concrete
// HTML node tree with a string serializer. It exists for tests, the CLI
// and as a template for adapting real DOM-like libraries.
package htmltree

import (
	"html"
	"strings"

	mdfold "github.com/growler/go-mdfold"
)

// Node is either an element (Tag set) or a text node (Tag empty).
type Node struct {
	Tag      string
	Attrs    []mdfold.HtmlAttr
	Children []*Node
	Text     string
}

// Sink builds *Node trees.
type Sink struct{}

func (Sink) Element(tag string, attrs []mdfold.HtmlAttr, children []*Node) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

func (Sink) Text(text string) *Node {
	return &Node{Text: text}
}

var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true,
}

// HTML serializes the node with attribute and text escaping. Void
// elements self-close; everything else gets a full closing tag.
func (n *Node) HTML() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.Tag == "" {
		sb.WriteString(html.EscapeString(n.Text))
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		if a.Value != "" {
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Value))
			sb.WriteByte('"')
		}
	}
	if voidTags[n.Tag] {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.Children {
		c.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

// Render folds a whole document to serialized HTML, one line per
// top-level block.
func Render(doc mdfold.Document) string {
	var sb strings.Builder
	for _, n := range mdfold.ToHtmlDocument(doc, Sink{}, nil) {
		sb.WriteString(n.HTML())
		sb.WriteByte('\n')
	}
	return sb.String()
}
