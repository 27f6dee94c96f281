package mdfold

import (
	"fmt"
	"strconv"
)

// TreeSink builds values of a native HTML tree representation. V is the
// sink's node type; the fold never inspects it.
type TreeSink[V any] interface {
	Element(tag string, attrs []HtmlAttr, children []V) V
	Text(text string) V
}

// ElementHandler renders one embedded HtmlElement variant. Handlers
// receive the already-rendered children.
type ElementHandler[V any] func(sink TreeSink[V], attrs []HtmlAttr, children []V) V

// ToHtml reduces one level of the algebra into the sink's tree. Handlers
// may override rendering per embedded element tag; unhandled tags become
// plain elements. Use with Fold:
//
//	Fold(n, func(b Block[V]) V { return ToHtml(sink, handlers, b) })
func ToHtml[V any](sink TreeSink[V], handlers map[string]ElementHandler[V], b Block[V]) V {
	switch b := b.(type) {
	case *Heading[V]:
		return sink.Element(fmt.Sprintf("h%d", b.Level), nil, b.Children)
	case *Paragraph[V]:
		return sink.Element("p", nil, b.Children)
	case *BlockQuote[V]:
		return sink.Element("blockquote", nil, b.Children)
	case *Text[V]:
		return sink.Text(b.Text)
	case *CodeSpan[V]:
		return sink.Element("code", nil, []V{sink.Text(b.Text)})
	case *Strong[V]:
		return sink.Element("strong", nil, b.Children)
	case *Emphasis[V]:
		return sink.Element("em", nil, b.Children)
	case *Link[V]:
		attrs := []HtmlAttr{{Name: "href", Value: b.Destination}}
		if b.Title != "" {
			attrs = append(attrs, HtmlAttr{Name: "title", Value: b.Title})
		}
		return sink.Element("a", attrs, b.Children)
	case *Image[V]:
		attrs := []HtmlAttr{{Name: "src", Value: b.Src}, {Name: "alt", Value: b.Alt}}
		if b.Title != "" {
			attrs = append(attrs, HtmlAttr{Name: "title", Value: b.Title})
		}
		return sink.Element("img", attrs, nil)
	case *UnorderedList[V]:
		items := make([]V, len(b.Items))
		for i, item := range b.Items {
			items[i] = htmlListItem(sink, item)
		}
		return sink.Element("ul", nil, items)
	case *OrderedList[V]:
		var attrs []HtmlAttr
		if b.Start != 1 {
			attrs = []HtmlAttr{{Name: "start", Value: strconv.Itoa(b.Start)}}
		}
		items := make([]V, len(b.Items))
		for i, item := range b.Items {
			items[i] = sink.Element("li", nil, item)
		}
		return sink.Element("ol", attrs, items)
	case *CodeBlock[V]:
		var attrs []HtmlAttr
		if b.Language != "" {
			attrs = []HtmlAttr{{Name: "class", Value: "language-" + b.Language}}
		}
		code := sink.Element("code", attrs, []V{sink.Text(b.Body)})
		return sink.Element("pre", nil, []V{code})
	case *HardLineBreak[V]:
		return sink.Element("br", nil, nil)
	case *ThematicBreak[V]:
		return sink.Element("hr", nil, nil)
	case *Table[V]:
		return sink.Element("table", nil, b.Children)
	case *TableHeader[V]:
		return sink.Element("thead", nil, b.Children)
	case *TableBody[V]:
		return sink.Element("tbody", nil, b.Children)
	case *TableRow[V]:
		return sink.Element("tr", nil, b.Children)
	case *TableCell[V]:
		return sink.Element("td", alignAttr(b.Align), b.Children)
	case *TableHeaderCell[V]:
		return sink.Element("th", alignAttr(b.Align), b.Children)
	case *HtmlElement[V]:
		if h, ok := handlers[b.TagName]; ok {
			return h(sink, b.Attrs, b.Children)
		}
		return sink.Element(b.TagName, b.Attrs, b.Children)
	}
	panic(fmt.Sprintf("mdfold: ToHtml: unknown block variant %T", b))
}

func htmlListItem[V any](sink TreeSink[V], item ListItem[V]) V {
	if item.Task == NoTask {
		return sink.Element("li", nil, item.Children)
	}
	attrs := []HtmlAttr{{Name: "type", Value: "checkbox"}, {Name: "disabled", Value: ""}}
	if item.Task == CompletedTask {
		attrs = append(attrs, HtmlAttr{Name: "checked", Value: ""})
	}
	children := append([]V{sink.Element("input", attrs, nil)}, item.Children...)
	return sink.Element("li", nil, children)
}

func alignAttr(a Alignment) []HtmlAttr {
	switch a {
	case AlignLeft:
		return []HtmlAttr{{Name: "align", Value: "left"}}
	case AlignRight:
		return []HtmlAttr{{Name: "align", Value: "right"}}
	case AlignCenter:
		return []HtmlAttr{{Name: "align", Value: "center"}}
	}
	return nil
}

// ToHtmlNode renders one tree through the sink.
func ToHtmlNode[V any](n *Node, sink TreeSink[V], handlers map[string]ElementHandler[V]) V {
	return Fold(n, func(b Block[V]) V { return ToHtml(sink, handlers, b) })
}

// ToHtmlDocument renders every top-level node through the sink.
func ToHtmlDocument[V any](doc Document, sink TreeSink[V], handlers map[string]ElementHandler[V]) []V {
	return FoldDocument(doc, func(b Block[V]) V { return ToHtml(sink, handlers, b) })
}
