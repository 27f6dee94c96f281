// Package parse converts GFM markdown source into a mdfold.Document
// using goldmark as the parser. The conversion is lossy in exactly the
// ways the algebra is: raw HTML blocks are dropped, soft line breaks
// become literal newline text, and autolinks become explicit links.
package parse

import (
	"fmt"
	"strings"

	mdfold "github.com/growler/go-mdfold"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse parses GFM markdown source into a document.
func Parse(source []byte) (mdfold.Document, error) {
	root := markdown.Parser().Parse(text.NewReader(source))
	c := converter{source: source}
	doc, err := c.blocks(root)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return mdfold.Document(doc), nil
}

type converter struct {
	source []byte
}

func (c *converter) blocks(parent ast.Node) ([]*mdfold.Node, error) {
	var out []*mdfold.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b, err := c.block(n)
		if err != nil {
			return nil, err
		}
		if b != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (c *converter) block(n ast.Node) (*mdfold.Node, error) {
	switch n := n.(type) {
	case *ast.Heading:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		h := &mdfold.Heading[*mdfold.Node]{
			Level:    mdfold.HeadingLevel(n.Level),
			Children: children,
		}
		node := &mdfold.Node{Block: h}
		h.RawText = mdfold.PlainText(node)
		return node, nil
	case *ast.Paragraph:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return block(&mdfold.Paragraph[*mdfold.Node]{Children: children}), nil
	case *ast.TextBlock:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return block(&mdfold.Paragraph[*mdfold.Node]{Children: children}), nil
	case *ast.Blockquote:
		children, err := c.blocks(n)
		if err != nil {
			return nil, err
		}
		return block(&mdfold.BlockQuote[*mdfold.Node]{Children: children}), nil
	case *ast.List:
		return c.list(n)
	case *ast.FencedCodeBlock:
		return block(&mdfold.CodeBlock[*mdfold.Node]{
			Body:     c.lines(n),
			Language: string(n.Language(c.source)),
		}), nil
	case *ast.CodeBlock:
		return block(&mdfold.CodeBlock[*mdfold.Node]{Body: c.lines(n)}), nil
	case *ast.ThematicBreak:
		return block(&mdfold.ThematicBreak[*mdfold.Node]{}), nil
	case *ast.HTMLBlock:
		// Raw HTML blocks have no place in the algebra.
		return nil, nil
	case *east.Table:
		return c.table(n)
	}
	return nil, fmt.Errorf("unsupported block node %s", n.Kind())
}

func (c *converter) list(n *ast.List) (*mdfold.Node, error) {
	if n.IsOrdered() {
		var items [][]*mdfold.Node
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			children, _, err := c.listItem(item)
			if err != nil {
				return nil, err
			}
			items = append(items, children)
		}
		return block(&mdfold.OrderedList[*mdfold.Node]{Start: n.Start, Items: items}), nil
	}
	var items []mdfold.ListItem[*mdfold.Node]
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		children, task, err := c.listItem(item)
		if err != nil {
			return nil, err
		}
		items = append(items, mdfold.ListItem[*mdfold.Node]{Task: task, Children: children})
	}
	return block(&mdfold.UnorderedList[*mdfold.Node]{Items: items}), nil
}

// listItem converts one list item's blocks, peeling a leading task
// checkbox off the first text block if present.
func (c *converter) listItem(item ast.Node) ([]*mdfold.Node, mdfold.Task, error) {
	task := mdfold.NoTask
	if first := item.FirstChild(); first != nil {
		if box, ok := first.FirstChild().(*east.TaskCheckBox); ok {
			if box.IsChecked {
				task = mdfold.CompletedTask
			} else {
				task = mdfold.IncompleteTask
			}
			first.RemoveChild(first, box)
		}
	}
	children, err := c.blocks(item)
	if err == nil && task != mdfold.NoTask {
		trimLeadingText(children)
	}
	return children, task, err
}

// trimLeadingText strips the marker separator space goldmark leaves on
// the text following a task checkbox.
func trimLeadingText(children []*mdfold.Node) {
	if len(children) == 0 {
		return
	}
	p, ok := children[0].Block.(*mdfold.Paragraph[*mdfold.Node])
	if !ok || len(p.Children) == 0 {
		return
	}
	if t, ok := p.Children[0].Block.(*mdfold.Text[*mdfold.Node]); ok {
		t.Text = strings.TrimLeft(t.Text, " ")
	}
}

func (c *converter) table(n *east.Table) (*mdfold.Node, error) {
	var children []*mdfold.Node
	var bodyRows []*mdfold.Node
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		switch row := row.(type) {
		case *east.TableHeader:
			cells, err := c.cells(row, true)
			if err != nil {
				return nil, err
			}
			children = append(children, block(&mdfold.TableHeader[*mdfold.Node]{
				Children: []*mdfold.Node{block(&mdfold.TableRow[*mdfold.Node]{Children: cells})},
			}))
		case *east.TableRow:
			cells, err := c.cells(row, false)
			if err != nil {
				return nil, err
			}
			bodyRows = append(bodyRows, block(&mdfold.TableRow[*mdfold.Node]{Children: cells}))
		default:
			return nil, fmt.Errorf("unsupported table child %s", row.Kind())
		}
	}
	if len(bodyRows) > 0 {
		children = append(children, block(&mdfold.TableBody[*mdfold.Node]{Children: bodyRows}))
	}
	return block(&mdfold.Table[*mdfold.Node]{Children: children}), nil
}

func (c *converter) cells(row ast.Node, header bool) ([]*mdfold.Node, error) {
	var out []*mdfold.Node
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		tc, ok := cell.(*east.TableCell)
		if !ok {
			return nil, fmt.Errorf("unsupported table cell node %s", cell.Kind())
		}
		children, err := c.inlines(tc)
		if err != nil {
			return nil, err
		}
		align := alignment(tc.Alignment)
		if header {
			out = append(out, block(&mdfold.TableHeaderCell[*mdfold.Node]{Align: align, Children: children}))
		} else {
			out = append(out, block(&mdfold.TableCell[*mdfold.Node]{Align: align, Children: children}))
		}
	}
	return out, nil
}

func (c *converter) inlines(parent ast.Node) ([]*mdfold.Node, error) {
	var out []*mdfold.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		converted, err := c.inline(n)
		if err != nil {
			return nil, err
		}
		out = append(out, converted...)
	}
	return out, nil
}

func (c *converter) inline(n ast.Node) ([]*mdfold.Node, error) {
	switch n := n.(type) {
	case *ast.Text:
		var out []*mdfold.Node
		if s := string(n.Segment.Value(c.source)); s != "" {
			out = append(out, block(&mdfold.Text[*mdfold.Node]{Text: s}))
		}
		if n.HardLineBreak() {
			out = append(out, block(&mdfold.HardLineBreak[*mdfold.Node]{}))
		} else if n.SoftLineBreak() {
			out = append(out, block(&mdfold.Text[*mdfold.Node]{Text: "\n"}))
		}
		return out, nil
	case *ast.String:
		return []*mdfold.Node{block(&mdfold.Text[*mdfold.Node]{Text: string(n.Value)})}, nil
	case *ast.CodeSpan:
		var text string
		for seg := n.FirstChild(); seg != nil; seg = seg.NextSibling() {
			if t, ok := seg.(*ast.Text); ok {
				text += string(t.Segment.Value(c.source))
			}
		}
		return []*mdfold.Node{block(&mdfold.CodeSpan[*mdfold.Node]{Text: text})}, nil
	case *ast.Emphasis:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		if n.Level >= 2 {
			return []*mdfold.Node{block(&mdfold.Strong[*mdfold.Node]{Children: children})}, nil
		}
		return []*mdfold.Node{block(&mdfold.Emphasis[*mdfold.Node]{Children: children})}, nil
	case *ast.Link:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return []*mdfold.Node{block(&mdfold.Link[*mdfold.Node]{
			Destination: string(n.Destination),
			Title:       string(n.Title),
			Children:    children,
		})}, nil
	case *ast.AutoLink:
		url := string(n.URL(c.source))
		return []*mdfold.Node{block(&mdfold.Link[*mdfold.Node]{
			Destination: url,
			Children:    []*mdfold.Node{block(&mdfold.Text[*mdfold.Node]{Text: string(n.Label(c.source))})},
		})}, nil
	case *ast.Image:
		alt := string(n.Text(c.source))
		return []*mdfold.Node{block(&mdfold.Image[*mdfold.Node]{
			Alt:   alt,
			Src:   string(n.Destination),
			Title: string(n.Title),
		})}, nil
	case *east.Strikethrough:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return []*mdfold.Node{block(&mdfold.HtmlElement[*mdfold.Node]{TagName: "del", Children: children})}, nil
	case *ast.RawHTML:
		// Inline raw HTML is dropped like HTML blocks.
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported inline node %s", n.Kind())
}

func (c *converter) lines(n interface {
	Lines() *text.Segments
}) string {
	var body string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		body += string(seg.Value(c.source))
	}
	return body
}

func block(b mdfold.Block[*mdfold.Node]) *mdfold.Node {
	return &mdfold.Node{Block: b}
}

func alignment(a east.Alignment) mdfold.Alignment {
	switch a {
	case east.AlignLeft:
		return mdfold.AlignLeft
	case east.AlignRight:
		return mdfold.AlignRight
	case east.AlignCenter:
		return mdfold.AlignCenter
	}
	return mdfold.AlignNone
}
