// Package dot provides terse constructors for building documents in
// code. It is the intended vocabulary of tests and examples:
//
//	doc := dot.Doc(
//	    dot.Heading(mdfold.H1, dot.Str("Intro")),
//	    dot.Para(dot.Str("hello, "), dot.Strong(dot.Str("world"))),
//	)
package dot

import (
	mdfold "github.com/growler/go-mdfold"
)

func node(b mdfold.Block[*mdfold.Node]) *mdfold.Node {
	return &mdfold.Node{Block: b}
}

func Doc(n ...*mdfold.Node) mdfold.Document {
	return mdfold.Document(n)
}

// Text (string)
func Str(s string) *mdfold.Node {
	return node(&mdfold.Text[*mdfold.Node]{Text: s})
}

// Inline code (literal)
func Code(s string) *mdfold.Node {
	return node(&mdfold.CodeSpan[*mdfold.Node]{Text: s})
}

// Emphasized text (list of inlines)
func Emph(i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.Emphasis[*mdfold.Node]{Children: i})
}

// Strongly emphasized text (list of inlines)
func Strong(i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.Strong[*mdfold.Node]{Children: i})
}

// Link (list of inlines as link text). Empty title means no title.
func Link(url, title string, i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.Link[*mdfold.Node]{Destination: url, Title: title, Children: i})
}

// Image. Empty title means no title.
func Image(alt, src, title string) *mdfold.Node {
	return node(&mdfold.Image[*mdfold.Node]{Alt: alt, Src: src, Title: title})
}

// Hard line break
func LineBreak() *mdfold.Node {
	return node(&mdfold.HardLineBreak[*mdfold.Node]{})
}

// Horizontal rule
func HorizontalRule() *mdfold.Node {
	return node(&mdfold.ThematicBreak[*mdfold.Node]{})
}

func Para(i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.Paragraph[*mdfold.Node]{Children: i})
}

// Heading. The raw text is derived from the children's plain text.
func Heading(level mdfold.HeadingLevel, i ...*mdfold.Node) *mdfold.Node {
	h := &mdfold.Heading[*mdfold.Node]{Level: level, Children: i}
	n := node(h)
	h.RawText = mdfold.PlainText(n)
	return n
}

func BlockQuote(b ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.BlockQuote[*mdfold.Node]{Children: b})
}

// List item without a task marker (list of blocks)
func Item(b ...*mdfold.Node) mdfold.ListItem[*mdfold.Node] {
	return mdfold.ListItem[*mdfold.Node]{Task: mdfold.NoTask, Children: b}
}

// Task list item
func TaskItem(done bool, b ...*mdfold.Node) mdfold.ListItem[*mdfold.Node] {
	task := mdfold.IncompleteTask
	if done {
		task = mdfold.CompletedTask
	}
	return mdfold.ListItem[*mdfold.Node]{Task: task, Children: b}
}

func BulletList(items ...mdfold.ListItem[*mdfold.Node]) *mdfold.Node {
	return node(&mdfold.UnorderedList[*mdfold.Node]{Items: items})
}

func Blocks(b ...*mdfold.Node) []*mdfold.Node {
	return b
}

// Ordered list. The first argument is the number of the first item.
func OrderedList(start int, items ...[]*mdfold.Node) *mdfold.Node {
	return node(&mdfold.OrderedList[*mdfold.Node]{Start: start, Items: items})
}

// Code block (literal). Empty language means no info string.
func CodeBlock(language, body string) *mdfold.Node {
	return node(&mdfold.CodeBlock[*mdfold.Node]{Body: body, Language: language})
}

func Table(b ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.Table[*mdfold.Node]{Children: b})
}

func TableHeader(rows ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.TableHeader[*mdfold.Node]{Children: rows})
}

func TableBody(rows ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.TableBody[*mdfold.Node]{Children: rows})
}

func Row(cells ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.TableRow[*mdfold.Node]{Children: cells})
}

// Table cell. The first argument is the column alignment.
func Cell(align mdfold.Alignment, i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.TableCell[*mdfold.Node]{Align: align, Children: i})
}

// Table header cell. The first argument is the column alignment.
func HeaderCell(align mdfold.Alignment, i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.TableHeaderCell[*mdfold.Node]{Align: align, Children: i})
}

// Embedded HTML element. Attributes come in name/value pairs.
func Html(tag string, i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.HtmlElement[*mdfold.Node]{TagName: tag, Children: i})
}

func HtmlAttrs(tag string, attrs []mdfold.HtmlAttr, i ...*mdfold.Node) *mdfold.Node {
	return node(&mdfold.HtmlElement[*mdfold.Node]{TagName: tag, Attrs: attrs, Children: i})
}

func KVs(kvs ...string) []mdfold.HtmlAttr {
	res := make([]mdfold.HtmlAttr, 0, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		res = append(res, mdfold.HtmlAttr{Name: kvs[i], Value: kvs[i+1]})
	}
	return res
}
