// Package mdfold implements a recursion-scheme toolkit over a markdown
// block algebra: a closed sum type Block[C] generic over the child
// representation, a structure-preserving Map, a generic Reduce, and a set
// of derived folds (HTML rendering, word extraction, round-trip
// pretty-printing with two-phase table layout, and anchor validation).
//
// The package does not parse markdown itself; a parsed document is an
// ordered sequence of nodes produced by an external parser (see the parse
// subpackage for a goldmark adapter).
package mdfold

// A convenience function to check if a block is of a particular variant.
//
// Example:
//
//	if mdfold.Is[mdfold.Heading[*mdfold.Node]](blk) {
//	    ...
//	}
func Is[P any, C any](b Block[C]) bool {
	_, ok := any(b).(*P)
	return ok
}

// Block algebra variant tag
type Tag string

func (t Tag) Tag() Tag       { return t }
func (t Tag) String() string { return string(t) }

// Block algebra value with a tag
type Tagged interface {
	Tag() Tag
}

// Block is one node of a markdown document, tagged by kind and generic
// over the child representation C. Depending on the fold in progress, C
// may be a fully reduced value, a string, a function awaiting an
// environment, or a deferred two-phase computation.
//
// The sum is closed: every variant lives in this package and is handled
// exhaustively by Map, Children and the derived folds. Non-child fields
// (level, raw text, destination, alt, src, language, alignment, start
// index) are immutable metadata copied verbatim through any traversal.
type Block[C any] interface {
	Tagged
	block()
}

// Node ties the algebra's recursive knot: a document tree is a Block
// whose children are themselves Nodes.
type Node struct {
	Block Block[*Node]
}

// Document is an ordered sequence of top-level nodes, as supplied by the
// parser.
type Document []*Node

// HeadingLevel is a markdown heading level, 1 through 6.
type HeadingLevel int

const (
	H1 HeadingLevel = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// Bump raises the level by the given number of steps, clamping at H6.
// A non-positive argument leaves the level unchanged.
func (l HeadingLevel) Bump(by int) HeadingLevel {
	if by <= 0 {
		return l
	}
	if l += HeadingLevel(by); l > H6 {
		return H6
	}
	return l
}

// Alignment of a table column or cell. The zero value means "not
// specified".
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Task state of an unordered list item.
type Task int

const (
	NoTask Task = iota
	IncompleteTask
	CompletedTask
)

// HtmlAttr is a single attribute of an embedded HTML element.
type HtmlAttr struct {
	Name  string
	Value string
}

// Heading - level, raw source text and inline children
type Heading[C any] struct {
	Level    HeadingLevel
	RawText  string
	Children []C
}

const HeadingTag = Tag("Heading")

func (h *Heading[C]) Tag() Tag { return HeadingTag }
func (h *Heading[C]) block()   {}

// Paragraph (list of inline children)
type Paragraph[C any] struct {
	Children []C
}

const ParagraphTag = Tag("Paragraph")

func (p *Paragraph[C]) Tag() Tag { return ParagraphTag }
func (p *Paragraph[C]) block()   {}

// Block quote (list of block children)
type BlockQuote[C any] struct {
	Children []C
}

const BlockQuoteTag = Tag("BlockQuote")

func (b *BlockQuote[C]) Tag() Tag { return BlockQuoteTag }
func (b *BlockQuote[C]) block()   {}

// Text (literal, leaf)
type Text[C any] struct {
	Text string
}

const TextTag = Tag("Text")

func (t *Text[C]) Tag() Tag { return TextTag }
func (t *Text[C]) block()   {}

// Inline code span (literal, leaf)
type CodeSpan[C any] struct {
	Text string
}

const CodeSpanTag = Tag("CodeSpan")

func (c *CodeSpan[C]) Tag() Tag { return CodeSpanTag }
func (c *CodeSpan[C]) block()   {}

// Strongly emphasized text (list of inline children)
type Strong[C any] struct {
	Children []C
}

const StrongTag = Tag("Strong")

func (s *Strong[C]) Tag() Tag { return StrongTag }
func (s *Strong[C]) block()   {}

// Emphasized text (list of inline children)
type Emphasis[C any] struct {
	Children []C
}

const EmphasisTag = Tag("Emphasis")

func (e *Emphasis[C]) Tag() Tag { return EmphasisTag }
func (e *Emphasis[C]) block()   {}

// Hyperlink: optional title (empty means absent), destination, and link
// text children
type Link[C any] struct {
	Title       string
	Destination string
	Children    []C
}

const LinkTag = Tag("Link")

func (l *Link[C]) Tag() Tag { return LinkTag }
func (l *Link[C]) block()   {}

// Image: alt text, source and optional title (leaf)
type Image[C any] struct {
	Alt   string
	Src   string
	Title string
}

const ImageTag = Tag("Image")

func (i *Image[C]) Tag() Tag { return ImageTag }
func (i *Image[C]) block()   {}

// ListItem is one item of an unordered list, with an optional task state.
type ListItem[C any] struct {
	Task     Task
	Children []C
}

// Bullet list (list of items, each with a task state and block children)
type UnorderedList[C any] struct {
	Items []ListItem[C]
}

const UnorderedListTag = Tag("UnorderedList")

func (l *UnorderedList[C]) Tag() Tag { return UnorderedListTag }
func (l *UnorderedList[C]) block()   {}

// Ordered list (start index and a list of items, each a list of blocks)
type OrderedList[C any] struct {
	Start int
	Items [][]C
}

const OrderedListTag = Tag("OrderedList")

func (l *OrderedList[C]) Tag() Tag { return OrderedListTag }
func (l *OrderedList[C]) block()   {}

// Code block (literal body and optional language, leaf)
type CodeBlock[C any] struct {
	Body     string
	Language string
}

const CodeBlockTag = Tag("CodeBlock")

func (c *CodeBlock[C]) Tag() Tag { return CodeBlockTag }
func (c *CodeBlock[C]) block()   {}

// Hard line break (leaf)
type HardLineBreak[C any] struct{}

const HardLineBreakTag = Tag("HardLineBreak")

func (*HardLineBreak[C]) Tag() Tag { return HardLineBreakTag }
func (*HardLineBreak[C]) block()   {}

// Thematic break (leaf)
type ThematicBreak[C any] struct{}

const ThematicBreakTag = Tag("ThematicBreak")

func (*ThematicBreak[C]) Tag() Tag { return ThematicBreakTag }
func (*ThematicBreak[C]) block()   {}

// Table (header and body children)
type Table[C any] struct {
	Children []C
}

const TableTag = Tag("Table")

func (t *Table[C]) Tag() Tag { return TableTag }
func (t *Table[C]) block()   {}

// Table header section (row children)
type TableHeader[C any] struct {
	Children []C
}

const TableHeaderTag = Tag("TableHeader")

func (t *TableHeader[C]) Tag() Tag { return TableHeaderTag }
func (t *TableHeader[C]) block()   {}

// Table body section (row children)
type TableBody[C any] struct {
	Children []C
}

const TableBodyTag = Tag("TableBody")

func (t *TableBody[C]) Tag() Tag { return TableBodyTag }
func (t *TableBody[C]) block()   {}

// Table row (cell children)
type TableRow[C any] struct {
	Children []C
}

const TableRowTag = Tag("TableRow")

func (t *TableRow[C]) Tag() Tag { return TableRowTag }
func (t *TableRow[C]) block()   {}

// Table body cell, with an optional alignment
type TableCell[C any] struct {
	Align    Alignment
	Children []C
}

const TableCellTag = Tag("TableCell")

func (t *TableCell[C]) Tag() Tag { return TableCellTag }
func (t *TableCell[C]) block()   {}

// Table header cell, with an optional alignment
type TableHeaderCell[C any] struct {
	Align    Alignment
	Children []C
}

const TableHeaderCellTag = Tag("TableHeaderCell")

func (t *TableHeaderCell[C]) Tag() Tag { return TableHeaderCellTag }
func (t *TableHeaderCell[C]) block()   {}

// HtmlElement is the escape hatch for embedded foreign markup: an opaque
// element whose children are still subject to the active fold, while its
// own rendering is delegated to caller-supplied handlers keyed by tag
// name (see ToHtml).
type HtmlElement[C any] struct {
	TagName  string
	Attrs    []HtmlAttr
	Children []C
}

const HtmlElementTag = Tag("HtmlElement")

func (h *HtmlElement[C]) Tag() Tag { return HtmlElementTag }
func (h *HtmlElement[C]) block()   {}
