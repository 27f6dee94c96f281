package mdfold

import "fmt"

// Map applies f to every child slot of b, preserving the variant and all
// non-child metadata. It is total over the algebra and visits children in
// document order, left to right; Children and Map agree on that order.
//
// Map obeys the functor laws the rest of the package depends on:
// Map(id) == id and Map(g, Map(f, b)) == Map(g∘f, b).
func Map[C, D any](f func(C) D, b Block[C]) Block[D] {
	switch b := b.(type) {
	case *Heading[C]:
		return &Heading[D]{Level: b.Level, RawText: b.RawText, Children: mapSlice(f, b.Children)}
	case *Paragraph[C]:
		return &Paragraph[D]{Children: mapSlice(f, b.Children)}
	case *BlockQuote[C]:
		return &BlockQuote[D]{Children: mapSlice(f, b.Children)}
	case *Text[C]:
		return &Text[D]{Text: b.Text}
	case *CodeSpan[C]:
		return &CodeSpan[D]{Text: b.Text}
	case *Strong[C]:
		return &Strong[D]{Children: mapSlice(f, b.Children)}
	case *Emphasis[C]:
		return &Emphasis[D]{Children: mapSlice(f, b.Children)}
	case *Link[C]:
		return &Link[D]{Title: b.Title, Destination: b.Destination, Children: mapSlice(f, b.Children)}
	case *Image[C]:
		return &Image[D]{Alt: b.Alt, Src: b.Src, Title: b.Title}
	case *UnorderedList[C]:
		items := make([]ListItem[D], len(b.Items))
		for i := range b.Items {
			items[i] = ListItem[D]{Task: b.Items[i].Task, Children: mapSlice(f, b.Items[i].Children)}
		}
		return &UnorderedList[D]{Items: items}
	case *OrderedList[C]:
		items := make([][]D, len(b.Items))
		for i := range b.Items {
			items[i] = mapSlice(f, b.Items[i])
		}
		return &OrderedList[D]{Start: b.Start, Items: items}
	case *CodeBlock[C]:
		return &CodeBlock[D]{Body: b.Body, Language: b.Language}
	case *HardLineBreak[C]:
		return &HardLineBreak[D]{}
	case *ThematicBreak[C]:
		return &ThematicBreak[D]{}
	case *Table[C]:
		return &Table[D]{Children: mapSlice(f, b.Children)}
	case *TableHeader[C]:
		return &TableHeader[D]{Children: mapSlice(f, b.Children)}
	case *TableBody[C]:
		return &TableBody[D]{Children: mapSlice(f, b.Children)}
	case *TableRow[C]:
		return &TableRow[D]{Children: mapSlice(f, b.Children)}
	case *TableCell[C]:
		return &TableCell[D]{Align: b.Align, Children: mapSlice(f, b.Children)}
	case *TableHeaderCell[C]:
		return &TableHeaderCell[D]{Align: b.Align, Children: mapSlice(f, b.Children)}
	case *HtmlElement[C]:
		return &HtmlElement[D]{TagName: b.TagName, Attrs: b.Attrs, Children: mapSlice(f, b.Children)}
	}
	panic(fmt.Sprintf("mdfold: Map: unknown block variant %T", b))
}

// Children returns every child slot of b in document order. Leaf
// variants return nil. The order matches Map's traversal order.
func Children[C any](b Block[C]) []C {
	switch b := b.(type) {
	case *Heading[C]:
		return b.Children
	case *Paragraph[C]:
		return b.Children
	case *BlockQuote[C]:
		return b.Children
	case *Strong[C]:
		return b.Children
	case *Emphasis[C]:
		return b.Children
	case *Link[C]:
		return b.Children
	case *UnorderedList[C]:
		var out []C
		for i := range b.Items {
			out = append(out, b.Items[i].Children...)
		}
		return out
	case *OrderedList[C]:
		var out []C
		for i := range b.Items {
			out = append(out, b.Items[i]...)
		}
		return out
	case *Table[C]:
		return b.Children
	case *TableHeader[C]:
		return b.Children
	case *TableBody[C]:
		return b.Children
	case *TableRow[C]:
		return b.Children
	case *TableCell[C]:
		return b.Children
	case *TableHeaderCell[C]:
		return b.Children
	case *HtmlElement[C]:
		return b.Children
	}
	return nil
}

// IsLeaf reports whether the variant has no child slots at all.
func IsLeaf[C any](b Block[C]) bool {
	switch b.(type) {
	case *Text[C], *CodeSpan[C], *Image[C], *CodeBlock[C], *HardLineBreak[C], *ThematicBreak[C]:
		return true
	}
	return false
}

func mapSlice[C, D any](f func(C) D, s []C) []D {
	if s == nil {
		return nil
	}
	out := make([]D, len(s))
	for i := range s {
		out[i] = f(s[i])
	}
	return out
}
