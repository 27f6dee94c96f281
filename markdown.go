package mdfold

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintMarkdown lifts a table style into a one-level markdown renderer
// over the two-phase shape. Every variant outside the table substructure
// collapses immediately to a Constant; table cells, rows and sections
// defer their final text until the owning Table node has merged the
// complete column requirements, at which point the Table itself
// collapses as well. Feed it to Fold or FoldDocument.
func PrintMarkdown(style TableStyle) func(Block[TableInfo[string]]) TableInfo[string] {
	return func(b Block[TableInfo[string]]) TableInfo[string] {
		switch b := b.(type) {
		case *TableCell[TableInfo[string]]:
			return printCell(style, b.Align, b.Children)
		case *TableHeaderCell[TableInfo[string]]:
			return printCell(style, b.Align, b.Children)
		case *TableRow[TableInfo[string]]:
			return printRow(style, b.Children)
		case *TableHeader[TableInfo[string]]:
			info := mergeInfos(b.Children)
			rows := b.Children
			return TableInfo[string]{Info: info, Render: func(final ColumnInfos) string {
				lines := make([]string, 0, len(rows)+1)
				for _, r := range rows {
					lines = append(lines, r.Render(final))
				}
				lines = append(lines, style.RenderDelimiter(final.Columns()))
				return strings.Join(lines, "\n")
			}}
		case *TableBody[TableInfo[string]]:
			info := mergeInfos(b.Children)
			rows := b.Children
			return TableInfo[string]{Info: info, Render: func(final ColumnInfos) string {
				lines := make([]string, len(rows))
				for i, r := range rows {
					lines[i] = r.Render(final)
				}
				return strings.Join(lines, "\n")
			}}
		case *Table[TableInfo[string]]:
			final := mergeInfos(b.Children)
			lines := make([]string, len(b.Children))
			for i, c := range b.Children {
				lines[i] = c.Render(final)
			}
			return Constant(strings.Join(lines, "\n"))
		}
		return Constant(printPlain(b))
	}
}

func printCell(style TableStyle, align Alignment, children []TableInfo[string]) TableInfo[string] {
	content := renderAll(children, "")
	info := ColumnInfos{0: {Size: runewidth.StringWidth(content), Align: align}}
	return TableInfo[string]{Info: info, Render: func(final ColumnInfos) string {
		return style.RenderCell(content, final[0])
	}}
}

func printRow(style TableStyle, cells []TableInfo[string]) TableInfo[string] {
	info := make(ColumnInfos, len(cells))
	for i, c := range cells {
		info = info.Merge(c.Info.Shift(i))
	}
	return TableInfo[string]{Info: info, Render: func(final ColumnInfos) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = c.Render(final.Shift(-i))
		}
		return style.RenderRow(out)
	}}
}

func mergeInfos(children []TableInfo[string]) ColumnInfos {
	info := ColumnInfos{}
	for _, c := range children {
		info = info.Merge(c.Info)
	}
	return info
}

// printPlain renders the non-table variants; children here have already
// collapsed to constants.
func printPlain(b Block[TableInfo[string]]) string {
	switch b := b.(type) {
	case *Text[TableInfo[string]]:
		return b.Text
	case *CodeSpan[TableInfo[string]]:
		return "`" + b.Text + "`"
	case *Strong[TableInfo[string]]:
		return "**" + renderAll(b.Children, "") + "**"
	case *Emphasis[TableInfo[string]]:
		return "*" + renderAll(b.Children, "") + "*"
	case *Link[TableInfo[string]]:
		if b.Title != "" {
			return fmt.Sprintf("[%s](%s %q)", renderAll(b.Children, ""), b.Destination, b.Title)
		}
		return fmt.Sprintf("[%s](%s)", renderAll(b.Children, ""), b.Destination)
	case *Image[TableInfo[string]]:
		if b.Title != "" {
			return fmt.Sprintf("![%s](%s %q)", b.Alt, b.Src, b.Title)
		}
		return fmt.Sprintf("![%s](%s)", b.Alt, b.Src)
	case *HardLineBreak[TableInfo[string]]:
		return "\\\n"
	case *Heading[TableInfo[string]]:
		return strings.Repeat("#", int(b.Level)) + " " + renderAll(b.Children, "")
	case *Paragraph[TableInfo[string]]:
		return renderAll(b.Children, "")
	case *BlockQuote[TableInfo[string]]:
		return prefixLines(renderAll(b.Children, "\n\n"), "> ", "> ")
	case *UnorderedList[TableInfo[string]]:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			marker := "- "
			switch item.Task {
			case IncompleteTask:
				marker = "- [ ] "
			case CompletedTask:
				marker = "- [x] "
			}
			lines[i] = prefixLines(renderAll(item.Children, "\n"), marker, strings.Repeat(" ", len(marker)))
		}
		return strings.Join(lines, "\n")
	case *OrderedList[TableInfo[string]]:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			marker := fmt.Sprintf("%d. ", b.Start+i)
			lines[i] = prefixLines(renderAll(item, "\n"), marker, strings.Repeat(" ", len(marker)))
		}
		return strings.Join(lines, "\n")
	case *CodeBlock[TableInfo[string]]:
		body := b.Body
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		return "```" + b.Language + "\n" + body + "```"
	case *ThematicBreak[TableInfo[string]]:
		return "---"
	case *HtmlElement[TableInfo[string]]:
		if b.TagName == "del" {
			return "~~" + renderAll(b.Children, "") + "~~"
		}
		var attrs strings.Builder
		for _, a := range b.Attrs {
			fmt.Fprintf(&attrs, " %s=%q", a.Name, a.Value)
		}
		return fmt.Sprintf("<%s%s>%s</%s>", b.TagName, attrs.String(), renderAll(b.Children, ""), b.TagName)
	}
	panic(fmt.Sprintf("mdfold: printPlain: unexpected block variant %T", b))
}

func renderAll(children []TableInfo[string], sep string) string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Render(nil)
	}
	return strings.Join(out, sep)
}

func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		if l == "" && i > 0 {
			lines[i] = strings.TrimRight(p, " ")
			continue
		}
		lines[i] = p + l
	}
	return strings.Join(lines, "\n")
}

// PrintBlock renders one tree to markdown text.
func PrintBlock(n *Node, style TableStyle) string {
	return Fold(n, PrintMarkdown(style)).Render(nil)
}

// Print renders a whole document, blocks separated by blank lines, with
// a trailing newline.
func Print(doc Document, style TableStyle) string {
	parts := make([]string, len(doc))
	for i, ti := range FoldDocument(doc, PrintMarkdown(style)) {
		parts[i] = ti.Render(nil)
	}
	return strings.Join(parts, "\n\n") + "\n"
}
