package mdfold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mdfold "github.com/growler/go-mdfold"
	"github.com/growler/go-mdfold/dot"
)

func TestPrintInlines(t *testing.T) {
	n := dot.Para(
		dot.Str("plain "),
		dot.Strong(dot.Str("bold")),
		dot.Str(" "),
		dot.Emph(dot.Str("soft")),
		dot.Str(" "),
		dot.Code("tt"),
		dot.Str(" "),
		dot.Link("https://example.com", "", dot.Str("link")),
	)
	const expected = "plain **bold** *soft* `tt` [link](https://example.com)"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintLinkTitle(t *testing.T) {
	n := dot.Para(dot.Link("https://example.com", "the title", dot.Str("x")))
	require.Equal(t, `[x](https://example.com "the title")`, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintHeadingAndQuote(t *testing.T) {
	doc := dot.Doc(
		dot.Heading(mdfold.H3, dot.Str("Title")),
		dot.BlockQuote(dot.Para(dot.Str("quoted"))),
	)
	const expected = "### Title\n\n> quoted\n"
	require.Equal(t, expected, mdfold.Print(doc, mdfold.DefaultStyle{}))
}

func TestPrintLists(t *testing.T) {
	n := dot.BulletList(
		dot.Item(dot.Para(dot.Str("plain"))),
		dot.TaskItem(false, dot.Para(dot.Str("todo"))),
		dot.TaskItem(true, dot.Para(dot.Str("done"))),
	)
	const expected = "- plain\n- [ ] todo\n- [x] done"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintOrderedListStart(t *testing.T) {
	n := dot.OrderedList(3,
		dot.Blocks(dot.Para(dot.Str("three"))),
		dot.Blocks(dot.Para(dot.Str("four"))),
	)
	require.Equal(t, "3. three\n4. four", mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintCodeBlock(t *testing.T) {
	n := dot.CodeBlock("go", "package main\n")
	require.Equal(t, "```go\npackage main\n```", mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintStrikethrough(t *testing.T) {
	n := dot.Para(dot.Html("del", dot.Str("gone")))
	require.Equal(t, "~~gone~~", mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

// Columns pad to the widest cell; delimiters keep at least three dashes.
func TestPrintTable(t *testing.T) {
	n := dot.Table(
		dot.TableHeader(dot.Row(
			dot.HeaderCell(mdfold.AlignNone, dot.Str("foo")),
			dot.HeaderCell(mdfold.AlignNone, dot.Str("bar")),
		)),
		dot.TableBody(dot.Row(
			dot.Cell(mdfold.AlignNone, dot.Str("baz")),
			dot.Cell(mdfold.AlignNone, dot.Str("bim")),
		)),
	)
	const expected = "| foo | bar |\n| --- | --- |\n| baz | bim |"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintTablePadsColumns(t *testing.T) {
	n := dot.Table(
		dot.TableHeader(dot.Row(
			dot.HeaderCell(mdfold.AlignLeft, dot.Str("name")),
			dot.HeaderCell(mdfold.AlignRight, dot.Str("n")),
		)),
		dot.TableBody(
			dot.Row(
				dot.Cell(mdfold.AlignLeft, dot.Str("longer value")),
				dot.Cell(mdfold.AlignRight, dot.Str("7")),
			),
			dot.Row(
				dot.Cell(mdfold.AlignLeft, dot.Str("x")),
				dot.Cell(mdfold.AlignRight, dot.Str("1234")),
			),
		),
	)
	expected := "| name         |    n |\n" +
		"| :----------- | ---: |\n" +
		"| longer value |    7 |\n" +
		"| x            | 1234 |"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

// A short row simply contributes nothing to the columns it lacks.
func TestPrintTableRaggedRows(t *testing.T) {
	n := dot.Table(
		dot.TableHeader(dot.Row(
			dot.HeaderCell(mdfold.AlignNone, dot.Str("a")),
			dot.HeaderCell(mdfold.AlignNone, dot.Str("b")),
		)),
		dot.TableBody(dot.Row(
			dot.Cell(mdfold.AlignNone, dot.Str("only")),
		)),
	)
	const expected = "| a    | b   |\n| ---- | --- |\n| only |"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintCompactStyle(t *testing.T) {
	n := dot.Table(
		dot.TableHeader(dot.Row(
			dot.HeaderCell(mdfold.AlignCenter, dot.Str("wide header")),
			dot.HeaderCell(mdfold.AlignNone, dot.Str("b")),
		)),
		dot.TableBody(dot.Row(
			dot.Cell(mdfold.AlignCenter, dot.Str("x")),
			dot.Cell(mdfold.AlignNone, dot.Str("y")),
		)),
	)
	const expected = "| wide header | b |\n| :-: | --- |\n| x | y |"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.CompactStyle{}))
}

// Wide runes count by display width, keeping columns aligned.
func TestPrintTableWideRunes(t *testing.T) {
	n := dot.Table(
		dot.TableHeader(dot.Row(dot.HeaderCell(mdfold.AlignNone, dot.Str("日本語")))),
		dot.TableBody(dot.Row(dot.Cell(mdfold.AlignNone, dot.Str("ab")))),
	)
	const expected = "| 日本語 |\n| ------ |\n| ab     |"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}

func TestPrintNestedQuote(t *testing.T) {
	n := dot.BlockQuote(
		dot.Para(dot.Str("first")),
		dot.Para(dot.Str("second")),
	)
	const expected = "> first\n>\n> second"
	require.Equal(t, expected, mdfold.PrintBlock(n, mdfold.DefaultStyle{}))
}
