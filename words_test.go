package mdfold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mdfold "github.com/growler/go-mdfold"
	"github.com/growler/go-mdfold/dot"
)

func TestExtractWords(t *testing.T) {
	n := dot.Para(
		dot.Str("Hello there,"),
		dot.Strong(dot.Str(" brave ")),
		dot.Code("new world"),
	)
	require.Equal(t, []string{"Hello", "there,", "brave", "new", "world"}, mdfold.ExtractWords(n))
}

// Code block bodies contribute no words; only inline code spans count.
func TestExtractWordsSkipsCodeBlocks(t *testing.T) {
	doc := dot.Doc(
		dot.CodeBlock("go", "package main\n"),
		dot.Para(dot.Str("visible")),
	)
	require.Equal(t, []string{"visible"}, mdfold.ExtractDocumentWords(doc))
}

func TestExtractWordsImageAltExcluded(t *testing.T) {
	n := dot.Para(dot.Image("hidden alt", "img.png", ""), dot.Str("shown"))
	require.Equal(t, []string{"shown"}, mdfold.ExtractWords(n))
}

func TestPlainText(t *testing.T) {
	n := dot.Para(
		dot.Str("a "),
		dot.Emph(dot.Str("b")),
		dot.Str(" and "),
		dot.Code("c"),
		dot.Image("alt text", "x.png", ""),
	)
	require.Equal(t, "a b and calt text", mdfold.PlainText(n))
}

func TestSlug(t *testing.T) {
	for _, tc := range []struct {
		words    []string
		expected string
	}{
		{[]string{"Hello,", "World!"}, "hello-world"},
		{[]string{"Heading", "1.2"}, "heading-12"},
		{[]string{"Größe", "Ärger"}, "größe-ärger"},
		{[]string{"---", "ok"}, "ok"},
		{nil, ""},
	} {
		require.Equal(t, tc.expected, mdfold.Slug(tc.words), "words %v", tc.words)
	}
}

func TestTableOfContents(t *testing.T) {
	doc := dot.Doc(
		dot.Heading(mdfold.H1, dot.Str("User Guide")),
		dot.Para(dot.Str("intro text")),
		dot.Heading(mdfold.H2, dot.Str("Getting "), dot.Emph(dot.Str("Started"))),
	)
	require.Equal(t, []mdfold.TocEntry{
		{Level: mdfold.H1, Text: "User Guide", Anchor: "user-guide"},
		{Level: mdfold.H2, Text: "Getting Started", Anchor: "getting-started"},
	}, mdfold.TableOfContents(doc))
}
