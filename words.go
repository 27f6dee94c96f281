package mdfold

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordSeparator = regexp.MustCompile(`(?i)\s`)

func splitWords(s string) []string {
	var out []string
	for _, w := range wordSeparator.Split(s, -1) {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// BlockWords is the per-node word contribution: Text and CodeSpan leaves
// split on whitespace, everything else contributes nothing of its own.
// Code block bodies are deliberately excluded; only inline code counts.
func BlockWords[C any](b Block[C]) []string {
	switch b := b.(type) {
	case *Text[C]:
		return splitWords(b.Text)
	case *CodeSpan[C]:
		return splitWords(b.Text)
	}
	return nil
}

// ExtractWords collects every word of the tree in document order, via the
// generic Reduce with concatenation as the accumulator.
func ExtractWords(n *Node) []string {
	return Fold(n, func(b Block[[]string]) []string {
		return Reduce(BlockWords[[]string], concatWords, b)
	})
}

// ExtractDocumentWords collects the words of every top-level node.
func ExtractDocumentWords(doc Document) []string {
	var out []string
	for _, n := range doc {
		out = append(out, ExtractWords(n)...)
	}
	return out
}

func concatWords(ws [][]string) []string {
	var out []string
	for _, w := range ws {
		out = append(out, w...)
	}
	return out
}

// PlainText renders the tree's literal text content: Text and CodeSpan
// contribute their text, images their alt text, everything else just
// concatenates its children.
func PlainText(n *Node) string {
	return Fold(n, func(b Block[string]) string {
		switch b := b.(type) {
		case *Text[string]:
			return b.Text
		case *CodeSpan[string]:
			return b.Text
		case *Image[string]:
			return b.Alt
		case *HardLineBreak[string]:
			return "\n"
		}
		return strings.Join(Children[string](b), "")
	})
}

var slugCaser = cases.Lower(language.Und)

// Slug derives an anchor identifier from a word sequence: each word is
// lower-cased, stripped to letters and digits, and the non-empty results
// are joined by dashes.
func Slug(words []string) string {
	toks := make([]string, 0, len(words))
	for _, w := range words {
		var sb strings.Builder
		for _, r := range slugCaser.String(w) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				sb.WriteRune(r)
			}
		}
		if sb.Len() > 0 {
			toks = append(toks, sb.String())
		}
	}
	return strings.Join(toks, "-")
}

// TocEntry is one heading of a document's table of contents.
type TocEntry struct {
	Level  HeadingLevel
	Text   string
	Anchor string
}

// TableOfContents lists every heading in document order with its level,
// plain text and generated anchor.
func TableOfContents(doc Document) []TocEntry {
	var toc []TocEntry
	Walk(doc, func(n *Node) bool {
		if h, ok := n.Block.(*Heading[*Node]); ok {
			toc = append(toc, TocEntry{
				Level:  h.Level,
				Text:   PlainText(n),
				Anchor: Slug(ExtractWords(n)),
			})
			return false
		}
		return true
	})
	return toc
}
