package mdfold

import (
	"reflect"
	"strings"
	"testing"
)

func testBlocks() []Block[string] {
	return []Block[string]{
		&Heading[string]{Level: H2, RawText: "title", Children: []string{"a", "b"}},
		&Paragraph[string]{Children: []string{"a", "b", "c"}},
		&BlockQuote[string]{Children: []string{"a"}},
		&Text[string]{Text: "plain"},
		&CodeSpan[string]{Text: "code"},
		&Strong[string]{Children: []string{"a"}},
		&Emphasis[string]{Children: []string{"a"}},
		&Link[string]{Title: "t", Destination: "https://example.com", Children: []string{"a"}},
		&Image[string]{Alt: "alt", Src: "src", Title: "t"},
		&UnorderedList[string]{Items: []ListItem[string]{
			{Task: NoTask, Children: []string{"a", "b"}},
			{Task: CompletedTask, Children: []string{"c"}},
		}},
		&OrderedList[string]{Start: 3, Items: [][]string{{"a"}, {"b", "c"}}},
		&CodeBlock[string]{Body: "body\n", Language: "go"},
		&HardLineBreak[string]{},
		&ThematicBreak[string]{},
		&Table[string]{Children: []string{"a", "b"}},
		&TableHeader[string]{Children: []string{"a"}},
		&TableBody[string]{Children: []string{"a"}},
		&TableRow[string]{Children: []string{"a", "b"}},
		&TableCell[string]{Align: AlignLeft, Children: []string{"a"}},
		&TableHeaderCell[string]{Align: AlignCenter, Children: []string{"a"}},
		&HtmlElement[string]{TagName: "del", Attrs: []HtmlAttr{{Name: "class", Value: "x"}}, Children: []string{"a"}},
	}
}

func TestMapIdentity(t *testing.T) {
	for _, b := range testBlocks() {
		mapped := Map(func(s string) string { return s }, b)
		if !reflect.DeepEqual(b, mapped) {
			t.Errorf("%s: expected %#v, got %#v", b.Tag(), b, mapped)
		}
	}
}

func TestMapComposition(t *testing.T) {
	f := func(s string) string { return s + "!" }
	g := func(s string) int { return len(s) }
	for _, b := range testBlocks() {
		composed := Map(func(s string) int { return g(f(s)) }, b)
		staged := Map(g, Map(f, b))
		if !reflect.DeepEqual(composed, staged) {
			t.Errorf("%s: expected %#v, got %#v", b.Tag(), composed, staged)
		}
	}
}

func TestMapPreservesMetadata(t *testing.T) {
	h := Map(strings.ToUpper, Block[string](&Heading[string]{Level: H3, RawText: "raw", Children: []string{"x"}}))
	if got := h.(*Heading[string]); got.Level != H3 || got.RawText != "raw" || got.Children[0] != "X" {
		t.Errorf("Expected H3/raw/X, got %d/%q/%q", got.Level, got.RawText, got.Children[0])
	}
	l := Map(strings.ToUpper, Block[string](&UnorderedList[string]{Items: []ListItem[string]{{Task: IncompleteTask, Children: []string{"a"}}}}))
	if got := l.(*UnorderedList[string]); got.Items[0].Task != IncompleteTask {
		t.Errorf("Expected task state preserved, got %v", got.Items[0].Task)
	}
}

// Map and Children must agree on traversal order.
func TestMapChildrenOrder(t *testing.T) {
	for _, b := range testBlocks() {
		var visited []string
		Map(func(s string) string {
			visited = append(visited, s)
			return s
		}, b)
		if !reflect.DeepEqual(visited, Children[string](b)) {
			t.Errorf("%s: expected %v, got %v", b.Tag(), Children[string](b), visited)
		}
	}
}

func TestIsLeaf(t *testing.T) {
	for _, b := range testBlocks() {
		if leaf, children := IsLeaf[string](b), Children[string](b); leaf && len(children) > 0 {
			t.Errorf("%s: leaf variant with children %v", b.Tag(), children)
		}
	}
	if !IsLeaf[string](Block[string](&Text[string]{Text: "x"})) {
		t.Error("Expected Text to be a leaf")
	}
	if IsLeaf[string](Block[string](&Paragraph[string]{})) {
		t.Error("Expected Paragraph not to be a leaf")
	}
}

func BenchmarkMap(b *testing.B) {
	b.StopTimer()
	blocks := testBlocks()
	b.ReportAllocs()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		for _, blk := range blocks {
			Map(func(s string) string { return s }, blk)
		}
	}
}
