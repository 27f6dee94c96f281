package mdfold

import (
	"reflect"
	"testing"
)

func TestColumnInfosMerge(t *testing.T) {
	a := ColumnInfos{0: {Size: 3}, 1: {Size: 5, Align: AlignRight}}
	b := ColumnInfos{0: {Size: 7, Align: AlignLeft}, 1: {Size: 2}}
	merged := a.Merge(b)
	expected := ColumnInfos{0: {Size: 7, Align: AlignLeft}, 1: {Size: 5, Align: AlignRight}}
	if !reflect.DeepEqual(merged, expected) {
		t.Errorf("Expected %v, got %v", expected, merged)
	}
}

func TestColumnInfosShift(t *testing.T) {
	c := ColumnInfos{0: {Size: 4}}
	shifted := c.Shift(2)
	if !reflect.DeepEqual(shifted, ColumnInfos{2: {Size: 4}}) {
		t.Errorf("Expected shift to index 2, got %v", shifted)
	}
	back := shifted.Shift(-2)
	if !reflect.DeepEqual(back, c) {
		t.Errorf("Expected %v, got %v", c, back)
	}
}

func TestColumnInfosColumns(t *testing.T) {
	c := ColumnInfos{0: {Size: 1}, 2: {Size: 3}}
	cols := c.Columns()
	expected := []ColumnInfo{{Size: 1}, {}, {Size: 3}}
	if !reflect.DeepEqual(cols, expected) {
		t.Errorf("Expected %v, got %v", expected, cols)
	}
}

func TestDefaultStyleCell(t *testing.T) {
	for _, tc := range []struct {
		content  string
		info     ColumnInfo
		expected string
	}{
		{"ab", ColumnInfo{Size: 5}, "ab   "},
		{"ab", ColumnInfo{Size: 5, Align: AlignRight}, "   ab"},
		{"abc", ColumnInfo{Size: 5, Align: AlignCenter}, " abc "},
		{"ab", ColumnInfo{Size: 5, Align: AlignCenter}, " ab  "},
		{"long", ColumnInfo{Size: 2}, "long"},
	} {
		if got := (DefaultStyle{}).RenderCell(tc.content, tc.info); got != tc.expected {
			t.Errorf("Expected %q, got %q", tc.expected, got)
		}
	}
}

// Delimiter cells are never narrower than three dashes, including the
// alignment markers.
func TestDefaultStyleDelimiter(t *testing.T) {
	cols := []ColumnInfo{
		{Size: 1},
		{Size: 1, Align: AlignLeft},
		{Size: 1, Align: AlignRight},
		{Size: 1, Align: AlignCenter},
		{Size: 5, Align: AlignCenter},
	}
	const expected = "| --- | :-- | --: | :-: | :---: |"
	if got := (DefaultStyle{}).RenderDelimiter(cols); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestCompactStyleDelimiter(t *testing.T) {
	cols := []ColumnInfo{{Size: 10}, {Size: 10, Align: AlignCenter}}
	const expected = "| --- | :-: |"
	if got := (CompactStyle{}).RenderDelimiter(cols); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestConstantIgnoresInfo(t *testing.T) {
	c := Constant("x")
	if len(c.Info) != 0 {
		t.Errorf("Expected empty info, got %v", c.Info)
	}
	if got := c.Render(ColumnInfos{0: {Size: 99}}); got != "x" {
		t.Errorf("Expected %q, got %q", "x", got)
	}
}
