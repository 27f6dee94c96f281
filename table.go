package mdfold

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnInfo is the layout requirement of one table column: the widest
// cell observed and the column's declared alignment.
type ColumnInfo struct {
	Size  int
	Align Alignment
}

func (c ColumnInfo) combine(o ColumnInfo) ColumnInfo {
	if o.Size > c.Size {
		c.Size = o.Size
	}
	if c.Align == AlignNone {
		c.Align = o.Align
	}
	return c
}

// ColumnInfos maps column index to layout requirement. Indices are
// assigned positionally by the row that owns the cells; a cell on its
// own always sits at index 0 until its row shifts it into place.
type ColumnInfos map[int]ColumnInfo

// Merge combines two requirement maps per column: maximum size, first
// non-absent alignment.
func (c ColumnInfos) Merge(o ColumnInfos) ColumnInfos {
	out := make(ColumnInfos, len(c)+len(o))
	for i, info := range c {
		out[i] = info
	}
	for i, info := range o {
		out[i] = out[i].combine(info)
	}
	return out
}

// Shift re-indexes every column by the given offset. Rows use it to
// place each child cell's index-0 entry at the cell's position.
func (c ColumnInfos) Shift(by int) ColumnInfos {
	if by == 0 {
		return c
	}
	out := make(ColumnInfos, len(c))
	for i, info := range c {
		out[i+by] = info
	}
	return out
}

// Columns flattens the map into a dense slice in index order. Indices
// never observed (possible with ragged rows) come out as zero values.
func (c ColumnInfos) Columns() []ColumnInfo {
	max := -1
	for i := range c {
		if i > max {
			max = i
		}
	}
	out := make([]ColumnInfo, max+1)
	for i, info := range c {
		out[i] = info
	}
	return out
}

// TableInfo is the two-phase rendering of a node under table layout:
// Info carries the column requirements discovered below this node, and
// Render produces the final text once the enclosing table supplies the
// complete requirements. Nodes outside any table carry an empty Info and
// a render closure that ignores its argument.
type TableInfo[V any] struct {
	Info   ColumnInfos
	Render func(ColumnInfos) V
}

// Constant wraps an already-final value in the two-phase shape.
func Constant[V any](v V) TableInfo[V] {
	return TableInfo[V]{Render: func(ColumnInfos) V { return v }}
}

// TableStyle renders the textual pieces of a markdown table.
type TableStyle interface {
	// RenderCell renders one cell's content for its column.
	RenderCell(content string, info ColumnInfo) string
	// RenderDelimiter renders the header/body delimiter row.
	RenderDelimiter(cols []ColumnInfo) string
	// RenderRow joins rendered cells into one table line.
	RenderRow(cells []string) string
}

// DefaultStyle pads every cell to its column's width, measured in
// display cells so wide runes line up, and renders the delimiter with
// GFM alignment markers. Columns are never narrower than the
// delimiter's three dashes.
type DefaultStyle struct{}

func (DefaultStyle) RenderCell(content string, info ColumnInfo) string {
	size := info.Size
	if size < 3 {
		size = 3
	}
	pad := size - runewidth.StringWidth(content)
	if pad < 0 {
		pad = 0
	}
	switch info.Align {
	case AlignRight:
		return strings.Repeat(" ", pad) + content
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", pad-left)
	}
	return content + strings.Repeat(" ", pad)
}

func (DefaultStyle) RenderDelimiter(cols []ColumnInfo) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		n := col.Size
		if n < 3 {
			n = 3
		}
		d := strings.Repeat("-", n)
		switch col.Align {
		case AlignLeft:
			d = ":" + d[:n-1]
		case AlignRight:
			d = d[:n-1] + ":"
		case AlignCenter:
			d = ":" + d[:n-2] + ":"
		}
		cells[i] = d
	}
	return DefaultStyle{}.RenderRow(cells)
}

func (DefaultStyle) RenderRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// CompactStyle emits no padding and minimal three-dash delimiters.
type CompactStyle struct{}

func (CompactStyle) RenderCell(content string, info ColumnInfo) string {
	return content
}

func (CompactStyle) RenderDelimiter(cols []ColumnInfo) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		switch col.Align {
		case AlignLeft:
			cells[i] = ":--"
		case AlignRight:
			cells[i] = "--:"
		case AlignCenter:
			cells[i] = ":-:"
		default:
			cells[i] = "---"
		}
	}
	return CompactStyle{}.RenderRow(cells)
}

func (CompactStyle) RenderRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
