package cli

import (
	"strings"
)

// Table formats rows into left-aligned columns under a dashed header.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, padding: 2}
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}

	var b strings.Builder
	t.writeRow(&b, t.headers, widths)
	t.writeRow(&b, separator, widths)
	for _, row := range t.rows {
		t.writeRow(&b, row, widths)
	}
	return b.String()
}

func (t *Table) writeRow(b *strings.Builder, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = padRight(cell, widths[i])
	}
	b.WriteString(strings.Join(parts, strings.Repeat(" ", t.padding)))
	b.WriteString("\n")
}

// padRight pads s with spaces to width; longer strings are returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
