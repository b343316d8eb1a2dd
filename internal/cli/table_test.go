package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Age")

	table.AddRow("Alice", "30")
	table.AddRow("Bob")
	table.AddRow("Charlie", "25", "Extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("NAME", "SOURCE", "PATH")
	table.AddRow("kitty.conf", "embedded", "/t/kitty.conf")
	table.AddRow("Xresources", "custom", "/t/Xresources")

	want := strings.Join([]string{
		"NAME        SOURCE    PATH",
		"----------  --------  -------------",
		"kitty.conf  embedded  /t/kitty.conf",
		"Xresources  custom    /t/Xresources",
		"",
	}, "\n")

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Expected empty render for no headers, got %q", got)
	}

	got := NewTable("A", "B").Render()
	if got != "A  B\n-  -\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
