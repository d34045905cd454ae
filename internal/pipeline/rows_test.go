package pipeline

import "testing"

func TestIsTableRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "two cells", line: "| Column1 | Column2 |", want: true},
		{name: "single cell", line: "| a |", want: true},
		{name: "surrounding whitespace", line: "   | a | b |  \t", want: true},
		{name: "carriage return", line: "| a | b |\r", want: true},
		{name: "separator is a row", line: "|---|---|", want: true},
		{name: "pipes only", line: "|||", want: true},
		{name: "empty cell content", line: "| |", want: true},
		{name: "prose", line: "Normal text", want: false},
		{name: "empty", line: "", want: false},
		{name: "no leading pipe", line: "a | b |", want: false},
		{name: "no trailing pipe", line: "| a | b", want: false},
		{name: "single pipe", line: "|", want: false},
		{name: "double pipe", line: "||", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsTableRow(tt.line); got != tt.want {
				t.Errorf("IsTableRow(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsSeparatorRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "plain", line: "|---|---|", want: true},
		{name: "single hyphen", line: "|-|", want: true},
		{name: "alignments", line: "|:---|:---:|---:|", want: true},
		{name: "padded cells", line: "| --- | :-: |", want: true},
		{name: "surrounding whitespace", line: "  |---|  ", want: true},
		{name: "header row", line: "| A | B |", want: false},
		{name: "no hyphen", line: "|:|", want: false},
		{name: "double colon", line: "|::---|", want: false},
		{name: "text in cell", line: "|--x--|", want: false},
		{name: "missing trailing pipe", line: "|---|---", want: false},
		{name: "no pipes", line: "---", want: false},
		{name: "empty", line: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsSeparatorRow(tt.line); got != tt.want {
				t.Errorf("IsSeparatorRow(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
