package reporting

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ruleWidth is the width of the line drawn above each top-level section.
const ruleWidth = 70

// WriteText lays the document out as column-aligned plain text.
func WriteText(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	if d.Title != "" {
		bw.WriteString(d.Title + "\n")
	}

	indent := ""
	for _, b := range d.Blocks {
		switch b := b.(type) {
		case Heading:
			switch b.Level {
			case 1:
				bw.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
				bw.WriteString("=== " + b.Text + " ===\n")
				indent = ""
			case 2:
				bw.WriteString("\n" + b.Text + ":\n")
				indent = "  "
			default:
				bw.WriteString("\n  " + b.Text + ":\n")
				indent = "    "
			}
		case Paragraph:
			for _, line := range b.Lines {
				bw.WriteString(indent + line + "\n")
			}
		case *Table:
			writeTextTable(bw, b, indent)
		}
	}
	return bw.Flush()
}

func writeTextTable(w *bufio.Writer, t *Table, indent string) {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = runewidth.StringWidth(c.Header)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	writeTextRow(w, t.Columns, widths, headers, indent)

	rule := make([]string, len(widths))
	for i, wd := range widths {
		rule[i] = strings.Repeat("-", wd)
	}
	writeTextRow(w, t.Columns, widths, rule, indent)

	for _, row := range t.Rows {
		writeTextRow(w, t.Columns, widths, row, indent)
	}
}

func writeTextRow(w *bufio.Writer, cols []Column, widths []int, cells []string, indent string) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if c.Right {
			parts[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	w.WriteString(indent + strings.TrimRight(strings.Join(parts, "  "), " ") + "\n")
}
