package reporting

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// WriteMarkdown lays the document out as GitHub-flavored markdown.
func WriteMarkdown(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	if d.Title != "" {
		fmt.Fprintf(bw, "# %s\n", d.Title)
	}

	for _, b := range d.Blocks {
		switch b := b.(type) {
		case Heading:
			fmt.Fprintf(bw, "\n%s %s\n", strings.Repeat("#", b.Level+1), b.Text)
		case Paragraph:
			bw.WriteString("\n")
			for i, line := range b.Lines {
				bw.WriteString(escapeMarkdown(strings.TrimSpace(line)))
				if i < len(b.Lines)-1 {
					// Hard line break.
					bw.WriteString("  ")
				}
				bw.WriteString("\n")
			}
		case *Table:
			bw.WriteString("\n")
			writeMarkdownTable(bw, b)
		}
	}
	return bw.Flush()
}

func writeMarkdownTable(w *bufio.Writer, t *Table) {
	headers := make([]string, len(t.Columns))
	aligns := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = escapeCell(c.Header)
		aligns[i] = "---"
		if c.Right {
			aligns[i] = "---:"
		}
	}
	w.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	w.WriteString("| " + strings.Join(aligns, " | ") + " |\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = escapeCell(row[i])
			}
		}
		w.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"`", "\\`",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeMarkdown(s), "|", `\|`)
}

// WriteHTML renders the markdown layout to a standalone HTML page.
func WriteHTML(w io.Writer, d *Document) error {
	var md bytes.Buffer
	if err := WriteMarkdown(&md, d); err != nil {
		return err
	}

	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	title := d.Title
	if title == "" {
		title = "Bid accuracy report"
	}
	_, err := fmt.Fprintf(w, htmlPage, html.EscapeString(title), body.String())
	return err
}

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin: 0.5rem 0 1rem; }
th, td { border: 1px solid #ccc; padding: 0.2rem 0.6rem; }
td { font-variant-numeric: tabular-nums; }
</style>
</head>
<body>
%s</body>
</html>
`
