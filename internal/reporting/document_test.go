package reporting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	d := &Document{Title: "Loaded 2 games from run.jsonl"}
	d.heading(1, "Section")
	d.para("error = actual_tricks - bid")
	d.heading(2, "greedy")
	t := newTable(left("Trump"), right("Rounds"))
	t.add("Hearts", "3")
	t.add("No Trumps", "12")
	d.table(t)
	return d
}

func TestEmptyBlocksAreDropped(t *testing.T) {
	d := &Document{}
	d.para()
	d.table(newTable(left("x")))
	assert.Empty(t, d.Blocks)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleDocument()))

	want := strings.Join([]string{
		"Loaded 2 games from run.jsonl",
		"",
		strings.Repeat("=", 70),
		"=== Section ===",
		"error = actual_tricks - bid",
		"",
		"greedy:",
		"  Trump      Rounds",
		"  ---------  ------",
		"  Hearts          3",
		"  No Trumps      12",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteTextWideRunes(t *testing.T) {
	d := &Document{}
	tbl := newTable(left("Name"), right("N"))
	tbl.add("強い", "1")
	tbl.add("ab", "22")
	d.table(tbl)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, d))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// The double-width name occupies four columns, like the header.
	assert.Equal(t, "強い   1", lines[2])
	assert.Equal(t, "ab    22", lines[3])
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleDocument()))
	out := buf.String()

	assert.Contains(t, out, "# Loaded 2 games from run.jsonl\n")
	assert.Contains(t, out, "\n## Section\n")
	assert.Contains(t, out, "\n### greedy\n")
	assert.Contains(t, out, `error = actual\_tricks - bid`)
	assert.Contains(t, out, "| Trump | Rounds |\n| --- | ---: |\n| Hearts | 3 |\n| No Trumps | 12 |\n")
}

func TestWriteMarkdownEscapesCells(t *testing.T) {
	d := &Document{}
	tbl := newTable(left("Error"))
	tbl.add("<=-6")
	tbl.add("a|b")
	d.table(tbl)

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, d))
	assert.Contains(t, buf.String(), `| \<=-6 |`)
	assert.Contains(t, buf.String(), `| a\|b |`)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleDocument()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Loaded 2 games from run.jsonl</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Hearts</td>")
	assert.Contains(t, out, "<h2>Section</h2>")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "TEXT", want: FormatText},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "html", want: FormatHTML},
		{in: "pdf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
