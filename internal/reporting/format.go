package reporting

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects a report writer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the accepted values of ParseFormat.
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML}

// ParseFormat accepts a format name case-insensitively; "md" is an alias
// for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, markdown or html)", s)
}

// Render writes d in format f.
func Render(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatMarkdown:
		return WriteMarkdown(w, d)
	case FormatHTML:
		return WriteHTML(w, d)
	default:
		return WriteText(w, d)
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

func pct(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func f1(v float64) string { return fmt.Sprintf("%.1f", v) }

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

// signedF2 always shows the sign, e.g. "+0.25" or "-1.00".
func signedF2(v float64) string { return fmt.Sprintf("%+.2f", v) }
