// Package renderer turns report tables into markdown and HTML documents.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders rows as a markdown table under a level 1 title.
// header names the columns, it is required by the markdown table syntax.
func Markdown(title string, header []string, rows [][]string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if len(rows) == 0 {
		b.WriteString("_Nothing to report._\n")
		return b.String()
	}
	writeRow(&b, header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep)
	for _, row := range rows {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(w io.Writer, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(escaped, " | "))
}

// markdown is the parser used for HTML export, tables need the GFM extension.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML converts a markdown document to an HTML fragment.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("converting markdown to html: %w", err)
	}
	return buf.String(), nil
}
