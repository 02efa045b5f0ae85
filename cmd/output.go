package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/opsheet"
	"github.com/etnz/opsheet/renderer"
)

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// printers print a titled table in one output format.
var printers = map[string]func(title string, header []string, rows [][]string, table any) error{
	"md": func(title string, header []string, rows [][]string, _ any) error {
		printMarkdown(renderer.Markdown(title, header, rows))
		return nil
	},
	"html": func(title string, header []string, rows [][]string, _ any) error {
		html, err := renderer.HTML(renderer.Markdown(title, header, rows))
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, html)
		return err
	},
	"json": func(_ string, _ []string, _ [][]string, table any) error {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	},
}

// printTable prints t in the session format. columns names the table when
// the report shape has no header row.
func printTable[R opsheet.Row](s *session, title string, columns []string, t opsheet.Table[R]) error {
	header := t.Header
	if header == nil {
		header = columns
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, r.Cells())
	}
	rowsJSON := t.Rows
	if rowsJSON == nil {
		rowsJSON = []R{}
	}
	return printers[s.format](title, header, rows, rowsJSON)
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
