package renderer

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	got := Markdown("Ledger", []string{"Date", "Ticker", "Total"}, [][]string{
		{"2021-03-05 10:00:00", "SBER", "-3003.00"},
		{"2021-03-06 10:00:00", "A|B", "-"},
	})
	want := `# Ledger

| Date | Ticker | Total |
| --- | --- | --- |
| 2021-03-05 10:00:00 | SBER | -3003.00 |
| 2021-03-06 10:00:00 | A\|B | - |
`
	if got != want {
		t.Errorf("Markdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	got := Markdown("", []string{"Date"}, nil)
	if got != "_Nothing to report._\n" {
		t.Errorf("Markdown() = %q", got)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(Markdown("Currencies", []string{"Currency", "Balance"}, [][]string{{"RUB", "1000.50"}}))
	if err != nil {
		t.Fatalf("HTML() unexpected error: %v", err)
	}
	for _, want := range []string{"<h1>Currencies</h1>", "<table>", "<th>Currency</th>", "<td>1000.50</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() = %s, missing %q", html, want)
		}
	}
}
