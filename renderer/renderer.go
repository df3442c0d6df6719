// Package renderer turns vault data into markdown reports.
//
// Each report is a text/template stored under templates/ and executed
// against a view struct built from the vault's items. Views hold
// preformatted strings so the templates stay purely about layout.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// SummaryMarkdown renders the portfolio summary report.
func SummaryMarkdown(s *Summary) string {
	return renderTemplate("summary", "templates/summary.md", s)
}

// ListMarkdown renders the inventory table.
func ListMarkdown(l *List) string {
	return renderTemplate("list", "templates/list.md", l)
}

// SearchMarkdown renders catalog search results.
func SearchMarkdown(s *Search) string {
	return renderTemplate("search", "templates/search.md", s)
}

// HistoryMarkdown renders the price history of a single item.
func HistoryMarkdown(h *History) string {
	return renderTemplate("history", "templates/history.md", h)
}

// SettingsMarkdown renders the current settings.
func SettingsMarkdown(s *SettingsView) string {
	return renderTemplate("settings", "templates/settings.md", s)
}

// renderTemplate parses and executes a single template file against data.
// Template errors end up in the output rather than in an error return,
// they are programming mistakes, not user mistakes.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
