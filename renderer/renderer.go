// Package renderer displays a ledger as Markdown, HTML or PNG.
//
// Renderers work on a snapshot and never modify it. They show static text only:
// no editable cells and no row actions.
package renderer

import (
	"fmt"
	"html"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/pnlsheet"
)

// Markdown renders the ledger as a GFM table under a title holding its date.
func Markdown(l *pnlsheet.Ledger) string {
	partials := map[string]string{
		"ledger_table": "ledger_table.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, markdownFuncs, NewLedger(l))
}

// markdownFuncs format cells as plain Markdown.
var markdownFuncs = template.FuncMap{
	"cell":   escapeCell,
	"signed": func(s, _ string) string { return escapeCell(s) },
	"status": func(s, _ string) string { return escapeCell(s) },
}

// htmlFuncs format cells as Markdown with inline HTML carrying the css classes.
var htmlFuncs = template.FuncMap{
	"cell":   func(s string) string { return escapeCell(html.EscapeString(s)) },
	"signed": classed,
	"status": classed,
}

func classed(s, class string) string {
	return fmt.Sprintf(`<span class="%s">%s</span>`, class, escapeCell(html.EscapeString(s)))
}

// escapeCell prevents a cell from breaking the table.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
