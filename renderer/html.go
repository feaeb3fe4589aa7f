package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/pnlsheet"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var htmlConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// HTML writes the ledger as an HTML fragment.
//
// Profit and status cells are wrapped in a span whose class is the sign class
// ("pos", "neg", "muted") or the status class ("status-hit"...).
func HTML(w io.Writer, l *pnlsheet.Ledger) error {
	partials := map[string]string{
		"ledger_table": "ledger_table.md",
	}
	src := renderTemplate("ledger", "ledger.md", partials, htmlFuncs, NewLedger(l))
	if err := htmlConverter.Convert([]byte(src), w); err != nil {
		return fmt.Errorf("cannot render html: %w", err)
	}
	return nil
}
