package renderer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/etnz/pnlsheet"
)

// ErrUnsupportedFormat is returned for an export format that is not in Formats.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats lists the export formats.
func Formats() []string { return []string{"csv", "png", "html", "md"} }

// Export writes the ledger to w in the given format.
func Export(w io.Writer, format string, l *pnlsheet.Ledger) error {
	switch format {
	case "csv":
		return pnlsheet.ExportCSV(w, l)
	case "png":
		return PNG(w, l)
	case "html":
		return HTML(w, l)
	case "md":
		_, err := io.WriteString(w, Markdown(l))
		return err
	default:
		return fmt.Errorf("%w %q, want one of %v", ErrUnsupportedFormat, format, Formats())
	}
}

// Filename returns the default file name of an export made at t.
func Filename(format string, t time.Time) (string, error) {
	switch format {
	case "csv":
		return pnlsheet.CSVFilename, nil
	case "png":
		return PNGFilename(t), nil
	case "html":
		return "pnl.html", nil
	case "md":
		return "pnl.md", nil
	default:
		return "", fmt.Errorf("%w %q, want one of %v", ErrUnsupportedFormat, format, Formats())
	}
}
