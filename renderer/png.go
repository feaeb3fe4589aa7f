package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/etnz/pnlsheet"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PNGFilename returns the default name of an image export made at t.
func PNGFilename(t time.Time) string { return fmt.Sprintf("pnl_%d.png", t.UnixMilli()) }

// geometry of the image table, in pixels.
const (
	pngPadding = 16
	pngCellPad = 8
	pngLine    = 22
)

var (
	pngBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pngHeaderFill = color.RGBA{0xee, 0xf0, 0xf4, 0xff}
	pngRule       = color.RGBA{0xd0, 0xd4, 0xda, 0xff}
	pngText       = color.RGBA{0x22, 0x22, 0x22, 0xff}

	signColors = map[string]color.Color{
		pnlsheet.Positive.String(): color.RGBA{0x1a, 0x7f, 0x37, 0xff},
		pnlsheet.Negative.String(): color.RGBA{0xcf, 0x22, 0x2e, 0xff},
		pnlsheet.Neutral.String():  color.RGBA{0x6e, 0x77, 0x81, 0xff},
	}
	statusColors = map[pnlsheet.Status]color.Color{
		pnlsheet.Hit:      color.RGBA{0x1a, 0x7f, 0x37, 0xff},
		pnlsheet.Progress: color.RGBA{0x9a, 0x67, 0x00, 0xff},
		pnlsheet.Miss:     color.RGBA{0xcf, 0x22, 0x2e, 0xff},
		pnlsheet.Over:     color.RGBA{0x09, 0x69, 0xda, 0xff},
	}
)

// pngEmpty replaces Empty, basicfont only has ASCII glyphs.
const pngEmpty = "-"

// drawable returns s as basicfont can draw it: runes outside of ASCII become '?'.
func drawable(s string) string {
	if s == Empty {
		return pngEmpty
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '?'
		}
		return r
	}, s)
}

// pngCell is a cell of the image table.
type pngCell struct {
	text  string
	color color.Color
	right bool // right aligned
}

// pngTable lays out the view as cells: a header, the rows and the totals.
func pngTable(v *Ledger) [][]pngCell {
	cell := func(text, class string) pngCell {
		return pngCell{text: drawable(text), color: signColors[class], right: true}
	}
	header := []pngCell{{text: "Pair"}, {text: "Amount", right: true}, {text: "L1", right: true},
		{text: "L2", right: true}, {text: "L3", right: true}, {text: "Profit", right: true}, {text: "Status"}}
	table := [][]pngCell{header}
	for _, r := range v.Rows {
		table = append(table, []pngCell{
			{text: drawable(r.Pair), color: pngText},
			{text: drawable(r.Amount), color: pngText, right: true},
			cell(r.L1, r.L1Class),
			cell(r.L2, r.L2Class),
			cell(r.L3, r.L3Class),
			cell(r.Profit, r.ProfitClass),
			{text: r.Status, color: statusColors[r.status]},
		})
	}
	return append(table, []pngCell{
		{text: "Total", color: pngText}, {},
		cell(v.Totals.L1, v.Totals.L1Class),
		cell(v.Totals.L2, v.Totals.L2Class),
		cell(v.Totals.L3, v.Totals.L3Class),
		{}, {},
	})
}

// PNG draws the ledger as a static table and encodes it as PNG to w.
func PNG(w io.Writer, l *pnlsheet.Ledger) error {
	v := NewLedger(l)
	face := basicfont.Face7x13

	table := pngTable(v)

	widths := make([]int, len(table[0]))
	for _, row := range table {
		for j, c := range row {
			widths[j] = max(widths[j], font.MeasureString(face, c.text).Ceil()+2*pngCellPad)
		}
	}
	tableWidth := 0
	for _, wd := range widths {
		tableWidth += wd
	}
	title := "PnL " + v.Date
	width := max(tableWidth, font.MeasureString(face, title).Ceil()) + 2*pngPadding
	height := 2*pngPadding + pngLine*(len(table)+1)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(pngBackground), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: face}
	text := func(s string, c color.Color, x, y int) {
		d.Src = image.NewUniform(c)
		d.Dot = fixed.P(x, y)
		d.DrawString(s)
	}
	baseline := (pngLine + face.Metrics().Ascent.Ceil() - face.Metrics().Descent.Ceil()) / 2

	top := pngPadding
	text(title, pngText, pngPadding, top+baseline)
	top += pngLine

	for i, row := range table {
		rect := image.Rect(pngPadding, top, pngPadding+tableWidth, top+pngLine)
		if i == 0 {
			draw.Draw(img, rect, image.NewUniform(pngHeaderFill), image.Point{}, draw.Src)
		}
		if i == len(table)-1 {
			draw.Draw(img, image.Rect(rect.Min.X, top, rect.Max.X, top+1), image.NewUniform(pngRule), image.Point{}, draw.Src)
		}
		x := pngPadding
		for j, c := range row {
			if c.text != "" {
				col := c.color
				if col == nil {
					col = pngText
				}
				tx := x + pngCellPad
				if c.right {
					tx = x + widths[j] - pngCellPad - font.MeasureString(face, c.text).Ceil()
				}
				text(c.text, col, tx, top+baseline)
			}
			x += widths[j]
		}
		top += pngLine
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}
