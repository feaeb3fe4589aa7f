package pnlsheet

import (
	"fmt"
	"regexp"
	"strings"
)

// MalformedRowError reports a pasted line with too few columns.
type MalformedRowError struct {
	Line    int // 1-based, counted over non blank lines, header included
	Columns int // columns found on that line
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: found %d columns, need at least 3 (pair, amount, profit)", e.Line, e.Columns)
}

// bulkSeparator splits on tab or comma runs first, whitespace runs otherwise.
var bulkSeparator = regexp.MustCompile(`[\t,]+|\s+`)

// headerMarkers identify a header line, whatever the language it is written in.
var headerMarkers = []string{
	"交易对", "币种", "金额", "收益", "状态",
	"pair", "currency", "amount", "profit", "status",
}

// splitColumns splits a pasted line into non empty columns.
func splitColumns(line string) []string {
	fields := bulkSeparator.Split(strings.TrimSpace(line), -1)
	cols := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			cols = append(cols, f)
		}
	}
	return cols
}

// isHeader reports whether the columns of a line look like a header.
func isHeader(cols []string) bool {
	joined := strings.ToLower(strings.Join(cols, ""))
	for _, m := range headerMarkers {
		if strings.Contains(joined, m) {
			return true
		}
	}
	return false
}

// statusColumn maps the status column, and what follows it, to a Status.
//
// The 4th column decides when it is recognized on its own. Otherwise it is read
// with the columns that follow, since a label such as "Target missed" holds
// spaces.
func statusColumn(cols []string) Status {
	if s, ok := recognizeStatus(cols[0]); ok {
		return s
	}
	return StatusFromText(strings.Join(cols, " "))
}

// ParseBulk parses text pasted from a spreadsheet into rows.
//
// Each non blank line is a row: pair, amount, profit and an optional status,
// separated by tabs, commas or spaces. A first line that looks like a header is
// skipped. Amount and profit are kept as typed.
//
// A line with less than 3 columns aborts the whole parse with a *MalformedRowError.
func ParseBulk(text string) ([]RowInput, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return []RowInput{}, nil
	}

	start := 0
	if isHeader(splitColumns(lines[0])) {
		start = 1
	}

	rows := make([]RowInput, 0, len(lines)-start)
	for i := start; i < len(lines); i++ {
		cols := splitColumns(lines[i])
		if len(cols) < 3 {
			return nil, &MalformedRowError{Line: i + 1, Columns: len(cols)}
		}
		in := RowInput{Pair: cols[0], Amount: cols[1], Profit: cols[2]}
		if len(cols) > 3 {
			in.Status = statusColumn(cols[3:])
		}
		rows = append(rows, in)
	}
	return rows, nil
}
