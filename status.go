package pnlsheet

import (
	"fmt"
	"strings"
)

// Status is the outcome of a position relative to its expected return.
//
// The zero value is Hit, which is also what any unknown input maps to.
type Status int

const (
	Hit Status = iota
	Progress
	Miss
	Over
)

// StatusMeta holds what views need to display a status.
type StatusMeta struct {
	Code  string // canonical code, used in persisted documents
	Label string // human readable label
	Class string // visual class
}

// statuses is the single source of truth for status codes, labels and classes.
var statuses = [...]StatusMeta{
	Hit:      {Code: "hit", Label: "Target reached", Class: "status-hit"},
	Progress: {Code: "progress", Label: "In progress", Class: "status-progress"},
	Miss:     {Code: "miss", Label: "Target missed", Class: "status-miss"},
	Over:     {Code: "over", Label: "Target exceeded", Class: "status-over"},
}

// Statuses returns all statuses in display order.
func Statuses() []Status { return []Status{Hit, Progress, Miss, Over} }

// StatusCodes returns the canonical codes of all statuses.
func StatusCodes() []string {
	codes := make([]string, 0, len(statuses))
	for _, s := range Statuses() {
		codes = append(codes, s.String())
	}
	return codes
}

// Meta returns the status metadata. Out of range values get Hit's metadata.
func (s Status) Meta() StatusMeta {
	return statuses[s.coerce()]
}

// coerce returns s, or Hit when s is not a known status.
func (s Status) coerce() Status {
	if s < 0 || int(s) >= len(statuses) {
		return Hit
	}
	return s
}

func (s Status) String() string { return s.Meta().Code }
func (s Status) Label() string  { return s.Meta().Label }
func (s Status) Class() string  { return s.Meta().Class }

// ParseStatus parses a canonical status code.
func ParseStatus(code string) (Status, error) {
	for _, s := range Statuses() {
		if statuses[s].Code == code {
			return s, nil
		}
	}
	return Hit, fmt.Errorf("unknown status %q, want one of %v", code, StatusCodes())
}

// StatusOf is like ParseStatus but coerces unknown codes to Hit.
func StatusOf(code string) Status {
	s, _ := ParseStatus(code)
	return s
}

// statusMarkers are matched in order against free text, first match wins.
// "miss" comes first because its markers contain the "hit" ones ("未达到" holds
// "达到", "not reached" holds "reached").
var statusMarkers = []struct {
	status  Status
	markers []string
}{
	{Miss, []string{"未达到", "未达", "not reached", "missed", "miss"}},
	{Over, []string{"超额", "exceeded", "exceed", "over"}},
	{Progress, []string{"进行", "in progress", "progress", "pending"}},
	{Hit, []string{"达到", "reached", "hit"}},
}

// StatusFromText maps free text, as found in a pasted status column, to a Status.
//
// An exact canonical code wins, then the first marker contained in the text.
// Empty or unrecognized text is Hit.
func StatusFromText(text string) Status {
	s, _ := recognizeStatus(text)
	return s
}

// recognizeStatus is StatusFromText, and reports whether the text was recognized.
func recognizeStatus(text string) (Status, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Hit, false
	}
	if s, err := ParseStatus(text); err == nil {
		return s, true
	}
	lower := strings.ToLower(text)
	for _, m := range statusMarkers {
		for _, marker := range m.markers {
			if strings.Contains(lower, marker) {
				return m.status, true
			}
		}
	}
	return Hit, false
}

// MarshalText encodes the status as its canonical code.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a canonical code, unknown codes become Hit.
func (s *Status) UnmarshalText(text []byte) error {
	*s = StatusOf(string(text))
	return nil
}
