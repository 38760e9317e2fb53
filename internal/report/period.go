package report

import (
	"fmt"
	"strings"
)

// Period is a reporting window within a year.
type Period string

const (
	PeriodYearly Period = "yearly"
	PeriodQ1     Period = "Q1"
	PeriodQ2     Period = "Q2"
	PeriodQ3     Period = "Q3"
	PeriodQ4     Period = "Q4"
)

// quarterKeywords are matched case-insensitively as substrings of an
// accomplishment's free-text period label. This is a heuristic: "Marketing"
// matches Q1 through "Mar", and labels in other languages never match.
var quarterKeywords = map[Period][]string{
	PeriodQ1: {"Q1", "Jan", "Feb", "Mar"},
	PeriodQ2: {"Q2", "Apr", "May", "Jun"},
	PeriodQ3: {"Q3", "Jul", "Aug", "Sep"},
	PeriodQ4: {"Q4", "Oct", "Nov", "Dec"},
}

// ParsePeriod returns the period named s. Matching is exact.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown period %q", s)
	}
	return p, nil
}

func (p Period) Valid() bool {
	switch p {
	case PeriodYearly, PeriodQ1, PeriodQ2, PeriodQ3, PeriodQ4:
		return true
	}
	return false
}

// Label renders the period for humans: "Yearly 2024" or "Q3 2024".
func (p Period) Label(year int) string {
	if p == PeriodYearly {
		return fmt.Sprintf("Yearly %d", year)
	}
	return fmt.Sprintf("%s %d", p, year)
}

// Keywords returns a copy of the period-label keywords for a quarter, and nil
// for yearly.
func (p Period) Keywords() []string {
	kw := quarterKeywords[p]
	if kw == nil {
		return nil
	}
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

// matchesLabel reports whether a free-text period label falls in p.
func (p Period) matchesLabel(label string) bool {
	if p == PeriodYearly {
		return true
	}
	label = strings.ToLower(label)
	for _, kw := range quarterKeywords[p] {
		if strings.Contains(label, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func inYear(ts Timestamp, year int) bool {
	y, ok := ts.Year()
	return ok && y == year
}

// FilterAccomplishments keeps the accomplishments created in year whose
// period label matches period. Input order is preserved and items is never
// modified.
func FilterAccomplishments(items []Accomplishment, period Period, year int) []Accomplishment {
	out := make([]Accomplishment, 0, len(items))
	for _, item := range items {
		if !inYear(item.CreatedAt, year) {
			continue
		}
		if !period.matchesLabel(item.Period) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FilterObservations keeps the observations created in year. Observations
// carry no period label, so quarters do not narrow them further.
func FilterObservations(items []Observation, _ Period, year int) []Observation {
	out := make([]Observation, 0, len(items))
	for _, item := range items {
		if inYear(item.CreatedAt, year) {
			out = append(out, item)
		}
	}
	return out
}
