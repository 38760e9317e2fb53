package report

import (
	"encoding/json"
	"strings"
	"time"
)

// timestampLayouts are tried in order when decoding a creation timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a record creation time that never fails to decode.
// Values that cannot be parsed leave Valid false, and such records are
// excluded by every period filter.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// At wraps a time known to be valid.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// ParseTimestamp parses s with the accepted layouts. It does not return an
// error; the result is simply invalid when nothing matches.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return At(t)
		}
	}
	return Timestamp{}
}

// Year returns the calendar year in the timestamp's own offset.
func (t Timestamp) Year() (int, bool) {
	if !t.Valid {
		return 0, false
	}
	return t.Time.Year(), true
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// numbers, objects and null all decode to an invalid timestamp
		*t = Timestamp{}
		return nil
	}
	*t = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
