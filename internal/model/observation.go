package model

import (
	"fmt"
	"strings"
	"time"
)

// ObservationCategory classifies a manager observation.
type ObservationCategory string

const (
	ObservationCategoryAttitude    ObservationCategory = "attitude"
	ObservationCategoryPerformance ObservationCategory = "performance"
	ObservationCategoryTeamwork    ObservationCategory = "teamwork"
	ObservationCategoryOther       ObservationCategory = "other"
)

func (c ObservationCategory) Valid() bool {
	switch c {
	case ObservationCategoryAttitude, ObservationCategoryPerformance,
		ObservationCategoryTeamwork, ObservationCategoryOther:
		return true
	}
	return false
}

// ParseObservationCategory accepts any casing. An empty string means other.
func ParseObservationCategory(s string) (ObservationCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ObservationCategoryOther, nil
	}
	c := ObservationCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown observation category %q", s)
	}
	return c, nil
}

type Observation struct {
	ID          int64               `json:"id,string"`
	EmployeeID  int64               `json:"employee_id,string"`
	Description string              `json:"description"`
	Category    ObservationCategory `json:"category"`
	CreatedAt   time.Time           `json:"created_at"`
}
