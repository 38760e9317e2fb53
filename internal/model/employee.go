package model

import "time"

type Employee struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeWithStats is an employee row as listed, with its record counts.
type EmployeeWithStats struct {
	Employee
	AccomplishmentCount int `json:"accomplishment_count"`
	ObservationCount    int `json:"observation_count"`
	AwardCount          int `json:"award_count"`
}
