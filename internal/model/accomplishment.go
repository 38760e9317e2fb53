package model

import "time"

// Accomplishment is a recorded achievement. Period is a free-form label such
// as "Q1 2024" or "March sprint".
type Accomplishment struct {
	ID          int64     `json:"id,string"`
	EmployeeID  int64     `json:"employee_id,string"`
	Description string    `json:"description"`
	Period      string    `json:"period"`
	CreatedAt   time.Time `json:"created_at"`
}
