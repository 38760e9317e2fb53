package model

import "time"

type AwardType struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Award is an award granted to an employee. AwardTypeName is joined in from
// award_types on every read.
type Award struct {
	ID            int64     `json:"id,string"`
	EmployeeID    int64     `json:"employee_id,string"`
	AwardTypeID   int64     `json:"award_type_id,string"`
	AwardTypeName string    `json:"award_type_name"`
	AwardDate     time.Time `json:"award_date"`
	CreatedAt     time.Time `json:"created_at"`
}
