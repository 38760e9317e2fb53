package dto

import (
	"time"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Role string `json:"role" binding:"required,max=255"`
}

type CreateAccomplishmentRequest struct {
	Description string `json:"description" binding:"required,max=4000"`
	Period      string `json:"period" binding:"required,max=255"`
}

type CreateObservationRequest struct {
	Description string `json:"description" binding:"required,max=4000"`
	Category    string `json:"category" binding:"omitempty,max=32"`
}

// UpdateAccomplishmentRequest and UpdateObservationRequest replace every
// editable field; partial updates are not supported.
type UpdateAccomplishmentRequest = CreateAccomplishmentRequest

type UpdateObservationRequest = CreateObservationRequest

type DeleteResponse struct {
	Success bool `json:"success"`
}

type EmployeeResponse struct {
	ID                  int64     `json:"id,string"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	CreatedAt           time.Time `json:"created_at"`
	AccomplishmentCount *int      `json:"accomplishment_count,omitempty"`
	ObservationCount    *int      `json:"observation_count,omitempty"`
	AwardCount          *int      `json:"award_count,omitempty"`
}

func ToEmployeeResponse(e *model.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}

func ToEmployeeListResponse(items []model.EmployeeWithStats) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(items))
	for _, e := range items {
		r := ToEmployeeResponse(&e.Employee)
		r.AccomplishmentCount = &e.AccomplishmentCount
		r.ObservationCount = &e.ObservationCount
		r.AwardCount = &e.AwardCount
		out = append(out, *r)
	}
	return out
}
