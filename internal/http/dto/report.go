package dto

import (
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/report"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

// GenerateReportRequest is the body of POST /api/generate-report. Record
// arrays are optional and default to empty.
type GenerateReportRequest struct {
	EmployeeName    string                  `json:"employeeName" binding:"required"`
	EmployeeRole    string                  `json:"employeeRole" binding:"required"`
	Period          string                  `json:"period" binding:"required"`
	Framework       string                  `json:"framework" binding:"required"`
	Year            int                     `json:"year" binding:"required"`
	Accomplishments []report.Accomplishment `json:"accomplishments"`
	Observations    []report.Observation    `json:"observations"`
}

func (r GenerateReportRequest) ToParams() service.ReportParams {
	return service.ReportParams{
		EmployeeName:    r.EmployeeName,
		EmployeeRole:    r.EmployeeRole,
		Period:          r.Period,
		Framework:       r.Framework,
		Year:            r.Year,
		Accomplishments: r.Accomplishments,
		Observations:    r.Observations,
	}
}

type GenerateReportResponse struct {
	Report string `json:"report"`
	HTML   string `json:"html,omitempty"`
}

type EmployeeReportRequest struct {
	Period    string `json:"period" binding:"required"`
	Framework string `json:"framework" binding:"required"`
	Year      int    `json:"year" binding:"required"`
}

type RenderRequest struct {
	Markdown string `json:"markdown"`
}

type RenderResponse struct {
	HTML string `json:"html"`
}

type GenerationHealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
