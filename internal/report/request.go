package report

// Accomplishment is the part of an employee accomplishment a report needs.
type Accomplishment struct {
	Description string    `json:"description"`
	Period      string    `json:"period"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Observation is the part of an employee observation a report needs.
type Observation struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Request holds everything one report generation needs. It lives for a
// single call and is never stored.
type Request struct {
	EmployeeName    string
	EmployeeRole    string
	Period          Period
	Framework       Framework
	Year            int
	Accomplishments []Accomplishment
	Observations    []Observation
}

// Prepare narrows the request's records to its period and year.
func Prepare(req Request) Request {
	req.Accomplishments = FilterAccomplishments(req.Accomplishments, req.Period, req.Year)
	req.Observations = FilterObservations(req.Observations, req.Period, req.Year)
	return req
}
