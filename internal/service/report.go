package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/id"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/llm"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/logger"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/metrics"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/report"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

const (
	minYear = 1
	maxYear = 9999
)

// ReportParams is an unvalidated report request as it arrives from a caller.
type ReportParams struct {
	EmployeeName    string
	EmployeeRole    string
	Period          string
	Framework       string
	Year            int
	Accomplishments []report.Accomplishment
	Observations    []report.Observation
}

// MarkdownRenderer turns generated markdown into HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

type ReportService interface {
	// Generate validates params, filters the records to the period and
	// returns the model's markdown verbatim.
	Generate(ctx context.Context, params ReportParams) (string, error)
	// GenerateForEmployee builds the request from stored records.
	GenerateForEmployee(ctx context.Context, employeeID int64, period, framework string, year int) (string, error)
	Render(ctx context.Context, markdown string) (string, error)
	GenerationHealthy(ctx context.Context) bool
	Model() string
}

type reportService struct {
	client   llm.Client
	renderer MarkdownRenderer
	records  recordStores
	metrics  *metrics.Recorder
}

func NewReportService(
	client llm.Client,
	renderer MarkdownRenderer,
	employees store.EmployeeStore,
	accomplishments store.AccomplishmentStore,
	observations store.ObservationStore,
	recorder *metrics.Recorder,
) ReportService {
	return &reportService{
		client:   client,
		renderer: renderer,
		records: recordStores{
			employees:       employees,
			accomplishments: accomplishments,
			observations:    observations,
		},
		metrics: recorder,
	}
}

func (s *reportService) Generate(ctx context.Context, params ReportParams) (string, error) {
	reportID := id.New()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ReportID:  &reportID,
		Framework: logger.Ptr(params.Framework),
		Period:    logger.Ptr(params.Period),
		Component: "talent.service.report",
	})

	req, err := validateReportParams(params)
	if err != nil {
		s.metrics.RecordGeneration(metrics.OutcomeInvalid, labelOrInvalid(params.Framework, req.Framework.Valid()), labelOrInvalid(params.Period, req.Period.Valid()), 0)
		slog.WarnContext(ctx, "report request rejected", "error", err)
		return "", err
	}

	sc := logger.StartSpan(ctx, "report.generate")
	defer sc.End()
	ctx = sc.Context()

	prepared := report.Prepare(req)
	prompt := report.BuildPrompt(prepared)

	sc.Span().SetAttributes(
		attribute.Int64("report.id", reportID),
		attribute.String("report.framework", string(req.Framework)),
		attribute.String("report.period", string(req.Period)),
		attribute.Int("report.year", req.Year),
		attribute.Int("report.accomplishments", len(prepared.Accomplishments)),
		attribute.Int("report.observations", len(prepared.Observations)),
	)
	slog.InfoContext(ctx, "generating report",
		"year", req.Year,
		"accomplishments_total", len(req.Accomplishments),
		"accomplishments_in_period", len(prepared.Accomplishments),
		"observations_total", len(req.Observations),
		"observations_in_period", len(prepared.Observations),
		"prompt_bytes", len(prompt))

	start := time.Now()
	text, err := s.client.Generate(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		outcome := outcomeOf(err)
		s.metrics.RecordGeneration(outcome, string(req.Framework), string(req.Period), elapsed)
		sc.RecordError(err)
		slog.ErrorContext(ctx, "report generation failed",
			"error", err,
			"outcome", outcome,
			"duration_ms", elapsed.Milliseconds())
		return "", fmt.Errorf("generating report: %w", err)
	}

	s.metrics.RecordGeneration(metrics.OutcomeSuccess, string(req.Framework), string(req.Period), elapsed)
	slog.InfoContext(ctx, "report generated",
		"report_bytes", len(text),
		"duration_ms", elapsed.Milliseconds())
	return text, nil
}

func (s *reportService) GenerateForEmployee(ctx context.Context, employeeID int64, period, framework string, year int) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{EmployeeID: &employeeID})

	// Reject a bad selection before touching the database.
	if _, err := validateSelection(period, framework, year); err != nil {
		s.metrics.RecordGeneration(metrics.OutcomeInvalid, labelOrInvalid(framework, report.Framework(framework).Valid()), labelOrInvalid(period, report.Period(period).Valid()), 0)
		return "", err
	}

	records, err := s.records.load(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, ErrEmployeeNotFound) {
			slog.ErrorContext(ctx, "failed to load employee records", "error", err)
		}
		return "", err
	}

	return s.Generate(ctx, ReportParams{
		EmployeeName:    records.Employee.Name,
		EmployeeRole:    records.Employee.Role,
		Period:          period,
		Framework:       framework,
		Year:            year,
		Accomplishments: toReportAccomplishments(records.Accomplishments),
		Observations:    toReportObservations(records.Observations),
	})
}

func (s *reportService) Render(ctx context.Context, markdown string) (string, error) {
	html, err := s.renderer.Render(markdown)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render report", "error", err, "markdown_bytes", len(markdown))
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return html, nil
}

func (s *reportService) GenerationHealthy(ctx context.Context) bool {
	return s.client.Healthy(ctx)
}

func (s *reportService) Model() string {
	return s.client.Model()
}

func validateReportParams(p ReportParams) (report.Request, error) {
	req, err := validateSelection(p.Period, p.Framework, p.Year)
	if err != nil {
		return req, err
	}
	req.EmployeeName = strings.TrimSpace(p.EmployeeName)
	req.EmployeeRole = strings.TrimSpace(p.EmployeeRole)
	if req.EmployeeName == "" {
		return req, invalidReport("employeeName", "must not be blank")
	}
	if req.EmployeeRole == "" {
		return req, invalidReport("employeeRole", "must not be blank")
	}
	req.Accomplishments = p.Accomplishments
	req.Observations = p.Observations
	return req, nil
}

// validateSelection checks period, framework and year. The returned request
// carries whichever of them parsed, even on error.
func validateSelection(period, framework string, year int) (report.Request, error) {
	var req report.Request
	p, perr := report.ParsePeriod(period)
	f, ferr := report.ParseFramework(framework)
	req.Period, req.Framework, req.Year = p, f, year

	switch {
	case perr != nil:
		return req, invalidReport("period", "must be one of yearly, Q1, Q2, Q3, Q4, got %q", period)
	case ferr != nil:
		return req, invalidReport("framework", "must be one of OKR, BARS, MBO, Competency, got %q", framework)
	case year < minYear || year > maxYear:
		return req, invalidReport("year", "must be between %d and %d, got %d", minYear, maxYear, year)
	}
	return req, nil
}

func outcomeOf(err error) metrics.Outcome {
	if errors.Is(err, llm.ErrServiceUnavailable) {
		return metrics.OutcomeUnavailable
	}
	return metrics.OutcomeFailed
}

// labelOrInvalid keeps metric label cardinality bounded for rejected input.
func labelOrInvalid(value string, valid bool) string {
	if valid {
		return value
	}
	return "invalid"
}

func toReportAccomplishments(items []model.Accomplishment) []report.Accomplishment {
	out := make([]report.Accomplishment, 0, len(items))
	for _, a := range items {
		out = append(out, report.Accomplishment{
			Description: a.Description,
			Period:      a.Period,
			CreatedAt:   report.At(a.CreatedAt),
		})
	}
	return out
}

func toReportObservations(items []model.Observation) []report.Observation {
	out := make([]report.Observation, 0, len(items))
	for _, o := range items {
		out = append(out, report.Observation{
			Description: o.Description,
			Category:    string(o.Category),
			CreatedAt:   report.At(o.CreatedAt),
		})
	}
	return out
}
