package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/llm"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/metrics"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/markdown"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/report"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

func generations(reg *prometheus.Registry, outcome string) float64 {
	families, err := reg.Gather()
	Expect(err).NotTo(HaveOccurred())

	var total float64
	for _, mf := range families {
		if mf.GetName() != "talent_report_generations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "outcome" && l.GetValue() == outcome {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	Expect(err).NotTo(HaveOccurred())
	return t
}

var _ = Describe("ReportService", func() {
	var (
		ctx             context.Context
		client          *mockClient
		employees       *mockEmployeeStore
		accomplishments *mockAccomplishmentStore
		observations    *mockObservationStore
		reg             *prometheus.Registry
		svc             service.ReportService
	)

	janeQ1 := func() service.ReportParams {
		return service.ReportParams{
			EmployeeName: "Jane Doe",
			EmployeeRole: "Engineer",
			Period:       "Q1",
			Framework:    "OKR",
			Year:         2024,
			Accomplishments: []report.Accomplishment{
				{Description: "Shipped X", Period: "Q1 2024", CreatedAt: report.At(day("2024-02-10"))},
				{Description: "Old work", Period: "Q1 2023", CreatedAt: report.At(day("2023-02-10"))},
			},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		client = &mockClient{}
		employees = &mockEmployeeStore{}
		accomplishments = &mockAccomplishmentStore{}
		observations = &mockObservationStore{}
		reg = prometheus.NewRegistry()
		svc = service.NewReportService(
			client,
			markdown.New(),
			employees,
			accomplishments,
			observations,
			metrics.New(metrics.WithRegistry(reg)),
		)
	})

	Describe("Generate", func() {
		It("returns the generated text verbatim", func() {
			client.generateFn = func(_ context.Context, _ string) (string, error) {
				return "## Executive Summary\n\nJane shipped X.\n", nil
			}

			text, err := svc.Generate(ctx, janeQ1())
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("## Executive Summary\n\nJane shipped X.\n"))
			Expect(generations(reg, "success")).To(Equal(1.0))
		})

		It("sends a prompt built from the filtered records", func() {
			_, err := svc.Generate(ctx, janeQ1())
			Expect(err).NotTo(HaveOccurred())

			prompts := client.calls()
			Expect(prompts).To(HaveLen(1))
			Expect(prompts[0]).To(HavePrefix("You are generating a OKR performance evaluation for Jane Doe, a Engineer.\n"))
			Expect(prompts[0]).To(ContainSubstring("Time Period: Q1 2024\n"))
			Expect(prompts[0]).To(ContainSubstring("- [Q1 2024] Shipped X\n"))
			Expect(prompts[0]).NotTo(ContainSubstring("Old work"))
			Expect(prompts[0]).To(ContainSubstring("- No observations recorded for this period\n"))
		})

		It("trims the employee name and role", func() {
			p := janeQ1()
			p.EmployeeName, p.EmployeeRole = "  Jane Doe ", " Engineer\n"

			_, err := svc.Generate(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(client.calls()[0]).To(HavePrefix("You are generating a OKR performance evaluation for Jane Doe, a Engineer.\n"))
		})

		DescribeTable("rejects invalid requests before calling the model",
			func(mutate func(*service.ReportParams), field string) {
				p := janeQ1()
				mutate(&p)

				_, err := svc.Generate(ctx, p)
				Expect(errors.Is(err, service.ErrInvalidReportRequest)).To(BeTrue())

				var vErr *service.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal(field))
				Expect(client.calls()).To(BeEmpty())
				Expect(generations(reg, "invalid")).To(Equal(1.0))
			},
			Entry("blank name", func(p *service.ReportParams) { p.EmployeeName = "  " }, "employeeName"),
			Entry("blank role", func(p *service.ReportParams) { p.EmployeeRole = "" }, "employeeRole"),
			Entry("unknown period", func(p *service.ReportParams) { p.Period = "Q5" }, "period"),
			Entry("lower-case period", func(p *service.ReportParams) { p.Period = "q1" }, "period"),
			Entry("unknown framework", func(p *service.ReportParams) { p.Framework = "XYZ" }, "framework"),
			Entry("year zero", func(p *service.ReportParams) { p.Year = 0 }, "year"),
			Entry("year too large", func(p *service.ReportParams) { p.Year = 10000 }, "year"),
		)

		It("keeps rejected labels out of the metrics", func() {
			p := janeQ1()
			p.Framework = "anything-at-all"

			_, err := svc.Generate(ctx, p)
			Expect(err).To(HaveOccurred())

			families, err := reg.Gather()
			Expect(err).NotTo(HaveOccurred())
			for _, mf := range families {
				for _, m := range mf.GetMetric() {
					for _, l := range m.GetLabel() {
						Expect(l.GetValue()).NotTo(Equal("anything-at-all"))
					}
				}
			}
		})

		It("keeps an unavailable service distinct from a failed generation", func() {
			client.generateFn = func(_ context.Context, _ string) (string, error) {
				return "", &llm.Error{Kind: llm.ErrServiceUnavailable, BaseURL: "http://localhost:11434", Model: "gemma3:12b-it-qat"}
			}
			_, err := svc.Generate(ctx, janeQ1())
			Expect(errors.Is(err, llm.ErrServiceUnavailable)).To(BeTrue())
			Expect(llm.UserMessage(err)).To(Equal("Failed to generate report. Make sure Ollama is running on localhost:11434 with the gemma3:12b-it-qat model."))

			client.generateFn = func(_ context.Context, _ string) (string, error) {
				return "", &llm.Error{Kind: llm.ErrGenerationFailed, Status: "500 Internal Server Error"}
			}
			_, err = svc.Generate(ctx, janeQ1())
			Expect(errors.Is(err, llm.ErrGenerationFailed)).To(BeTrue())

			Expect(generations(reg, "unavailable")).To(Equal(1.0))
			Expect(generations(reg, "failed")).To(Equal(1.0))
			Expect(generations(reg, "success")).To(BeZero())
		})

		It("calls the model exactly once per request", func() {
			client.generateFn = func(_ context.Context, _ string) (string, error) {
				return "", &llm.Error{Kind: llm.ErrGenerationFailed}
			}
			_, _ = svc.Generate(ctx, janeQ1())
			Expect(client.calls()).To(HaveLen(1))
		})
	})

	Describe("GenerateForEmployee", func() {
		BeforeEach(func() {
			employees.getByIDFn = func(_ context.Context, id int64) (*model.Employee, error) {
				if id != 42 {
					return nil, store.ErrNotFound
				}
				return &model.Employee{ID: 42, Name: "Ana Gomez", Role: "Product Manager"}, nil
			}
			accomplishments.listByEmployeeFn = func(_ context.Context, _ int64) ([]model.Accomplishment, error) {
				return []model.Accomplishment{
					{Description: "Launched pricing", Period: "Q3 2024", CreatedAt: day("2024-08-01")},
					{Description: "Hired two PMs", Period: "Q1 2024", CreatedAt: day("2024-02-01")},
				}, nil
			}
			observations.listByEmployeeFn = func(_ context.Context, _ int64) ([]model.Observation, error) {
				return []model.Observation{
					{Description: "Calm under pressure", Category: model.ObservationCategoryAttitude, CreatedAt: day("2024-09-01")},
					{Description: "Last year", Category: model.ObservationCategoryOther, CreatedAt: day("2023-09-01")},
				}, nil
			}
		})

		It("builds the request from stored records", func() {
			_, err := svc.GenerateForEmployee(ctx, 42, "Q3", "Competency", 2024)
			Expect(err).NotTo(HaveOccurred())

			prompt := client.calls()[0]
			Expect(prompt).To(HavePrefix("You are generating a Competency performance evaluation for Ana Gomez, a Product Manager.\n"))
			Expect(prompt).To(ContainSubstring("- [Q3 2024] Launched pricing\n"))
			Expect(prompt).NotTo(ContainSubstring("Hired two PMs"))
			Expect(prompt).To(ContainSubstring("- [attitude] Calm under pressure\n"))
			Expect(prompt).NotTo(ContainSubstring("Last year"))
		})

		It("reports a missing employee", func() {
			_, err := svc.GenerateForEmployee(ctx, 7, "Q3", "OKR", 2024)
			Expect(err).To(MatchError(service.ErrEmployeeNotFound))
			Expect(client.calls()).To(BeEmpty())
		})

		It("validates the selection before loading", func() {
			loaded := false
			employees.getByIDFn = func(_ context.Context, _ int64) (*model.Employee, error) {
				loaded = true
				return nil, nil
			}

			_, err := svc.GenerateForEmployee(ctx, 42, "H1", "OKR", 2024)
			Expect(errors.Is(err, service.ErrInvalidReportRequest)).To(BeTrue())
			Expect(loaded).To(BeFalse())
		})

		It("wraps store failures", func() {
			accomplishments.listByEmployeeFn = func(_ context.Context, _ int64) ([]model.Accomplishment, error) {
				return nil, errors.New("connection reset")
			}

			_, err := svc.GenerateForEmployee(ctx, 42, "Q3", "OKR", 2024)
			Expect(err).To(MatchError(ContainSubstring("listing accomplishments: connection reset")))
		})

		It("fails cleanly when records are not configured", func() {
			bare := service.NewReportService(client, markdown.New(), nil, nil, nil, nil)
			_, err := bare.GenerateForEmployee(ctx, 42, "Q3", "OKR", 2024)
			Expect(err).To(MatchError(service.ErrRecordsDisabled))
		})
	})

	Describe("Render", func() {
		It("renders report markdown to HTML", func() {
			html, err := svc.Render(ctx, "## Summary\n\n- Shipped X\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(html).To(ContainSubstring(`<h2 class="report-heading">`))
			Expect(html).To(ContainSubstring(`<li class="report-item">`))
		})

		It("wraps renderer errors", func() {
			s := service.NewReportService(client, &mockRenderer{renderFn: func(string) (string, error) {
				return "", errors.New("bad input")
			}}, nil, nil, nil, nil)

			_, err := s.Render(ctx, "x")
			Expect(err).To(MatchError("rendering report: bad input"))
		})
	})

	Describe("GenerationHealthy", func() {
		It("delegates to the client probe", func() {
			client.healthyFn = func(context.Context) bool { return false }
			Expect(svc.GenerationHealthy(ctx)).To(BeFalse())
			Expect(strings.TrimSpace(svc.Model())).To(Equal("gemma3:12b-it-qat"))
		})
	})
})
