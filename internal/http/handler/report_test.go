package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/llm"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/http/handler"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/service"
)

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	return sendJSON(router, http.MethodPost, path, body)
}

func sendJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		Expect(json.NewEncoder(&buf).Encode(b)).To(Succeed())
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}

var _ = Describe("ReportHandler", func() {
	var (
		router *gin.Engine
		svc    *mockReportService
	)

	validBody := func() map[string]any {
		return map[string]any{
			"employeeName": "Jane Doe",
			"employeeRole": "Engineer",
			"period":       "Q1",
			"framework":    "OKR",
			"year":         2024,
			"accomplishments": []map[string]any{
				{"description": "Shipped X", "period": "Q1 2024", "created_at": "2024-02-10T09:00:00Z"},
			},
		}
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockReportService{}
		h := handler.NewReportHandler(svc, time.Minute)
		router.POST("/api/generate-report", h.Generate)
		router.POST("/employees/:id/report", h.GenerateForEmployee)
		router.POST("/reports/render", h.Render)
	})

	Describe("Generate", func() {
		It("returns 200 with the report", func() {
			var got service.ReportParams
			svc.generateFn = func(_ context.Context, p service.ReportParams) (string, error) {
				got = p
				return "## Executive Summary\n", nil
			}

			w := postJSON(router, "/api/generate-report", validBody())

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(Equal(map[string]any{"report": "## Executive Summary\n"}))
			Expect(got.EmployeeName).To(Equal("Jane Doe"))
			Expect(got.Year).To(Equal(2024))
			Expect(got.Accomplishments).To(HaveLen(1))
			Expect(got.Accomplishments[0].CreatedAt.Valid).To(BeTrue())
			Expect(got.Observations).To(BeEmpty())
		})

		It("applies the report timeout to the service context", func() {
			svc.generateFn = func(ctx context.Context, _ service.ReportParams) (string, error) {
				deadline, ok := ctx.Deadline()
				Expect(ok).To(BeTrue())
				Expect(time.Until(deadline)).To(BeNumerically("<=", time.Minute))
				return "ok", nil
			}

			w := postJSON(router, "/api/generate-report", validBody())
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("adds html when asked to render", func() {
			svc.generateFn = func(context.Context, service.ReportParams) (string, error) {
				return "## Summary", nil
			}
			svc.renderFn = func(_ context.Context, md string) (string, error) {
				return "<h2>" + md + "</h2>", nil
			}

			w := postJSON(router, "/api/generate-report?render=true", validBody())

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["html"]).To(Equal("<h2>## Summary</h2>"))
		})

		DescribeTable("returns 400 when a required field is missing",
			func(field string) {
				called := false
				svc.generateFn = func(context.Context, service.ReportParams) (string, error) {
					called = true
					return "", nil
				}
				body := validBody()
				delete(body, field)

				w := postJSON(router, "/api/generate-report", body)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decode(w)["error"]).To(Equal("Missing required fields"))
				Expect(called).To(BeFalse())
			},
			Entry("employeeName", "employeeName"),
			Entry("employeeRole", "employeeRole"),
			Entry("period", "period"),
			Entry("framework", "framework"),
			Entry("year", "year"),
		)

		It("returns 400 on a malformed body", func() {
			w := postJSON(router, "/api/generate-report", `{`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 with the validation message", func() {
			svc.generateFn = func(context.Context, service.ReportParams) (string, error) {
				return "", &service.ValidationError{Kind: service.ErrInvalidReportRequest, Field: "framework", Message: `must be one of OKR, BARS, MBO, Competency, got "XYZ"`}
			}

			w := postJSON(router, "/api/generate-report", validBody())

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).To(ContainSubstring("framework"))
		})

		DescribeTable("returns 500 with one message for any generation failure",
			func(kind error) {
				svc.generateFn = func(context.Context, service.ReportParams) (string, error) {
					return "", &llm.Error{Kind: kind, BaseURL: "http://localhost:11434", Model: "gemma3:12b-it-qat", Status: "500 Internal Server Error"}
				}

				w := postJSON(router, "/api/generate-report", validBody())

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decode(w)["error"]).To(Equal("Failed to generate report. Make sure Ollama is running on localhost:11434 with the gemma3:12b-it-qat model."))
			},
			Entry("unavailable", llm.ErrServiceUnavailable),
			Entry("failed", llm.ErrGenerationFailed),
		)

		It("falls back to a generic message", func() {
			svc.generateFn = func(context.Context, service.ReportParams) (string, error) {
				return "", errors.New("boom")
			}

			w := postJSON(router, "/api/generate-report", validBody())

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("Failed to generate report"))
		})
	})

	Describe("GenerateForEmployee", func() {
		It("passes the path id and selection through", func() {
			var gotID int64
			var gotPeriod string
			svc.generateForEmployeeFn = func(_ context.Context, id int64, period, _ string, _ int) (string, error) {
				gotID, gotPeriod = id, period
				return "report", nil
			}

			w := postJSON(router, "/employees/42/report", map[string]any{"period": "Q2", "framework": "BARS", "year": 2024})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotID).To(Equal(int64(42)))
			Expect(gotPeriod).To(Equal("Q2"))
		})

		It("returns 400 for a non-numeric id", func() {
			w := postJSON(router, "/employees/abc/report", map[string]any{"period": "Q2", "framework": "BARS", "year": 2024})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown employee", func() {
			svc.generateForEmployeeFn = func(context.Context, int64, string, string, int) (string, error) {
				return "", service.ErrEmployeeNotFound
			}

			w := postJSON(router, "/employees/7/report", map[string]any{"period": "Q2", "framework": "BARS", "year": 2024})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Render", func() {
		It("returns the html", func() {
			svc.renderFn = func(_ context.Context, md string) (string, error) {
				return "<p class=\"report-paragraph\">" + md + "</p>\n", nil
			}

			w := postJSON(router, "/reports/render", map[string]any{"markdown": "hello"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["html"]).To(Equal("<p class=\"report-paragraph\">hello</p>\n"))
		})
	})
})

var _ = Describe("HealthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockReportService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockReportService{}
		h := handler.NewHealthHandler(svc)
		router.GET("/health", h.Health)
		router.GET("/health/generation", h.Generation)
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("reports liveness", func() {
		w := get("/health")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(Equal(map[string]any{"status": "ok"}))
	})

	It("reports a reachable generation service", func() {
		w := get("/health/generation")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(Equal(map[string]any{"status": "ok", "model": "gemma3:12b-it-qat"}))
	})

	It("answers 503 when the generation service is down", func() {
		svc.healthyFn = func(context.Context) bool { return false }

		w := get("/health/generation")
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(decode(w)["status"]).To(Equal("unavailable"))
	})
})
