package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are added to every log record written with a context carrying them.
type LogFields struct {
	ReportID   *int64  // Snowflake id of a single report generation
	EmployeeID *int64  // Employee the report is about, when known
	Framework  *string // Evaluation framework, e.g. "OKR"
	Period     *string // Reporting window, e.g. "Q3"
	Component  string  // e.g. "talent.service.report"
}

// WithLogFields enriches ctx with fields, merging over any already present.
// Newer non-nil/non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields stored in ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ReportID != nil {
		result.ReportID = next.ReportID
	}
	if next.EmployeeID != nil {
		result.EmployeeID = next.EmployeeID
	}
	if next.Framework != nil {
		result.Framework = next.Framework
	}
	if next.Period != nil {
		result.Period = next.Period
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to maxLen bytes, appending "..." when it had to cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
