package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReportRequest   = errors.New("invalid report request")
	ErrInvalidRecord          = errors.New("invalid record")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAccomplishmentNotFound = errors.New("accomplishment not found")
	ErrObservationNotFound    = errors.New("observation not found")
	ErrAwardNotFound          = errors.New("award not found")
	ErrAwardTypeExists        = errors.New("award type already exists")
	ErrRecordsDisabled        = errors.New("employee records are not configured")
)

// ValidationError names the offending field. It unwraps to Kind, one of
// ErrInvalidReportRequest or ErrInvalidRecord.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalidReport(field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: ErrInvalidReportRequest, Field: field, Message: fmt.Sprintf(format, args...)}
}

func invalidRecord(field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: ErrInvalidRecord, Field: field, Message: fmt.Sprintf(format, args...)}
}
