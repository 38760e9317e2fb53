package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/id"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/logger"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

type EmployeeService interface {
	List(ctx context.Context) ([]model.EmployeeWithStats, error)
	Get(ctx context.Context, employeeID int64) (*EmployeeRecords, error)
	Create(ctx context.Context, name, role string) (*model.Employee, error)
	Delete(ctx context.Context, employeeID int64) error
	AddAccomplishment(ctx context.Context, employeeID int64, description, period string) (*model.Accomplishment, error)
	UpdateAccomplishment(ctx context.Context, accomplishmentID int64, description, period string) (*model.Accomplishment, error)
	DeleteAccomplishment(ctx context.Context, accomplishmentID int64) error
	AddObservation(ctx context.Context, employeeID int64, description, category string) (*model.Observation, error)
	UpdateObservation(ctx context.Context, observationID int64, description, category string) (*model.Observation, error)
	DeleteObservation(ctx context.Context, observationID int64) error
}

type employeeService struct {
	records recordStores
}

func NewEmployeeService(
	employees store.EmployeeStore,
	accomplishments store.AccomplishmentStore,
	observations store.ObservationStore,
	awards store.AwardStore,
) EmployeeService {
	return &employeeService{records: recordStores{
		employees:       employees,
		accomplishments: accomplishments,
		observations:    observations,
		awards:          awards,
	}}
}

func (s *employeeService) List(ctx context.Context) ([]model.EmployeeWithStats, error) {
	if !s.records.enabled() {
		return nil, ErrRecordsDisabled
	}
	employees, err := s.records.employees.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list employees", "error", err)
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) Get(ctx context.Context, employeeID int64) (*EmployeeRecords, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{EmployeeID: &employeeID})
	records, err := s.records.load(ctx, employeeID)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		slog.ErrorContext(ctx, "failed to load employee records", "error", err)
	}
	return records, err
}

func (s *employeeService) Create(ctx context.Context, name, role string) (*model.Employee, error) {
	if !s.records.enabled() {
		return nil, ErrRecordsDisabled
	}
	name, role = strings.TrimSpace(name), strings.TrimSpace(role)
	if name == "" {
		return nil, invalidRecord("name", "must not be blank")
	}
	if role == "" {
		return nil, invalidRecord("role", "must not be blank")
	}

	employee := &model.Employee{
		ID:   id.New(),
		Name: name,
		Role: role,
	}
	if err := s.records.employees.Create(ctx, employee); err != nil {
		slog.ErrorContext(ctx, "failed to create employee", "error", err)
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	slog.InfoContext(ctx, "employee created", "employee_id", employee.ID)
	return employee, nil
}

func (s *employeeService) AddAccomplishment(ctx context.Context, employeeID int64, description, period string) (*model.Accomplishment, error) {
	if !s.records.enabled() {
		return nil, ErrRecordsDisabled
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{EmployeeID: &employeeID})

	description, period = strings.TrimSpace(description), strings.TrimSpace(period)
	if description == "" {
		return nil, invalidRecord("description", "must not be blank")
	}
	if period == "" {
		return nil, invalidRecord("period", "must not be blank")
	}

	a := &model.Accomplishment{
		ID:          id.New(),
		EmployeeID:  employeeID,
		Description: description,
		Period:      period,
	}
	if err := s.records.accomplishments.Create(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		slog.ErrorContext(ctx, "failed to create accomplishment", "error", err)
		return nil, fmt.Errorf("creating accomplishment: %w", err)
	}

	slog.InfoContext(ctx, "accomplishment recorded", "accomplishment_id", a.ID)
	return a, nil
}

func (s *employeeService) AddObservation(ctx context.Context, employeeID int64, description, category string) (*model.Observation, error) {
	if !s.records.enabled() {
		return nil, ErrRecordsDisabled
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{EmployeeID: &employeeID})

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalidRecord("description", "must not be blank")
	}
	cat, err := model.ParseObservationCategory(category)
	if err != nil {
		return nil, invalidRecord("category", "must be one of attitude, performance, teamwork, other, got %q", category)
	}

	o := &model.Observation{
		ID:          id.New(),
		EmployeeID:  employeeID,
		Description: description,
		Category:    cat,
	}
	if err := s.records.observations.Create(ctx, o); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		slog.ErrorContext(ctx, "failed to create observation", "error", err)
		return nil, fmt.Errorf("creating observation: %w", err)
	}

	slog.InfoContext(ctx, "observation recorded", "observation_id", o.ID, "category", o.Category)
	return o, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID int64) error {
	if !s.records.enabled() {
		return ErrRecordsDisabled
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{EmployeeID: &employeeID})

	if err := s.records.employees.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		slog.ErrorContext(ctx, "failed to delete employee", "error", err)
		return fmt.Errorf("deleting employee: %w", err)
	}

	slog.InfoContext(ctx, "employee deleted")
	return nil
}

func (s *employeeService) UpdateAccomplishment(ctx context.Context, accomplishmentID int64, description, period string) (*model.Accomplishment, error) {
	if !s.records.enabled() {
		return nil, ErrRecordsDisabled
	}
	description, period = strings.TrimSpace(description), strings.TrimSpace(period)
	if description == "" {
		return nil, invalidRecord("description", "must not be blank")
	}
	if period == "" {
		return nil, invalidRecord("period", "must not be blank")
	}

	a := &model.Accomplishment{
		ID:          accomplishmentID,
		Description: description,
		Period:      period,
	}
	if err := s.records.accomplishments.Update(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccomplishmentNotFound
		}
		slog.ErrorContext(ctx, "failed to update accomplishment", "accomplishment_id", accomplishmentID, "error", err)
		return nil, fmt.Errorf("updating accomplishment: %w", err)
	}
	return a, nil
}

func (s *employeeService) DeleteAccomplishment(ctx context.Context, accomplishmentID int64) error {
	if !s.records.enabled() {
		return ErrRecordsDisabled
	}
	if err := s.records.accomplishments.Delete(ctx, accomplishmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccomplishmentNotFound
		}
		slog.ErrorContext(ctx, "failed to delete accomplishment", "accomplishment_id", accomplishmentID, "error", err)
		return fmt.Errorf("deleting accomplishment: %w", err)
	}
	return nil
}

func (s *employeeService) UpdateObservation(ctx context.Context, observationID int64, description, category string) (*model.Observation, error) {
	if !s.records.enabled() {
		return nil, ErrRecordsDisabled
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalidRecord("description", "must not be blank")
	}
	cat, err := model.ParseObservationCategory(category)
	if err != nil {
		return nil, invalidRecord("category", "must be one of attitude, performance, teamwork, other, got %q", category)
	}

	o := &model.Observation{
		ID:          observationID,
		Description: description,
		Category:    cat,
	}
	if err := s.records.observations.Update(ctx, o); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrObservationNotFound
		}
		slog.ErrorContext(ctx, "failed to update observation", "observation_id", observationID, "error", err)
		return nil, fmt.Errorf("updating observation: %w", err)
	}
	return o, nil
}

func (s *employeeService) DeleteObservation(ctx context.Context, observationID int64) error {
	if !s.records.enabled() {
		return ErrRecordsDisabled
	}
	if err := s.records.observations.Delete(ctx, observationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrObservationNotFound
		}
		slog.ErrorContext(ctx, "failed to delete observation", "observation_id", observationID, "error", err)
		return fmt.Errorf("deleting observation: %w", err)
	}
	return nil
}
