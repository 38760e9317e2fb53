package service_test

import (
	"context"
	"sync"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

type mockClient struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	healthyFn  func(ctx context.Context) bool
	model      string

	mu      sync.Mutex
	prompts []string
}

func (m *mockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt)
	}
	return "", nil
}

func (m *mockClient) Healthy(ctx context.Context) bool {
	if m.healthyFn != nil {
		return m.healthyFn(ctx)
	}
	return true
}

func (m *mockClient) Model() string {
	if m.model == "" {
		return "gemma3:12b-it-qat"
	}
	return m.model
}

func (m *mockClient) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

type mockRenderer struct {
	renderFn func(markdown string) (string, error)
}

func (m *mockRenderer) Render(markdown string) (string, error) {
	if m.renderFn != nil {
		return m.renderFn(markdown)
	}
	return "", nil
}

type mockEmployeeStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Employee, error)
	createFn  func(ctx context.Context, employee *model.Employee) error
	listFn    func(ctx context.Context) ([]model.EmployeeWithStats, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockEmployeeStore) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeStore) Create(ctx context.Context, employee *model.Employee) error {
	if m.createFn != nil {
		return m.createFn(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeStore) List(ctx context.Context) ([]model.EmployeeWithStats, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.EmployeeWithStats{}, nil
}

func (m *mockEmployeeStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAccomplishmentStore struct {
	createFn         func(ctx context.Context, a *model.Accomplishment) error
	updateFn         func(ctx context.Context, a *model.Accomplishment) error
	deleteFn         func(ctx context.Context, id int64) error
	listByEmployeeFn func(ctx context.Context, employeeID int64) ([]model.Accomplishment, error)
}

func (m *mockAccomplishmentStore) Create(ctx context.Context, a *model.Accomplishment) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAccomplishmentStore) Update(ctx context.Context, a *model.Accomplishment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return nil
}

func (m *mockAccomplishmentStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAccomplishmentStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Accomplishment, error) {
	if m.listByEmployeeFn != nil {
		return m.listByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

type mockObservationStore struct {
	createFn         func(ctx context.Context, o *model.Observation) error
	updateFn         func(ctx context.Context, o *model.Observation) error
	deleteFn         func(ctx context.Context, id int64) error
	listByEmployeeFn func(ctx context.Context, employeeID int64) ([]model.Observation, error)
}

func (m *mockObservationStore) Create(ctx context.Context, o *model.Observation) error {
	if m.createFn != nil {
		return m.createFn(ctx, o)
	}
	return nil
}

func (m *mockObservationStore) Update(ctx context.Context, o *model.Observation) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, o)
	}
	return nil
}

func (m *mockObservationStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockObservationStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Observation, error) {
	if m.listByEmployeeFn != nil {
		return m.listByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

type mockAwardTypeStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.AwardType, error)
	createFn  func(ctx context.Context, t *model.AwardType) error
	listFn    func(ctx context.Context) ([]model.AwardType, error)
}

func (m *mockAwardTypeStore) GetByID(ctx context.Context, id int64) (*model.AwardType, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.AwardType{ID: id, Name: "Best Staff"}, nil
}

func (m *mockAwardTypeStore) Create(ctx context.Context, t *model.AwardType) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockAwardTypeStore) List(ctx context.Context) ([]model.AwardType, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.AwardType{}, nil
}

type mockAwardStore struct {
	createFn         func(ctx context.Context, a *model.Award) error
	updateFn         func(ctx context.Context, a *model.Award) error
	deleteFn         func(ctx context.Context, id int64) error
	listByEmployeeFn func(ctx context.Context, employeeID int64) ([]model.Award, error)
}

func (m *mockAwardStore) Create(ctx context.Context, a *model.Award) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAwardStore) Update(ctx context.Context, a *model.Award) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return nil
}

func (m *mockAwardStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAwardStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Award, error) {
	if m.listByEmployeeFn != nil {
		return m.listByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}
