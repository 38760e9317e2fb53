package store

import (
	"context"
	"errors"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert collides with a unique constraint
var ErrDuplicate = errors.New("duplicate")

// EmployeeStore defines the contract for employee data access
type EmployeeStore interface {
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	// List returns every employee, newest first, with record counts.
	List(ctx context.Context) ([]model.EmployeeWithStats, error)
	// Delete removes the employee and, by cascade, all of their records.
	Delete(ctx context.Context, id int64) error
}

// AccomplishmentStore defines the contract for accomplishment data access
type AccomplishmentStore interface {
	Create(ctx context.Context, a *model.Accomplishment) error
	// Update rewrites description and period, filling the remaining fields
	// from the stored row.
	Update(ctx context.Context, a *model.Accomplishment) error
	Delete(ctx context.Context, id int64) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.Accomplishment, error)
}

// ObservationStore defines the contract for observation data access
type ObservationStore interface {
	Create(ctx context.Context, o *model.Observation) error
	Update(ctx context.Context, o *model.Observation) error
	Delete(ctx context.Context, id int64) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.Observation, error)
}

// AwardTypeStore defines the contract for award type data access
type AwardTypeStore interface {
	GetByID(ctx context.Context, id int64) (*model.AwardType, error)
	Create(ctx context.Context, t *model.AwardType) error
	// List returns every award type ordered by name.
	List(ctx context.Context) ([]model.AwardType, error)
}

// AwardStore defines the contract for award data access
type AwardStore interface {
	Create(ctx context.Context, a *model.Award) error
	// Update rewrites award type and date, filling the remaining fields from
	// the stored row.
	Update(ctx context.Context, a *model.Award) error
	Delete(ctx context.Context, id int64) error
	// ListByEmployee returns awards newest award date first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.Award, error)
}
