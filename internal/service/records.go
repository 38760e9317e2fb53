package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

// EmployeeRecords is an employee together with everything recorded about them.
type EmployeeRecords struct {
	Employee        model.Employee         `json:"employee"`
	Accomplishments []model.Accomplishment `json:"accomplishments"`
	Observations    []model.Observation    `json:"observations"`
	Awards          []model.Award          `json:"awards"`
}

type recordStores struct {
	employees       store.EmployeeStore
	accomplishments store.AccomplishmentStore
	observations    store.ObservationStore
	// awards is optional; report generation does not read them.
	awards          store.AwardStore
}

func (r recordStores) enabled() bool {
	return r.employees != nil && r.accomplishments != nil && r.observations != nil
}

// load fetches the employee and its record sets concurrently. The first
// failure cancels the other reads.
func (r recordStores) load(ctx context.Context, employeeID int64) (*EmployeeRecords, error) {
	if !r.enabled() {
		return nil, ErrRecordsDisabled
	}

	var (
		employee        *model.Employee
		accomplishments []model.Accomplishment
		observations    []model.Observation
		awards          []model.Award
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := r.employees.GetByID(gctx, employeeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("loading employee: %w", err)
		}
		employee = e
		return nil
	})
	g.Go(func() error {
		items, err := r.accomplishments.ListByEmployee(gctx, employeeID)
		if err != nil {
			return fmt.Errorf("listing accomplishments: %w", err)
		}
		accomplishments = items
		return nil
	})
	g.Go(func() error {
		items, err := r.observations.ListByEmployee(gctx, employeeID)
		if err != nil {
			return fmt.Errorf("listing observations: %w", err)
		}
		observations = items
		return nil
	})
	if r.awards != nil {
		g.Go(func() error {
			items, err := r.awards.ListByEmployee(gctx, employeeID)
			if err != nil {
				return fmt.Errorf("listing awards: %w", err)
			}
			awards = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if accomplishments == nil {
		accomplishments = []model.Accomplishment{}
	}
	if observations == nil {
		observations = []model.Observation{}
	}
	if awards == nil {
		awards = []model.Award{}
	}
	return &EmployeeRecords{
		Employee:        *employee,
		Accomplishments: accomplishments,
		Observations:    observations,
		Awards:          awards,
	}, nil
}
