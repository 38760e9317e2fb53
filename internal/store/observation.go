package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

const (
	createObservationSQL = `
INSERT INTO observations (id, employee_id, description, category)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	updateObservationSQL = `
UPDATE observations SET description = $2, category = $3
WHERE id = $1
RETURNING employee_id, created_at`

	deleteObservationSQL = `DELETE FROM observations WHERE id = $1`

	listObservationsSQL = `
SELECT id, employee_id, description, category, created_at
FROM observations
WHERE employee_id = $1
ORDER BY created_at DESC, id DESC`
)

type observationStore struct {
	conn db.DBTX
}

func newObservationStore(conn db.DBTX) ObservationStore {
	return &observationStore{conn: conn}
}

func (s *observationStore) Create(ctx context.Context, o *model.Observation) error {
	row := s.conn.QueryRow(ctx, createObservationSQL, o.ID, o.EmployeeID, o.Description, string(o.Category))
	if err := row.Scan(&o.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *observationStore) Update(ctx context.Context, o *model.Observation) error {
	row := s.conn.QueryRow(ctx, updateObservationSQL, o.ID, o.Description, string(o.Category))
	if err := row.Scan(&o.EmployeeID, &o.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *observationStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.conn, deleteObservationSQL, id)
}

func (s *observationStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Observation, error) {
	rows, err := s.conn.Query(ctx, listObservationsSQL, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Observation, error) {
		var o model.Observation
		var category string
		if err := row.Scan(&o.ID, &o.EmployeeID, &o.Description, &category, &o.CreatedAt); err != nil {
			return o, err
		}
		o.Category = model.ObservationCategory(category)
		return o, nil
	})
}
