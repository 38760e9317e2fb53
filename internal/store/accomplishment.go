package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

const (
	createAccomplishmentSQL = `
INSERT INTO accomplishments (id, employee_id, description, period)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	updateAccomplishmentSQL = `
UPDATE accomplishments SET description = $2, period = $3
WHERE id = $1
RETURNING employee_id, created_at`

	deleteAccomplishmentSQL = `DELETE FROM accomplishments WHERE id = $1`

	listAccomplishmentsSQL = `
SELECT id, employee_id, description, period, created_at
FROM accomplishments
WHERE employee_id = $1
ORDER BY created_at DESC, id DESC`
)

type accomplishmentStore struct {
	conn db.DBTX
}

func newAccomplishmentStore(conn db.DBTX) AccomplishmentStore {
	return &accomplishmentStore{conn: conn}
}

func (s *accomplishmentStore) Create(ctx context.Context, a *model.Accomplishment) error {
	row := s.conn.QueryRow(ctx, createAccomplishmentSQL, a.ID, a.EmployeeID, a.Description, a.Period)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *accomplishmentStore) Update(ctx context.Context, a *model.Accomplishment) error {
	row := s.conn.QueryRow(ctx, updateAccomplishmentSQL, a.ID, a.Description, a.Period)
	if err := row.Scan(&a.EmployeeID, &a.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *accomplishmentStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.conn, deleteAccomplishmentSQL, id)
}

func (s *accomplishmentStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Accomplishment, error) {
	rows, err := s.conn.Query(ctx, listAccomplishmentsSQL, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Accomplishment, error) {
		var a model.Accomplishment
		err := row.Scan(&a.ID, &a.EmployeeID, &a.Description, &a.Period, &a.CreatedAt)
		return a, err
	})
}
