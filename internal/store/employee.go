package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

const (
	getEmployeeSQL = `SELECT id, name, role, created_at FROM employees WHERE id = $1`

	createEmployeeSQL = `INSERT INTO employees (id, name, role) VALUES ($1, $2, $3) RETURNING created_at`

	listEmployeesSQL = `
SELECT e.id, e.name, e.role, e.created_at,
       (SELECT count(*) FROM accomplishments a WHERE a.employee_id = e.id) AS accomplishment_count,
       (SELECT count(*) FROM observations o WHERE o.employee_id = e.id) AS observation_count,
       (SELECT count(*) FROM awards w WHERE w.employee_id = e.id) AS award_count
FROM employees e
ORDER BY e.created_at DESC, e.id DESC`

	deleteEmployeeSQL = `DELETE FROM employees WHERE id = $1`
)

type employeeStore struct {
	conn db.DBTX
}

func newEmployeeStore(conn db.DBTX) EmployeeStore {
	return &employeeStore{conn: conn}
}

func (s *employeeStore) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	var e model.Employee
	err := s.conn.QueryRow(ctx, getEmployeeSQL, id).Scan(&e.ID, &e.Name, &e.Role, &e.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *employeeStore) Create(ctx context.Context, employee *model.Employee) error {
	row := s.conn.QueryRow(ctx, createEmployeeSQL, employee.ID, employee.Name, employee.Role)
	if err := row.Scan(&employee.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *employeeStore) List(ctx context.Context) ([]model.EmployeeWithStats, error) {
	rows, err := s.conn.Query(ctx, listEmployeesSQL)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.EmployeeWithStats, error) {
		var e model.EmployeeWithStats
		err := row.Scan(&e.ID, &e.Name, &e.Role, &e.CreatedAt, &e.AccomplishmentCount, &e.ObservationCount, &e.AwardCount)
		return e, err
	})
}

func (s *employeeStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.conn, deleteEmployeeSQL, id)
}
