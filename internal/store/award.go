package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
)

const (
	getAwardTypeSQL = `SELECT id, name, created_at FROM award_types WHERE id = $1`

	createAwardTypeSQL = `INSERT INTO award_types (id, name) VALUES ($1, $2) RETURNING created_at`

	listAwardTypesSQL = `SELECT id, name, created_at FROM award_types ORDER BY name, id`

	createAwardSQL = `
WITH inserted AS (
    INSERT INTO awards (id, employee_id, award_type_id, award_date)
    VALUES ($1, $2, $3, $4)
    RETURNING award_type_id, created_at
)
SELECT t.name, i.created_at
FROM inserted i JOIN award_types t ON t.id = i.award_type_id`

	updateAwardSQL = `
WITH updated AS (
    UPDATE awards SET award_type_id = $2, award_date = $3
    WHERE id = $1
    RETURNING employee_id, award_type_id, created_at
)
SELECT u.employee_id, t.name, u.created_at
FROM updated u JOIN award_types t ON t.id = u.award_type_id`

	deleteAwardSQL = `DELETE FROM awards WHERE id = $1`

	listAwardsSQL = `
SELECT a.id, a.employee_id, a.award_type_id, t.name, a.award_date, a.created_at
FROM awards a
JOIN award_types t ON t.id = a.award_type_id
WHERE a.employee_id = $1
ORDER BY a.award_date DESC, a.created_at DESC, a.id DESC`
)

type awardTypeStore struct {
	conn db.DBTX
}

func newAwardTypeStore(conn db.DBTX) AwardTypeStore {
	return &awardTypeStore{conn: conn}
}

func (s *awardTypeStore) GetByID(ctx context.Context, id int64) (*model.AwardType, error) {
	var t model.AwardType
	if err := s.conn.QueryRow(ctx, getAwardTypeSQL, id).Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *awardTypeStore) Create(ctx context.Context, t *model.AwardType) error {
	if err := s.conn.QueryRow(ctx, createAwardTypeSQL, t.ID, t.Name).Scan(&t.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *awardTypeStore) List(ctx context.Context) ([]model.AwardType, error) {
	rows, err := s.conn.Query(ctx, listAwardTypesSQL)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.AwardType, error) {
		var t model.AwardType
		err := row.Scan(&t.ID, &t.Name, &t.CreatedAt)
		return t, err
	})
}

type awardStore struct {
	conn db.DBTX
}

func newAwardStore(conn db.DBTX) AwardStore {
	return &awardStore{conn: conn}
}

func (s *awardStore) Create(ctx context.Context, a *model.Award) error {
	row := s.conn.QueryRow(ctx, createAwardSQL, a.ID, a.EmployeeID, a.AwardTypeID, a.AwardDate)
	if err := row.Scan(&a.AwardTypeName, &a.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *awardStore) Update(ctx context.Context, a *model.Award) error {
	row := s.conn.QueryRow(ctx, updateAwardSQL, a.ID, a.AwardTypeID, a.AwardDate)
	if err := row.Scan(&a.EmployeeID, &a.AwardTypeName, &a.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (s *awardStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.conn, deleteAwardSQL, id)
}

func (s *awardStore) ListByEmployee(ctx context.Context, employeeID int64) ([]model.Award, error) {
	rows, err := s.conn.Query(ctx, listAwardsSQL, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Award, error) {
		var a model.Award
		err := row.Scan(&a.ID, &a.EmployeeID, &a.AwardTypeID, &a.AwardTypeName, &a.AwardDate, &a.CreatedAt)
		return a, err
	})
}
