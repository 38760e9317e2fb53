package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// translate maps driver errors onto ErrNotFound and ErrDuplicate. A missing
// parent row on insert counts as not found.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return ErrNotFound
		case uniqueViolation:
			return ErrDuplicate
		}
	}
	return err
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, conn db.DBTX, sql string, args ...any) error {
	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
