package services

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ensureTaskOwner returns ErrTaskNotFound unless the task exists and
// belongs to the user.
func ensureTaskOwner(ctx context.Context, db DB, userID, taskID int64) error {
	const selectTaskOwnedQuery = `
SELECT EXISTS (SELECT 1
               FROM tasks
               WHERE id = $1 AND user_id = $2)
`
	var owned bool
	err := db.QueryRow(
		ctx,
		selectTaskOwnedQuery,
		taskID,
		userID,
	).Scan(&owned)
	if err != nil {
		return err
	}
	if !owned {
		return ErrTaskNotFound
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isMissingTask reports whether err means the referenced task vanished,
// either because the guarded insert matched nothing or because the
// foreign key was violated by a concurrent delete.
func isMissingTask(err error) bool {
	if isNoRows(err) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
