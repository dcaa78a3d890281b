package sqlite

import (
	"context"
	"fmt"

	"github.com/ciphersql/studio/pkg/models"
)

func (r *SQLiteRepo) CreateAttempt(ctx context.Context, a *models.Attempt) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("attempt is nil")
	}

	executedAt := a.ExecutedAt
	if executedAt == 0 {
		executedAt = now()
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO attempts (user_email, assignment_id, query, is_success, executed_at) VALUES (?, ?, ?, ?, ?)`,
		a.UserEmail, a.AssignmentID, a.Query, a.IsSuccess, executedAt)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListAttemptsByEmail(ctx context.Context, email string) ([]models.Attempt, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_email, assignment_id, query, is_success, executed_at FROM attempts WHERE user_email = ? ORDER BY executed_at DESC, id DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Attempt
	for rows.Next() {
		var a models.Attempt
		if err := rows.Scan(&a.ID, &a.UserEmail, &a.AssignmentID, &a.Query, &a.IsSuccess, &a.ExecutedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountSolvedAssignments(ctx context.Context, email string) (int, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(DISTINCT assignment_id) FROM attempts WHERE user_email = ? AND is_success = 1`, email)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *SQLiteRepo) DailyActivity(ctx context.Context, email string) ([]models.DayActivity, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT date(executed_at, 'unixepoch') AS day, COUNT(*) FROM attempts WHERE user_email = ? GROUP BY day ORDER BY day`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DayActivity
	for rows.Next() {
		var d models.DayActivity
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
