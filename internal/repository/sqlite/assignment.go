package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ciphersql/studio/pkg/models"
)

// catalogOrder sorts by difficulty ordinal (Beginner, Intermediate,
// Advanced, anything else last), then title.
const catalogOrder = `ORDER BY CASE difficulty
	WHEN 'Beginner' THEN 1
	WHEN 'Intermediate' THEN 2
	WHEN 'Advanced' THEN 3
	ELSE 4 END, title`

func (r *SQLiteRepo) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, difficulty, description, requirements, initial_query, schemas FROM assignments `+catalogOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetAssignment(ctx context.Context, id string) (*models.Assignment, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, difficulty, description, requirements, initial_query, schemas FROM assignments WHERE id = ?`, id)
	a, err := scanAssignment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return a, err
}

func scanAssignment(scan func(...any) error) (*models.Assignment, error) {
	var a models.Assignment
	var reqs, schemas string
	var initial sql.NullString
	if err := scan(&a.ID, &a.Title, &a.Difficulty, &a.Description, &reqs, &initial, &schemas); err != nil {
		return nil, err
	}

	if initial.Valid {
		a.InitialQuery = initial.String
	}
	if err := json.Unmarshal([]byte(reqs), &a.Requirements); err != nil {
		return nil, fmt.Errorf("decode requirements for %s: %w", a.ID, err)
	}
	if err := json.Unmarshal([]byte(schemas), &a.Schemas); err != nil {
		return nil, fmt.Errorf("decode schemas for %s: %w", a.ID, err)
	}

	return &a, nil
}
