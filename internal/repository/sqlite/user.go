package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO app_users (id, name, email, role, password_hash, created) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Role, u.PasswordHash, now())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repository.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, role, password_hash, created FROM app_users WHERE email = ?`, email)
	var u models.User
	var pw sql.NullString
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &pw, &u.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		u.PasswordHash = pw.String
	}

	return &u, nil
}
