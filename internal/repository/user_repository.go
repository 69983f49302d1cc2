package repository

import (
	"context"
	"database/sql"

	"github.com/filmhub/movie-catalog-api/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetByCredentials fetches the user matching both username and password.
// The comparison is plaintext against the stored plaintext column; this
// preserves the API contract as observed and is flagged as a security
// defect in DESIGN.md. Returns sql.ErrNoRows when nothing matches.
func (r *UserRepo) GetByCredentials(ctx context.Context, username, password string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password, role, created_at FROM users WHERE username = $1 AND password = $2 LIMIT 1",
		username, password).Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	return u, err
}

// List returns all users without the password column, oldest first.
func (r *UserRepo) List(ctx context.Context) ([]model.UserSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, username, role, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserSummary, 0)
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a user and returns its id. An existing username yields
// ErrUserExists without inserting. Check and insert are two statements,
// so a concurrent create can slip between them; see ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, username, password, role string) (int64, error) {
	var existing int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE username = $1 LIMIT 1", username).Scan(&existing)
	if err == nil {
		return 0, ErrUserExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	var id int64
	err = r.DB.QueryRowContext(ctx,
		"INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id",
		username, password, role).Scan(&id)
	return id, err
}

// DeleteByUsername removes every row with the given username. Deleting
// a nonexistent user is not an error.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE username = $1", username)
	return err
}
