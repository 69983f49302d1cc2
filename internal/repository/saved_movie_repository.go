package repository

import (
	"context"
	"database/sql"
)

// SavedMovieRepo manages the user_saved_movies association table. The
// table has no identifier of its own; a row is the (user, movie) pair.
type SavedMovieRepo struct{ DB *sql.DB }

func NewSavedMovieRepo(db *sql.DB) *SavedMovieRepo { return &SavedMovieRepo{DB: db} }

// SavedMovieIDs returns the set of movie ids the user has saved.
func (r *SavedMovieRepo) SavedMovieIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT movie_id FROM user_saved_movies WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// Save records the association. A pre-existing identical pair is
// tolerated: no error, no duplicate row.
func (r *SavedMovieRepo) Save(ctx context.Context, userID, movieID int64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_saved_movies (user_id, movie_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, movieID)
	return err
}

// Unsave removes the association if present.
func (r *SavedMovieRepo) Unsave(ctx context.Context, userID, movieID int64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM user_saved_movies WHERE user_id = $1 AND movie_id = $2",
		userID, movieID)
	return err
}
