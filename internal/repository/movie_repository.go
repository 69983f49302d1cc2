package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/filmhub/movie-catalog-api/internal/model"
)

const movieColumns = "id, title, year, genre, rating, description, image_url, video_url, hashtags, created_at, updated_at"

type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

// scanMovie reads one movie row in movieColumns order. The hashtags
// column is normalized to an empty slice so responses never carry null.
func scanMovie(row interface{ Scan(...any) error }) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Genre, &m.Rating, &m.Description,
		&m.ImageURL, &m.VideoURL, pq.Array(&m.Hashtags), &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.Movie{}, err
	}
	if m.Hashtags == nil {
		m.Hashtags = []string{}
	}
	return m, nil
}

// List returns all movies, newest first.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Create inserts a movie and returns the stored row, including the
// generated id and timestamps.
func (r *MovieRepo) Create(ctx context.Context, n model.NewMovie) (model.Movie, error) {
	return scanMovie(r.DB.QueryRowContext(ctx,
		`INSERT INTO movies (title, year, genre, rating, description, image_url, video_url, hashtags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+movieColumns,
		n.Title, n.Year, n.Genre, n.Rating, n.Description, n.ImageURL, n.VideoURL, pq.Array(n.Hashtags)))
}

// Update applies the present fields of a patch to one movie and returns
// the updated row. The SET clause is assembled from a fixed list of
// column literals with bound placeholders; caller-supplied keys never
// reach the SQL text. updated_at is always refreshed, even when the
// patch carries no fields.
func (r *MovieRepo) Update(ctx context.Context, id int64, p model.MoviePatch) (model.Movie, error) {
	set := make([]string, 0, 9)
	args := make([]any, 0, 9)
	add := func(column string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Year != nil {
		add("year", *p.Year)
	}
	if p.Genre != nil {
		add("genre", *p.Genre)
	}
	if p.Rating != nil {
		add("rating", *p.Rating)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.VideoURL != nil {
		add("video_url", *p.VideoURL)
	}
	if p.Hashtags != nil {
		add("hashtags", pq.Array(*p.Hashtags))
	}
	set = append(set, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE movies SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), movieColumns)

	m, err := scanMovie(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Movie{}, fmt.Errorf("movie %d not found", id)
	}
	return m, err
}

// Delete removes a movie by id. Deleting a missing row is not an error.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM movies WHERE id = $1", id)
	return err
}
