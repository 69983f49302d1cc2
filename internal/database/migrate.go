package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// schema holds the full DDL. Every statement is idempotent
// (IF NOT EXISTS), so Migrate can run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	year        INT NOT NULL,
	genre       TEXT NOT NULL,
	rating      NUMERIC NOT NULL DEFAULT 0,
	description TEXT NOT NULL,
	image_url   TEXT NOT NULL DEFAULT '',
	video_url   TEXT NOT NULL DEFAULT '',
	hashtags    TEXT[] NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id         SERIAL PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	role       TEXT NOT NULL DEFAULT 'user',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_saved_movies (
	user_id  INT NOT NULL,
	movie_id INT NOT NULL,
	PRIMARY KEY (user_id, movie_id)
);
`

// Migrate creates any missing tables. Statements run one at a time so a
// failure reports which one broke.
func Migrate(db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w\nstatement: %s", err, stmt)
		}
	}
	return nil
}
