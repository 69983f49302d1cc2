// Package repository implements data access over a Postgres database.
// Sentinel errors defined here let handlers map specific failure
// scenarios to their HTTP status codes while every other error is
// surfaced generically.
package repository

import "errors"

// ErrUserExists is returned by UserRepo.Create when the username is
// already taken. Handlers translate this into an HTTP 409 response.
// The existence check is a separate statement, not a transaction, so
// two concurrent creates for the same username can both pass it; a
// store-level unique violation then surfaces as a plain error, not as
// ErrUserExists.
var ErrUserExists = errors.New("user already exists")
