package model

import "time"

// User mirrors a row of the `users` table.
//
// The password column holds the plaintext value as given at signup and
// the login response returns the full row including it. This is a known
// security defect of the API contract this service preserves; do not
// rely on the password being protected at rest.
type User struct {
	ID        int64     `json:"id"`         // users.id
	Username  string    `json:"username"`   // users.username (unique)
	Password  string    `json:"password"`   // users.password (plaintext, see above)
	Role      string    `json:"role"`       // users.role (defaults to "user")
	CreatedAt time.Time `json:"created_at"` // users.created_at
}

// UserSummary is the listing shape for users: everything except the
// password column.
type UserSummary struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
