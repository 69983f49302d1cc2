package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/filmhub/movie-catalog-api/internal/model"
)

func TestLoginSuccessReturnsFullRow(t *testing.T) {
	api := newTestAPI(t)
	api.users.users["alice"] = model.User{
		ID:        3,
		Username:  "alice",
		Password:  "secret",
		Role:      "admin",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	rec := api.do(t, http.MethodPost, "/api?action=login", `{"username":"alice","password":"secret"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]any
	decodeBody(t, rec, &got)
	if got["username"] != "alice" || got["role"] != "admin" {
		t.Errorf("row fields wrong: %v", got)
	}
	// The contract returns the stored row as-is, password included.
	if got["password"] != "secret" {
		t.Errorf("password = %v, want the stored value", got["password"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	api := newTestAPI(t)
	api.users.users["alice"] = model.User{Username: "alice", Password: "secret"}

	rec := api.do(t, http.MethodPost, "/api?action=login", `{"username":"alice","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["error"] != "Invalid credentials" {
		t.Errorf("error = %q, want %q", resp["error"], "Invalid credentials")
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api?action=login", `{"username":"ghost","password":"x"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	api := newTestAPI(t)

	for _, body := range []string{`{"username":"alice"}`, `{"password":"secret"}`, `{}`} {
		rec := api.do(t, http.MethodPost, "/api?action=login", body)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("body %s: status = %d, want 500", body, rec.Code)
		}
	}
}

func TestGetUsersOmitsPasswords(t *testing.T) {
	api := newTestAPI(t)
	api.users.summaries = []model.UserSummary{
		{ID: 1, Username: "alice", Role: "admin", CreatedAt: time.Now().UTC()},
		{ID: 2, Username: "bob", Role: "user", CreatedAt: time.Now().UTC()},
	}

	rec := api.do(t, http.MethodGet, "/api?action=getUsers", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []map[string]any
	decodeBody(t, rec, &got)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, u := range got {
		if _, ok := u["password"]; ok {
			t.Errorf("password leaked in listing: %v", u)
		}
	}
}

func TestAddUserCreatesWithDefaultRole(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api?action=addUser", `{"username":"carol","password":"pw"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got map[string]any
	decodeBody(t, rec, &got)
	if got["username"] != "carol" || got["role"] != "user" {
		t.Errorf("response = %v, want carol with default role", got)
	}
	if got["id"] == nil {
		t.Error("response missing id")
	}
	// Exactly id, username and role come back. No password, no timestamp.
	if len(got) != 3 {
		t.Errorf("response has %d fields, want 3: %v", len(got), got)
	}
}

func TestAddUserExplicitRole(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api?action=addUser",
		`{"username":"dave","password":"pw","role":"admin"}`)

	var got map[string]any
	decodeBody(t, rec, &got)
	if got["role"] != "admin" {
		t.Errorf("role = %v, want admin", got["role"])
	}
}

func TestAddUserDuplicateIs409(t *testing.T) {
	api := newTestAPI(t)
	api.users.users["alice"] = model.User{Username: "alice", Password: "secret"}

	rec := api.do(t, http.MethodPost, "/api?action=addUser", `{"username":"alice","password":"pw"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["error"] != "User already exists" {
		t.Errorf("error = %q, want %q", resp["error"], "User already exists")
	}
	if len(api.users.created) != 0 {
		t.Error("duplicate username still created a row")
	}
}

func TestAddUserMissingFields(t *testing.T) {
	api := newTestAPI(t)

	for _, body := range []string{`{"username":"x"}`, `{"password":"x"}`} {
		rec := api.do(t, http.MethodPost, "/api?action=addUser", body)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("body %s: status = %d, want 500", body, rec.Code)
		}
	}
}

func TestDeleteUserAlwaysSucceeds(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api?action=deleteUser", `{"username":"ghost"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]bool
	decodeBody(t, rec, &resp)
	if !resp["success"] {
		t.Errorf("body = %s, want success true", rec.Body.String())
	}
	if len(api.users.deleted) != 1 || api.users.deleted[0] != "ghost" {
		t.Errorf("deleted = %v, want [ghost]", api.users.deleted)
	}
}

func TestDeleteUserRequiresUsername(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api?action=deleteUser", `{}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
