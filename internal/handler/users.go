package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmhub/movie-catalog-api/internal/repository"
)

// ----- DTOs -----

type loginReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type addUserReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     string  `json:"role"`
}

type deleteUserReq struct {
	Username *string `json:"username"`
}

type userCreatedResp struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// login matches the credentials against the store. On success the full
// user row comes back, password included (the stored value is plaintext;
// see model.User). On mismatch or unknown username the response is 401.
func (h *CatalogHandler) login(ctx context.Context, c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	if req.Username == nil {
		return missingField(c, "username")
	}
	if req.Password == nil {
		return missingField(c, "password")
	}

	u, err := h.Users.GetByCredentials(ctx, *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// getUsers lists all users, oldest first, without passwords.
func (h *CatalogHandler) getUsers(ctx context.Context, c echo.Context) error {
	users, err := h.Users.List(ctx)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// addUser creates a user unless the username is taken. The role
// defaults to "user" when absent.
func (h *CatalogHandler) addUser(ctx context.Context, c echo.Context) error {
	var req addUserReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	if req.Username == nil {
		return missingField(c, "username")
	}
	if req.Password == nil {
		return missingField(c, "password")
	}
	role := req.Role
	if role == "" {
		role = "user"
	}

	id, err := h.Users.Create(ctx, *req.Username, *req.Password, role)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "User already exists"})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusCreated, userCreatedResp{ID: id, Username: *req.Username, Role: role})
}

// deleteUser removes every row for the username. Success is reported
// whether or not any row existed.
func (h *CatalogHandler) deleteUser(ctx context.Context, c echo.Context) error {
	var req deleteUserReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	if req.Username == nil {
		return missingField(c, "username")
	}

	if err := h.Users.DeleteByUsername(ctx, *req.Username); err != nil {
		return internalError(c, err)
	}
	return successBody(c)
}
