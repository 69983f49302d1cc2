package handler // handler implements the action-dispatched movie catalog API

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmhub/movie-catalog-api/internal/model"
)

// dbTimeout bounds every store call issued on behalf of one request.
const dbTimeout = 5 * time.Second

// MovieStore is the persistence surface the movie operations need.
type MovieStore interface {
	List(ctx context.Context) ([]model.Movie, error)
	Create(ctx context.Context, n model.NewMovie) (model.Movie, error)
	Update(ctx context.Context, id int64, p model.MoviePatch) (model.Movie, error)
	Delete(ctx context.Context, id int64) error
}

// UserStore is the persistence surface the user and auth operations need.
// GetByCredentials reports a failed match as sql.ErrNoRows and Create
// reports a taken username as repository.ErrUserExists.
type UserStore interface {
	GetByCredentials(ctx context.Context, username, password string) (model.User, error)
	List(ctx context.Context) ([]model.UserSummary, error)
	Create(ctx context.Context, username, password, role string) (int64, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// SavedMovieStore is the persistence surface for the saved-movie toggle.
type SavedMovieStore interface {
	SavedMovieIDs(ctx context.Context, userID int64) (map[int64]bool, error)
	Save(ctx context.Context, userID, movieID int64) error
	Unsave(ctx context.Context, userID, movieID int64) error
}

// CatalogHandler bundles the stores behind the single API entrypoint.
type CatalogHandler struct {
	Movies MovieStore
	Users  UserStore
	Saved  SavedMovieStore
}

func NewCatalogHandler(movies MovieStore, users UserStore, saved SavedMovieStore) *CatalogHandler {
	if movies == nil || users == nil || saved == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Movies: movies, Users: users, Saved: saved}
}

// Handle is the single entrypoint for the whole action surface. It sets
// the CORS headers on every response, short-circuits OPTIONS preflight
// before any store access, and selects one operation by the combination
// of the `action` query parameter and the HTTP method. Unmatched
// combinations yield 404.
func (h *CatalogHandler) Handle(c echo.Context) error {
	setCORSHeaders(c.Response().Header())

	method := c.Request().Method
	if method == http.MethodOptions {
		return c.NoContent(http.StatusOK)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	action := c.QueryParam("action")
	switch {
	case action == "getMovies":
		return h.getMovies(ctx, c)
	case action == "addMovie" && method == http.MethodPost:
		return h.addMovie(ctx, c)
	case action == "updateMovie" && method == http.MethodPost:
		return h.updateMovie(ctx, c)
	case action == "deleteMovie" && method == http.MethodPost:
		return h.deleteMovie(ctx, c)
	case action == "toggleSaved" && method == http.MethodPost:
		return h.toggleSaved(ctx, c)
	case action == "login" && method == http.MethodPost:
		return h.login(ctx, c)
	case action == "getUsers":
		return h.getUsers(ctx, c)
	case action == "addUser" && method == http.MethodPost:
		return h.addUser(ctx, c)
	case action == "deleteUser" && method == http.MethodPost:
		return h.deleteUser(ctx, c)
	default:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
	}
}

// setCORSHeaders applies the permissive CORS policy the API has always
// exposed. The headers accompany every response, success or failure,
// the OPTIONS short-circuit included.
func setCORSHeaders(header http.Header) {
	header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, X-User-Id")
}

// internalError surfaces any unclassified failure as 500 with the raw
// message. Missing-field, coercion and store failures all land here;
// callers cannot tell them apart beyond the message text, which is the
// documented contract.
func internalError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// missingField reports an absent required body field. The message names
// the field but the status stays 500 for compatibility.
func missingField(c echo.Context, name string) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "missing required field: " + name})
}

// successBody is the fixed response for the unconditional-success
// mutations (deletes and the saved toggle).
func successBody(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
