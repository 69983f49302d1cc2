package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filmhub/movie-catalog-api/internal/model"
)

// ----- DTOs -----

// addMovieReq uses pointer fields for the required values so that an
// absent key is distinguishable from a zero value.
type addMovieReq struct {
	Title       *string  `json:"title"`
	Year        *int     `json:"year"`
	Genre       *string  `json:"genre"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"imageUrl"`
	VideoURL    *string  `json:"videoUrl"`
	Hashtags    []string `json:"hashtags"`
}

type updateMovieReq struct {
	ID *int64 `json:"id"`
	model.MoviePatch
}

type deleteMovieReq struct {
	ID *int64 `json:"id"`
}

// getMovies lists all movies, newest first. When the userId query
// parameter is present, each movie is annotated with an is_saved flag
// derived from that user's saved set.
func (h *CatalogHandler) getMovies(ctx context.Context, c echo.Context) error {
	movies, err := h.Movies.List(ctx)
	if err != nil {
		return internalError(c, err)
	}

	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return internalError(c, err)
		}
		savedIDs, err := h.Saved.SavedMovieIDs(ctx, userID)
		if err != nil {
			return internalError(c, err)
		}
		for i := range movies {
			saved := savedIDs[movies[i].ID]
			movies[i].IsSaved = &saved
		}
	}

	return c.JSON(http.StatusOK, movies)
}

// addMovie inserts one movie. title, year, genre and description are
// required; the remaining fields default to zero/empty values.
func (h *CatalogHandler) addMovie(ctx context.Context, c echo.Context) error {
	var req addMovieReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	switch {
	case req.Title == nil:
		return missingField(c, "title")
	case req.Year == nil:
		return missingField(c, "year")
	case req.Genre == nil:
		return missingField(c, "genre")
	case req.Description == nil:
		return missingField(c, "description")
	}

	n := model.NewMovie{
		Title:       *req.Title,
		Year:        *req.Year,
		Genre:       *req.Genre,
		Description: *req.Description,
		Hashtags:    []string{},
	}
	if req.Rating != nil {
		n.Rating = *req.Rating
	}
	if req.ImageURL != nil {
		n.ImageURL = *req.ImageURL
	}
	if req.VideoURL != nil {
		n.VideoURL = *req.VideoURL
	}
	if req.Hashtags != nil {
		n.Hashtags = req.Hashtags
	}

	movie, err := h.Movies.Create(ctx, n)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusCreated, movie)
}

// updateMovie applies a partial update to one movie. Only id is
// required; with no other field present the update still runs and
// refreshes updated_at.
func (h *CatalogHandler) updateMovie(ctx context.Context, c echo.Context) error {
	var req updateMovieReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	if req.ID == nil {
		return missingField(c, "id")
	}

	movie, err := h.Movies.Update(ctx, *req.ID, req.MoviePatch)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// deleteMovie removes one movie by id. Success is reported whether or
// not the row existed.
func (h *CatalogHandler) deleteMovie(ctx context.Context, c echo.Context) error {
	var req deleteMovieReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	if req.ID == nil {
		return missingField(c, "id")
	}

	if err := h.Movies.Delete(ctx, *req.ID); err != nil {
		return internalError(c, err)
	}
	return successBody(c)
}
