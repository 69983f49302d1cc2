package handler

import (
	"context"

	"github.com/labstack/echo/v4"
)

type toggleSavedReq struct {
	UserID  *int64 `json:"userId"`
	MovieID *int64 `json:"movieId"`
	IsSaved bool   `json:"isSaved"`
}

// toggleSaved sets or clears a user's saved relationship to a movie.
// Both directions are idempotent: saving an already-saved pair keeps a
// single association row and unsaving a missing one is a no-op. The
// response is the same either way.
func (h *CatalogHandler) toggleSaved(ctx context.Context, c echo.Context) error {
	var req toggleSavedReq
	if err := c.Bind(&req); err != nil {
		return internalError(c, err)
	}
	if req.UserID == nil {
		return missingField(c, "userId")
	}
	if req.MovieID == nil {
		return missingField(c, "movieId")
	}

	var err error
	if req.IsSaved {
		err = h.Saved.Save(ctx, *req.UserID, *req.MovieID)
	} else {
		err = h.Saved.Unsave(ctx, *req.UserID, *req.MovieID)
	}
	if err != nil {
		return internalError(c, err)
	}
	return successBody(c)
}
