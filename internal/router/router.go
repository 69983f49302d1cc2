package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/filmhub/movie-catalog-api/internal/handler"
)

// RegisterRoutes wires the whole API onto the provided Echo instance.
// The catalog intentionally hangs off a single entrypoint: every
// operation is selected by the `action` query parameter inside
// CatalogHandler.Handle, so /api is registered for all methods. The
// health check is the only other route.
func RegisterRoutes(e *echo.Echo, api *handler.CatalogHandler) {
	e.GET("/healthz", handler.Health)
	e.Any("/api", api.Handle)
}
