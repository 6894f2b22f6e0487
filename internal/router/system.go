package router

import (
	"github.com/deppfellow/sample-api/internal/handler"
	"github.com/deppfellow/sample-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not resources:
// health, the docs viewer and the static OpenAPI document.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
