// Package router builds the echo instance: middleware order, the
// global error handler and the route table.
package router

import (
	"github.com/deppfellow/sample-api/internal/handler"
	"github.com/deppfellow/sample-api/internal/middleware"
	"github.com/deppfellow/sample-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes.
//
// Order matters: the request id must exist before the New Relic
// attributes and the context logger are built, and the request logger
// must wrap Recover so recovered panics are logged with their status.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.Global.Secure(),
		mws.Global.CORS(),
	)

	registerSystemRoutes(r, h)
	registerAgentRoutes(r, h)
	registerCustomerRoutes(r, h)
	registerOrderRoutes(r, h)

	return r
}
