package router

import (
	"net/http"

	"github.com/deppfellow/sample-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerAgentRoutes(r *echo.Echo, h *handler.Handlers) {
	agents := r.Group("/agents")

	agents.GET("", handler.Handle(h.Agent.Handler, h.Agent.ListAgents, http.StatusOK))
	agents.POST("", handler.Handle(h.Agent.Handler, h.Agent.CreateAgent, http.StatusCreated))
	agents.PATCH("/:id", handler.Handle(h.Agent.Handler, h.Agent.UpdateAgent, http.StatusOK))
	agents.PUT("/:id", handler.Handle(h.Agent.Handler, h.Agent.ReplaceAgent, http.StatusOK))
	agents.DELETE("/:id", handler.Handle(h.Agent.Handler, h.Agent.DeleteAgent, http.StatusOK))
}

func registerCustomerRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/customers", handler.Handle(h.Customer.Handler, h.Customer.ListCustomers, http.StatusOK))
}

func registerOrderRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/orders", handler.Handle(h.Order.Handler, h.Order.ListOrders, http.StatusOK))
}
