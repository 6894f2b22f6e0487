package handler

import (
	"github.com/deppfellow/sample-api/internal/model"
	"github.com/deppfellow/sample-api/internal/server"
	"github.com/deppfellow/sample-api/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context, _ *model.ListRequest) ([]model.Order, error) {
	return h.orders.List(c.Request().Context())
}
