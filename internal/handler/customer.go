package handler

import (
	"github.com/deppfellow/sample-api/internal/model"
	"github.com/deppfellow/sample-api/internal/server"
	"github.com/deppfellow/sample-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

func (h *CustomerHandler) ListCustomers(c echo.Context, _ *model.ListRequest) ([]model.Customer, error) {
	return h.customers.List(c.Request().Context())
}
