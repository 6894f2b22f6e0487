package handler

import (
	"github.com/deppfellow/sample-api/internal/server"
	"github.com/deppfellow/sample-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Agent    *AgentHandler
	Customer *CustomerHandler
	Order    *OrderHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Agent:    NewAgentHandler(s, services.Agent),
		Customer: NewCustomerHandler(s, services.Customer),
		Order:    NewOrderHandler(s, services.Order),
	}
}
