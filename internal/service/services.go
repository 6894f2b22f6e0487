package service

import (
	"github.com/deppfellow/sample-api/internal/repository"
)

// Services groups the resource services.
type Services struct {
	Agent    *AgentService
	Customer *CustomerService
	Order    *OrderService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Agent:    NewAgentService(repos.Agent),
		Customer: NewCustomerService(repos.Customer),
		Order:    NewOrderService(repos.Order),
	}
}
