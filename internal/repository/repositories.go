package repository

import (
	"context"

	"github.com/deppfellow/sample-api/internal/config"
	"github.com/deppfellow/sample-api/internal/database"
	"github.com/deppfellow/sample-api/internal/model"
	"github.com/deppfellow/sample-api/internal/server"
)

// AgentRepository reads and writes the agents table.
//
// The update, replace and delete methods return the number of rows the
// statement matched.
type AgentRepository interface {
	ListAgents(ctx context.Context) ([]model.Agent, error)
	CreateAgent(ctx context.Context, fields model.AgentFields) (int64, error)
	UpdateAgent(ctx context.Context, id int64, patch model.AgentPatch) (int64, error)
	ReplaceAgent(ctx context.Context, id int64, fields model.AgentFields) (int64, error)
	DeleteAgent(ctx context.Context, id int64) (int64, error)
}

// CustomerRepository reads the customer table.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

// OrderRepository reads the orders table.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Agent    AgentRepository
	Customer CustomerRepository
	Order    OrderRepository
}

// NewRepositories builds the repositories for the driver the database
// pool was opened with.
func NewRepositories(s *server.Server) *Repositories {
	return ForDatabase(s.DB)
}

// ForDatabase builds the repositories over db.
func ForDatabase(db *database.Database) *Repositories {
	if db.Driver == config.DriverMariaDB {
		return &Repositories{
			Agent:    NewMariaDBAgentRepository(db),
			Customer: NewMariaDBCustomerRepository(db),
			Order:    NewMariaDBOrderRepository(db),
		}
	}

	return &Repositories{
		Agent:    NewPostgresAgentRepository(db),
		Customer: NewPostgresCustomerRepository(db),
		Order:    NewPostgresOrderRepository(db),
	}
}
