package repository

import (
	"context"

	"github.com/deppfellow/sample-api/internal/database"
	"github.com/deppfellow/sample-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// acquire takes a connection from the pool within the database timeout.
// The caller must call release, which also cancels the timeout.
func acquire(ctx context.Context, db *database.Database) (*pgxpool.Conn, context.Context, func(), error) {
	ctx, cancel := db.WithTimeout(ctx)

	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return conn, ctx, func() {
		conn.Release()
		cancel()
	}, nil
}

type PostgresAgentRepository struct {
	db *database.Database
}

func NewPostgresAgentRepository(db *database.Database) *PostgresAgentRepository {
	return &PostgresAgentRepository{db: db}
}

func (r *PostgresAgentRepository) ListAgents(ctx context.Context) ([]model.Agent, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := conn.Query(ctx, "SELECT "+agentColumns+" FROM agents")
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Agent])
}

func (r *PostgresAgentRepository) CreateAgent(ctx context.Context, fields model.AgentFields) (int64, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer release()

	var id int64
	err = conn.QueryRow(ctx,
		"INSERT INTO agents (name, working_area, commission) VALUES ($1, $2, $3) RETURNING id",
		fields.Name, fields.WorkingArea, fields.Commission,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *PostgresAgentRepository) UpdateAgent(ctx context.Context, id int64, patch model.AgentPatch) (int64, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer release()

	sql, args := buildAgentUpdate(id, patch, dollarPlaceholder)

	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *PostgresAgentRepository) ReplaceAgent(ctx context.Context, id int64, fields model.AgentFields) (int64, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer release()

	tag, err := conn.Exec(ctx,
		"UPDATE agents SET name = $1, working_area = $2, commission = $3 WHERE id = $4",
		fields.Name, fields.WorkingArea, fields.Commission, id,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *PostgresAgentRepository) DeleteAgent(ctx context.Context, id int64) (int64, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer release()

	tag, err := conn.Exec(ctx, "DELETE FROM agents WHERE id = $1", id)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

type PostgresCustomerRepository struct {
	db *database.Database
}

func NewPostgresCustomerRepository(db *database.Database) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := conn.Query(ctx, "SELECT "+customerColumns+" FROM customer")
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Customer])
}

type PostgresOrderRepository struct {
	db *database.Database
}

func NewPostgresOrderRepository(db *database.Database) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	conn, ctx, release, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := conn.Query(ctx, "SELECT "+orderColumns+" FROM orders")
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
}
