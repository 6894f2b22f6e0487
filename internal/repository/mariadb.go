package repository

import (
	"context"

	"github.com/deppfellow/sample-api/internal/database"
	"github.com/deppfellow/sample-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// connx takes a dedicated connection from the sqlx pool within the
// database timeout. The caller must call release.
func connx(ctx context.Context, db *database.Database) (*sqlx.Conn, context.Context, func(), error) {
	ctx, cancel := db.WithTimeout(ctx)

	conn, err := db.SQL.Connx(ctx)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return conn, ctx, func() {
		_ = conn.Close()
		cancel()
	}, nil
}

// exec runs one write statement and reports the matched rows.
func exec(ctx context.Context, db *database.Database, query string, args ...any) (int64, error) {
	conn, ctx, release, err := connx(ctx, db)
	if err != nil {
		return 0, err
	}
	defer release()

	done := db.ObserveQuery(query)
	result, err := conn.ExecContext(ctx, query, args...)
	done(err)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// selectAll runs one read statement into dest.
func selectAll(ctx context.Context, db *database.Database, dest any, query string) error {
	conn, ctx, release, err := connx(ctx, db)
	if err != nil {
		return err
	}
	defer release()

	done := db.ObserveQuery(query)
	err = conn.SelectContext(ctx, dest, query)
	done(err)

	return err
}

type MariaDBAgentRepository struct {
	db *database.Database
}

func NewMariaDBAgentRepository(db *database.Database) *MariaDBAgentRepository {
	return &MariaDBAgentRepository{db: db}
}

func (r *MariaDBAgentRepository) ListAgents(ctx context.Context) ([]model.Agent, error) {
	agents := []model.Agent{}
	if err := selectAll(ctx, r.db, &agents, "SELECT "+agentColumns+" FROM agents"); err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *MariaDBAgentRepository) CreateAgent(ctx context.Context, fields model.AgentFields) (int64, error) {
	conn, ctx, release, err := connx(ctx, r.db)
	if err != nil {
		return 0, err
	}
	defer release()

	query := "INSERT INTO agents (name, working_area, commission) VALUES (?, ?, ?)"

	done := r.db.ObserveQuery(query)
	result, err := conn.ExecContext(ctx, query, fields.Name, fields.WorkingArea, fields.Commission)
	done(err)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (r *MariaDBAgentRepository) UpdateAgent(ctx context.Context, id int64, patch model.AgentPatch) (int64, error) {
	query, args := buildAgentUpdate(id, patch, questionPlaceholder)
	return exec(ctx, r.db, query, args...)
}

func (r *MariaDBAgentRepository) ReplaceAgent(ctx context.Context, id int64, fields model.AgentFields) (int64, error) {
	return exec(ctx, r.db,
		"UPDATE agents SET name = ?, working_area = ?, commission = ? WHERE id = ?",
		fields.Name, fields.WorkingArea, fields.Commission, id,
	)
}

func (r *MariaDBAgentRepository) DeleteAgent(ctx context.Context, id int64) (int64, error) {
	return exec(ctx, r.db, "DELETE FROM agents WHERE id = ?", id)
}

type MariaDBCustomerRepository struct {
	db *database.Database
}

func NewMariaDBCustomerRepository(db *database.Database) *MariaDBCustomerRepository {
	return &MariaDBCustomerRepository{db: db}
}

func (r *MariaDBCustomerRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	if err := selectAll(ctx, r.db, &customers, "SELECT "+customerColumns+" FROM customer"); err != nil {
		return nil, err
	}
	return customers, nil
}

type MariaDBOrderRepository struct {
	db *database.Database
}

func NewMariaDBOrderRepository(db *database.Database) *MariaDBOrderRepository {
	return &MariaDBOrderRepository{db: db}
}

func (r *MariaDBOrderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := selectAll(ctx, r.db, &orders, "SELECT "+orderColumns+" FROM orders"); err != nil {
		return nil, err
	}
	return orders, nil
}
