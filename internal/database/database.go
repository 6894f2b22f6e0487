// Package database contains the logic for establishing
// connections to the relational database.
//
// It builds the process-wide connection pool for the configured driver
// (pgxpool for PostgreSQL, sqlx over go-sql-driver/mysql for MariaDB),
// wires query tracing/logging, and exposes ping, pool statistics and
// close for the health check and shutdown paths.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/sample-api/internal/config"
	loggerConfig "github.com/deppfellow/sample-api/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Database wraps the connection pool of the configured driver.
//
// Exactly one of Pool and SQL is set, depending on Driver.
type Database struct {
	Driver string
	Pool   *pgxpool.Pool
	SQL    *sqlx.DB

	// Timeout bounds acquiring a connection plus running one statement.
	Timeout time.Duration

	slow *slowQueryLogger
	log  *zerolog.Logger
}

// Stats is a snapshot of the pool.
type Stats struct {
	Total    int32 `json:"total_conns"`
	Acquired int32 `json:"acquired_conns"`
	Idle     int32 `json:"idle_conns"`
	Max      int32 `json:"max_conns"`
}

// DatabasePingTimeout is the number of seconds the startup ping may take.
const DatabasePingTimeout = 10

// New creates the connection pool for cfg.Database.Driver and pings it
// so startup fails fast when the database is unreachable.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	database := &Database{
		Driver:  cfg.Database.Driver,
		Timeout: time.Duration(cfg.Database.ConnectTimeout) * time.Second,
		slow:    newSlowQueryLogger(logger, cfg.Observability.Logging.SlowQueryThreshold),
		log:     logger,
	}

	var err error
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		database.Pool, err = newPostgresPool(cfg, logger, loggerService, database.slow)
	case config.DriverMariaDB:
		database.SQL, err = newMariaDBPool(cfg)
	default:
		err = fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = database.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("driver", database.Driver).
		Str("host", cfg.Database.Host).
		Int("max_conns", cfg.Database.MaxOpenConns).
		Msg("connected to the database")

	return database, nil
}

// WithTimeout derives the context a repository call runs under.
func (db *Database) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.Timeout)
}

// ObserveQuery starts timing a statement that does not go through the
// pgx tracer. Call the returned func with the statement's error when it
// finishes.
func (db *Database) ObserveQuery(sql string) func(err error) {
	started := time.Now()
	return func(err error) {
		db.slow.observe(sql, time.Since(started), err)
	}
}

// Ping checks that the database answers.
func (db *Database) Ping(ctx context.Context) error {
	switch {
	case db.Pool != nil:
		return db.Pool.Ping(ctx)
	case db.SQL != nil:
		return db.SQL.PingContext(ctx)
	default:
		return errors.New("database not initialized")
	}
}

// Stats returns the current pool counters.
func (db *Database) Stats() Stats {
	switch {
	case db.Pool != nil:
		s := db.Pool.Stat()
		return Stats{
			Total:    s.TotalConns(),
			Acquired: s.AcquiredConns(),
			Idle:     s.IdleConns(),
			Max:      s.MaxConns(),
		}
	case db.SQL != nil:
		s := db.SQL.Stats()
		return Stats{
			Total:    int32(s.OpenConnections),
			Acquired: int32(s.InUse),
			Idle:     int32(s.Idle),
			Max:      int32(s.MaxOpenConnections),
		}
	default:
		return Stats{}
	}
}

// Close closes the connection pool.
func (db *Database) Close() error {
	if db.log != nil {
		db.log.Info().Msg("closing database connection pool")
	}

	if db.Pool != nil {
		db.Pool.Close()
	}

	if db.SQL != nil {
		if err := db.SQL.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
