package database

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/deppfellow/sample-api/internal/config"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// mariadbConfig maps the config onto a go-sql-driver/mysql config.
//
// ClientFoundRows makes UPDATE report matched rows rather than changed
// rows, so replacing an agent with identical values is not a 404.
func mariadbConfig(db config.DatabaseConfig) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = db.User
	mc.Passwd = db.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
	mc.DBName = db.Name
	mc.ParseTime = true
	mc.ClientFoundRows = true
	mc.Timeout = time.Duration(db.ConnectTimeout) * time.Second

	switch db.SSLMode {
	case "", "disable":
		mc.TLSConfig = "false"
	case "require":
		mc.TLSConfig = "skip-verify"
	case "verify-ca", "verify-full":
		mc.TLSConfig = "true"
	default:
		mc.TLSConfig = "preferred"
	}

	return mc
}

// newMariaDBPool opens the sqlx pool. database/sql dials lazily, so the
// first real connection happens on the startup ping.
func newMariaDBPool(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", mariadbConfig(cfg.Database).FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open mariadb pool: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
