// Package database opens the database/sql connection the migration tooling
// runs over. Portal traffic goes through pgx; this lib/pq side exists only
// for cmd/migrate.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	_ "github.com/lib/pq"

	"portal-service/app/config"
)

const (
	defaultPort = 5432
	connTimeout = 10 * time.Second

	// Migrations run a handful of sequential statements; the pool stays tiny.
	maxOpenConns = 5
	maxIdleConns = 2
)

// Connection wraps the database/sql handle handed to the migrator.
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects using the service configuration and verifies the connection
// with a ping before handing it out.
func Open(cfg *config.Config, logger *slog.Logger) (*Connection, error) {
	log := logger.With("component", "database")

	log.Info("connecting to database",
		"host", cfg.DatabaseHost,
		"port", cfg.DatabasePort,
		"database", cfg.DatabaseName,
		"ssl_mode", cfg.DatabaseSSLMode)

	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connection established")
	return &Connection{db: db, logger: log}, nil
}

// DSN builds the lib/pq connection string from the service configuration.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		cfg.DatabaseHost,
		Port(cfg),
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
		int(connTimeout.Seconds()),
	)
}

// Port parses the configured port, falling back to the Postgres default.
func Port(cfg *config.Config) int {
	port, err := strconv.Atoi(cfg.DatabasePort)
	if err != nil || port <= 0 {
		return defaultPort
	}
	return port
}

// DB returns the underlying handle for the migrator.
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection.
func (c *Connection) Close() error {
	if c.db == nil {
		return nil
	}
	c.logger.Info("closing database connection")
	return c.db.Close()
}
