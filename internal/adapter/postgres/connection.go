package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

// Connection opens the database and applies migrations on first use.
type Connection struct {
	dsn           string
	migrationsDir string
	logger        ports.LoggerPort
	open          func(driver, dsn string) (*sql.DB, error)
	migrate       func(db *sql.DB, dir string) error

	mu sync.Mutex
	db *sql.DB
}

func NewConnection(dsn, migrationsDir string, logger ports.LoggerPort) *Connection {
	return &Connection{
		dsn:           dsn,
		migrationsDir: migrationsDir,
		logger:        logger,
		open:          sql.Open,
		migrate: func(db *sql.DB, dir string) error {
			return goose.Up(db, dir)
		},
	}
}

// NewConnectionFromDB wraps an already opened handle; migrations are skipped.
func NewConnectionFromDB(db *sql.DB) *Connection {
	return &Connection{db: db}
}

func DSN(host, port, user, password, name string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, name)
}

func (c *Connection) DB(ctx context.Context) (*sql.DB, error) {
	const op = "postgres.Connection.DB"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.open("postgres", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := c.migrate(db, c.migrationsDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", op, err)
	}

	c.db = db
	c.logger.Info("Connected to PostgreSQL", map[string]interface{}{
		"migrations": c.migrationsDir,
	})
	return db, nil
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
