package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	sharedconfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

// Connection wraps the gorm handle so callers depend on this package, not
// on gorm's package-level state.
type Connection struct {
	db *gorm.DB
}

// NewConnection opens a MySQL connection pool per the database config.
func NewConnection(cfg *sharedconfig.DatabaseConfig, mode string) (*Connection, error) {
	logLevel := gormlogger.Warn
	if mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	logger.Info("database connection established",
		"host", cfg.Host,
		"database", cfg.Database,
		"max_open_conns", cfg.MaxOpenConns,
	)

	return &Connection{db: db}, nil
}

// NewConnectionWithDB wraps an already-open gorm handle. Tests use this to
// run the repository layer against sqlite.
func NewConnectionWithDB(db *gorm.DB) *Connection {
	return &Connection{db: db}
}

func (c *Connection) Get() *gorm.DB {
	return c.db
}

func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping verifies the pool still reaches the server.
func (c *Connection) Ping() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
