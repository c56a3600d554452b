package persistence

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"jobcast/infrastructure/configuration"
	"jobcast/infrastructure/logger"
)

// NewPostgreSQLDB opens the primary job store connection (Supabase is hosted
// Postgres, so the same DSN works for both).
func NewPostgreSQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot open PostgreSQL connection")
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
