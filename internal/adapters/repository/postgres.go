package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

type PostgresOptions struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Driver is "pgx" unless set; "postgres" selects lib/pq.
	Driver string
}

func (o PostgresOptions) DSN() string {
	ssl := o.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		o.User, o.Password, o.Host, o.Port, o.Name, ssl)
}

// OpenPostgres connects, sizes the pool and applies the schema.
func OpenPostgres(ctx context.Context, opts PostgresOptions) (*sqlx.DB, error) {
	driver := opts.Driver
	if driver == "" {
		driver = "pgx"
	}

	log.Info().Str("host", opts.Host).Str("db", opts.Name).Str("driver", driver).Msg("connecting to database")

	db, err := sqlx.ConnectContext(ctx, driver, opts.DSN())
	if err != nil {
		return nil, fmt.Errorf("repository: connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := MigrateUp(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().Msg("database connected successfully")
	return db, nil
}
