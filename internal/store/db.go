// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users and items on top of
// database/sql. PostgreSQL is reached through the pgx stdlib driver and
// SQLite through go-sqlite3; the backend is selected by the scheme of the
// configured database URL. Queries are built with squirrel so that the same
// repository code renders dialect-specific placeholders.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/migrations"
)

// Dialect identifies the SQL backend behind a DB.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retryPolicy        retryPolicy
	logger             *logger.Logger
}

// NewConnect opens and pings the database selected by cfg.URL.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, driver, dsn, err := parseDatabaseURL(cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error parsing database url")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	switch dialect {
	case DialectPostgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	case DialectSQLite:
		// one connection keeps :memory: databases alive and serializes writers
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnect").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return newDB(conn, dialect, log), nil
}

// newDB wraps an open *sql.DB. Used directly by tests with sqlmock.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:          conn,
		dialect:     dialect,
		retryPolicy: defaultRetryPolicy,
		logger:      log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect reports the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// parseDatabaseURL maps a database URL to a dialect, a database/sql driver
// name and the DSN understood by that driver.
//
// SQLite URLs follow the SQLAlchemy convention: "sqlite:///rel.db" is a
// relative path and "sqlite:////abs/path.db" an absolute one.
func parseDatabaseURL(url string) (Dialect, string, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DialectPostgres, "pgx", url, nil

	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			path = ":memory:"
		}
		return DialectSQLite, "sqlite3", path, nil

	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return DialectSQLite, "sqlite3", url, nil
	}

	return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURL, redactURL(url))
}

// redactURL drops everything after the scheme so credentials never reach logs.
func redactURL(url string) string {
	if i := strings.Index(url, "://"); i >= 0 {
		return url[:i] + "://..."
	}
	if len(url) > 16 {
		return url[:16] + "..."
	}
	return url
}
