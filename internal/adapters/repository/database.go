package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// OpenDatabase connects to Postgres (dsn is a URL) or SQLite (dsn is a file
// path or ":memory:") and applies pending migrations.
func OpenDatabase(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch driver {
	case DriverPostgres:
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

	case DriverSQLite:
		if dsn != ":memory:" {
			dsn += "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
		}
		db, err = sqlx.ConnectContext(ctx, DriverSQLite, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	dialect := goose.DialectPostgres
	if driver == DriverSQLite {
		dialect = goose.DialectSQLite3
	}

	fsys, err := fs.Sub(migrationFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", driver, err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// mapSQLError turns constraint violations from either driver into domain errors.
func mapSQLError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidReading, pgErr.ConstraintName)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23514" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidReading, pqErr.Constraint)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_CHECK {
		return fmt.Errorf("%w: %s", domain.ErrInvalidReading, liteErr.Error())
	}

	return err
}
