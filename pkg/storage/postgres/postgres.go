// Package postgres implements storage.Storage on PostgreSQL. Connections come
// from a pgx pool that is also exposed through database/sql, so goqu builds the
// queries and goose runs the migrations over the same pool.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"earlyaccess/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// dialect is the goqu dialect every query is rendered with.
const dialect = "postgres"

// Options defines how the signup storage connects to PostgreSQL.
type Options struct {
	// Username is the role the backend logs in as
	Username string
	// Password authenticates Username
	Password string
	// Host is the hostname or IP address of the server
	Host string
	// SslMode is passed through as libpq's sslmode, e.g. "disable" or "require"
	SslMode string
	// Port is the TCP port the server listens on
	Port int
	// Database is the database holding the signups table
	Database string
	// ConnMaxLifetime closes pooled connections older than this. Zero keeps the pgx default.
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime closes pooled connections unused for this long. Zero keeps the pgx default.
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool size. Zero keeps the pgx default.
	MaxOpenConnections int
	// MaxIdleConnections is the number of connections the pool keeps open
	// even when idle. Zero keeps the pgx default.
	MaxIdleConnections int
}

// DSN renders the options as a libpq keyword/value connection string.
func (o Options) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		o.Host,
		o.Port,
		o.Username,
		o.Database,
		o.Password,
		o.SslMode)
}

// poolConfig parses the DSN and applies the pool limits that are set.
func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}

	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = int32(o.MaxIdleConnections) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// DB is the part of database/sql the signup queries run on. *sql.DB is used
// outside transactions and *sql.Tx inside WithTx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the part of goqu the signup queries are built with. It is
// satisfied by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
}

// PgSQL implements storage.Storage.
type PgSQL struct {
	// DB executes the queries: a *sql.DB, or a *sql.Tx on the handle WithTx
	// passes to its callback.
	DB DB
	// Builder renders queries bound to DB.
	Builder Builder
	// Pool owns the connections. It is nil on transactional handles, which
	// borrow the connection of their *sql.Tx.
	Pool *pgxpool.Pool
}

var _ storage.Storage = (*PgSQL)(nil)

// New opens a pgx pool for options and wraps it for goqu and goose.
// Connections are established lazily, on first use.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	return fromPool(pool), nil
}

func fromPool(pool *pgxpool.Pool) *PgSQL {
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}
}

// Close releases the database/sql wrapper, then the pool behind it.
func (p *PgSQL) Close() error {
	if sqlDB, ok := p.DB.(*sql.DB); ok {
		_ = sqlDB.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

// WithTx runs cb on a handle bound to a new transaction. The transaction
// commits when cb returns nil and rolls back when it fails or panics. Calling
// WithTx on a transactional handle returns storage.ErrAlreadyInTx.
func (p *PgSQL) WithTx(ctx context.Context, cb func(tx storage.SignupStorage) error) error {
	sqlDB, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := cb(&PgSQL{DB: tx, Builder: goqu.NewTx(dialect, tx)}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}
	committed = true

	return nil
}
