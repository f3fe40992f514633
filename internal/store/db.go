package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
)

const memoryDSN = ":memory:"

// NewDB opens the DuckDB catalog at path. ":memory:" opens an in-memory database.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if dsn == memoryDSN {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}
	return db, nil
}

// QueryInterceptor is the subset of *sql.DB used by the stores.
type QueryInterceptor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type loggingInterceptor struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func newLoggingInterceptor(db *sql.DB) *loggingInterceptor {
	return &loggingInterceptor{db: db, log: zap.S().Named("store")}
}

func (i *loggingInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	i.log.Debugw("query row", "query", query, "args", args)
	return i.db.QueryRowContext(ctx, query, args...)
}

func (i *loggingInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	i.log.Debugw("query", "query", query, "args", args)
	return i.db.QueryContext(ctx, query, args...)
}

func (i *loggingInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	i.log.Debugw("exec", "query", query, "args", args)
	return i.db.ExecContext(ctx, query, args...)
}

func (i *loggingInterceptor) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	i.log.Debug("begin tx")
	return i.db.BeginTx(ctx, opts)
}
