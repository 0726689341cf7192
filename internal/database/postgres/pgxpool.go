package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

var errNilDB = errors.New("nil db")

// DSN renders cfg as a libpq keyword/value string. Values are quoted when
// they contain spaces, quotes or backslashes.
func DSN(cfg config.DatabaseConfig) string {
	sslMode := strings.TrimSpace(cfg.DBSSLMode)
	if sslMode == "" {
		sslMode = "disable"
	}
	pairs := []struct{ key, value string }{
		{"host", strings.TrimSpace(cfg.DBHost)},
		{"port", strings.TrimSpace(cfg.DBPort)},
		{"user", strings.TrimSpace(cfg.DBUser)},
		{"password", cfg.DBPassword},
		{"dbname", strings.TrimSpace(cfg.DBName)},
		{"sslmode", sslMode},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// PoolConfig applies the pool knobs from cfg; zero values keep pgx defaults.
func PoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMinConns > 0 {
		pcfg.MinConns = cfg.PoolMinConns
	}
	if cfg.PoolMaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.PoolMaxConnLifetime
	}
	if cfg.PoolMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	}
	if cfg.PoolHealthCheckPeriod > 0 {
		pcfg.HealthCheckPeriod = cfg.PoolHealthCheckPeriod
	}
	return pcfg, nil
}

// Connect opens the pool and pings it, giving the ping 5s when ctx has no
// deadline of its own.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}

	return &Pool{queries: queries{q: p}, pool: p, sqlDB: stdlib.OpenDBFromPool(p)}, nil
}

// pgxQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type queries struct {
	q pgxQuerier
}

func (s queries) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if s.q == nil {
		return 0, errNilDB
	}
	tag, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s queries) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if s.q == nil {
		return nil, errNilDB
	}
	r, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s queries) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if s.q == nil {
		return errRow{err: errNilDB}
	}
	return s.q.QueryRow(ctx, query, args...)
}

type Pool struct {
	queries
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return errNilDB
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	var err error
	if p.sqlDB != nil {
		err = p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return err
}

func (p *Pool) Begin(ctx context.Context) (database.Tx, error) {
	if p == nil || p.pool == nil {
		return nil, errNilDB
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return txAdapter{queries: queries{q: tx}, tx: tx}, nil
}

func (p *Pool) SQLDB() *sql.DB {
	if p == nil {
		return nil
	}
	return p.sqlDB
}

type txAdapter struct {
	queries
	tx pgx.Tx
}

func (t txAdapter) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t txAdapter) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error {
	return fmt.Errorf("scan: %w", r.err)
}
