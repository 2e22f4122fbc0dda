package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPoolUnavailable is returned when no pooled connection could be checked out in time.
var ErrPoolUnavailable = errors.New("db pool unavailable")

const DefaultAcquireTimeout = 5 * time.Second

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	Schema         string
	MaxConns       int32
	AcquireTimeout time.Duration
	TracingEnabled bool
}

// Pool is a pgx pool whose Acquire is bounded and reports exhaustion as ErrPoolUnavailable.
type Pool struct {
	*pgxpool.Pool
	acquireTimeout time.Duration
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*Pool, error) {
	connURL := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(params.DBUser, params.DBPassword),
		Host:   net.JoinHostPort(params.DBHost, params.DBPort),
		Path:   params.DBName,
	}
	if params.DBPassword == "" {
		connURL.User = url.User(params.DBUser)
	}

	poolConfig, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.Schema != "" {
		poolConfig.ConnConfig.RuntimeParams["search_path"] = params.Schema
	}
	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}
	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	acquireTimeout := params.AcquireTimeout
	if acquireTimeout <= 0 {
		acquireTimeout = DefaultAcquireTimeout
	}

	return &Pool{
		Pool:           pgPool,
		acquireTimeout: acquireTimeout,
	}, nil
}

// Acquire checks out one connection. The caller must Release it.
func (p *Pool) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.Pool.Acquire(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoolUnavailable, err)
	}
	return conn, nil
}
