package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var SchemaSQL string

// ApplySchema creates the schema if missing and runs the idempotent DDL inside it.
func ApplySchema(ctx context.Context, pool *Pool, schema string) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	schemaIdent := pgx.Identifier{schema}.Sanitize()
	if _, err := conn.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+schemaIdent); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}
	if _, err := conn.Exec(ctx, "SET search_path TO "+schemaIdent); err != nil {
		return fmt.Errorf("set search path: %w", err)
	}
	if _, err := conn.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("apply schema ddl: %w", err)
	}

	return nil
}
