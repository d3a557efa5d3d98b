package sqlx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/kroma-labs/callsite-go/callsite"
)

// Conn wraps a single acquired *sqlx.Conn with call-site annotation.
// A fresh wrapper is composed per acquisition around the connection's
// original methods, so acquire/release/reacquire cycles can never
// stack decoration layers; each call still resolves its own call
// site.
type Conn struct {
	*sqlx.Conn
	ann *callsite.Annotator
}

// Connx acquires a connection from the pool and returns it wrapped
// with annotation. The caller owns the connection and must return it
// to the pool with Close.
//
// Example:
//
//	conn, err := db.Connx(ctx)
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
//
//	var n int
//	err = conn.GetContext(ctx, &n, "SELECT count(*) FROM users")
func (db *DB) Connx(ctx context.Context) (*Conn, error) {
	conn, err := db.DB.Connx(ctx)
	if err != nil {
		return nil, err
	}
	return &Conn{Conn: conn, ann: db.ann}, nil
}

// GetContext executes a query on this connection and scans the single
// result row into dest.
func (c *Conn) GetContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	return c.Conn.GetContext(ctx, dest, c.ann.Annotate(ctx, query), args...)
}

// SelectContext executes a query on this connection and scans all
// results into dest.
func (c *Conn) SelectContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	return c.Conn.SelectContext(ctx, dest, c.ann.Annotate(ctx, query), args...)
}

// ExecContext executes a query on this connection.
func (c *Conn) ExecContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (sql.Result, error) {
	return c.Conn.ExecContext(ctx, c.ann.Annotate(ctx, query), args...)
}

// QueryxContext queries this connection and returns *sqlx.Rows.
func (c *Conn) QueryxContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (*sqlx.Rows, error) {
	return c.Conn.QueryxContext(ctx, c.ann.Annotate(ctx, query), args...)
}

// QueryRowxContext queries this connection and returns an *sqlx.Row.
func (c *Conn) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return c.Conn.QueryRowxContext(ctx, c.ann.Annotate(ctx, query), args...)
}

// PreparexContext prepares a statement on this connection, annotating
// its text with the preparer's call site.
func (c *Conn) PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error) {
	return c.Conn.PreparexContext(ctx, c.ann.Annotate(ctx, query))
}
