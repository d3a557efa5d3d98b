package sql

import (
	"context"
	"database/sql/driver"

	"github.com/kroma-labs/callsite-go/callsite"
)

// Compile-time interface checks.
var (
	_ driver.Conn               = (*siteConn)(nil)
	_ driver.ConnPrepareContext = (*siteConn)(nil)
	_ driver.ConnBeginTx        = (*siteConn)(nil)
	_ driver.ExecerContext      = (*siteConn)(nil)
	_ driver.QueryerContext     = (*siteConn)(nil)
	_ driver.Pinger             = (*siteConn)(nil)
	_ driver.SessionResetter    = (*siteConn)(nil)
	_ driver.Validator          = (*siteConn)(nil)
)

// siteConn wraps a driver.Conn and rewrites the query text of
// Prepare, Exec and Query calls before delegating. Everything else
// passes through untouched: arguments keep their slice identity,
// results and errors are returned verbatim, and no extra wrapping is
// layered on statements or transactions (statement text is already
// annotated when it reaches the driver, and transactions carry no
// query text of their own).
type siteConn struct {
	conn driver.Conn
	ann  *callsite.Annotator
}

// newSiteConn creates a new annotating connection. A connection that
// is already decorated is returned as-is: the pool hands the same
// driver.Conn out across acquire/release cycles, and wrapping it again
// would resolve call sites against this package's own frames.
func newSiteConn(conn driver.Conn, ann *callsite.Annotator) driver.Conn {
	if _, ok := conn.(*siteConn); ok {
		return conn
	}
	return &siteConn{
		conn: conn,
		ann:  ann,
	}
}

// Prepare implements driver.Conn. The statement text is annotated once
// here, with the preparer's call site; executions of the prepared
// statement reuse it.
func (c *siteConn) Prepare(query string) (driver.Stmt, error) {
	return c.conn.Prepare(c.ann.Annotate(context.Background(), query))
}

// Close implements driver.Conn.
func (c *siteConn) Close() error {
	return c.conn.Close()
}

// Begin implements driver.Conn.
// Deprecated: Use BeginTx instead. This exists for driver.Conn interface compatibility.
func (c *siteConn) Begin() (driver.Tx, error) {
	return c.conn.Begin() //nolint:staticcheck // Required for driver.Conn interface
}

// PrepareContext implements driver.ConnPrepareContext.
func (c *siteConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	query = c.ann.Annotate(ctx, query)

	if preparer, ok := c.conn.(driver.ConnPrepareContext); ok {
		return preparer.PrepareContext(ctx, query)
	}
	return c.conn.Prepare(query)
}

// BeginTx implements driver.ConnBeginTx. Transactions are not wrapped:
// statements issued inside one still route through this connection's
// Exec/Query paths, and BEGIN/COMMIT/ROLLBACK carry no query text.
func (c *siteConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if beginner, ok := c.conn.(driver.ConnBeginTx); ok {
		return beginner.BeginTx(ctx, opts)
	}
	return c.conn.Begin() //nolint:staticcheck // Fallback for older drivers
}

// ExecContext implements driver.ExecerContext.
func (c *siteConn) ExecContext(
	ctx context.Context,
	query string,
	args []driver.NamedValue,
) (driver.Result, error) {
	if execer, ok := c.conn.(driver.ExecerContext); ok {
		return execer.ExecContext(ctx, c.ann.Annotate(ctx, query), args)
	}

	// Fallback: let database/sql prepare and execute; Prepare will
	// annotate the text.
	return nil, driver.ErrSkip
}

// QueryContext implements driver.QueryerContext.
func (c *siteConn) QueryContext(
	ctx context.Context,
	query string,
	args []driver.NamedValue,
) (driver.Rows, error) {
	if queryer, ok := c.conn.(driver.QueryerContext); ok {
		return queryer.QueryContext(ctx, c.ann.Annotate(ctx, query), args)
	}

	// Fallback: let database/sql handle it via Prepare
	return nil, driver.ErrSkip
}

// Ping implements driver.Pinger.
func (c *siteConn) Ping(ctx context.Context) error {
	if pinger, ok := c.conn.(driver.Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// ResetSession implements driver.SessionResetter.
func (c *siteConn) ResetSession(ctx context.Context) error {
	if resetter, ok := c.conn.(driver.SessionResetter); ok {
		return resetter.ResetSession(ctx)
	}
	return nil
}

// IsValid implements driver.Validator.
func (c *siteConn) IsValid() bool {
	if validator, ok := c.conn.(driver.Validator); ok {
		return validator.IsValid()
	}
	return true
}
