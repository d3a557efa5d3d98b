// Package sqlx provides a call-site annotating wrapper for
// github.com/jmoiron/sqlx.
//
// This package wraps the sqlx-specific extension methods (Get, Select,
// NamedExec, NamedQuery, Preparex and the Connx per-connection
// surface) so the marker reflects the application frame that called
// them rather than sqlx internals.
//
// Usage:
//
//	import sitesqlx "github.com/kroma-labs/callsite-go/sqlx"
//
//	db, err := sitesqlx.Open("postgres", dsn,
//	    callsite.WithWorkspaceAreas("internal", "cmd"),
//	)
//	// db is *sitesqlx.DB - wraps *sqlx.DB
//
//	var user User
//	err = db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", 1)
//	// sent as: SELECT * FROM users WHERE id = $1 /*func_name=...,file=...,line=...*/
//
// Methods promoted from the embedded *sqlx.DB (plain QueryContext,
// ExecContext and friends) are not intercepted here; open the
// underlying connection through this module's sql package to annotate
// those too. Stacking both layers is safe: splicing is idempotent, so
// a query annotated here passes through the driver layer unchanged.
package sqlx
