// Package sql provides a database/sql driver wrapper that annotates
// every outgoing query with its application call site.
//
// # Features
//
//   - Inline marker per query: /*func_name=...,file=...,line=...*/
//   - Resolution skips wrapper and database/sql frames by package
//     identity, so markers point at application code
//   - Idempotent splicing: retried or re-prepared text never collects
//     a second marker
//   - Full compatibility with the database/sql interface; arguments,
//     results and errors pass through untouched
//
// # Quick Start
//
// Open a database connection with annotation:
//
//	import sitesql "github.com/kroma-labs/callsite-go/sql"
//
//	db, err := sitesql.Open("postgres", dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	// Use like standard *sql.DB
//	rows, err := db.QueryContext(ctx, "SELECT * FROM users")
//	// sent as: SELECT * FROM users /*func_name=loadUsers,file=internal/store/user.go,line=87*/
//
// Connections acquired with db.Conn(ctx) route through the same
// decorated driver connection, so per-connection queries are annotated
// too, each with a fresh call-site resolution.
//
// # Driver Registration
//
// For more control, register a wrapped driver:
//
//	drv := sitesql.WrapDriver(pq.Driver{},
//	    callsite.WithWorkspaceAreas("internal", "cmd"),
//	)
//	sql.Register("postgres-callsite", drv)
//
//	db, _ := sql.Open("postgres-callsite", dsn)
//
// # Configuration
//
// Options come from the callsite package:
//
//	db, _ := sitesql.Open("postgres", dsn,
//	    callsite.WithWorkspaceAreas("internal", "cmd"), // label roots
//	    callsite.WithSkipPackages("github.com/acme/dbutil"),
//	    callsite.WithLogger(logger),                    // debug events
//	)
package sql
