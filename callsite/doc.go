// Package callsite resolves the application call site of a database
// query and splices it into the query text as an inline SQL comment,
// so that database-side telemetry (slow-query logs, pg_stat_statements
// and friends) can be correlated with the code that issued each query.
//
// # Marker format
//
// Annotated queries carry a single-line comment of fixed shape:
//
//	SELECT 1 /*func_name=loadUser,file=internal/api/user.go,line=42*/
//
// The marker is appended after the right-trimmed query text with one
// intervening space. Annotation is idempotent: text that already ends
// in a marker is returned unchanged, byte for byte.
//
// # Call-site resolution
//
// The resolver walks the runtime call stack from the innermost frame
// outward and returns the first frame that belongs to application
// code. Frames are skipped by package identity, never by a fixed
// depth, so the filter survives refactors that add or remove wrapper
// layers. This package's own frames are always skipped; wrappers add
// their own packages and those of the pooling machinery they sit on
// via WithSkipPackages.
//
// If no usable frame exists the query is passed through unchanged.
// Resolution failure is an expected branch, not an error.
//
// # Usage
//
// Most callers want the sql or sqlx packages of this module, which
// install an Annotator behind the standard database/sql and
// jmoiron/sqlx surfaces. Direct use:
//
//	ann := callsite.New(
//	    callsite.WithWorkspaceAreas("internal", "cmd"),
//	    callsite.WithSkipPackages("github.com/my/pool"),
//	)
//	decorated := ann.Annotate(ctx, "SELECT * FROM users")
package callsite
