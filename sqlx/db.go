package sqlx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/kroma-labs/callsite-go/callsite"
)

// selfPackage is this package's import path, registered with the
// annotator so its own frames never count as application code.
var selfPackage = callsite.CallerPackage()

// poolPackages are the pooling-machinery packages sitting between
// application code and the wire.
var poolPackages = []string{"database/sql", "github.com/jmoiron/sqlx"}

// newAnnotator builds the annotator shared by a DB and the
// connections acquired from it.
func newAnnotator(opts ...callsite.Option) *callsite.Annotator {
	all := make([]callsite.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, callsite.WithSkipPackages(append([]string{selfPackage}, poolPackages...)...))
	return callsite.New(all...)
}

// DB wraps *sqlx.DB with call-site annotation. It provides annotating
// versions of the sqlx extension methods like Get, Select, NamedExec
// and NamedQuery; each call resolves its own call site.
type DB struct {
	*sqlx.DB
	ann *callsite.Annotator
}

// Open opens a database connection with call-site annotation on the
// sqlx extension methods.
//
// Example:
//
//	db, err := sitesqlx.Open("postgres", dsn,
//	    callsite.WithWorkspaceAreas("internal", "cmd"),
//	)
func Open(driverName, dsn string, opts ...callsite.Option) (*DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, ann: newAnnotator(opts...)}, nil
}

// Connect opens and verifies a database connection.
// It is equivalent to Open followed by Ping.
func Connect(ctx context.Context, driverName, dsn string, opts ...callsite.Option) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, ann: newAnnotator(opts...)}, nil
}

// NewDB wraps an existing *sql.DB with sqlx and annotation.
//
// Example:
//
//	sqlDB, _ := sitesql.Open("postgres", dsn)
//	db := sitesqlx.NewDB(sqlDB, "postgres")
func NewDB(db *sql.DB, driverName string, opts ...callsite.Option) *DB {
	return &DB{
		DB:  sqlx.NewDb(db, driverName),
		ann: newAnnotator(opts...),
	}
}

// MustConnect is like Connect but panics on error.
func MustConnect(ctx context.Context, driverName, dsn string, opts ...callsite.Option) *DB {
	db, err := Connect(ctx, driverName, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// MustOpen is like Open but panics on error.
func MustOpen(driverName, dsn string, opts ...callsite.Option) *DB {
	db, err := Open(driverName, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// GetContext executes a query that is expected to return at most one row
// and scans the result into dest.
func (db *DB) GetContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	return db.DB.GetContext(ctx, dest, db.ann.Annotate(ctx, query), args...)
}

// Get is like GetContext with context.Background().
func (db *DB) Get(dest interface{}, query string, args ...interface{}) error {
	return db.DB.Get(dest, db.ann.Annotate(context.Background(), query), args...)
}

// SelectContext executes a query and scans all results into dest.
func (db *DB) SelectContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	return db.DB.SelectContext(ctx, dest, db.ann.Annotate(ctx, query), args...)
}

// Select is like SelectContext with context.Background().
func (db *DB) Select(dest interface{}, query string, args ...interface{}) error {
	return db.DB.Select(dest, db.ann.Annotate(context.Background(), query), args...)
}

// NamedExecContext executes a named query. Bind parameters and every
// other field of the request pass through untouched; only the text is
// annotated.
func (db *DB) NamedExecContext(
	ctx context.Context,
	query string,
	arg interface{},
) (sql.Result, error) {
	return db.DB.NamedExecContext(ctx, db.ann.Annotate(ctx, query), arg)
}

// NamedExec is like NamedExecContext with context.Background().
func (db *DB) NamedExec(query string, arg interface{}) (sql.Result, error) {
	return db.DB.NamedExec(db.ann.Annotate(context.Background(), query), arg)
}

// NamedQueryContext executes a named query and returns rows.
func (db *DB) NamedQueryContext(
	ctx context.Context,
	query string,
	arg interface{},
) (*sqlx.Rows, error) {
	return db.DB.NamedQueryContext(ctx, db.ann.Annotate(ctx, query), arg)
}

// NamedQuery is like NamedQueryContext with context.Background().
func (db *DB) NamedQuery(query string, arg interface{}) (*sqlx.Rows, error) {
	return db.DB.NamedQuery(db.ann.Annotate(context.Background(), query), arg)
}

// QueryxContext queries the database and returns *sqlx.Rows.
func (db *DB) QueryxContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (*sqlx.Rows, error) {
	return db.DB.QueryxContext(ctx, db.ann.Annotate(ctx, query), args...)
}

// QueryRowxContext queries the database and returns an *sqlx.Row.
func (db *DB) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return db.DB.QueryRowxContext(ctx, db.ann.Annotate(ctx, query), args...)
}

// PreparexContext prepares a statement. The text is annotated once,
// with the preparer's call site; executions of the returned statement
// reuse it.
func (db *DB) PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error) {
	return db.DB.PreparexContext(ctx, db.ann.Annotate(ctx, query))
}

// Preparex is like PreparexContext with context.Background().
func (db *DB) Preparex(query string) (*sqlx.Stmt, error) {
	return db.DB.Preparex(db.ann.Annotate(context.Background(), query))
}
