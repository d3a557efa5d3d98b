package sql

import "database/sql/driver"

// DriverConn is the full optional-interface surface a decorated
// connection provides. Test fakes implement it so a compile-time check
// catches drift when the decorator grows a new interface.
type DriverConn interface {
	driver.Conn
	driver.ConnPrepareContext
	driver.ConnBeginTx
	driver.ExecerContext
	driver.QueryerContext
	driver.Pinger
}
