//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

// recordDSN adds the modernc.org/sqlite pragmas Kiln relies on.
func recordDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func initDB(path string) (*sql.DB, error) {
	return sql.Open(sqliteDriver, recordDSN(path))
}
