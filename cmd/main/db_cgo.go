//go:build cgo_sqlite

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriver = "sqlite3"

// recordDSN adds the mattn/go-sqlite3 connection parameters Kiln relies on.
func recordDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

func initDB(path string) (*sql.DB, error) {
	return sql.Open(sqliteDriver, recordDSN(path))
}
