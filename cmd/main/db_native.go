//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

func openCorpusDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource)
}
