package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Tables holds the name of every document table created by Migrate.
var Tables = []string{"users", "projects", "skills", "services", "messages"}

// New opens the SQLite file at path and checks the connection.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	// A single connection keeps writes serialized and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates one table per entity. Rows are stored as JSON documents
// keyed by id; rowid preserves insertion order.
func Migrate(db *sql.DB) error {
	for _, table := range Tables {
		stmt := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT NOT NULL PRIMARY KEY,
			body TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`, table)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}
