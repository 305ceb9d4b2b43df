package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Open opens a SQLite database using the modernc.org/sqlite driver. The
// vec3_* functions are registered before the first connection is created.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterVectorFunctions(); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", dsn)
}

// OpenMemory opens an in-memory database limited to a single connection, so
// temporary tables stay visible to every statement issued through the pool.
func OpenMemory() (*sql.DB, error) {
	db, err := Open(MemoryDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
