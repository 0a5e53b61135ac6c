package repomanager

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Open connects to the database for driver and returns the matching manager.
// The connection is verified with a ping.
func Open(driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var m RepositoryManager

	switch driver {
	case DriverPostgres:
		m = NewPostgresRepositoryManager()
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
		m = NewSQLiteRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// sqlite allows one writer; a single connection also keeps
		// in-memory databases alive for the lifetime of db
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, m, nil
}

// sqliteDSN turns on foreign key enforcement, needed for ON DELETE CASCADE.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
