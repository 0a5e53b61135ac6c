package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipeapp/internal/server/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the embedded backend used for development and tests.
type SQLiteRepositoryManager struct {
	sqlRepositories
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
