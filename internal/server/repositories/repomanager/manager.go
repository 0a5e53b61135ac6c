package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipeapp/internal/dbx"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/tags"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Tags(db dbx.DBTX) tags.Repository
	Ingredients(db dbx.DBTX) ingredients.Repository
	Recipes(db dbx.DBTX) recipes.Repository
}

// sqlRepositories vends the SQL repositories shared by every dialect.
type sqlRepositories struct{}

func (sqlRepositories) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLRepository(db)
}

func (sqlRepositories) Tags(db dbx.DBTX) tags.Repository {
	return tags.NewSQLRepository(db)
}

func (sqlRepositories) Ingredients(db dbx.DBTX) ingredients.Repository {
	return ingredients.NewSQLRepository(db)
}

func (sqlRepositories) Recipes(db dbx.DBTX) recipes.Repository {
	return recipes.NewSQLRepository(db)
}
