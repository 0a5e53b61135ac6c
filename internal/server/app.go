// Package server assembles the recipeapp back end: database and migrations,
// object storage for recipe images, and the domain services on top of them.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipeapp/internal/cryptox"
	"github.com/dmitrijs2005/recipeapp/internal/logging"
	"github.com/dmitrijs2005/recipeapp/internal/server/config"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeapp/internal/server/services"
	"github.com/dmitrijs2005/recipeapp/internal/server/storage"
	"github.com/dmitrijs2005/recipeapp/internal/server/uploads"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager

	Accounts    *services.AccountService
	Tags        *services.TagService
	Ingredients *services.IngredientService
	Recipes     *services.RecipeService
}

// Option tweaks NewApp.
type Option func(*appOptions)

type appOptions struct {
	logOutput io.Writer
	storage   services.ImageStorage
}

// WithLogOutput redirects logs, stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(o *appOptions) { o.logOutput = w }
}

// WithImageStorage replaces the S3 storage built from config.
func WithImageStorage(s services.ImageStorage) Option {
	return func(o *appOptions) { o.storage = s }
}

// NewApp opens the database and builds the services described by c.
// Migrations are not run; call Migrate.
func NewApp(ctx context.Context, c *config.Config, opts ...Option) (*App, error) {
	o := &appOptions{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	logger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Level:   c.LogLevel,
		Format:  c.LogFormat,
	}, o.logOutput)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	hasher, err := cryptox.NewPasswordHasher(c.PasswordHasher, c.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher init error: %w", err)
	}

	images := o.storage
	if images == nil {
		s3, err := storage.NewS3Storage(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("storage init error: %w", err)
		}
		images = s3
	}

	db, m, err := repomanager.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: m,
		Accounts:    services.NewAccountService(db, m, hasher, logger),
		Tags:        services.NewTagService(db, m),
		Ingredients: services.NewIngredientService(db, m),
		Recipes:     services.NewRecipeService(db, m, images, uploads.NewPathGenerator(), logger),
	}, nil
}

func (app *App) Logger() logging.Logger {
	return app.logger
}

// Migrate brings the schema up to date.
func (app *App) Migrate(ctx context.Context) error {
	app.logger.Info(ctx, "running migrations", "driver", app.config.DatabaseDriver)
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

func (app *App) Close() error {
	return app.db.Close()
}
