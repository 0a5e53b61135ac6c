// Package recipes stores recipes and their links to tags and ingredients.
package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeapp/internal/common"
	"github.com/dmitrijs2005/recipeapp/internal/dbx"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

const selectColumns = `id, user_id, title, time_minutes, price_cents, link, image, created_at`

// Create inserts the recipe row only; links are added with AddTag and AddIngredient.
func (r *SQLRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	query :=
		`INSERT INTO recipes (id, user_id, title, time_minutes, price_cents, link, image, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, int64(recipe.Price),
		recipe.Link, recipe.Image, recipe.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return recipe, nil
}

func (r *SQLRepository) AddTag(ctx context.Context, recipeID, tagID string) error {
	query := `INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`
	return r.link(ctx, query, recipeID, tagID)
}

func (r *SQLRepository) AddIngredient(ctx context.Context, recipeID, ingredientID string) error {
	query := `INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2)`
	return r.link(ctx, query, recipeID, ingredientID)
}

func (r *SQLRepository) link(ctx context.Context, query, recipeID, otherID string) error {
	if _, err := r.db.ExecContext(ctx, query, recipeID, otherID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the user's recipe together with its tag and ingredient IDs.
func (r *SQLRepository) Get(ctx context.Context, userID, id string) (*models.Recipe, error) {
	query := `SELECT ` + selectColumns + ` FROM recipes WHERE id = $1 AND user_id = $2`

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	recipe.TagIDs, err = r.linkedIDs(ctx,
		`SELECT tag_id FROM recipe_tags WHERE recipe_id = $1 ORDER BY tag_id`, id)
	if err != nil {
		return nil, err
	}
	recipe.IngredientIDs, err = r.linkedIDs(ctx,
		`SELECT ingredient_id FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY ingredient_id`, id)
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

func (r *SQLRepository) linkedIDs(ctx context.Context, query, recipeID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ids, nil
}

// List returns the user's recipes, newest first. Link IDs are not loaded.
func (r *SQLRepository) List(ctx context.Context, userID string, filter Filter) ([]*models.Recipe, error) {
	query, args := buildListQuery(userID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func buildListQuery(userID string, filter Filter) (string, []any) {
	var sb strings.Builder
	args := []any{userID}

	sb.WriteString(`SELECT ` + selectColumns + ` FROM recipes WHERE user_id = $1`)

	if len(filter.TagIDs) > 0 {
		sb.WriteString(` AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = recipes.id AND rt.tag_id IN (`)
		args = appendPlaceholders(&sb, args, filter.TagIDs)
		sb.WriteString(`))`)
	}
	if len(filter.IngredientIDs) > 0 {
		sb.WriteString(` AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = recipes.id AND ri.ingredient_id IN (`)
		args = appendPlaceholders(&sb, args, filter.IngredientIDs)
		sb.WriteString(`))`)
	}

	sb.WriteString(` ORDER BY created_at DESC, id DESC`)
	return sb.String(), args
}

// appendPlaceholders writes "$n, $n+1, ..." for values, numbering on from args.
func appendPlaceholders(sb *strings.Builder, args []any, values []string) []any {
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, v)
		sb.WriteString("$" + strconv.Itoa(len(args)))
	}
	return args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s scanner) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	var cents int64
	err := s.Scan(&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes, &cents,
		&recipe.Link, &recipe.Image, &recipe.CreatedAt)
	if err != nil {
		return nil, err
	}
	recipe.Price = models.Price(cents)
	return recipe, nil
}

// SetImage records the storage key of the recipe image.
func (r *SQLRepository) SetImage(ctx context.Context, userID, id, key string) error {
	query := `UPDATE recipes SET image = $1 WHERE id = $2 AND user_id = $3`
	return r.execOne(ctx, query, key, id, userID)
}

// Delete removes the recipe; link rows go with it via ON DELETE CASCADE.
func (r *SQLRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM recipes WHERE id = $1 AND user_id = $2`
	return r.execOne(ctx, query, id, userID)
}

func (r *SQLRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
