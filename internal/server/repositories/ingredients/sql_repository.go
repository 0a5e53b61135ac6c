package ingredients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *SQLRepository) Create(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	query := `INSERT INTO ingredients (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, ingredient.ID, ingredient.UserID, ingredient.Name, ingredient.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ingredient, nil
}

func (r *SQLRepository) Get(ctx context.Context, userID, id string) (*models.Ingredient, error) {
	query := `SELECT id, user_id, name, created_at FROM ingredients WHERE id = $1 AND user_id = $2`

	in := &models.Ingredient{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&in.ID, &in.UserID, &in.Name, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return in, nil
}

// ListByUser returns the user's ingredients, names in descending order.
func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*models.Ingredient, error) {
	query := `SELECT id, user_id, name, created_at FROM ingredients WHERE user_id = $1 ORDER BY name DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Ingredient, 0)
	for rows.Next() {
		in := &models.Ingredient{}
		if err := rows.Scan(&in.ID, &in.UserID, &in.Name, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

// Delete removes the ingredient. An ingredient that does not exist or belongs
// to someone else yields common.ErrorNotFound.
func (r *SQLRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM ingredients WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
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
