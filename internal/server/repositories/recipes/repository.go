package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipeapp/internal/server/models"
)

// Filter narrows List. A recipe matches when it has at least one of TagIDs
// (if any are given) and at least one of IngredientIDs (if any are given).
type Filter struct {
	TagIDs        []string
	IngredientIDs []string
}

type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	AddTag(ctx context.Context, recipeID, tagID string) error
	AddIngredient(ctx context.Context, recipeID, ingredientID string) error
	Get(ctx context.Context, userID, id string) (*models.Recipe, error)
	List(ctx context.Context, userID string, filter Filter) ([]*models.Recipe, error)
	SetImage(ctx context.Context, userID, id, key string) error
	Delete(ctx context.Context, userID, id string) error
}
