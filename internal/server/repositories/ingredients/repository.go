package ingredients

import (
	"context"

	"github.com/dmitrijs2005/recipeapp/internal/server/models"
)

// Repository persists ingredients. Every read and delete is scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error)
	Get(ctx context.Context, userID, id string) (*models.Ingredient, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Ingredient, error)
	Delete(ctx context.Context, userID, id string) error
}
