package tags

import (
	"context"

	"github.com/dmitrijs2005/recipeapp/internal/server/models"
)

// Repository persists tags. Every read and delete is scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	Get(ctx context.Context, userID, id string) (*models.Tag, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Tag, error)
	Delete(ctx context.Context, userID, id string) error
}
