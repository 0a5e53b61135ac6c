package accounts

import (
	"context"

	"github.com/dmitrijs2005/recipeapp/internal/server/models"
)

// Repository persists accounts. Emails are expected already normalized.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
