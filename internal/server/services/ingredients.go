package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type IngredientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewIngredientService(db *sql.DB, m repomanager.RepositoryManager) *IngredientService {
	return &IngredientService{db: db, repomanager: m, now: time.Now}
}

func (s *IngredientService) Create(ctx context.Context, userID, name string) (*models.Ingredient, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	ingredient := &models.Ingredient{ID: uuid.NewString(), UserID: userID, Name: name, CreatedAt: s.now().UTC()}
	in, err := s.repomanager.Ingredients(s.db).Create(ctx, ingredient)
	if err != nil {
		return nil, fmt.Errorf("error creating ingredient: %w", err)
	}
	return in, nil
}

func (s *IngredientService) List(ctx context.Context, userID string) ([]*models.Ingredient, error) {
	ingredients, err := s.repomanager.Ingredients(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *IngredientService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Ingredients(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting ingredient: %w", err)
	}
	return nil
}
