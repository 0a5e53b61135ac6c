package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/recipeapp/internal/common"
	"github.com/dmitrijs2005/recipeapp/internal/dbx"
	"github.com/dmitrijs2005/recipeapp/internal/logging"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeapp/internal/server/uploads"
	"github.com/google/uuid"
)

// ImageStorage is the object store holding recipe images, keyed by storage path.
type ImageStorage interface {
	PresignPut(ctx context.Context, key string) (string, error)
	Upload(ctx context.Context, key string, body io.Reader) error
	Delete(ctx context.Context, key string) error
}

// RecipeInput carries the fields a caller supplies when creating a recipe.
type RecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         models.Price
	Link          string
	TagIDs        []string
	IngredientIDs []string
}

type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     ImageStorage
	paths       *uploads.PathGenerator
	logger      logging.Logger
	now         func() time.Time
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager, storage ImageStorage, paths *uploads.PathGenerator, logger logging.Logger) *RecipeService {
	return &RecipeService{
		db:          db,
		repomanager: m,
		storage:     storage,
		paths:       paths,
		logger:      logger,
		now:         time.Now,
	}
}

func validateRecipe(in RecipeInput) error {
	if err := validateName(in.Title); err != nil {
		return err
	}
	if in.TimeMinutes < 0 {
		return fmt.Errorf("%w: %d minutes", common.ErrorInvalidTime, in.TimeMinutes)
	}
	if err := in.Price.Validate(); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.Link) > maxNameLength {
		return fmt.Errorf("%w: link longer than %d characters", common.ErrorValidation, maxNameLength)
	}
	return nil
}

// dedupe drops repeated and blank IDs, keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Create stores the recipe and links it to the given tags and ingredients in
// one transaction. Every linked tag and ingredient must belong to userID,
// otherwise nothing is stored and the error wraps common.ErrorNotFound.
func (s *RecipeService) Create(ctx context.Context, userID string, in RecipeInput) (*models.Recipe, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	if err := validateRecipe(in); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         in.Title,
		TimeMinutes:   in.TimeMinutes,
		Price:         in.Price,
		Link:          in.Link,
		TagIDs:        dedupe(in.TagIDs),
		IngredientIDs: dedupe(in.IngredientIDs),
		CreatedAt:     s.now().UTC(),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tagRepo := s.repomanager.Tags(tx)
		ingredientRepo := s.repomanager.Ingredients(tx)
		recipeRepo := s.repomanager.Recipes(tx)

		for _, id := range recipe.TagIDs {
			if _, err := tagRepo.Get(ctx, userID, id); err != nil {
				return fmt.Errorf("tag %s: %w", id, err)
			}
		}
		for _, id := range recipe.IngredientIDs {
			if _, err := ingredientRepo.Get(ctx, userID, id); err != nil {
				return fmt.Errorf("ingredient %s: %w", id, err)
			}
		}

		if _, err := recipeRepo.Create(ctx, recipe); err != nil {
			return err
		}
		for _, id := range recipe.TagIDs {
			if err := recipeRepo.AddTag(ctx, recipe.ID, id); err != nil {
				return err
			}
		}
		for _, id := range recipe.IngredientIDs {
			if err := recipeRepo.AddIngredient(ctx, recipe.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}

	return recipe, nil
}

func (s *RecipeService) Get(ctx context.Context, userID, id string) (*models.Recipe, error) {
	r, err := s.repomanager.Recipes(s.db).Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("error getting recipe: %w", err)
	}
	return r, nil
}

// List returns the owner's recipes, newest first, optionally filtered by tag
// and ingredient IDs. Listed recipes carry no link IDs; use Get for those.
func (s *RecipeService) List(ctx context.Context, userID string, filter recipes.Filter) ([]*models.Recipe, error) {
	filter.TagIDs = dedupe(filter.TagIDs)
	filter.IngredientIDs = dedupe(filter.IngredientIDs)

	list, err := s.repomanager.Recipes(s.db).List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return list, nil
}

// Delete removes the recipe, then its stored image. A failed image delete is
// logged and does not fail the call.
func (s *RecipeService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Recipes(s.db)

	r, err := repo.Get(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}
	if err := repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	if r.Image != "" {
		if err := s.storage.Delete(ctx, r.Image); err != nil {
			s.logger.Warn(ctx, "recipe image not deleted", "recipe", id, "key", r.Image, "error", err)
		}
	}
	return nil
}

// PresignImageUpload reserves a fresh storage key for the recipe image and
// returns a presigned URL to PUT the bytes to. The key is recorded on the
// recipe straight away.
func (s *RecipeService) PresignImageUpload(ctx context.Context, userID, recipeID, filename string) (*models.ImageUpload, error) {
	repo := s.repomanager.Recipes(s.db)

	r, err := repo.Get(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("error getting recipe: %w", err)
	}

	key, err := s.paths.RecipeImage(r, filename)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignPut(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	if err := repo.SetImage(ctx, userID, recipeID, key); err != nil {
		return nil, fmt.Errorf("error saving recipe image: %w", err)
	}

	s.logger.Info(ctx, "recipe image upload presigned", "recipe", recipeID, "key", key)
	return &models.ImageUpload{Key: key, URL: url}, nil
}

// UploadImage stores body as the recipe image and records its key.
func (s *RecipeService) UploadImage(ctx context.Context, userID, recipeID, filename string, body io.Reader) (*models.Recipe, error) {
	repo := s.repomanager.Recipes(s.db)

	r, err := repo.Get(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("error getting recipe: %w", err)
	}

	key, err := s.paths.RecipeImage(r, filename)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Upload(ctx, key, body); err != nil {
		return nil, fmt.Errorf("error uploading image: %w", err)
	}

	if err := repo.SetImage(ctx, userID, recipeID, key); err != nil {
		// the object is orphaned; try to remove it
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn(ctx, "orphaned recipe image", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("error saving recipe image: %w", err)
	}

	r.Image = key
	s.logger.Info(ctx, "recipe image uploaded", "recipe", recipeID, "key", key)
	return r, nil
}
