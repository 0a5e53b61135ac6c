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

// TagService manages the tags of one owner at a time.
type TagService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTagService(db *sql.DB, m repomanager.RepositoryManager) *TagService {
	return &TagService{db: db, repomanager: m, now: time.Now}
}

func (s *TagService) Create(ctx context.Context, userID, name string) (*models.Tag, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	tag := &models.Tag{ID: uuid.NewString(), UserID: userID, Name: name, CreatedAt: s.now().UTC()}
	t, err := s.repomanager.Tags(s.db).Create(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("error creating tag: %w", err)
	}
	return t, nil
}

// List returns the owner's tags ordered by name, descending.
func (s *TagService) List(ctx context.Context, userID string) ([]*models.Tag, error) {
	tags, err := s.repomanager.Tags(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	return tags, nil
}

// Delete removes the tag and its recipe links. Tags of other owners are not found.
func (s *TagService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Tags(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting tag: %w", err)
	}
	return nil
}
