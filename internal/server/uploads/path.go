// Package uploads derives object-storage keys for uploaded files.
package uploads

import (
	"fmt"
	"path"
	"strings"

	"github.com/dmitrijs2005/recipeapp/internal/common"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/google/uuid"
)

// RecipeImageDir is the key prefix of every recipe image.
const RecipeImageDir = "uploads/recipe"

// IDSource yields the random identifier used as a file's base name.
type IDSource func() uuid.UUID

// PathGenerator builds storage keys from fresh identifiers.
type PathGenerator struct {
	newID IDSource
}

type Option func(*PathGenerator)

// WithIDSource replaces uuid.New, e.g. with a fixed value in tests.
func WithIDSource(src IDSource) Option {
	return func(g *PathGenerator) {
		g.newID = src
	}
}

func NewPathGenerator(opts ...Option) *PathGenerator {
	g := &PathGenerator{newID: uuid.New}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RecipeImage returns uploads/recipe/<id>.<ext> where ext is the part of
// filename after its last dot. Any directory part of filename is ignored.
// A filename without an extension fails with common.ErrorInvalidFilename.
//
// recipe is unused; it is accepted so keys can later be namespaced per owner.
func (g *PathGenerator) RecipeImage(_ *models.Recipe, filename string) (string, error) {
	ext, err := extension(filename)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.%s", RecipeImageDir, g.newID(), ext), nil
}

func extension(filename string) (string, error) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidFilename, filename)
	}
	return base[i+1:], nil
}
