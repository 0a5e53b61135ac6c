package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/recipeapp/internal/common"
)

// maxNameLength matches the VARCHAR(255) columns.
const maxNameLength = 255

// validateName checks a tag, ingredient or recipe name. The name is stored as
// given; only its trimmed form has to be non-empty.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return common.ErrorEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", common.ErrorValidation, maxNameLength)
	}
	return nil
}

func validateOwner(userID string) error {
	if userID == "" {
		return common.ErrorNoOwner
	}
	return nil
}
