// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/recipeapp/internal/cryptox"
)

// Account is a user account identified by its normalized email.
type Account struct {
	// ID is the server-assigned UUID.
	ID string
	// Email is unique among accounts; its domain part is always lowercase.
	Email string
	// Name is an optional display name.
	Name string
	// PasswordHash is the self-describing encoded hash (see cryptox); never plaintext.
	PasswordHash string

	IsActive    bool
	IsStaff     bool
	IsSuperuser bool

	CreatedAt time.Time
}

func (a *Account) String() string {
	return a.Email
}

// HasUsablePassword reports whether any password can verify against this account.
func (a *Account) HasUsablePassword() bool {
	return cryptox.IsUsable(a.PasswordHash)
}

// CheckPassword reports whether raw matches the stored hash. Unusable and
// malformed hashes never match.
func (a *Account) CheckPassword(raw string) bool {
	ok, err := cryptox.CheckPassword([]byte(raw), a.PasswordHash)
	return err == nil && ok
}
