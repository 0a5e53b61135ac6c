package models

import "time"

// Ingredient is an ingredient owned by one account, referenced by recipes.
type Ingredient struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

func (i *Ingredient) String() string {
	return i.Name
}
