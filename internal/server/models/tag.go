package models

import "time"

// Tag is a label owned by one account, used to group recipes.
type Tag struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

func (t *Tag) String() string {
	return t.Name
}
