package models

import "time"

// Recipe is owned by one account and links to that account's tags and ingredients.
type Recipe struct {
	ID          string
	UserID      string
	Title       string
	TimeMinutes int
	Price       Price
	Link        string

	// Image is the object-storage key of the recipe image, empty if none.
	Image string

	TagIDs        []string
	IngredientIDs []string

	CreatedAt time.Time
}

func (r *Recipe) String() string {
	return r.Title
}

// ImageUpload instructs the client to PUT the image bytes to URL; the object
// will be stored under Key.
type ImageUpload struct {
	Key string
	URL string
}
