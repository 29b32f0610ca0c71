package models

// Category is a homepage merchandising entity. Distinct from the free-text
// category string on Drug; the backend owns reconciliation between the two.
type Category struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	IsFeatured bool   `json:"isFeatured"`
}

// CategoryInput is the PUT /drugs/categories/:id payload.
type CategoryInput struct {
	Name       string `json:"name" validate:"required"`
	ImageURL   string `json:"imageUrl"`
	IsFeatured bool   `json:"isFeatured"`
}
