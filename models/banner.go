package models

// Banner is a homepage advertisement slide with an overlay text.
type Banner struct {
	ID          uint   `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}
