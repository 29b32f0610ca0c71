package models

import "time"

// Sortable listing fields accepted by the backend.
const (
	SortByCreatedAt = "created_at"
	SortByName      = "name"
	SortByCategory  = "category"
	SortByPrice     = "price"
	SortByStock     = "stock"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// LowStockThreshold marks inventory rows that need restocking attention.
const LowStockThreshold = 5

// Drug is an inventory record as the backend returns it. Category is a free
// text tag on the drug itself, not a reference to the Category entity.
type Drug struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	Image           string    `json:"image"`
	DiscountPercent float64   `json:"discountPercent"`
	IsFeatured      bool      `json:"isFeatured"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LowStock reports whether the row should be highlighted for restocking.
func (d Drug) LowStock() bool {
	return d.Stock < LowStockThreshold
}

// DrugInput is the create/update payload for POST /drugs and PUT /drugs/:id.
type DrugInput struct {
	Name            string  `json:"name" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	RetailPrice     float64 `json:"retailPrice" validate:"required"`
	Stock           int     `json:"stock"`
	ImageURL        string  `json:"imageUrl"`
	DiscountPercent float64 `json:"discountPercent"`
	IsFeatured      bool    `json:"isFeatured"`
}

// DrugPage is one page of the drug listing.
type DrugPage struct {
	Items      []Drug `json:"items"`
	TotalPages int    `json:"totalPages"`
}
