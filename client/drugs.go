package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// ListQuery are the drug listing parameters. Zero values fall back to the
// backend defaults the admin UI starts with.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

func (q ListQuery) encode() string {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = models.SortByCreatedAt
	}
	sortOrder := q.SortOrder
	if sortOrder != models.SortAsc && sortOrder != models.SortDesc {
		sortOrder = models.SortDesc
	}
	v.Set("page", fmt.Sprintf("%d", page))
	v.Set("limit", fmt.Sprintf("%d", limit))
	v.Set("search", q.Search)
	v.Set("sortBy", sortBy)
	v.Set("sortOrder", sortOrder)
	return v.Encode()
}

// FetchDrugs returns one page of the inventory listing.
func (c *Client) FetchDrugs(ctx context.Context, q ListQuery) (models.DrugPage, error) {
	var resp struct {
		Data models.DrugPage `json:"data"`
	}
	if err := c.doJSON(ctx, "GET", "/drugs?"+q.encode(), nil, &resp, true); err != nil {
		return models.DrugPage{}, err
	}
	return resp.Data, nil
}

// CreateDrug adds a new inventory record.
func (c *Client) CreateDrug(ctx context.Context, input models.DrugInput) error {
	return c.doJSON(ctx, "POST", "/drugs", input, nil, true)
}

// UpdateDrug replaces an existing record's fields.
func (c *Client) UpdateDrug(ctx context.Context, id uint, input models.DrugInput) error {
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/drugs/%d", id), input, nil, true)
}

// FetchCategories lists the merchandising categories. This endpoint is
// public: the storefront uses it too, so no bearer token is sent.
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var resp struct {
		Data []models.Category `json:"data"`
	}
	if err := c.doJSON(ctx, "GET", "/drugs/categories", nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateCategory saves a category's name, image and featured flag.
func (c *Client) UpdateCategory(ctx context.Context, id uint, input models.CategoryInput) error {
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/drugs/categories/%d", id), input, nil, true)
}
