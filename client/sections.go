package client

import (
	"context"
	"fmt"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// FetchSections lists the curated homepage sections.
func (c *Client) FetchSections(ctx context.Context) ([]models.Section, error) {
	var resp struct {
		Data []models.Section `json:"data"`
	}
	if err := c.doJSON(ctx, "GET", "/drugs/sections", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateSection adds a homepage section.
func (c *Client) CreateSection(ctx context.Context, input models.SectionInput) error {
	return c.doJSON(ctx, "POST", "/drugs/sections", input, nil, true)
}

// DeleteSection removes a section and its pinned list.
func (c *Client) DeleteSection(ctx context.Context, id uint) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/drugs/sections/%d", id), nil, nil, true)
}

// FetchSectionItems returns the drugs pinned to a section, in pin order.
func (c *Client) FetchSectionItems(ctx context.Context, sectionID uint) ([]models.Drug, error) {
	var resp struct {
		Data []models.Drug `json:"data"`
	}
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/drugs/sections/%d/items", sectionID), nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateSectionItems replaces a section's pinned id list. The backend does
// no merging: the list sent here is the new truth (last write wins).
func (c *Client) UpdateSectionItems(ctx context.Context, sectionID uint, drugIDs []uint) error {
	if drugIDs == nil {
		drugIDs = []uint{}
	}
	body := models.SectionItems{DrugIDs: drugIDs}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/drugs/sections/%d/items", sectionID), body, nil, true)
}
