package client

import (
	"context"
	"fmt"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// FetchAllOrders returns the complete order set, newest first. The admin
// view filters client-side, so no query parameters exist here.
func (c *Client) FetchAllOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Data []models.Order `json:"data"`
	}
	if err := c.doJSON(ctx, "GET", "/orders/all", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateOrderStatus moves an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/orders/%d/status", id), body, nil, true)
}
