package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// FetchBanners lists all banners, active and inactive.
func (c *Client) FetchBanners(ctx context.Context) ([]models.Banner, error) {
	var resp struct {
		Data []models.Banner `json:"data"`
	}
	if err := c.doJSON(ctx, "GET", "/banners", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateBanner uploads a banner image with its overlay text as multipart
// form data. The backend stores the file and returns the hosted URL.
func (c *Client) CreateBanner(ctx context.Context, title, description, filename string, image io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("title", title); err != nil {
		return err
	}
	if err := writer.WriteField("description", description); err != nil {
		return err
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, image); err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/banners", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, nil, true)
}

// DeleteBanner removes a banner and its stored image.
func (c *Client) DeleteBanner(ctx context.Context, id uint) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/banners/%d", id), nil, nil, true)
}

// ToggleBanner sets a banner's active flag.
func (c *Client) ToggleBanner(ctx context.Context, id uint, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/banners/%d/toggle", id), body, nil, true)
}
