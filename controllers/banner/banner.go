package bannercontroller

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// ErrNoImage is returned when an upload is submitted without a file.
var ErrNoImage = errors.New("an image file is required")

// API is the slice of the backend client the banner manager needs.
type API interface {
	FetchBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, title, description, filename string, image io.Reader) error
	DeleteBanner(ctx context.Context, id uint) error
	ToggleBanner(ctx context.Context, id uint, active bool) error
}

// Controller owns the banner manager: upload, listing, activation toggle and
// deletion. Every mutation reloads the list from the backend.
type Controller struct {
	api API

	mu      sync.Mutex
	banners []models.Banner
}

func New(api API) *Controller {
	return &Controller{api: api}
}

// Load refetches the banner list.
func (c *Controller) Load(ctx context.Context) error {
	banners, err := c.api.FetchBanners(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.banners = banners
	c.mu.Unlock()
	return nil
}

// Banners returns the current list.
func (c *Controller) Banners() []models.Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Banner(nil), c.banners...)
}

// Upload sends the banner as multipart form data and reloads on success.
// The overlay title and description may be empty; the image may not.
func (c *Controller) Upload(ctx context.Context, title, description, filename string, image io.Reader) error {
	if image == nil || filename == "" {
		return ErrNoImage
	}
	if err := c.api.CreateBanner(ctx, title, description, filename, image); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Delete removes a banner and reloads. Confirmation happens at the surface
// that calls this.
func (c *Controller) Delete(ctx context.Context, id uint) error {
	if err := c.api.DeleteBanner(ctx, id); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Toggle flips a banner's active flag, persists it immediately and reloads.
func (c *Controller) Toggle(ctx context.Context, id uint) error {
	c.mu.Lock()
	var current, found = false, false
	for _, b := range c.banners {
		if b.ID == id {
			current = b.IsActive
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return errors.New("banner not found")
	}

	if err := c.api.ToggleBanner(ctx, id, !current); err != nil {
		return err
	}
	return c.Load(ctx)
}
