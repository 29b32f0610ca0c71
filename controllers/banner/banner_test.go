package bannercontroller

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

type upload struct {
	title, description, filename, body string
}

type fakeBannerAPI struct {
	banners []models.Banner
	uploads []upload
	deleted []uint
	toggles map[uint]bool
	fetches int
}

func (f *fakeBannerAPI) FetchBanners(context.Context) ([]models.Banner, error) {
	f.fetches++
	return append([]models.Banner(nil), f.banners...), nil
}

func (f *fakeBannerAPI) CreateBanner(_ context.Context, title, description, filename string, image io.Reader) error {
	body, err := io.ReadAll(image)
	if err != nil {
		return err
	}
	f.uploads = append(f.uploads, upload{title, description, filename, string(body)})
	f.banners = append(f.banners, models.Banner{
		ID:          uint(len(f.banners) + 1),
		Title:       title,
		Description: description,
		IsActive:    true,
	})
	return nil
}

func (f *fakeBannerAPI) DeleteBanner(_ context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	kept := f.banners[:0]
	for _, b := range f.banners {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.banners = kept
	return nil
}

func (f *fakeBannerAPI) ToggleBanner(_ context.Context, id uint, active bool) error {
	if f.toggles == nil {
		f.toggles = map[uint]bool{}
	}
	f.toggles[id] = active
	for i := range f.banners {
		if f.banners[i].ID == id {
			f.banners[i].IsActive = active
		}
	}
	return nil
}

func TestUploadThenReload(t *testing.T) {
	api := &fakeBannerAPI{}
	ctl := New(api)

	err := ctl.Upload(context.Background(), "Big Sale!", "50% off vitamins", "sale.jpg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	require.Len(t, api.uploads, 1)
	assert.Equal(t, "Big Sale!", api.uploads[0].title)
	assert.Equal(t, "sale.jpg", api.uploads[0].filename)
	assert.Equal(t, "jpegbytes", api.uploads[0].body)

	assert.Len(t, ctl.Banners(), 1, "list reloaded after upload")
}

func TestUploadRequiresImage(t *testing.T) {
	api := &fakeBannerAPI{}
	ctl := New(api)

	assert.ErrorIs(t, ctl.Upload(context.Background(), "t", "d", "", nil), ErrNoImage)
	assert.Empty(t, api.uploads)
}

func TestToggleFlipsCurrentState(t *testing.T) {
	api := &fakeBannerAPI{banners: []models.Banner{
		{ID: 1, Title: "A", IsActive: true},
		{ID: 2, Title: "B", IsActive: false},
	}}
	ctl := New(api)
	require.NoError(t, ctl.Load(context.Background()))

	require.NoError(t, ctl.Toggle(context.Background(), 1))
	assert.False(t, api.toggles[1], "active banner becomes inactive")

	require.NoError(t, ctl.Toggle(context.Background(), 2))
	assert.True(t, api.toggles[2], "inactive banner becomes active")

	assert.Error(t, ctl.Toggle(context.Background(), 99))
}

func TestDeleteReloads(t *testing.T) {
	api := &fakeBannerAPI{banners: []models.Banner{{ID: 1}, {ID: 2}}}
	ctl := New(api)
	require.NoError(t, ctl.Load(context.Background()))

	require.NoError(t, ctl.Delete(context.Background(), 1))
	assert.Equal(t, []uint{1}, api.deleted)
	require.Len(t, ctl.Banners(), 1)
	assert.Equal(t, uint(2), ctl.Banners()[0].ID)
}
