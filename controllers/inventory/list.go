package inventorycontroller

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

const (
	DefaultPageSize = 20
	DefaultDebounce = 500 * time.Millisecond
)

// Fetcher is the slice of the backend client the listing needs.
type Fetcher interface {
	FetchDrugs(ctx context.Context, q client.ListQuery) (models.DrugPage, error)
}

// State is a snapshot of the listing for the UI.
type State struct {
	Items      []models.Drug `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Search     string        `json:"search"`
	SortBy     string        `json:"sortBy"`
	SortOrder  string        `json:"sortOrder"`
	Categories []string      `json:"categories"`
}

// ListController owns the paginated/sorted/searched drug listing and derives
// the category set the drug form's selector uses. Search input is debounced;
// every fetch carries a sequence number so a slow response that lost the
// race can never overwrite a newer one.
type ListController struct {
	api Fetcher
	log *logrus.Logger

	pageSize int
	debounce time.Duration

	mu         sync.Mutex
	page       int
	totalPages int
	search     string // live input
	applied    string // debounced value in effect
	sortBy     string
	sortOrder  string
	items      []models.Drug
	categories []string

	seq   uint64 // latest issued fetch, guarded by mu
	timer *time.Timer

	ctx    context.Context
	cancel context.CancelFunc
}

// New builds a listing controller with the admin UI's defaults: page 1,
// twenty rows, newest first.
func New(api Fetcher, log *logrus.Logger) *ListController {
	ctx, cancel := context.WithCancel(context.Background())
	return &ListController{
		api:        api,
		log:        log,
		pageSize:   DefaultPageSize,
		debounce:   DefaultDebounce,
		page:       1,
		totalPages: 1,
		sortBy:     models.SortByCreatedAt,
		sortOrder:  models.SortDesc,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetDebounce overrides the search quiet interval. Used by tests.
func (c *ListController) SetDebounce(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounce = d
}

// Close stops the debounce timer and any timer-triggered fetches.
func (c *ListController) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.cancel()
}

// State returns a copy of the current listing state.
func (c *ListController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Items:      append([]models.Drug(nil), c.items...),
		Page:       c.page,
		TotalPages: c.totalPages,
		Search:     c.search,
		SortBy:     c.sortBy,
		SortOrder:  c.sortOrder,
		Categories: append([]string(nil), c.categories...),
	}
}

// Refresh re-issues the listing fetch with the current parameters. A
// response is applied only when it belongs to the latest issued fetch.
func (c *ListController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	q := client.ListQuery{
		Page:      c.page,
		Limit:     c.pageSize,
		Search:    c.applied,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
	}
	c.mu.Unlock()

	page, err := c.api.FetchDrugs(ctx, q)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// a newer fetch was issued while this one was in flight
		return nil
	}
	c.items = page.Items
	c.totalPages = page.TotalPages
	if c.totalPages < 1 {
		c.totalPages = 1
	}
	c.categories = distinctCategories(page.Items)
	return nil
}

// SetSearch records a keystroke. The fetch fires only after the input has
// been quiet for the debounce interval, and resets the listing to page 1.
func (c *ListController) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = text
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() { c.applySearch(text) })
}

func (c *ListController) applySearch(text string) {
	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.applied = text
	c.page = 1
	c.mu.Unlock()

	if err := c.Refresh(c.ctx); err != nil {
		c.log.WithError(err).Warn("inventory search fetch failed")
	}
}

// ToggleSort handles a sortable column click: an already-active field flips
// direction, a new field becomes active ascending.
func (c *ListController) ToggleSort(ctx context.Context, field string) error {
	c.mu.Lock()
	if c.sortBy == field {
		if c.sortOrder == models.SortAsc {
			c.sortOrder = models.SortDesc
		} else {
			c.sortOrder = models.SortAsc
		}
	} else {
		c.sortBy = field
		c.sortOrder = models.SortAsc
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetSort applies a sort preset (field plus direction) directly, the way the
// UI's dropdown emits them.
func (c *ListController) SetSort(ctx context.Context, field, order string) error {
	if order != models.SortAsc && order != models.SortDesc {
		order = models.SortDesc
	}
	c.mu.Lock()
	c.sortBy = field
	c.sortOrder = order
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// NextPage advances one page. A no-op on the last page.
func (c *ListController) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.page >= c.totalPages {
		c.mu.Unlock()
		return nil
	}
	c.page++
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// PrevPage goes back one page. A no-op on page 1.
func (c *ListController) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	if c.page <= 1 {
		c.mu.Unlock()
		return nil
	}
	c.page--
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Categories returns the distinct category tags present on the current page.
// This seeds the drug form's selector; it is not a global category list.
func (c *ListController) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.categories...)
}

func distinctCategories(items []models.Drug) []string {
	seen := make(map[string]bool, len(items))
	var cats []string
	for _, d := range items {
		if d.Category == "" || seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		cats = append(cats, d.Category)
	}
	return cats
}
