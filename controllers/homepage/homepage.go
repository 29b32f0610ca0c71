package homepagecontroller

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// View flags for the two sub-views.
const (
	ViewSections   = "sections"
	ViewCategories = "categories"
)

// TypeAheadMinChars is the trigger threshold for the inventory search box in
// the content manager. Below it the result list stays empty.
const TypeAheadMinChars = 3

// typeAheadLimit caps how many suggestions one keystroke fetches.
const typeAheadLimit = 10

// API is the slice of the backend client merchandising needs.
type API interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id uint, input models.CategoryInput) error
	FetchSections(ctx context.Context) ([]models.Section, error)
	CreateSection(ctx context.Context, input models.SectionInput) error
	DeleteSection(ctx context.Context, id uint) error
	FetchSectionItems(ctx context.Context, sectionID uint) ([]models.Drug, error)
	UpdateSectionItems(ctx context.Context, sectionID uint, drugIDs []uint) error
	FetchDrugs(ctx context.Context, q client.ListQuery) (models.DrugPage, error)
}

// State is a snapshot of the merchandising view.
type State struct {
	View          string               `json:"view"`
	Categories    []models.Category    `json:"categories"`
	Sections      []models.Section     `json:"sections"`
	ActiveSection *models.Section      `json:"activeSection"`
	Pinned        []models.Drug        `json:"pinned"`
	SearchQuery   string               `json:"searchQuery"`
	SearchResults []models.Drug        `json:"searchResults"`
	EditingCatID  *uint                `json:"editingCatId"`
	EditBuffer    models.CategoryInput `json:"editBuffer"`
}

// Controller owns homepage merchandising: curated sections with their pinned
// drug lists, and the featured-category bubbles. Pinned-list edits persist
// the full ordered id list immediately; the backend keeps the last write.
type Controller struct {
	api      API
	validate *validator.Validate

	mu            sync.Mutex
	view          string
	categories    []models.Category
	sections      []models.Section
	activeSection *models.Section
	pinned        []models.Drug
	searchQuery   string
	searchResults []models.Drug
	searchSeq     uint64
	editingCatID  *uint
	editBuffer    models.CategoryInput
}

func New(api API) *Controller {
	return &Controller{api: api, validate: validator.New(), view: ViewSections}
}

// State returns a copy of the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	var active *models.Section
	if c.activeSection != nil {
		s := *c.activeSection
		active = &s
	}
	var editing *uint
	if c.editingCatID != nil {
		id := *c.editingCatID
		editing = &id
	}
	return State{
		View:          c.view,
		Categories:    append([]models.Category(nil), c.categories...),
		Sections:      append([]models.Section(nil), c.sections...),
		ActiveSection: active,
		Pinned:        append([]models.Drug(nil), c.pinned...),
		SearchQuery:   c.searchQuery,
		SearchResults: append([]models.Drug(nil), c.searchResults...),
		EditingCatID:  editing,
		EditBuffer:    c.editBuffer,
	}
}

// SetView switches between the sections and category-bubbles sub-views.
func (c *Controller) SetView(view string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if view == ViewCategories {
		c.view = ViewCategories
	} else {
		c.view = ViewSections
	}
}

// LoadData reloads both the category and section lists.
func (c *Controller) LoadData(ctx context.Context) error {
	cats, err := c.api.FetchCategories(ctx)
	if err != nil {
		return err
	}
	secs, err := c.api.FetchSections(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = cats
	c.sections = secs
	return nil
}

// AddSection creates a section (title required, category optional) and
// reloads both lists.
func (c *Controller) AddSection(ctx context.Context, input models.SectionInput) error {
	if err := c.validate.Struct(input); err != nil {
		return err
	}
	if err := c.api.CreateSection(ctx, input); err != nil {
		return err
	}
	return c.LoadData(ctx)
}

// DeleteSection removes a section and reloads.
func (c *Controller) DeleteSection(ctx context.Context, id uint) error {
	if err := c.api.DeleteSection(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	if c.activeSection != nil && c.activeSection.ID == id {
		c.activeSection = nil
		c.pinned = nil
	}
	c.mu.Unlock()
	return c.LoadData(ctx)
}

// OpenContentManager selects a section and loads its pinned drug list.
func (c *Controller) OpenContentManager(ctx context.Context, sectionID uint) error {
	c.mu.Lock()
	var target *models.Section
	for i := range c.sections {
		if c.sections[i].ID == sectionID {
			s := c.sections[i]
			target = &s
			break
		}
	}
	c.mu.Unlock()
	if target == nil {
		return ErrSectionNotFound
	}

	items, err := c.api.FetchSectionItems(ctx, sectionID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeSection = target
	c.pinned = items
	c.searchQuery = ""
	c.searchResults = nil
	return nil
}

// CloseContentManager returns to the section list.
func (c *Controller) CloseContentManager() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeSection = nil
	c.pinned = nil
	c.searchQuery = ""
	c.searchResults = nil
}

// TypeAhead runs the inventory search for the content manager. It fires on
// every keystroke once the query reaches three characters (no debounce),
// and already-pinned drugs are filtered out of the results. Responses that
// lose the race against a newer keystroke are discarded.
func (c *Controller) TypeAhead(ctx context.Context, query string) error {
	c.mu.Lock()
	c.searchQuery = query
	c.searchSeq++
	seq := c.searchSeq
	if len([]rune(query)) < TypeAheadMinChars {
		c.searchResults = nil
		c.mu.Unlock()
		return nil
	}
	pinned := make(map[uint]bool, len(c.pinned))
	for _, d := range c.pinned {
		pinned[d.ID] = true
	}
	c.mu.Unlock()

	page, err := c.api.FetchDrugs(ctx, client.ListQuery{Page: 1, Limit: typeAheadLimit, Search: query})
	if err != nil {
		return err
	}

	results := make([]models.Drug, 0, len(page.Items))
	for _, d := range page.Items {
		if !pinned[d.ID] {
			results = append(results, d)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.searchSeq {
		return nil
	}
	c.searchResults = results
	return nil
}

// AddPinned appends a drug to the active section's pinned list and persists
// the full ordered id list immediately. The in-memory list is updated first;
// the backend write is last-write-wins.
func (c *Controller) AddPinned(ctx context.Context, drug models.Drug) error {
	c.mu.Lock()
	if c.activeSection == nil {
		c.mu.Unlock()
		return ErrNoActiveSection
	}
	for _, d := range c.pinned {
		if d.ID == drug.ID {
			c.mu.Unlock()
			return nil
		}
	}
	c.pinned = append(c.pinned, drug)

	results := c.searchResults[:0]
	for _, d := range c.searchResults {
		if d.ID != drug.ID {
			results = append(results, d)
		}
	}
	c.searchResults = results

	sectionID := c.activeSection.ID
	ids := pinnedIDs(c.pinned)
	c.mu.Unlock()

	return c.api.UpdateSectionItems(ctx, sectionID, ids)
}

// RemovePinned drops a drug from the pinned list and persists the new list.
func (c *Controller) RemovePinned(ctx context.Context, drugID uint) error {
	c.mu.Lock()
	if c.activeSection == nil {
		c.mu.Unlock()
		return ErrNoActiveSection
	}
	kept := make([]models.Drug, 0, len(c.pinned))
	for _, d := range c.pinned {
		if d.ID != drugID {
			kept = append(kept, d)
		}
	}
	c.pinned = kept
	sectionID := c.activeSection.ID
	ids := pinnedIDs(c.pinned)
	c.mu.Unlock()

	return c.api.UpdateSectionItems(ctx, sectionID, ids)
}

// PinnedIDs returns the active section's pinned ids in pin order.
func (c *Controller) PinnedIDs() []uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pinnedIDs(c.pinned)
}

// StartCategoryEdit copies a category row into the edit buffer.
func (c *Controller) StartCategoryEdit(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cat := range c.categories {
		if cat.ID == id {
			c.editingCatID = &id
			c.editBuffer = models.CategoryInput{
				Name:       cat.Name,
				ImageURL:   cat.ImageURL,
				IsFeatured: cat.IsFeatured,
			}
			return
		}
	}
}

// SetCategoryBuffer replaces the edit buffer with the staff's values.
func (c *Controller) SetCategoryBuffer(input models.CategoryInput) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editBuffer = input
}

// SaveCategoryEdit persists the buffer and reloads; edit mode ends.
func (c *Controller) SaveCategoryEdit(ctx context.Context) error {
	c.mu.Lock()
	if c.editingCatID == nil {
		c.mu.Unlock()
		return ErrNoCategoryEdit
	}
	id := *c.editingCatID
	buffer := c.editBuffer
	c.mu.Unlock()

	if err := c.validate.Struct(buffer); err != nil {
		return err
	}
	if err := c.api.UpdateCategory(ctx, id, buffer); err != nil {
		return err
	}

	c.mu.Lock()
	c.editingCatID = nil
	c.editBuffer = models.CategoryInput{}
	c.mu.Unlock()

	return c.LoadData(ctx)
}

// CancelCategoryEdit discards the buffer without saving.
func (c *Controller) CancelCategoryEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingCatID = nil
	c.editBuffer = models.CategoryInput{}
}

func pinnedIDs(pinned []models.Drug) []uint {
	ids := make([]uint, len(pinned))
	for i, d := range pinned {
		ids[i] = d.ID
	}
	return ids
}
