package drugformcontroller

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// NewCategoryOption is the sentinel the category select emits when staff
// choose to type a brand new category instead of picking a known one.
const NewCategoryOption = "NEW_CATEGORY_OPTION"

// Saver is the slice of the backend client the form needs.
type Saver interface {
	CreateDrug(ctx context.Context, input models.DrugInput) error
	UpdateDrug(ctx context.Context, id uint, input models.DrugInput) error
}

// State is a snapshot of the form for the UI.
type State struct {
	Editing       *models.Drug     `json:"editing"`
	Input         models.DrugInput `json:"input"`
	IsNewCategory bool             `json:"isNewCategory"`
}

// FormController owns the create/edit form for a single drug record. It is
// bound to "create" mode until an edit target is set, and switches back when
// the target clears.
type FormController struct {
	api      Saver
	validate *validator.Validate
	onSaved  func()

	mu            sync.Mutex
	editing       *models.Drug
	input         models.DrugInput
	isNewCategory bool
}

// New builds the form controller. onSaved is invoked after a successful
// submit so the parent can refresh the listing and exit edit mode; it may be
// nil.
func New(api Saver, onSaved func()) *FormController {
	return &FormController{
		api:      api,
		validate: validator.New(),
		onSaved:  onSaved,
	}
}

// State returns a copy of the form state.
func (f *FormController) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	var editing *models.Drug
	if f.editing != nil {
		d := *f.editing
		editing = &d
	}
	return State{Editing: editing, Input: f.input, IsNewCategory: f.isNewCategory}
}

// SetTarget switches the form to edit mode pre-populated from the record, or
// back to an empty create form when the target is nil.
func (f *FormController) SetTarget(drug *models.Drug) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.isNewCategory = false
	if drug == nil {
		f.editing = nil
		f.input = models.DrugInput{}
		return
	}
	d := *drug
	f.editing = &d
	f.input = models.DrugInput{
		Name:            d.Name,
		Category:        d.Category,
		RetailPrice:     d.Price,
		Stock:           d.Stock,
		ImageURL:        d.Image,
		DiscountPercent: d.DiscountPercent,
		IsFeatured:      d.IsFeatured,
	}
}

// SetInput replaces the form buffer with the staff's current field values.
func (f *FormController) SetInput(input models.DrugInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = input
}

// SelectCategory handles the hybrid category control. The sentinel option
// swaps the select for a free-text input; any other value is taken as the
// chosen category.
func (f *FormController) SelectCategory(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if value == NewCategoryOption {
		f.isNewCategory = true
		f.input.Category = ""
		return
	}
	f.isNewCategory = false
	f.input.Category = value
}

// Submit validates the buffer and calls create or update depending on mode.
// On success the form clears and onSaved fires. Discount percent is passed
// through as entered; range checking is the backend's job.
func (f *FormController) Submit(ctx context.Context) error {
	f.mu.Lock()
	input := f.input
	editing := f.editing
	f.mu.Unlock()

	if err := f.validate.Struct(input); err != nil {
		return err
	}

	var err error
	if editing != nil {
		err = f.api.UpdateDrug(ctx, editing.ID, input)
	} else {
		err = f.api.CreateDrug(ctx, input)
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.editing = nil
	f.input = models.DrugInput{}
	f.isNewCategory = false
	f.mu.Unlock()

	if f.onSaved != nil {
		f.onSaved()
	}
	return nil
}
