package models

// MaxSectionSlots caps how many products a homepage section renders. Pinned
// items come first, remaining slots fill from the attached category.
const MaxSectionSlots = 12

// Section is a curated homepage product row. CategoryID is optional: when
// set, the storefront auto-fills remaining slots from that category; when
// nil, only pinned items render.
type Section struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	CategoryID *uint  `json:"categoryId"`
}

// SectionInput is the POST /drugs/sections payload.
type SectionInput struct {
	Title      string `json:"title" validate:"required"`
	CategoryID *uint  `json:"categoryId"`
}

// SectionItems is the PUT /drugs/sections/:id/items payload: the full ordered
// pinned id list, replacing whatever the backend holds (last write wins).
type SectionItems struct {
	DrugIDs []uint `json:"drugIds"`
}
