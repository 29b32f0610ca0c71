package ordercontrollers

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// API is the slice of the backend client the order dashboard needs.
type API interface {
	FetchAllOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

// Stats are the dashboard cards, computed over the unfiltered set.
type Stats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	PendingAction int     `json:"pendingAction"` // paid orders awaiting dispatch
}

// OrderController owns the order dashboard: it loads the full order set and
// applies search and status filtering in memory. Exactly one detail row can
// be expanded at a time.
type OrderController struct {
	api    API
	notify func() // fires after a successful status mutation; may be nil

	mu           sync.Mutex
	orders       []models.Order
	search       string
	statusFilter string
	selected     *uint
	seq          uint64
}

// New builds the controller. notify (optional) is invoked after a successful
// status update so connected staff UIs can refresh.
func New(api API, notify func()) *OrderController {
	return &OrderController{api: api, notify: notify, statusFilter: StatusFilterAll}
}

// Load refetches the complete order set. Stale responses are discarded when
// a newer load was issued meanwhile.
func (c *OrderController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	orders, err := c.api.FetchAllOrders(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil
	}
	c.orders = orders
	return nil
}

// SetSearch sets the free-text filter: order id substring, or
// case-insensitive customer name/email substring.
func (c *OrderController) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = text
}

// SetStatusFilter restricts the table to one status, or StatusFilterAll.
func (c *OrderController) SetStatusFilter(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statusFilter = status
}

// Filtered returns the orders matching the current search and status filter.
func (c *OrderController) Filtered() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]models.Order, 0, len(c.orders))
	needle := strings.ToLower(c.search)
	for _, o := range c.orders {
		if needle != "" {
			idMatch := strings.Contains(strconv.FormatUint(uint64(o.ID), 10), needle)
			nameMatch := strings.Contains(strings.ToLower(o.CustomerName), needle)
			emailMatch := strings.Contains(strings.ToLower(o.CustomerEmail), needle)
			if !idMatch && !nameMatch && !emailMatch {
				continue
			}
		}
		if c.statusFilter != StatusFilterAll && string(o.Status) != c.statusFilter {
			continue
		}
		result = append(result, o)
	}
	return result
}

// ToggleDetails expands one order's detail row, collapsing any other. A
// second toggle on the same id collapses it.
func (c *OrderController) ToggleDetails(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected != nil && *c.selected == id {
		c.selected = nil
		return
	}
	c.selected = &id
}

// Selected returns the currently expanded order id, or nil.
func (c *OrderController) Selected() *uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	id := *c.selected
	return &id
}

// UpdateStatus moves an order to a new status, then reloads the whole set.
// There is no optimistic update: the backend's answer is the truth.
func (c *OrderController) UpdateStatus(ctx context.Context, id uint, status string) error {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	if err := c.api.UpdateOrderStatus(ctx, id, parsed); err != nil {
		return err
	}
	if err := c.Load(ctx); err != nil {
		return err
	}
	if c.notify != nil {
		c.notify()
	}
	return nil
}

// Stats computes the dashboard cards over the unfiltered set.
func (c *OrderController) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	amounts := make([]float64, 0, len(c.orders))
	pending := 0
	for _, o := range c.orders {
		amounts = append(amounts, o.TotalAmount)
		if o.Status == models.OrderStatusPaid {
			pending++
		}
	}
	return Stats{
		TotalRevenue:  models.SumAmounts(amounts),
		TotalOrders:   len(c.orders),
		PendingAction: pending,
	}
}

// Orders returns the unfiltered set.
func (c *OrderController) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Order(nil), c.orders...)
}
