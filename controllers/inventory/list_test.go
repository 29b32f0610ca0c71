package inventorycontroller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// fakeAPI records every query and serves canned pages. An optional hook can
// block individual fetches to simulate slow responses.
type fakeAPI struct {
	mu      sync.Mutex
	queries []client.ListQuery
	page    models.DrugPage
	hook    func(q client.ListQuery) models.DrugPage
}

func (f *fakeAPI) FetchDrugs(_ context.Context, q client.ListQuery) (models.DrugPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	hook := f.hook
	page := f.page
	f.mu.Unlock()
	if hook != nil {
		return hook(q), nil
	}
	return page, nil
}

func (f *fakeAPI) recorded() []client.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.ListQuery(nil), f.queries...)
}

func newTestController(api Fetcher) *ListController {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(api, log)
}

func TestToggleSort(t *testing.T) {
	api := &fakeAPI{page: models.DrugPage{TotalPages: 1}}
	ctl := newTestController(api)
	defer ctl.Close()

	// defaults: newest first
	st := ctl.State()
	assert.Equal(t, models.SortByCreatedAt, st.SortBy)
	assert.Equal(t, models.SortDesc, st.SortOrder)

	// new field resets direction to ascending
	require.NoError(t, ctl.ToggleSort(context.Background(), models.SortByPrice))
	st = ctl.State()
	assert.Equal(t, models.SortByPrice, st.SortBy)
	assert.Equal(t, models.SortAsc, st.SortOrder)

	// same field flips direction
	require.NoError(t, ctl.ToggleSort(context.Background(), models.SortByPrice))
	assert.Equal(t, models.SortDesc, ctl.State().SortOrder)

	require.NoError(t, ctl.ToggleSort(context.Background(), models.SortByPrice))
	assert.Equal(t, models.SortAsc, ctl.State().SortOrder)

	// every toggle re-issued the fetch
	assert.Len(t, api.recorded(), 3)
}

func TestDebounceCoalescesKeystrokes(t *testing.T) {
	api := &fakeAPI{page: models.DrugPage{TotalPages: 3}}
	ctl := newTestController(api)
	defer ctl.Close()
	ctl.SetDebounce(30 * time.Millisecond)

	// land on page 2 first so we can observe the reset
	require.NoError(t, ctl.Refresh(context.Background()))
	require.NoError(t, ctl.NextPage(context.Background()))
	require.Equal(t, 2, ctl.State().Page)
	before := len(api.recorded())

	for _, text := range []string{"p", "pa", "pan", "pana", "panad"} {
		ctl.SetSearch(text)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return len(api.recorded()) == before+1
	}, time.Second, 5*time.Millisecond, "five keystrokes should coalesce into one fetch")

	queries := api.recorded()
	last := queries[len(queries)-1]
	assert.Equal(t, "panad", last.Search, "fetch uses the final text value")
	assert.Equal(t, 1, last.Page, "debounced search resets to page 1")
	assert.Equal(t, 1, ctl.State().Page)

	// quiet period: no further fetches fire
	time.Sleep(80 * time.Millisecond)
	assert.Len(t, api.recorded(), before+1)
}

func TestPaginationBounds(t *testing.T) {
	api := &fakeAPI{page: models.DrugPage{TotalPages: 2}}
	ctl := newTestController(api)
	defer ctl.Close()

	require.NoError(t, ctl.Refresh(context.Background()))
	fetches := len(api.recorded())

	// previous is a no-op on page 1
	require.NoError(t, ctl.PrevPage(context.Background()))
	assert.Equal(t, 1, ctl.State().Page)
	assert.Len(t, api.recorded(), fetches, "no fetch issued at the lower bound")

	require.NoError(t, ctl.NextPage(context.Background()))
	assert.Equal(t, 2, ctl.State().Page)

	// next is a no-op on the last page
	require.NoError(t, ctl.NextPage(context.Background()))
	assert.Equal(t, 2, ctl.State().Page)
}

func TestStaleResponseDiscarded(t *testing.T) {
	slowRelease := make(chan struct{})
	fetchStarted := make(chan string, 2)

	api := &fakeAPI{}
	api.hook = func(q client.ListQuery) models.DrugPage {
		fetchStarted <- q.Search
		if q.Search == "slow" {
			<-slowRelease
			return models.DrugPage{Items: []models.Drug{{ID: 1, Name: "stale"}}, TotalPages: 9}
		}
		return models.DrugPage{Items: []models.Drug{{ID: 2, Name: "fresh"}}, TotalPages: 1}
	}

	ctl := newTestController(api)
	defer ctl.Close()

	// first fetch stalls in flight
	ctl.mu.Lock()
	ctl.applied = "slow"
	ctl.mu.Unlock()
	done := make(chan error, 1)
	go func() { done <- ctl.Refresh(context.Background()) }()
	<-fetchStarted

	// a newer fetch is issued and completes
	ctl.mu.Lock()
	ctl.applied = "fast"
	ctl.mu.Unlock()
	require.NoError(t, ctl.Refresh(context.Background()))
	<-fetchStarted

	// now the stale one resolves: it must not overwrite the newer state
	close(slowRelease)
	require.NoError(t, <-done)

	st := ctl.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "fresh", st.Items[0].Name)
	assert.Equal(t, 1, st.TotalPages)
}

func TestDerivedCategories(t *testing.T) {
	api := &fakeAPI{page: models.DrugPage{
		TotalPages: 1,
		Items: []models.Drug{
			{ID: 1, Name: "Panadol", Category: "Pain Relief"},
			{ID: 2, Name: "Amartem", Category: "Antimalarial"},
			{ID: 3, Name: "Paracetamol", Category: "Pain Relief"},
			{ID: 4, Name: "Unsorted"},
		},
	}}
	ctl := newTestController(api)
	defer ctl.Close()

	require.NoError(t, ctl.Refresh(context.Background()))
	assert.Equal(t, []string{"Pain Relief", "Antimalarial"}, ctl.Categories(),
		"distinct, first-appearance order, empty tags skipped")
}

func TestLowStockHighlight(t *testing.T) {
	assert.True(t, models.Drug{Stock: 4}.LowStock())
	assert.False(t, models.Drug{Stock: 5}.LowStock())
}
