package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// memSession is an in-memory TokenSource for tests.
type memSession struct {
	mu    sync.Mutex
	token string
}

func (s *memSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *memSession) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func TestFetchDrugsSendsBearerAndQuery(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"items":[{"id":1,"name":"Panadol"}],"totalPages":3}}`))
	}))
	defer srv.Close()

	sess := &memSession{token: "tok-123"}
	c := New(srv.URL, sess)

	page, err := c.FetchDrugs(context.Background(), ListQuery{Page: 2, Search: "pan", SortBy: models.SortByPrice, SortOrder: models.SortAsc})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	q := got.URL.Query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, "pan", q.Get("search"))
	assert.Equal(t, models.SortByPrice, q.Get("sortBy"))
	assert.Equal(t, models.SortAsc, q.Get("sortOrder"))

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Panadol", page.Items[0].Name)
	assert.Equal(t, 3, page.TotalPages)
}

func TestFetchDrugsDefaultsQuery(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		_, _ = w.Write([]byte(`{"data":{"items":[],"totalPages":1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memSession{token: "tok"})
	_, err := c.FetchDrugs(context.Background(), ListQuery{})
	require.NoError(t, err)

	q := got.URL.Query()
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, models.SortByCreatedAt, q.Get("sortBy"))
	assert.Equal(t, models.SortDesc, q.Get("sortOrder"))
}

func TestCategoriesAndLoginAreUnauthenticated(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		switch {
		case strings.HasSuffix(r.URL.Path, "/categories"):
			_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Pain Relief"}]}`))
		default:
			_, _ = w.Write([]byte(`{"token":"fresh-token"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, &memSession{token: "should-not-be-sent"})

	cats, err := c.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)

	token, err := c.Login(context.Background(), "staff@quickmedics.ng", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	for _, h := range headers {
		assert.Empty(t, h)
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := &memSession{token: "expired"}
	c := New(srv.URL, sess)

	_, err := c.FetchAllOrders(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, sess.Token(), "token should be wiped after a 401")
}

func TestServerMessageExtraction(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Stock cannot be negative"}`, "Stock cannot be negative"},
		{"error field", http.StatusConflict, `{"error":"Drug already exists"}`, "Drug already exists"},
		{"garbage body", http.StatusBadGateway, `<html>oops</html>`, "backend returned status 502"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, &memSession{token: "tok"})
			err := c.CreateDrug(context.Background(), models.DrugInput{Name: "X", Category: "Y", RetailPrice: 1, Stock: 1})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestCreateBannerMultipart(t *testing.T) {
	var (
		title    string
		filename string
		payload  []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		title = r.FormValue("title")
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		filename = header.Filename
		buf := make([]byte, header.Size)
		_, _ = file.Read(buf)
		payload = buf
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, &memSession{token: "tok"})
	err := c.CreateBanner(context.Background(), "Malaria week", "20% off", "promo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "Malaria week", title)
	assert.Equal(t, "promo.png", filename)
	assert.Equal(t, "png-bytes", string(payload))
}

func TestUpdateOrderStatusBody(t *testing.T) {
	var path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		body = string(buf)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memSession{token: "tok"})
	require.NoError(t, c.UpdateOrderStatus(context.Background(), 42, models.OrderStatusShipped))

	assert.Equal(t, "/orders/42/status", path)
	assert.JSONEq(t, `{"status":"shipped"}`, body)
}
