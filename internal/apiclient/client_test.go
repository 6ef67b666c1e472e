package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"warehouse-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestFetchSuccess(t *testing.T) {
	var got *http.Request
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusCreated, `{"status":"success","status_code":201,"message":"created","payload":{"data":{"id":"1","name":"Widget"}}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 2*time.Second)
	resp := Fetch[item](context.Background(), c, Request{
		Method:   http.MethodPost,
		Path:     "/products",
		Token:    "tok",
		Headers:  map[string]string{"X-Device-ID": "dev-1"},
		Body:     map[string]string{"name": "Widget"},
		Query:    url.Values{"page": {"2"}},
		Resource: "products",
	})

	require.True(t, resp.OK())
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "Widget", resp.Payload.Data.Name)
	assert.NotNil(t, resp.Payload.Errors)

	require.NotNil(t, got)
	assert.Equal(t, "/products", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "dev-1", got.Header.Get("X-Device-ID"))
	assert.Equal(t, "Widget", gotBody["name"])
}

func TestFetchOmitsAuthorizationWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"status":"success","status_code":200,"message":"ok","payload":{"data":null}}`)
	}))
	defer srv.Close()

	resp := Fetch[models.Empty](context.Background(), NewClient(srv.URL, time.Second), Request{Method: http.MethodGet, Path: "/x"})
	assert.True(t, resp.OK())
}

func TestFetchPassesBackendErrorsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"status":"error","status_code":409,"message":"duplicate key value","payload":{"data":null,"errors":[{"field":"sku","message":"taken"}]}}`)
	}))
	defer srv.Close()

	resp := Fetch[item](context.Background(), NewClient(srv.URL, time.Second), Request{Method: http.MethodPost, Path: "/products"})

	assert.False(t, resp.OK())
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "duplicate key value", resp.Message)
	assert.Equal(t, []models.ErrorDetail{{Field: "sku", Message: "taken"}}, resp.Payload.Errors)
}

func TestFetchNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	resp := Fetch[item](context.Background(), NewClient(srv.URL, time.Second), Request{Method: http.MethodGet, Path: "/products"})

	assert.Equal(t, models.StatusError, resp.Status)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Unexpected server error", resp.Message)
	assert.Equal(t, []models.ErrorDetail{}, resp.Payload.Errors)
}

func TestFetchUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":`)
	}))
	defer srv.Close()

	resp := Fetch[item](context.Background(), NewClient(srv.URL, time.Second), Request{Method: http.MethodGet, Path: "/products"})
	assert.Equal(t, 500, resp.StatusCode)
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	resp := Fetch[item](context.Background(), NewClient(base, time.Second), Request{Method: http.MethodGet, Path: "/products"})

	assert.Equal(t, models.StatusError, resp.Status)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestFetchDecodesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"success","status_code":200,"message":"ok","payload":{"data":[{"id":"1"},{"id":"2"}],"pagination":{"has_next_page":true,"next_page":2,"current_page":1,"total_pages":3,"total_items":25}}}`)
	}))
	defer srv.Close()

	resp := Fetch[[]item](context.Background(), NewClient(srv.URL, time.Second), Request{Method: http.MethodGet, Path: "/products", Query: PageQuery(1, 10)})

	require.True(t, resp.OK())
	assert.Len(t, resp.Payload.Data, 2)
	require.NotNil(t, resp.Payload.Pagination)
	assert.Equal(t, 3, resp.Payload.Pagination.TotalPages)
	assert.False(t, resp.Payload.Pagination.IsCursor())
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "/products/abc", ResourcePath("/products", "abc"))
	assert.Equal(t, "/products/a%2Fb", ResourcePath("/products", "a/b"))
}
