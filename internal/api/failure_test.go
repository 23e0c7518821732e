package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runwayhq/backend/internal/api"
)

// failingStore simulates a broken key-value backend.
type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string, any) error {
	return f.err
}

func (f failingStore) Set(context.Context, string, any) error {
	return f.err
}

func (f failingStore) Delete(context.Context, string) error {
	return f.err
}

func (f failingStore) ListByPrefix(context.Context, string) ([][]byte, error) {
	return nil, f.err
}

func TestStoreFailuresSurfaceAsGeneric500(t *testing.T) {
	cause := errors.New("disk exploded: sector 42 unreadable")
	app := api.NewServer(api.Config{Addr: ":0"}, failingStore{err: cause}).App()

	tests := []struct {
		method  string
		path    string
		body    any
		message string
	}{
		{http.MethodGet, "/colleagues", nil, "Failed to fetch colleagues"},
		{http.MethodGet, "/activities", nil, "Failed to fetch activities"},
		{http.MethodGet, "/notifications/user1", nil, "Failed to fetch notifications"},
		{http.MethodPost, "/notifications/user1/mark-seen", nil, "Failed to mark notifications as seen"},
		{http.MethodGet, "/cash", nil, "Failed to fetch cash"},
		{http.MethodGet, "/other-expenses", nil, "Failed to fetch other expenses"},
		{http.MethodGet, "/assets", nil, "Failed to fetch assets"},
		{http.MethodPost, "/assets", map[string]any{"name": "Laptop", "value": 1}, "Failed to add asset"},
		{http.MethodDelete, "/assets/asset:1", nil, "Failed to delete asset"},
		{http.MethodGet, "/liabilities", nil, "Failed to fetch liabilities"},
		{http.MethodGet, "/projects", nil, "Failed to fetch projects"},
		{http.MethodGet, "/customers", nil, "Failed to fetch customers"},
		{http.MethodGet, "/investors", nil, "Failed to fetch investors"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			code, body := doJSON(t, app, tt.method, prefix+tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestStoreFailureHidesInternalDetail(t *testing.T) {
	cause := errors.New("badger: value log corrupted")
	app := api.NewServer(api.Config{Addr: ":0"}, failingStore{err: cause}).App()

	code, body := doJSON(t, app, http.MethodGet, prefix+"/assets", nil)
	require.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, body["error"], "badger", "internal error detail must not leak")
}

func TestValidationShortCircuitsBeforeTheStore(t *testing.T) {
	// A store that fails on every call proves no write is attempted for
	// an invalid payload: the response is 400, not 500.
	app := api.NewServer(api.Config{Addr: ":0"}, failingStore{err: errors.New("boom")}).App()

	code, body := doJSON(t, app, http.MethodPost, prefix+"/assets",
		map[string]any{"name": "Laptop"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Name and value are required", body["error"])

	code, body = doJSON(t, app, http.MethodPut, prefix+"/cash",
		map[string]any{"amount": -1})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Valid amount is required", body["error"])
}
