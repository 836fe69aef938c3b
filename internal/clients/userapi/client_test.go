package userapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newServer(t *testing.T) *Client {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   []map[string]any{{"id": 1, "name": "A", "email": "a@example.com"}},
		})
	})
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "1" {
			writeJSON(w, http.StatusNotFound, map[string]any{"status": "error", "message": "User not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 1, "name": "A", "email": "a@example.com"},
		})
	})
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var in CreateUserRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Email == "a@example.com" {
			writeJSON(w, http.StatusConflict, map[string]any{"status": "error", "message": "Email already exists"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 2, "name": in.Name, "email": in.Email},
		})
	})
	r.Put("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		if _, ok := in["name"]; ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"status": "error", "message": "unexpected name"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 1, "name": "A", "email": in["email"]},
		})
	})
	r.Delete("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": "User deleted successfully"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 2*time.Second, logging.NewNop())
	require.NoError(t, err)
	return c
}

func TestClient_CRUD(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	users, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), users[0].ID)

	u, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	u, err = c.Create(ctx, CreateUserRequest{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)

	email := "new@example.com"
	u, err = c.Update(ctx, 1, UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, email, u.Email)

	msg, err := c.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", msg)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	_, err := c.Get(ctx, 9999)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "User not found", apiErr.Message)

	_, err = c.Create(ctx, CreateUserRequest{Name: "A", Email: "a@example.com"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email already exists", apiErr.Message)
}
