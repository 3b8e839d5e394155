package recipeapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lataewar/forkify/internal/recipeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *recipeapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return recipeapi.New(recipeapi.Options{BaseURL: srv.URL, Key: "secret", Timeout: 5 * time.Second})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestSearch(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "pizza", r.URL.Query().Get("q"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"count": 2,
			"recipes": []map[string]any{
				{"recipe_id": "47746", "title": "Best Pizza Dough Ever", "publisher": "101 Cookbooks", "social_rank": 100},
				{"recipe_id": "54454", "title": "Deep Dish Pizza", "publisher": "Closet Cooking", "social_rank": 99.9},
			},
		})
	})

	got, err := client.Search(context.Background(), "pizza")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "47746", got[0].ID)
	assert.Equal(t, "Best Pizza Dough Ever", got[0].Title)
	assert.Equal(t, "Closet Cooking", got[1].Publisher)
	assert.Equal(t, 99.9, got[1].SocialRank)
}

func TestSearch_NoResults(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"count": 0})
	})

	got, err := client.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_ErrorField(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"error": "limit"})
	})

	_, err := client.Search(context.Background(), "pizza")
	var apiErr *recipeapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "limit", apiErr.Message)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestGet(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "35477", r.URL.Query().Get("rId"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"recipe": map[string]any{
				"recipe_id":   "35477",
				"title":       "Pizza Dip",
				"publisher":   "Closet Cooking",
				"image_url":   "http://example.com/pizza.jpg",
				"source_url":  "http://example.com/pizza-dip",
				"ingredients": []string{"4 ounces cream cheese", "1/4 cup sour cream"},
			},
		})
	})

	got, err := client.Get(context.Background(), "35477")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Dip", got.Title)
	assert.Equal(t, []string{"4 ounces cream cheese", "1/4 cup sour cream"}, got.Ingredients)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "empty recipe object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{"recipe": map[string]any{}})
			},
		},
		{
			name: "missing recipe",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{})
			},
		},
		{
			name: "404 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newServer(t, tc.handler)
			_, err := client.Get(context.Background(), "1")
			assert.ErrorIs(t, err, recipeapi.ErrNotFound)
		})
	}
}

func TestGet_ServerErrorIsRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"recipe": map[string]any{"title": "Retried", "ingredients": []string{}},
		})
	})

	got, err := client.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Retried", got.Title)
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_PersistentServerError(t *testing.T) {
	t.Parallel()

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{"error": "boom"})
	})

	_, err := client.Get(context.Background(), "7")
	var apiErr *recipeapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
}
