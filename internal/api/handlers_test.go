package api_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lataewar/forkify/internal/api"
	"github.com/lataewar/forkify/internal/db"
	"github.com/lataewar/forkify/internal/mocks"
	"github.com/lataewar/forkify/internal/recipeapi"
	"github.com/lataewar/forkify/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// helpers

func newTestItem(name, unit string, count float64) db.ListItem {
	return db.ListItem{
		ID:         uuid.New(),
		Count:      count,
		Unit:       unit,
		Ingredient: name,
		RecipeID:   sql.NullString{},
		CreatedAt:  time.Now(),
	}
}

func setupRouter(t *testing.T) (*mocks.MockQuerier, *mocks.MockRecipeSource, http.Handler) {
	t.Helper()
	mockQ := mocks.NewMockQuerier(t)
	mockSrc := mocks.NewMockRecipeSource(t)
	svc := service.New(mockQ, nil, mockSrc, service.Options{MergeThreshold: 0.8, DefaultServings: 4})
	router := api.NewRouter(svc)
	return mockQ, mockSrc, router
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func do(router http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// GET /healthz
// ---------------------------------------------------------------------------

func TestHealthz(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	rec := do(router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

// ---------------------------------------------------------------------------
// POST /ingredients/parse
// ---------------------------------------------------------------------------

func TestParse_MixedLines(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	body := jsonBody(t, map[string]any{"lines": []string{
		"1 1/2 cups plain flour (sifted)",
		"   ",
		"a pinch of salt",
	}})
	rec := do(router, http.MethodPost, "/ingredients/parse", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []struct {
		Line       string `json:"line"`
		Ingredient *struct {
			Count      float64 `json:"count"`
			Unit       string  `json:"unit"`
			Ingredient string  `json:"ingredient"`
		} `json:"ingredient"`
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 3)

	require.NotNil(t, got[0].Ingredient)
	assert.Equal(t, 1.5, got[0].Ingredient.Count)
	assert.Equal(t, "cup", got[0].Ingredient.Unit)
	assert.Equal(t, "plain flour", got[0].Ingredient.Ingredient)

	assert.Nil(t, got[1].Ingredient)
	assert.NotEmpty(t, got[1].Error)

	require.NotNil(t, got[2].Ingredient)
	assert.Equal(t, "a pinch of salt", got[2].Ingredient.Ingredient)
}

func TestParse_MissingLines(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	rec := do(router, http.MethodPost, "/ingredients/parse", jsonBody(t, map[string]any{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Contains(t, got["error"], "lines is required")
}

// ---------------------------------------------------------------------------
// GET /recipes and /recipes/{id}
// ---------------------------------------------------------------------------

func TestSearch_Success(t *testing.T) {
	t.Parallel()
	_, mockSrc, router := setupRouter(t)

	mockSrc.EXPECT().Search(mock.Anything, "pizza").Return([]recipeapi.Summary{
		{ID: "1", Title: "Pizza Dip"},
		{ID: "2", Title: "Pizza Dough"},
		{ID: "3", Title: "Pizza Bread"},
	}, nil)

	rec := do(router, http.MethodGet, "/recipes?q=pizza&page=2&per_page=2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got service.SearchPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Pages)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "3", got.Results[0].ID)
}

func TestSearch_MissingQuery(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	rec := do(router, http.MethodGet, "/recipes", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_InvalidPage(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	rec := do(router, http.MethodGet, "/recipes?q=pizza&page=two", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_UpstreamError(t *testing.T) {
	t.Parallel()
	_, mockSrc, router := setupRouter(t)

	mockSrc.EXPECT().Search(mock.Anything, "pizza").
		Return(nil, &recipeapi.APIError{Status: http.StatusOK, Message: "limit"})

	rec := do(router, http.MethodGet, "/recipes?q=pizza", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetRecipe_Scaled(t *testing.T) {
	t.Parallel()
	mockQ, mockSrc, router := setupRouter(t)

	mockSrc.EXPECT().Get(mock.Anything, "42").Return(recipeapi.Recipe{
		ID:          "42",
		Title:       "Pancakes",
		Ingredients: []string{"2 cups flour", "2 eggs"},
	}, nil)
	mockQ.EXPECT().GetLike(mock.Anything, "42").Return(db.Like{}, sql.ErrNoRows)

	rec := do(router, http.MethodGet, "/recipes/42?servings=8", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got service.Recipe
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 8, got.Servings)
	assert.Equal(t, 15, got.Minutes)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, 4.0, got.Ingredients[0].Count)
	assert.Equal(t, "cup", got.Ingredients[0].Unit)
	assert.Equal(t, 4.0, got.Ingredients[1].Count)
}

func TestGetRecipe_InvalidServings(t *testing.T) {
	t.Parallel()
	mockQ, mockSrc, router := setupRouter(t)

	mockSrc.EXPECT().Get(mock.Anything, "42").Return(recipeapi.Recipe{ID: "42", Title: "Pancakes"}, nil)
	mockQ.EXPECT().GetLike(mock.Anything, "42").Return(db.Like{}, sql.ErrNoRows)

	rec := do(router, http.MethodGet, "/recipes/42?servings=-2", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecipe_NotFound(t *testing.T) {
	t.Parallel()
	_, mockSrc, router := setupRouter(t)

	mockSrc.EXPECT().Get(mock.Anything, "404").Return(recipeapi.Recipe{}, recipeapi.ErrNotFound)

	rec := do(router, http.MethodGet, "/recipes/404", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// /list
// ---------------------------------------------------------------------------

func TestListItems_Empty(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().ListItems(mock.Anything).Return(nil, nil)

	rec := do(router, http.MethodGet, "/list", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var items []db.ListItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAddItem_Created(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().ListItems(mock.Anything).Return([]db.ListItem{}, nil)
	created := newTestItem("olive oil", "tbsp", 2)
	mockQ.EXPECT().CreateItem(mock.Anything, mock.MatchedBy(func(p db.CreateItemParams) bool {
		return p.Ingredient == "olive oil" && p.Unit == "tbsp" && p.Count == 2
	})).Return(created, nil)

	body := jsonBody(t, map[string]any{"count": 2, "unit": "tbsp", "ingredient": "Olive Oil"})
	rec := do(router, http.MethodPost, "/list", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, false, got["merged"])
}

func TestAddItem_DefaultCountAndMerge(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	existing := newTestItem("eggs", "", 2)
	mockQ.EXPECT().ListItems(mock.Anything).Return([]db.ListItem{existing}, nil)
	updated := existing
	updated.Count = 3
	mockQ.EXPECT().UpdateItemCount(mock.Anything, db.UpdateItemCountParams{ID: existing.ID, Count: 3}).
		Return(updated, nil)

	rec := do(router, http.MethodPost, "/list", jsonBody(t, map[string]any{"ingredient": "eggs"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, true, got["merged"])
}

func TestAddItem_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
	}{
		{name: "missing ingredient", body: map[string]any{"count": 1}},
		{name: "unknown unit", body: map[string]any{"ingredient": "flour", "unit": "bushel"}},
		{name: "negative count", body: map[string]any{"ingredient": "flour", "count": -3}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, router := setupRouter(t)
			rec := do(router, http.MethodPost, "/list", jsonBody(t, tc.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAddRecipeToList(t *testing.T) {
	t.Parallel()
	mockQ, mockSrc, router := setupRouter(t)

	mockSrc.EXPECT().Get(mock.Anything, "42").Return(recipeapi.Recipe{
		ID:          "42",
		Title:       "Toast",
		Ingredients: []string{"2 slices bread"},
	}, nil)
	mockQ.EXPECT().GetLike(mock.Anything, "42").Return(db.Like{}, sql.ErrNoRows)
	mockQ.EXPECT().ListItems(mock.Anything).Return([]db.ListItem{}, nil)
	mockQ.EXPECT().CreateItem(mock.Anything, mock.MatchedBy(func(p db.CreateItemParams) bool {
		return p.Ingredient == "slices bread" && p.Count == 2 && p.RecipeID.String == "42"
	})).Return(newTestItem("slices bread", "", 2), nil)

	rec := do(router, http.MethodPost, "/list/recipes/42", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestUpdateItem_Success(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	it := newTestItem("flour", "cup", 5)
	mockQ.EXPECT().UpdateItemCount(mock.Anything, db.UpdateItemCountParams{ID: it.ID, Count: 5}).Return(it, nil)

	rec := do(router, http.MethodPatch, "/list/"+it.ID.String(), jsonBody(t, map[string]any{"count": 5}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, it.ID.String(), got["id"])
}

func TestUpdateItem_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	id := uuid.New()
	mockQ.EXPECT().UpdateItemCount(mock.Anything, mock.Anything).Return(db.ListItem{}, sql.ErrNoRows)

	rec := do(router, http.MethodPatch, "/list/"+id.String(), jsonBody(t, map[string]any{"count": 1}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateItem_BadRequests(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	rec := do(router, http.MethodPatch, "/list/not-a-uuid", jsonBody(t, map[string]any{"count": 1}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodPatch, "/list/"+uuid.NewString(), jsonBody(t, map[string]any{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteItem(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	found, missing := uuid.New(), uuid.New()
	mockQ.EXPECT().DeleteItem(mock.Anything, found).Return(1, nil)
	mockQ.EXPECT().DeleteItem(mock.Anything, missing).Return(0, nil)

	assert.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/list/"+found.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/list/"+missing.String(), nil).Code)
}

func TestClearList(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().DeleteAllItems(mock.Anything).Return(nil)

	rec := do(router, http.MethodDelete, "/list", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMergeItems_InvalidIDs(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	id := uuid.NewString()
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "bad winner", body: map[string]any{"winner_id": "x", "loser_id": id}},
		{name: "bad loser", body: map[string]any{"winner_id": id, "loser_id": "y"}},
		{name: "same item", body: map[string]any{"winner_id": id, "loser_id": id}},
	}

	for _, tc := range tests {
		rec := do(router, http.MethodPost, "/list/merge", jsonBody(t, tc.body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
	}
}

// ---------------------------------------------------------------------------
// /likes
// ---------------------------------------------------------------------------

func TestListLikes(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().ListLikes(mock.Anything).Return([]db.Like{{RecipeID: "1", Title: "Soup"}}, nil)
	mockQ.EXPECT().CountLikes(mock.Anything).Return(1, nil)

	rec := do(router, http.MethodGet, "/likes", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Count int64     `json:"count"`
		Likes []db.Like `json:"likes"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(1), got.Count)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, "Soup", got.Likes[0].Title)
}

func TestLike_Created(t *testing.T) {
	t.Parallel()
	mockQ, mockSrc, router := setupRouter(t)

	mockQ.EXPECT().GetLike(mock.Anything, "1").Return(db.Like{}, sql.ErrNoRows)
	mockSrc.EXPECT().Get(mock.Anything, "1").Return(recipeapi.Recipe{ID: "1", Title: "Soup"}, nil)
	mockQ.EXPECT().CreateLike(mock.Anything, mock.MatchedBy(func(p db.CreateLikeParams) bool {
		return p.RecipeID == "1" && p.Title == "Soup"
	})).Return(db.Like{RecipeID: "1", Title: "Soup"}, nil)

	rec := do(router, http.MethodPut, "/likes/1", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLike_Existing(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().GetLike(mock.Anything, "1").Return(db.Like{RecipeID: "1", Title: "Soup"}, nil)

	rec := do(router, http.MethodPut, "/likes/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnlike_NotFound(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().DeleteLike(mock.Anything, "9").Return(0, nil)

	rec := do(router, http.MethodDelete, "/likes/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleLike(t *testing.T) {
	t.Parallel()
	mockQ, _, router := setupRouter(t)

	mockQ.EXPECT().GetLike(mock.Anything, "1").Return(db.Like{RecipeID: "1"}, nil)
	mockQ.EXPECT().DeleteLike(mock.Anything, "1").Return(1, nil)

	rec := do(router, http.MethodPost, "/likes/1/toggle", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.False(t, got["liked"])
}

func TestParse_OutOfRangeQuantity(t *testing.T) {
	t.Parallel()
	_, _, router := setupRouter(t)

	huge := "1" + strings.Repeat("0", 400) + " cups flour"
	body := jsonBody(t, map[string]any{"lines": []string{"2 cups flour", huge}})
	rec := do(router, http.MethodPost, "/ingredients/parse", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []struct {
		Ingredient struct {
			Count float64 `json:"count"`
		} `json:"ingredient"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Ingredient.Count)
	assert.Equal(t, 1.0, got[1].Ingredient.Count)
}
