package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/lataewar/forkify/internal/db"
	"github.com/lataewar/forkify/internal/ingredient"
	"github.com/lataewar/forkify/internal/logging"
	"github.com/lataewar/forkify/internal/recipeapi"
	"github.com/lataewar/forkify/internal/service"
)

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Post("/ingredients/parse", handleParse)

	r.Get("/recipes", handleSearch(svc))
	r.Get("/recipes/{id}", handleGetRecipe(svc))

	r.Get("/list", handleListItems(svc))
	r.Post("/list", handleAddItem(svc))
	r.Delete("/list", handleClearList(svc))
	r.Post("/list/merge", handleMergeItems(svc))
	r.Post("/list/recipes/{id}", handleAddRecipe(svc))
	r.Patch("/list/{itemID}", handleUpdateItem(svc))
	r.Delete("/list/{itemID}", handleDeleteItem(svc))

	r.Get("/likes", handleListLikes(svc))
	r.Put("/likes/{id}", handleLike(svc))
	r.Delete("/likes/{id}", handleUnlike(svc))
	r.Post("/likes/{id}/toggle", handleToggleLike(svc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- parse ---

type parseRequest struct {
	Lines []string `json:"lines"`
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Lines == nil {
		jsonError(w, "lines is required", http.StatusBadRequest)
		return
	}

	jsonOK(w, ingredient.ParseAll(req.Lines))
}

// --- recipes ---

func handleSearch(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := queryInt(w, r, "page")
		if !ok {
			return
		}
		perPage, ok := queryInt(w, r, "per_page")
		if !ok {
			return
		}
		result, err := svc.Search(r.Context(), r.URL.Query().Get("q"), page, perPage)
		if err != nil {
			serviceError(w, "search failed", err)
			return
		}
		jsonOK(w, result)
	}
}

func handleGetRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		servings, ok := queryInt(w, r, "servings")
		if !ok {
			return
		}
		recipe, err := svc.Recipe(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			serviceError(w, "failed to get recipe", err)
			return
		}
		if servings != 0 {
			if err := recipe.Scale(servings); err != nil {
				serviceError(w, "invalid servings", err)
				return
			}
		}
		jsonOK(w, recipe)
	}
}

// --- shopping list ---

func handleListItems(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Items(r.Context())
		if err != nil {
			serviceError(w, "failed to list items", err)
			return
		}
		jsonOK(w, items)
	}
}

type addItemRequest struct {
	Count      *float64 `json:"count"`
	Unit       string   `json:"unit"`
	Ingredient string   `json:"ingredient"`
}

func handleAddItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Ingredient == "" {
			jsonError(w, "ingredient is required", http.StatusBadRequest)
			return
		}
		count := 1.0
		if req.Count != nil {
			count = *req.Count
		}
		result, err := svc.AddItem(r.Context(), service.NewItem{
			Count: count,
			Unit:  req.Unit,
			Name:  req.Ingredient,
		})
		if err != nil {
			serviceError(w, "failed to add item", err)
			return
		}
		status := http.StatusCreated
		if result.Merged {
			status = http.StatusOK
		}
		jsonStatus(w, status, result)
	}
}

func handleAddRecipe(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		servings, ok := queryInt(w, r, "servings")
		if !ok {
			return
		}
		if servings < 0 {
			jsonError(w, "invalid servings", http.StatusBadRequest)
			return
		}
		results, err := svc.AddRecipe(r.Context(), chi.URLParam(r, "id"), servings)
		if err != nil {
			serviceError(w, "failed to add recipe to list", err)
			return
		}
		jsonStatus(w, http.StatusCreated, results)
	}
}

type updateItemRequest struct {
	Count *float64 `json:"count"`
}

func handleUpdateItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req updateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Count == nil {
			jsonError(w, "count is required", http.StatusBadRequest)
			return
		}
		item, err := svc.UpdateItem(r.Context(), id, *req.Count)
		if err != nil {
			serviceError(w, "failed to update item", err)
			return
		}
		jsonOK(w, item)
	}
}

func handleDeleteItem(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.DeleteItem(r.Context(), id); err != nil {
			serviceError(w, "failed to delete item", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleClearList(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearList(r.Context()); err != nil {
			serviceError(w, "failed to clear list", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type mergeRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

func handleMergeItems(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		winnerID, err := uuid.Parse(req.WinnerID)
		if err != nil {
			jsonError(w, "invalid winner_id", http.StatusBadRequest)
			return
		}
		loserID, err := uuid.Parse(req.LoserID)
		if err != nil {
			jsonError(w, "invalid loser_id", http.StatusBadRequest)
			return
		}
		winner, err := svc.MergeItems(r.Context(), winnerID, loserID)
		if err != nil {
			serviceError(w, "merge failed", err)
			return
		}
		jsonOK(w, winner)
	}
}

// --- likes ---

type likesResponse struct {
	Count int64     `json:"count"`
	Likes []db.Like `json:"likes"`
}

func handleListLikes(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		likes, err := svc.Likes(r.Context())
		if err != nil {
			serviceError(w, "failed to list likes", err)
			return
		}
		n, err := svc.LikeCount(r.Context())
		if err != nil {
			serviceError(w, "failed to count likes", err)
			return
		}
		jsonOK(w, likesResponse{Count: n, Likes: likes})
	}
}

func handleLike(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		like, created, err := svc.Like(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			serviceError(w, "failed to like recipe", err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		jsonStatus(w, status, like)
	}
}

func handleUnlike(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Unlike(r.Context(), chi.URLParam(r, "id")); err != nil {
			serviceError(w, "failed to unlike recipe", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleToggleLike(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		liked, err := svc.ToggleLike(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			serviceError(w, "failed to toggle like", err)
			return
		}
		jsonOK(w, map[string]bool{"liked": liked})
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	jsonStatus(w, http.StatusOK, v)
}

func jsonStatus(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		jsonError(w, "failed to encode response", http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}

// serviceError maps service and recipe API errors to a status code.
func serviceError(w http.ResponseWriter, msg string, err error) {
	var apiErr *recipeapi.APIError
	switch {
	case errors.Is(err, service.ErrNotFound):
		jsonError(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrInvalidServings),
		errors.Is(err, service.ErrInvalidItem):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnitMismatch):
		jsonError(w, err.Error(), http.StatusConflict)
	case errors.As(err, &apiErr):
		jsonError(w, "recipe api error", http.StatusBadGateway, err)
	default:
		jsonError(w, msg, http.StatusInternalServerError, err)
	}
}

// queryInt reads an optional integer query parameter. A missing parameter
// is 0. On a malformed value it writes a 400 and returns false.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		jsonError(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return n, true
}
