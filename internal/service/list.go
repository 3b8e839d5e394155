package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/lataewar/forkify/internal/db"
	"github.com/lataewar/forkify/internal/ingredient"
)

// NewItem is an ingredient to put on the shopping list.
type NewItem struct {
	Count    float64
	Unit     string
	Name     string
	RecipeID string
}

// AddResult is returned by AddItem.
type AddResult struct {
	Item       db.ListItem `json:"item"`
	Merged     bool        `json:"merged"`
	Confidence float64     `json:"confidence"`
}

func validCount(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0
}

// AddItem puts an ingredient on the list. If an item with the same unit and
// a name similar enough to the new one is already there, its count is
// increased instead of adding a row.
func (s *Service) AddItem(ctx context.Context, in NewItem) (AddResult, error) {
	name := Normalize(in.Name)
	if name == "" {
		return AddResult{}, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if !validCount(in.Count) {
		return AddResult{}, fmt.Errorf("%w: count %v", ErrInvalidItem, in.Count)
	}
	if in.Unit != "" && !ingredient.IsUnit(in.Unit) {
		return AddResult{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidItem, in.Unit)
	}

	items, err := s.q.ListItems(ctx)
	if err != nil {
		return AddResult{}, fmt.Errorf("list items: %w", err)
	}

	if m := resolveItem(name, in.Unit, items, s.threshold); m.Found {
		slog.Debug("merging list item",
			"name", name,
			"into", m.Item.Ingredient,
			"item_id", m.Item.ID,
			"confidence", m.Confidence,
		)
		item, err := s.q.UpdateItemCount(ctx, db.UpdateItemCountParams{
			ID:    m.Item.ID,
			Count: m.Item.Count + in.Count,
		})
		if err != nil {
			return AddResult{}, fmt.Errorf("update item %s: %w", m.Item.ID, notFound(err))
		}
		return AddResult{Item: item, Merged: true, Confidence: m.Confidence}, nil
	}

	item, err := s.q.CreateItem(ctx, db.CreateItemParams{
		Count:      in.Count,
		Unit:       in.Unit,
		Ingredient: name,
		RecipeID:   sql.NullString{String: in.RecipeID, Valid: in.RecipeID != ""},
	})
	if err != nil {
		return AddResult{}, fmt.Errorf("create item: %w", err)
	}
	return AddResult{Item: item, Confidence: 1.0}, nil
}

// AddRecipe puts every parsed ingredient of a recipe on the list, scaled to
// servings when servings is positive. Ingredients with a negative count are
// skipped.
func (s *Service) AddRecipe(ctx context.Context, recipeID string, servings int) ([]AddResult, error) {
	r, err := s.Recipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if servings > 0 {
		if err := r.Scale(servings); err != nil {
			return nil, err
		}
	}

	results := make([]AddResult, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		res, err := s.AddItem(ctx, NewItem{
			Count:    ing.Count,
			Unit:     ing.Unit,
			Name:     ing.Name,
			RecipeID: r.ID,
		})
		if errors.Is(err, ErrInvalidItem) {
			slog.Warn("skipping ingredient", "recipe_id", r.ID, "ingredient", ing.Name, "error", err)
			continue
		}
		if err != nil {
			return results, fmt.Errorf("add %q: %w", ing.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Items returns the shopping list in insertion order.
func (s *Service) Items(ctx context.Context) ([]db.ListItem, error) {
	items, err := s.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []db.ListItem{}
	}
	return items, nil
}

// UpdateItem sets the count of a list item.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, count float64) (db.ListItem, error) {
	if !validCount(count) {
		return db.ListItem{}, fmt.Errorf("%w: count %v", ErrInvalidItem, count)
	}
	item, err := s.q.UpdateItemCount(ctx, db.UpdateItemCountParams{ID: id, Count: count})
	if err != nil {
		return db.ListItem{}, fmt.Errorf("update item %s: %w", id, notFound(err))
	}
	return item, nil
}

// DeleteItem removes one list item.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	n, err := s.q.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete item %s: %w", id, ErrNotFound)
	}
	return nil
}

// ClearList removes every list item.
func (s *Service) ClearList(ctx context.Context) error {
	if err := s.q.DeleteAllItems(ctx); err != nil {
		return fmt.Errorf("clear list: %w", err)
	}
	return nil
}
