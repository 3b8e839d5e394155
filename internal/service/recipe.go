package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lataewar/forkify/internal/ingredient"
	"github.com/lataewar/forkify/internal/recipeapi"
)

// minutesPerGroup is the cooking time charged for every started group of
// ingredientsPerGroup ingredients.
const (
	ingredientsPerGroup = 3
	minutesPerGroup     = 15
)

// Recipe is a recipe with its ingredient lines parsed.
type Recipe struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Publisher   string                  `json:"publisher"`
	ImageURL    string                  `json:"image_url"`
	SourceURL   string                  `json:"source_url"`
	Servings    int                     `json:"servings"`
	Minutes     int                     `json:"minutes"`
	Liked       bool                    `json:"liked"`
	Ingredients []ingredient.Ingredient `json:"ingredients"`
	Unparsed    []string                `json:"unparsed,omitempty"`
}

// Scale changes the serving count and multiplies every ingredient count by
// servings/r.Servings.
func (r *Recipe) Scale(servings int) error {
	if servings < 1 {
		return ErrInvalidServings
	}
	if servings == r.Servings {
		return nil
	}
	factor := float64(servings) / float64(r.Servings)
	for i := range r.Ingredients {
		r.Ingredients[i].Count *= factor
	}
	r.Servings = servings
	return nil
}

// cookingMinutes estimates 15 minutes for every started group of three
// ingredients.
func cookingMinutes(numIngredients int) int {
	groups := (numIngredients + ingredientsPerGroup - 1) / ingredientsPerGroup
	return groups * minutesPerGroup
}

// Assemble builds a Recipe for servings people from a raw API recipe. Lines
// that cannot be parsed are kept verbatim in Unparsed rather than failing the
// recipe.
func Assemble(raw recipeapi.Recipe, servings int) *Recipe {
	r := &Recipe{
		ID:          raw.ID,
		Title:       raw.Title,
		Publisher:   raw.Publisher,
		ImageURL:    raw.ImageURL,
		SourceURL:   raw.SourceURL,
		Servings:    servings,
		Minutes:     cookingMinutes(len(raw.Ingredients)),
		Ingredients: make([]ingredient.Ingredient, 0, len(raw.Ingredients)),
	}
	for _, res := range ingredient.ParseAll(raw.Ingredients) {
		if res.Err != nil {
			slog.Warn("unparsed ingredient line", "recipe_id", raw.ID, "line", res.Line, "error", res.Err)
			r.Unparsed = append(r.Unparsed, res.Line)
			continue
		}
		r.Ingredients = append(r.Ingredients, res.Ingredient)
	}
	return r
}

// Recipe fetches a recipe, parses its ingredient lines and marks whether it
// is liked.
func (s *Service) Recipe(ctx context.Context, id string) (*Recipe, error) {
	raw, err := s.src.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch recipe %s: %w", id, notFound(err))
	}

	r := Assemble(raw, s.servings)
	liked, err := s.IsLiked(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Liked = liked
	return r, nil
}

// IsLiked reports whether the recipe has been liked.
func (s *Service) IsLiked(ctx context.Context, recipeID string) (bool, error) {
	_, err := s.q.GetLike(ctx, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get like %s: %w", recipeID, err)
	}
	return true, nil
}
