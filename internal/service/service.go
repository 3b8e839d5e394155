package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lataewar/forkify/internal/db"
	"github.com/lataewar/forkify/internal/recipeapi"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrEmptyQuery      = errors.New("search query is empty")
	ErrInvalidServings = errors.New("servings must be at least 1")
	ErrInvalidItem     = errors.New("invalid list item")
	ErrUnitMismatch    = errors.New("list items have different units")
)

// RecipeSource is the external recipe API. *recipeapi.Client implements it.
type RecipeSource interface {
	Search(ctx context.Context, query string) ([]recipeapi.Summary, error)
	Get(ctx context.Context, id string) (recipeapi.Recipe, error)
}

// Options tunes the service. Zero values select the defaults.
type Options struct {
	// MergeThreshold is the minimum name similarity (0.0–1.0) at which an
	// added ingredient is folded into an existing list item.
	MergeThreshold float64
	// DefaultServings is the serving count a freshly fetched recipe has.
	DefaultServings int
}

// Service holds all dependencies for the recipe service layer.
type Service struct {
	q         db.Querier
	sqlDB     *sql.DB
	src       RecipeSource
	threshold float64
	servings  int
}

// New creates a new Service.
func New(q db.Querier, sqlDB *sql.DB, src RecipeSource, opts Options) *Service {
	if opts.MergeThreshold <= 0 {
		opts.MergeThreshold = 0.8
	}
	if opts.DefaultServings <= 0 {
		opts.DefaultServings = 4
	}
	return &Service{
		q:         q,
		sqlDB:     sqlDB,
		src:       src,
		threshold: opts.MergeThreshold,
		servings:  opts.DefaultServings,
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, recipeapi.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
