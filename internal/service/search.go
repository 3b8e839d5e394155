package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lataewar/forkify/internal/recipeapi"
)

const DefaultPerPage = 10

// SearchPage is one page of search results.
type SearchPage struct {
	Query   string              `json:"query"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
	Total   int                 `json:"total"`
	Pages   int                 `json:"pages"`
	Results []recipeapi.Summary `json:"results"`
}

// Search queries the recipe API and returns the requested page. Pages
// start at 1; a page past the end is empty.
func (s *Service) Search(ctx context.Context, query string, page, perPage int) (SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchPage{}, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	all, err := s.src.Search(ctx, query)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search recipes: %w", err)
	}

	return SearchPage{
		Query:   query,
		Page:    page,
		PerPage: perPage,
		Total:   len(all),
		Pages:   (len(all) + perPage - 1) / perPage,
		Results: paginate(all, page, perPage),
	}, nil
}

func paginate[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
