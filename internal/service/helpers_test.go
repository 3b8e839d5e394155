package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lataewar/forkify/internal/db"
	"github.com/lataewar/forkify/internal/mocks"
)

func newTestService(t *testing.T) (*mocks.MockQuerier, *mocks.MockRecipeSource, *Service) {
	t.Helper()
	mockQ := mocks.NewMockQuerier(t)
	mockSrc := mocks.NewMockRecipeSource(t)
	svc := New(mockQ, nil, mockSrc, Options{MergeThreshold: 0.8, DefaultServings: 4})
	return mockQ, mockSrc, svc
}

func newItem(name, unit string, count float64) db.ListItem {
	return db.ListItem{
		ID:         uuid.New(),
		Count:      count,
		Unit:       unit,
		Ingredient: name,
		RecipeID:   sql.NullString{},
		CreatedAt:  time.Now(),
	}
}
