package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lataewar/forkify/internal/recipeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func summaries(n int) []recipeapi.Summary {
	out := make([]recipeapi.Summary, n)
	for i := range out {
		out[i] = recipeapi.Summary{ID: fmt.Sprint(i + 1), Title: fmt.Sprintf("Recipe %d", i+1)}
	}
	return out
}

func TestSearch_Pages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		perPage   int
		wantPage  int
		wantIDs   []string
		wantPages int
	}{
		{name: "first page by default", page: 0, perPage: 0, wantPage: 1, wantPages: 3,
			wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{name: "last partial page", page: 3, perPage: 10, wantPage: 3, wantPages: 3,
			wantIDs: []string{"21", "22", "23", "24", "25"}},
		{name: "custom page size", page: 2, perPage: 7, wantPage: 2, wantPages: 4,
			wantIDs: []string{"8", "9", "10", "11", "12", "13", "14"}},
		{name: "past the end", page: 9, perPage: 10, wantPage: 9, wantPages: 3,
			wantIDs: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, mockSrc, svc := newTestService(t)
			mockSrc.EXPECT().Search(mock.Anything, "pizza").Return(summaries(25), nil)

			got, err := svc.Search(context.Background(), "  pizza ", tc.page, tc.perPage)
			require.NoError(t, err)
			assert.Equal(t, "pizza", got.Query)
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, 25, got.Total)
			assert.Equal(t, tc.wantPages, got.Pages)

			ids := make([]string, 0, len(got.Results))
			for _, r := range got.Results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	_, _, svc := newTestService(t)
	_, err := svc.Search(context.Background(), "   ", 1, 10)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_SourceError(t *testing.T) {
	t.Parallel()

	_, mockSrc, svc := newTestService(t)
	boom := errors.New("boom")
	mockSrc.EXPECT().Search(mock.Anything, "pizza").Return(nil, boom)

	_, err := svc.Search(context.Background(), "pizza", 1, 10)
	assert.ErrorIs(t, err, boom)
}

func TestSearch_NoResults(t *testing.T) {
	t.Parallel()

	_, mockSrc, svc := newTestService(t)
	mockSrc.EXPECT().Search(mock.Anything, "zzz").Return([]recipeapi.Summary{}, nil)

	got, err := svc.Search(context.Background(), "zzz", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Pages)
	assert.Empty(t, got.Results)
	assert.NotNil(t, got.Results)
}
