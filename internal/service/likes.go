package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lataewar/forkify/internal/db"
)

// Like bookmarks a recipe, copying its title, publisher and image from the
// recipe API. Liking an already liked recipe returns the existing like with
// created set to false.
func (s *Service) Like(ctx context.Context, recipeID string) (like db.Like, created bool, err error) {
	like, err = s.q.GetLike(ctx, recipeID)
	if err == nil {
		return like, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return db.Like{}, false, fmt.Errorf("get like %s: %w", recipeID, err)
	}

	raw, err := s.src.Get(ctx, recipeID)
	if err != nil {
		return db.Like{}, false, fmt.Errorf("fetch recipe %s: %w", recipeID, notFound(err))
	}

	like, err = s.q.CreateLike(ctx, db.CreateLikeParams{
		RecipeID:  recipeID,
		Title:     raw.Title,
		Publisher: raw.Publisher,
		ImageUrl:  raw.ImageURL,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A concurrent like won the race; fetch the existing row.
			like, err = s.q.GetLike(ctx, recipeID)
			if err != nil {
				return db.Like{}, false, fmt.Errorf("get like %s: %w", recipeID, err)
			}
			return like, false, nil
		}
		return db.Like{}, false, fmt.Errorf("create like %s: %w", recipeID, err)
	}
	return like, true, nil
}

// Unlike removes a bookmark.
func (s *Service) Unlike(ctx context.Context, recipeID string) error {
	n, err := s.q.DeleteLike(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("delete like %s: %w", recipeID, err)
	}
	if n == 0 {
		return fmt.Errorf("delete like %s: %w", recipeID, ErrNotFound)
	}
	return nil
}

// ToggleLike likes the recipe if it is not liked and unlikes it otherwise.
// It reports whether the recipe is liked afterwards.
func (s *Service) ToggleLike(ctx context.Context, recipeID string) (bool, error) {
	liked, err := s.IsLiked(ctx, recipeID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.Unlike(ctx, recipeID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, _, err := s.Like(ctx, recipeID); err != nil {
		return false, err
	}
	return true, nil
}

// Likes returns every liked recipe, oldest first.
func (s *Service) Likes(ctx context.Context) ([]db.Like, error) {
	likes, err := s.q.ListLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	if likes == nil {
		likes = []db.Like{}
	}
	return likes, nil
}

func (s *Service) LikeCount(ctx context.Context) (int64, error) {
	n, err := s.q.CountLikes(ctx)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
