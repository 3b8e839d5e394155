package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lataewar/forkify/internal/db"
)

// MergeItems folds loser into winner: the counts are added and the loser
// row is deleted, in one transaction. Both items must use the same unit.
func (s *Service) MergeItems(ctx context.Context, winnerID, loserID uuid.UUID) (db.ListItem, error) {
	if winnerID == loserID {
		return db.ListItem{}, fmt.Errorf("%w: cannot merge an item into itself", ErrInvalidItem)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return db.ListItem{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	qtx := db.New(tx)

	winner, err := qtx.GetItem(ctx, winnerID)
	if err != nil {
		return db.ListItem{}, fmt.Errorf("get item %s: %w", winnerID, notFound(err))
	}
	loser, err := qtx.GetItem(ctx, loserID)
	if err != nil {
		return db.ListItem{}, fmt.Errorf("get item %s: %w", loserID, notFound(err))
	}

	total, err := combinedCount(winner, loser)
	if err != nil {
		return db.ListItem{}, err
	}

	winner, err = qtx.UpdateItemCount(ctx, db.UpdateItemCountParams{ID: winnerID, Count: total})
	if err != nil {
		return db.ListItem{}, err
	}
	if _, err := qtx.DeleteItem(ctx, loserID); err != nil {
		return db.ListItem{}, err
	}

	if err := tx.Commit(); err != nil {
		return db.ListItem{}, err
	}

	return winner, nil
}

// combinedCount returns the count the winner has after absorbing loser.
func combinedCount(winner, loser db.ListItem) (float64, error) {
	if winner.Unit != loser.Unit {
		return 0, fmt.Errorf("%w: %q and %q", ErrUnitMismatch, winner.Unit, loser.Unit)
	}
	return winner.Count + loser.Count, nil
}
