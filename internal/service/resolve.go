package service

import (
	"github.com/agnivade/levenshtein"
	"github.com/lataewar/forkify/internal/db"
)

// match is the list item a new ingredient would be folded into.
type match struct {
	Item       db.ListItem
	Confidence float64
	Found      bool
}

// similarity returns a 0.0–1.0 confidence score between two strings using
// Levenshtein distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// resolveItem finds the existing list item that best matches name among the
// items sharing unit. Only a score at or above threshold counts as found;
// an exact name match wins immediately.
func resolveItem(name, unit string, items []db.ListItem, threshold float64) match {
	var best db.ListItem
	bestScore := -1.0

	for _, it := range items {
		if it.Unit != unit {
			continue
		}
		existing := Normalize(it.Ingredient)
		if existing == name {
			return match{Item: it, Confidence: 1.0, Found: true}
		}
		if score := similarity(name, existing); score > bestScore {
			bestScore = score
			best = it
		}
	}

	if bestScore >= threshold {
		return match{Item: best, Confidence: bestScore, Found: true}
	}
	return match{Confidence: bestScore}
}
