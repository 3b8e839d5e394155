package service

import (
	"strings"

	"github.com/lataewar/forkify/internal/ingredient"
)

// Normalize reduces a list item name to the form a parsed ingredient name
// has: lower case, unit spellings shortened, parenthetical asides dropped and
// whitespace collapsed. A name typed by hand then matches the same ingredient
// added from a recipe.
func Normalize(s string) string {
	return strings.Join(strings.Fields(ingredient.Clean(s)), " ")
}
