// Package ingredient turns free-text recipe ingredient lines such as
// "1 1/2 cups plain flour (sifted)" into a count, a canonical unit and an
// ingredient name.
//
// Parsing is best effort. Unit spellings are shortened by plain substring
// replacement before unit detection, so a word that merely contains a unit
// spelling is rewritten too ("teaspoonful" becomes "tspful").
package ingredient

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Ingredient is one parsed ingredient line.
type Ingredient struct {
	Count float64 `json:"count"`
	Unit  string  `json:"unit"`
	Name  string  `json:"ingredient"`
}

// Result pairs an input line with its parsed form or the error it produced.
type Result struct {
	Line       string
	Ingredient Ingredient
	Err        error
}

// MarshalJSON encodes a Result as {"line", "ingredient"} on success and
// {"line", "error"} on failure.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Line       string      `json:"line"`
		Ingredient *Ingredient `json:"ingredient,omitempty"`
		Error      string      `json:"error,omitempty"`
	}{Line: r.Line}
	if r.Err != nil {
		out.Error = r.Err.Error()
	} else {
		ing := r.Ingredient
		out.Ingredient = &ing
	}
	return json.Marshal(out)
}

var (
	parenRe      = regexp.MustCompile(` *\([^)]*\) *`)
	leadingIntRe = regexp.MustCompile(`^[+-]?[0-9]+`)
)

// Parse converts one ingredient line. A quantity expression that cannot be
// evaluated counts as 1. ErrEmptyIngredient is returned when no ingredient
// name remains.
func Parse(line string) (Ingredient, error) {
	cleaned := Clean(line)
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return Ingredient{}, ErrEmptyIngredient
	}

	var ing Ingredient
	if i := unitIndex(tokens); i >= 0 {
		ing = Ingredient{
			Count: quantity(tokens[:i]),
			Unit:  tokens[i],
			Name:  strings.Join(tokens[i+1:], " "),
		}
	} else if n, ok := leadingInt(tokens[0]); ok {
		ing = Ingredient{
			Count: float64(n),
			Name:  strings.Join(tokens[1:], " "),
		}
	} else {
		ing = Ingredient{Count: 1, Name: strings.TrimSpace(cleaned)}
	}

	if strings.TrimSpace(ing.Name) == "" {
		return Ingredient{}, ErrEmptyIngredient
	}
	return ing, nil
}

// ParseAll parses every line independently. The results are in input order
// and a failing line does not stop the others.
func ParseAll(lines []string) []Result {
	results := make([]Result, len(lines))
	for i, line := range lines {
		ing, err := Parse(line)
		results[i] = Result{Line: line, Ingredient: ing, Err: err}
	}
	return results
}

// Clean lower-cases line, shortens unit spellings and drops parenthetical
// asides. It does not trim the result.
func Clean(line string) string {
	s := strings.ToLower(line)
	for _, a := range unitAliases {
		s = strings.ReplaceAll(s, a.long, a.short)
	}
	return parenRe.ReplaceAllString(s, " ")
}

func unitIndex(tokens []string) int {
	for i, tok := range tokens {
		if IsUnit(tok) {
			return i
		}
	}
	return -1
}

// quantity evaluates the tokens in front of a unit. A lone token has its
// dashes read as plus signs ("1-1/2" is one and a half); several tokens are
// summed ("1 1/2").
func quantity(tokens []string) float64 {
	var expr string
	switch len(tokens) {
	case 0:
		return 1
	case 1:
		expr = strings.ReplaceAll(tokens[0], "-", "+")
	default:
		expr = strings.Join(tokens, "+")
	}
	v, err := Eval(expr)
	if err != nil {
		return 1
	}
	return v
}

// leadingInt reads the integer a token starts with ("12-oz" gives 12).
// Zero is treated as no number at all.
func leadingInt(tok string) (int, bool) {
	m := leadingIntRe.FindString(tok)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
