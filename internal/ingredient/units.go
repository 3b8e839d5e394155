package ingredient

// alias maps a spelled-out unit to its canonical short form.
type alias struct {
	long  string
	short string
}

// unitAliases is applied in order. Plurals come before singulars so that
// "tablespoons" is not left as "tbsps".
var unitAliases = []alias{
	{"tablespoons", "tbsp"},
	{"tablespoon", "tbsp"},
	{"ounces", "oz"},
	{"ounce", "oz"},
	{"teaspoons", "tsp"},
	{"teaspoon", "tsp"},
	{"cups", "cup"},
	{"pounds", "pound"},
}

var recognizedUnits = func() map[string]struct{} {
	m := make(map[string]struct{}, len(unitAliases)+2)
	for _, a := range unitAliases {
		m[a.short] = struct{}{}
	}
	m["g"] = struct{}{}
	m["kg"] = struct{}{}
	return m
}()

// IsUnit reports whether tok is one of the canonical unit tokens.
func IsUnit(tok string) bool {
	_, ok := recognizedUnits[tok]
	return ok
}

// Units returns the canonical unit tokens in alias-table order followed by
// the mass units.
func Units() []string {
	seen := make(map[string]struct{}, len(recognizedUnits))
	out := make([]string, 0, len(recognizedUnits))
	for _, a := range unitAliases {
		if _, ok := seen[a.short]; ok {
			continue
		}
		seen[a.short] = struct{}{}
		out = append(out, a.short)
	}
	return append(out, "g", "kg")
}
