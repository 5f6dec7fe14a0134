package match

import (
	"cmp"
	"slices"
)

// DefaultSuggestionScore is the minimum similarity for a name to be suggested.
const DefaultSuggestionScore = 0.5

// Suggestion is a known name scored against an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest ranks known names by similarity to name and returns at most limit of
// them, best first. Names scoring below DefaultSuggestionScore are dropped.
// Ties are broken alphabetically so results are deterministic.
func Suggest(name string, known []string, limit int) []string {
	var ranked []Suggestion

	for _, k := range known {
		score := Similarity(name, k)
		if score < DefaultSuggestionScore {
			continue
		}

		ranked = append(ranked, Suggestion{Name: k, Score: score})
	}

	slices.SortFunc(ranked, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}

	return names
}
