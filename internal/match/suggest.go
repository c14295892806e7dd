package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the lowest folded similarity Suggest keeps.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates whose folded form is at least
// MinSimilarity close to the folded name, best first. Ties keep the
// alphabetical order.
func Suggest(name string, candidates []string, limit int) []string {
	folded := Fold(name)

	var found []scored
	for _, c := range candidates {
		if s := Similarity(folded, Fold(c)); s >= MinSimilarity {
			found = append(found, scored{name: c, score: s})
		}
	}

	slices.SortFunc(found, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	if limit >= 0 && len(found) > limit {
		found = found[:limit]
	}

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}

	return out
}

// Hint formats the best suggestion as " (did you mean X?)", or returns ""
// when nothing is close enough.
func Hint(name string, candidates []string) string {
	best := Suggest(name, candidates, 1)
	if len(best) == 0 {
		return ""
	}

	return " (did you mean " + best[0] + "?)"
}
