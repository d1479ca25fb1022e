package accessor

import (
	"sort"
	"strings"
)

// suggestionDistance is the maximum edit distance at which a known
// property name is still offered as a suggestion.
const suggestionDistance = 3

// suggest returns up to limit known property names closest to name by
// case-folded Levenshtein distance, nearest first.
func suggest(name string, known []string, limit int) []string {
	if limit <= 0 || len(known) == 0 {
		return nil
	}

	type scored struct {
		name     string
		distance int
	}

	target := strings.ToLower(name)

	var candidates []scored

	for _, prop := range known {
		d := levenshtein(target, strings.ToLower(prop))
		if d <= suggestionDistance {
			candidates = append(candidates, scored{name: prop, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}

		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}

	return names
}

// levenshtein computes the edit distance between two strings using two
// rolling rows.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
