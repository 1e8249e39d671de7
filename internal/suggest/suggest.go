// Package suggest provides fuzzy city-name autocompletion for the
// city_not_found response and the /suggest endpoint.
package suggest

import (
	"sort"
	"strings"
)

// DefaultLimit is the number of suggestions returned when the caller does not
// ask for a specific amount.
const DefaultLimit = 5

// maxDistance is the largest edit distance still considered a plausible typo.
const maxDistance = 2

// Cities returns candidates matching query, best first: prefix matches are
// ranked above close edit-distance matches. The empty query yields nil.
func Cities(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		name string
		rank int // 0 = prefix match, otherwise edit distance
	}
	var matches []scored

	for _, city := range cityNames {
		lc := strings.ToLower(city)
		switch {
		case strings.HasPrefix(lc, q):
			matches = append(matches, scored{city, 0})
		case editDistance(q, lc) <= maxDistance:
			matches = append(matches, scored{city, editDistance(q, lc)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

// editDistance is the Levenshtein distance between a and b over runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
