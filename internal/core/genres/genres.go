// Package genres splits pipe-delimited genre strings and ranks genre frequency
package genres

import (
	"slices"
	"strings"
)

// DefaultTopN is the number of genres returned when the caller asks for 0 or fewer
const DefaultTopN = 20

// Separator joins genres in the movie catalog
const Separator = "|"

// Count is one genre with the number of rows it appeared in
type Count struct {
	Genre string
	Count int
}

// Lister is anything that carries a genre list (interaction rows, recommendation rows)
type Lister interface {
	GenreList() []string
}

// Split turns "Action|Comedy" into ["Action", "Comedy"], dropping blank tokens
func Split(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, Separator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// Join is the inverse of Split
func Join(xs []string) string { return strings.Join(xs, Separator) }

// Top counts every genre token across lists and returns the topN most frequent,
// count descending. Equal counts keep first-encountered order
func Top(lists [][]string, topN int) []Count {
	if topN <= 0 {
		topN = DefaultTopN
	}

	idx := map[string]int{}
	var counts []Count
	for _, list := range lists {
		for _, g := range list {
			if i, ok := idx[g]; ok {
				counts[i].Count++
				continue
			}
			idx[g] = len(counts)
			counts = append(counts, Count{Genre: g, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b Count) int { return b.Count - a.Count })
	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}

// TopOf runs Top over any slice of genre carriers
func TopOf[T Lister](rows []T, topN int) []Count {
	lists := make([][]string, 0, len(rows))
	for _, r := range rows {
		lists = append(lists, r.GenreList())
	}
	return Top(lists, topN)
}

// TopRaw runs Top over pipe-delimited genre strings
func TopRaw(raw []string, topN int) []Count {
	lists := make([][]string, 0, len(raw))
	for _, r := range raw {
		lists = append(lists, Split(r))
	}
	return Top(lists, topN)
}

// Names returns just the genre names of counts, in order
func Names(counts []Count) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Genre
	}
	return out
}
